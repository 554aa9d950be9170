package toolschema

import "slices"

// Func is the callable contract: named arguments in, one result out. The
// wrapper never type-checks non-enum arguments; that is the callable's own
// responsibility.
type Func func(args map[string]any) (any, error)

// Invoker is the single "invoke" capability exposed by a decorated callable;
// middleware wraps it.
type Invoker interface {
	Name() string
	Call(args map[string]any) (any, error)
}

// ToolEnabled wraps one callable with its Schema and tags. It is constructed
// once by EnableTool; afterwards only the enum bindings may be mutated, via
// AddEnum. Calling it coerces enum-name arguments to their underlying values
// and delegates; the schema is never re-derived. AddEnum is single-writer:
// do not race it against Call from other goroutines.
type ToolEnabled struct {
	fn     Func
	schema *Schema
	tags   map[string]struct{}

	schemaType SchemaType
	compiled   *compiledSchema
}

// EnableTool decorates fn with a derived schema. The signature is the
// explicit descriptor of fn's parameters and documentation: Go reflection
// cannot recover parameter names or doc comments at runtime, so the caller
// supplies them at the boundary. The global configuration is read once,
// here; later changes to it do not affect this wrapper. Fails only on enum
// binding conflicts or duplicate parameter names.
func EnableTool(name string, fn Func, sig Signature, opts ...Option) (*ToolEnabled, error) {
	var o toolOptions
	for _, opt := range opts {
		opt(&o)
	}
	cfg := resolveConfig(DefaultConfig(), o.cfg)
	schema, err := buildSchema(name, sig, cfg)
	if err != nil {
		return nil, err
	}
	tags := make(map[string]struct{}, len(o.tags))
	for _, tag := range o.tags {
		tags[tag] = struct{}{}
	}
	return &ToolEnabled{
		fn:         fn,
		schema:     schema,
		tags:       tags,
		schemaType: cfg.schemaType,
		compiled:   &compiledSchema{},
	}, nil
}

// Name returns the callable's name.
func (t *ToolEnabled) Name() string { return t.schema.Name() }

// Description returns the overall description, empty when unset.
func (t *ToolEnabled) Description() string {
	desc, _ := t.schema.Description()
	return desc
}

// Schema returns the built schema model.
func (t *ToolEnabled) Schema() *Schema { return t.schema }

// Tags returns the tag set, sorted for deterministic output.
func (t *ToolEnabled) Tags() []string {
	tags := make([]string, 0, len(t.tags))
	for tag := range t.tags {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// HasTag reports whether the callable carries the tag.
func (t *ToolEnabled) HasTag(tag string) bool {
	_, ok := t.tags[tag]
	return ok
}

// AddEnum attaches or extends the enum binding of a parameter. Names already
// present are rejected with ErrDuplicateEnumName and the existing binding is
// left unchanged.
func (t *ToolEnabled) AddEnum(param string, members ...EnumMember) error {
	if err := t.schema.AddEnum(param, members...); err != nil {
		return err
	}
	t.compiled.invalidate()
	return nil
}

// AddEnumNames is AddEnum where each value is its own name.
func (t *ToolEnabled) AddEnumNames(param string, names ...string) error {
	members := make([]EnumMember, len(names))
	for i, n := range names {
		members[i] = EnumMember{Name: n, Value: n}
	}
	return t.AddEnum(param, members...)
}

// Call coerces enum-name arguments to their underlying values, then
// delegates to the wrapped callable. For each argument matching an
// enumerated parameter: a known name string decodes to the underlying
// value; a known underlying value passes through; an unknown string aborts
// with ErrUnknownEnumName before the callable runs; any non-string shape
// passes through unchanged (the wrapper never type-checks non-enum
// arguments). The input map is not mutated.
func (t *ToolEnabled) Call(args map[string]any) (any, error) {
	coerced := make(map[string]any, len(args))
	for key, val := range args {
		if p, ok := t.schema.Parameter(key); ok {
			if b := p.Enum(); b != nil {
				decoded, err := coerceEnumArg(b, val)
				if err != nil {
					return nil, err
				}
				val = decoded
			}
		}
		coerced[key] = val
	}
	return t.fn(coerced)
}

// coerceEnumArg is the explicit decision function for call-time coercion:
// known underlying values and non-string shapes pass through; strings are
// decoded as names.
func coerceEnumArg(b *EnumBinding, val any) (any, error) {
	if b.isValue(val) {
		return val, nil
	}
	if name, ok := val.(string); ok {
		return b.Decode(name)
	}
	return val, nil
}

// ToJSON serializes the schema into the given shape.
func (t *ToolEnabled) ToJSON(st SchemaType) map[string]any {
	return t.schema.ToJSON(st)
}

// ToJSONDefault serializes using the shape resolved at decoration time.
func (t *ToolEnabled) ToJSONDefault() map[string]any {
	return t.schema.ToJSON(t.schemaType)
}

var _ Invoker = (*ToolEnabled)(nil)
