package toolschema

import "fmt"

// SchemaType selects the export shape of a Schema. The shape only changes
// wrapping and nesting of the same field set, never the type-mapping or enum
// logic.
type SchemaType int

const (
	// SchemaTypeOpenAIAPI is the generic tool-call shape:
	// {"type": "function", "function": {...}}. This is the default.
	SchemaTypeOpenAIAPI SchemaType = iota
	// SchemaTypeOpenAITune is the flat fine-tuning shape.
	SchemaTypeOpenAITune
	// SchemaTypeAnthropicClaude is the flat shape with an "input_schema" key.
	SchemaTypeAnthropicClaude
)

// Param describes one signature parameter: name, declared type, and default
// value presence. Parameters are listed in declaration order.
type Param struct {
	Name       string
	Type       Type
	Default    any
	HasDefault bool
}

// WithDefault returns a copy of p carrying a default value.
func (p Param) WithDefault(v any) Param {
	p.Default = v
	p.HasDefault = true
	return p
}

// Signature is the callable's ordered parameter list plus its raw
// documentation comment.
type Signature struct {
	Params []Param
	Doc    string
}

// ParameterSchema is one retained parameter's contribution to the Schema.
type ParameterSchema struct {
	Name           string
	Type           Type
	Description    string
	HasDescription bool
	Default        any
	HasDefault     bool
}

// Required reports whether the parameter must be supplied: true iff it has
// no default value.
func (p *ParameterSchema) Required() bool { return !p.HasDefault }

// Enum returns the parameter's enum binding, nil for non-enumerated
// parameters.
func (p *ParameterSchema) Enum() *EnumBinding { return p.Type.Enum() }

// toJSON returns the property schema: type (plus items/enum/nested object),
// optional description, optional default. Omitted keys are absent, not null.
func (p *ParameterSchema) toJSON() map[string]any {
	out := p.Type.toJSON()
	if p.HasDescription {
		out["description"] = p.Description
	}
	if p.HasDefault {
		def := p.Default
		if b := p.Enum(); b != nil {
			// Export enum defaults by name, matching the enum list.
			if name, ok := b.Encode(def); ok {
				def = name
			}
		}
		out["default"] = def
	}
	return out
}

// Schema is the JSON-serializable description of one callable: its name,
// optional overall description, and ordered retained parameters. Required
// parameter names are derived (no default), never independently settable.
type Schema struct {
	name           string
	description    string
	hasDescription bool
	params         []*ParameterSchema
	byName         map[string]*ParameterSchema
}

// buildSchema composes the doc comment parser, the type mapper, and a
// resolved configuration into a Schema. Identical inputs always produce an
// identical Schema; the only failure propagated is a duplicate parameter
// name, every other gap degrades (unknown types become object, missing docs
// become absent descriptions).
func buildSchema(name string, sig Signature, cfg effectiveConfig) (*Schema, error) {
	s := &Schema{
		name:   name,
		byName: make(map[string]*ParameterSchema),
	}
	desc, paramDocs := cfg.docStyle.Parse(sig.Doc)
	if !cfg.ignoreFunctionDescription && desc != "" {
		s.description = desc
		s.hasDescription = true
	}
	if cfg.ignoreAllParameters {
		return s, nil
	}
	for _, p := range sig.Params {
		if _, skip := cfg.ignoreParameters[p.Name]; skip {
			continue
		}
		if _, dup := s.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate parameter %q in %s", p.Name, name)
		}
		ps := &ParameterSchema{
			Name:       p.Name,
			Type:       p.Type,
			Default:    p.Default,
			HasDefault: p.HasDefault,
		}
		if d, ok := paramDocs[p.Name]; ok && !cfg.ignoreParameterDescriptions {
			ps.Description = d
			ps.HasDescription = true
		}
		s.params = append(s.params, ps)
		s.byName[p.Name] = ps
	}
	return s, nil
}

// Name returns the callable's name.
func (s *Schema) Name() string { return s.name }

// Description returns the overall description and whether it is set.
func (s *Schema) Description() (string, bool) { return s.description, s.hasDescription }

// Parameters returns the retained parameters in declaration order.
func (s *Schema) Parameters() []*ParameterSchema {
	return append([]*ParameterSchema(nil), s.params...)
}

// Parameter returns the retained parameter with the given name.
func (s *Schema) Parameter(name string) (*ParameterSchema, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// Required returns the names of retained parameters without a default value,
// in declaration order.
func (s *Schema) Required() []string {
	var req []string
	for _, p := range s.params {
		if p.Required() {
			req = append(req, p.Name)
		}
	}
	return req
}

// AddEnum attaches an enum binding to a parameter that has none, or extends
// an existing one. Appending rejects names already present
// (ErrDuplicateEnumName) and leaves the existing binding unchanged.
func (s *Schema) AddEnum(param string, members ...EnumMember) error {
	p, ok := s.byName[param]
	if !ok {
		return fmt.Errorf("parameter %q: %w", param, ErrUnknownParameter)
	}
	if b := p.Enum(); b != nil {
		return b.Append(members...)
	}
	b, err := NewEnumBinding(members...)
	if err != nil {
		return err
	}
	p.Type = EnumType(b)
	return nil
}

// ToJSON serializes the schema into the selected target shape as a
// JSON-compatible nested map.
func (s *Schema) ToJSON(st SchemaType) map[string]any {
	fn := map[string]any{"name": s.name}
	if s.hasDescription {
		fn["description"] = s.description
	}
	params := s.parametersJSON()
	switch st {
	case SchemaTypeAnthropicClaude:
		fn["input_schema"] = params
		return fn
	case SchemaTypeOpenAITune:
		fn["parameters"] = params
		return fn
	default:
		fn["parameters"] = params
		return map[string]any{"type": "function", "function": fn}
	}
}

// parametersJSON returns the parameters block. Properties and required are
// always present, empty when every parameter is omitted.
func (s *Schema) parametersJSON() map[string]any {
	props := make(map[string]any, len(s.params))
	for _, p := range s.params {
		props[p.Name] = p.toJSON()
	}
	required := make([]any, 0, len(s.params))
	for _, name := range s.Required() {
		required = append(required, name)
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}
