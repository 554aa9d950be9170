package toolschema

// toolOptions hold the optional decoration settings: a tag list plus a
// per-callable configuration override.
type toolOptions struct {
	tags []string
	cfg  Config
}

// Option configures decoration (e.g. WithTags, WithIgnoreParameters).
type Option func(*toolOptions)

// WithTags adds tags to the callable (metadata for discovery). Order is
// irrelevant and duplicates are ignored.
func WithTags(tags ...string) Option {
	return func(o *toolOptions) {
		o.tags = append(o.tags, tags...)
	}
}

// WithIgnoreParameters excludes the named parameters from the schema.
func WithIgnoreParameters(names ...string) Option {
	return func(o *toolOptions) {
		o.cfg.IgnoreParameters = append(o.cfg.IgnoreParameters, names...)
	}
}

// WithIgnoreAllParameters omits the parameters section entirely.
func WithIgnoreAllParameters() Option {
	return func(o *toolOptions) {
		o.cfg.IgnoreAllParameters = Ptr(true)
	}
}

// WithIgnoreFunctionDescription omits the overall description.
func WithIgnoreFunctionDescription() Option {
	return func(o *toolOptions) {
		o.cfg.IgnoreFunctionDescription = Ptr(true)
	}
}

// WithIgnoreParameterDescriptions omits per-parameter description text.
func WithIgnoreParameterDescriptions() Option {
	return func(o *toolOptions) {
		o.cfg.IgnoreParameterDescriptions = Ptr(true)
	}
}

// WithSchemaType sets the default export shape for this callable.
func WithSchemaType(st SchemaType) Option {
	return func(o *toolOptions) {
		o.cfg.SchemaType = Ptr(st)
	}
}

// WithDocStyle sets the documentation marker grammar for this callable.
func WithDocStyle(style DocStyle) Option {
	return func(o *toolOptions) {
		o.cfg.DocStyle = style
	}
}

// WithConfig merges a whole per-callable configuration override. Fields set
// by earlier options are overwritten only where cfg sets them.
func WithConfig(cfg Config) Option {
	return func(o *toolOptions) {
		if cfg.IgnoreParameters != nil {
			o.cfg.IgnoreParameters = cfg.IgnoreParameters
		}
		if cfg.IgnoreAllParameters != nil {
			o.cfg.IgnoreAllParameters = cfg.IgnoreAllParameters
		}
		if cfg.IgnoreFunctionDescription != nil {
			o.cfg.IgnoreFunctionDescription = cfg.IgnoreFunctionDescription
		}
		if cfg.IgnoreParameterDescriptions != nil {
			o.cfg.IgnoreParameterDescriptions = cfg.IgnoreParameterDescriptions
		}
		if cfg.SchemaType != nil {
			o.cfg.SchemaType = cfg.SchemaType
		}
		if cfg.DocStyle != nil {
			o.cfg.DocStyle = cfg.DocStyle
		}
	}
}

// ParseOption configures Registry.Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	rejectUnknown  bool
	skipValidation bool
}

// WithRejectUnknownArguments makes Parse fail on argument names the schema
// does not know, instead of silently dropping them.
func WithRejectUnknownArguments() ParseOption {
	return func(o *parseOptions) {
		o.rejectUnknown = true
	}
}

// WithoutValidation disables schema validation in Parse; arguments are only
// decoded and filtered to known names.
func WithoutValidation() ParseOption {
	return func(o *parseOptions) {
		o.skipValidation = true
	}
}
