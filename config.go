package toolschema

import "sync"

// Config holds schema-generation settings. Each field is independently
// optional: a nil field means "not set here", falling back to the global
// default and then to the documented zero defaults (booleans false, no
// ignored parameters, SchemaTypeOpenAIAPI, DocStyleRest). A per-callable
// Config always wins over the global one, field by field.
type Config struct {
	// IgnoreParameters lists parameter names excluded from the schema.
	IgnoreParameters []string
	// IgnoreAllParameters omits every parameter; IgnoreParameters and
	// IgnoreParameterDescriptions are moot when set.
	IgnoreAllParameters *bool
	// IgnoreFunctionDescription omits the overall description.
	IgnoreFunctionDescription *bool
	// IgnoreParameterDescriptions omits per-parameter description text but
	// keeps type, default, and enum.
	IgnoreParameterDescriptions *bool
	// SchemaType selects the default export shape for ToJSON.
	SchemaType *SchemaType
	// DocStyle selects the documentation marker grammar.
	DocStyle DocStyle
}

// effectiveConfig is a fully resolved configuration: no optional fields left.
type effectiveConfig struct {
	ignoreParameters            map[string]struct{}
	ignoreAllParameters         bool
	ignoreFunctionDescription   bool
	ignoreParameterDescriptions bool
	schemaType                  SchemaType
	docStyle                    DocStyle
}

// resolveConfig merges a per-callable override with the global configuration:
// for each field, the override value if set, else the global value, else the
// documented default. Pure; never fails.
func resolveConfig(global, override Config) effectiveConfig {
	eff := effectiveConfig{
		ignoreParameters: make(map[string]struct{}),
		schemaType:       SchemaTypeOpenAIAPI,
		docStyle:         DocStyleRest,
	}
	names := global.IgnoreParameters
	if override.IgnoreParameters != nil {
		names = override.IgnoreParameters
	}
	for _, n := range names {
		eff.ignoreParameters[n] = struct{}{}
	}
	eff.ignoreAllParameters = resolveBool(global.IgnoreAllParameters, override.IgnoreAllParameters)
	eff.ignoreFunctionDescription = resolveBool(global.IgnoreFunctionDescription, override.IgnoreFunctionDescription)
	eff.ignoreParameterDescriptions = resolveBool(global.IgnoreParameterDescriptions, override.IgnoreParameterDescriptions)
	if global.SchemaType != nil {
		eff.schemaType = *global.SchemaType
	}
	if override.SchemaType != nil {
		eff.schemaType = *override.SchemaType
	}
	if global.DocStyle != nil {
		eff.docStyle = global.DocStyle
	}
	if override.DocStyle != nil {
		eff.docStyle = override.DocStyle
	}
	return eff
}

func resolveBool(global, override *bool) bool {
	if override != nil {
		return *override
	}
	if global != nil {
		return *global
	}
	return false
}

// Process-wide default configuration, read once at decoration time. Mutating
// it later does not retroactively affect already-built schemas.
var (
	defaultConfigMu sync.RWMutex
	defaultConfig   Config
)

// SetDefaultConfig replaces the process-wide default configuration.
// Call it at application startup, before decorating callables.
func SetDefaultConfig(cfg Config) {
	defaultConfigMu.Lock()
	defer defaultConfigMu.Unlock()
	defaultConfig = cfg
}

// DefaultConfig returns the current process-wide default configuration.
func DefaultConfig() Config {
	defaultConfigMu.RLock()
	defer defaultConfigMu.RUnlock()
	return defaultConfig
}

// ResetDefaultConfig restores the documented defaults (everything unset).
func ResetDefaultConfig() {
	SetDefaultConfig(Config{})
}

// Ptr returns a pointer to v; a convenience for Config's optional fields.
func Ptr[T any](v T) *T { return &v }
