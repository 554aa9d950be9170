package toolschema

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchema lazily compiles a Schema's parameters block into a
// validator and caches it until the schema changes (AddEnum).
type compiledSchema struct {
	mu     sync.Mutex
	schema *jsonschema.Schema
}

func (c *compiledSchema) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schema = nil
}

func (c *compiledSchema) get(s *Schema) (*jsonschema.Schema, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.schema != nil {
		return c.schema, nil
	}
	compiled, err := compileParameters(s)
	if err != nil {
		return nil, err
	}
	c.schema = compiled
	return compiled, nil
}

// compileParameters compiles the parameters block into a validator.
func compileParameters(s *Schema) (*jsonschema.Schema, error) {
	data, err := json.Marshal(s.parametersJSON())
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("parameters.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("parameters.json")
}

// Call is one tool-call payload as produced by an LLM: the callable's name
// plus its arguments, either a JSON object or a JSON string containing one.
type Call struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Parse resolves a tool-call payload against the registry: finds the
// callable by name, decodes the arguments, validates them against the built
// parameters schema, and filters unknown names. Validation failures are
// ClientError wrapping ErrValidation so the message can go back to the LLM
// for self-correction. The returned arguments are ready for ToolEnabled.Call.
func (r *Registry) Parse(call Call, opts ...ParseOption) (*ToolEnabled, map[string]any, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}
	if call.Name == "" {
		return nil, nil, &ClientError{Reason: "tool call has no name"}
	}
	tool, err := r.Find(call.Name)
	if err != nil {
		return nil, nil, err
	}
	args, err := decodeArguments(call.Arguments)
	if err != nil {
		return nil, nil, err
	}
	known := make(map[string]any, len(args))
	var extras []string
	for key, val := range args {
		if _, ok := tool.schema.Parameter(key); ok {
			known[key] = val
		} else {
			extras = append(extras, key)
		}
	}
	if o.rejectUnknown && len(extras) > 0 {
		return nil, nil, &ClientError{
			Reason: "unexpected argument(s): " + strings.Join(extras, ", "),
			Err:    ErrValidation,
		}
	}
	if !o.skipValidation {
		compiled, err := tool.compiled.get(tool.schema)
		if err != nil {
			return nil, nil, err
		}
		if err := compiled.Validate(toJSONValue(known)); err != nil {
			return nil, nil, &ClientError{Reason: err.Error(), Err: ErrValidation}
		}
	}
	return tool, known, nil
}

// decodeArguments accepts a JSON object or a JSON string wrapping one.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, &ClientError{Reason: "tool call has no arguments"}
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err == nil {
		if args == nil {
			return nil, &ClientError{Reason: "tool call has no arguments"}
		}
		return args, nil
	}
	var inner string
	if err := json.Unmarshal(raw, &inner); err != nil {
		return nil, &ClientError{Reason: "arguments are neither an object nor a JSON string"}
	}
	if err := json.Unmarshal([]byte(inner), &args); err != nil {
		return nil, wrapJSONParseError(err)
	}
	if args == nil {
		return nil, &ClientError{Reason: "arguments are not an object"}
	}
	return args, nil
}

// toJSONValue normalizes a Go value to the JSON-native shapes the validator
// expects (map[string]any, []any, float64, string, bool, nil).
func toJSONValue(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}
