// Package toolschema derives JSON-serializable function-calling schemas from
// callables: signature, type descriptors, default values, and a structured
// documentation comment are reconciled into one schema object ready to hand
// to an LLM tool-calling interface.
//
// # Overview
//
// Go reflection cannot recover parameter names, defaults, or doc comments at
// runtime, so the decoration boundary takes an explicit Signature describing
// them. Everything past that boundary is a pure transformation:
//
//	Signature + doc text + config → Schema → ToolEnabled → ToJSON / Call
//
// # Key concepts
//
//   - Type descriptors: a Type wraps a reflect.Type or an enum binding;
//     mapping to schema tags never fails — unknown types degrade to object.
//   - Enum round-tripping: an EnumBinding exposes member names in the schema
//     and decodes names back to underlying values at call time.
//   - Configuration precedence: per-callable options win over the global
//     default config, which is read once at decoration time.
//
// # Example
//
//	enum, _ := toolschema.EnumNames("YES", "NO")
//	tool, err := toolschema.EnableTool("greet",
//	    func(args map[string]any) (any, error) {
//	        return fmt.Sprintf("%v/%v", args["a"], args["b"]), nil
//	    },
//	    toolschema.Signature{
//	        Doc: "Say hello.\n:param a: Repeat count\n:param b: Reply choice",
//	        Params: []toolschema.Param{
//	            {Name: "a", Type: toolschema.TypeOf[int]()},
//	            {Name: "b", Type: toolschema.EnumType(enum), Default: "YES", HasDefault: true},
//	        },
//	    },
//	)
//	if err != nil { ... }
//	schema := tool.ToJSON(toolschema.SchemaTypeOpenAIAPI)
//
// See EnableTool, Schema, EnumBinding, and Registry for the core surface.
package toolschema
