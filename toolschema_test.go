package toolschema

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// snapshotAndRestoreDefaultConfig backs up the global default configuration
// and registers t.Cleanup to restore it. Use in tests that call
// SetDefaultConfig so they do not affect other tests. Do not run such tests
// with t.Parallel().
func snapshotAndRestoreDefaultConfig(t *testing.T) {
	t.Helper()
	before := DefaultConfig()
	t.Cleanup(func() { SetDefaultConfig(before) })
}

// newHelloTool builds the canonical callable f(a int, b string = "Hello").
func newHelloTool(t *testing.T, opts ...Option) *ToolEnabled {
	t.Helper()
	tool, err := EnableTool("f",
		func(args map[string]any) (any, error) { return args, nil },
		Signature{
			Doc: "Desc.\n:param a: A\n:param b: B",
			Params: []Param{
				{Name: "a", Type: TypeOf[int]()},
				{Name: "b", Type: TypeOf[string](), Default: "Hello", HasDefault: true},
			},
		},
		opts...,
	)
	require.NoError(t, err)
	return tool
}

func TestEnableTool_DefaultSchema(t *testing.T) {
	tool := newHelloTool(t)
	data, err := json.Marshal(tool.ToJSON(SchemaTypeOpenAIAPI))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "function",
		"function": {
			"name": "f",
			"description": "Desc.",
			"parameters": {
				"type": "object",
				"properties": {
					"a": {"type": "integer", "description": "A"},
					"b": {"type": "string", "description": "B", "default": "Hello"}
				},
				"required": ["a"]
			}
		}
	}`, string(data))
}

func TestEnableTool_IgnoreParameters(t *testing.T) {
	tool := newHelloTool(t, WithIgnoreParameters("b"))
	schema := tool.ToJSON(SchemaTypeOpenAIAPI)
	fn := schema["function"].(map[string]any)
	props := fn["parameters"].(map[string]any)["properties"].(map[string]any)
	assert.Contains(t, props, "a")
	assert.NotContains(t, props, "b")
}

func TestEnableTool_IgnoreAllParameters(t *testing.T) {
	tool := newHelloTool(t, WithIgnoreAllParameters())
	data, err := json.Marshal(tool.ToJSON(SchemaTypeOpenAIAPI))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "function",
		"function": {
			"name": "f",
			"description": "Desc.",
			"parameters": {"type": "object", "properties": {}, "required": []}
		}
	}`, string(data))
}

func TestEnableTool_BuildIsDeterministic(t *testing.T) {
	a := newHelloTool(t).ToJSON(SchemaTypeOpenAIAPI)
	b := newHelloTool(t).ToJSON(SchemaTypeOpenAIAPI)
	aJSON, err := json.Marshal(a)
	require.NoError(t, err)
	bJSON, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(aJSON), string(bJSON))
}

func TestEnableTool_DuplicateParameter(t *testing.T) {
	_, err := EnableTool("dup",
		func(args map[string]any) (any, error) { return nil, nil },
		Signature{Params: []Param{
			{Name: "a", Type: TypeOf[int]()},
			{Name: "a", Type: TypeOf[string]()},
		}},
	)
	require.Error(t, err)
}

func ExampleEnableTool() {
	tool, err := EnableTool("greet",
		func(args map[string]any) (any, error) {
			return fmt.Sprintf("hello %v", args["name"]), nil
		},
		Signature{
			Doc: "Greet someone.\n:param name: Who to greet",
			Params: []Param{
				{Name: "name", Type: TypeOf[string]()},
			},
		},
	)
	if err != nil {
		return
	}
	data, _ := json.Marshal(tool.ToJSON(SchemaTypeOpenAIAPI))
	fmt.Println(string(data))
	// Output:
	// {"function":{"description":"Greet someone.","name":"greet","parameters":{"properties":{"name":{"description":"Who to greet","type":"string"}},"required":["name"],"type":"object"}},"type":"function"}
}
