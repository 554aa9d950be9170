package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolschema/toolschema"
)

func TestNewSampleTool(t *testing.T) {
	tool, err := NewSampleTool()
	require.NoError(t, err)
	data, err := json.Marshal(tool.ToJSON(toolschema.SchemaTypeOpenAIAPI))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "function",
		"function": {
			"name": "function",
			"description": "This is a test function.",
			"parameters": {
				"type": "object",
				"properties": {
					"a": {"type": "integer", "description": "This is a parameter"},
					"b": {"type": "string", "description": "This is another parameter", "default": "Hello"},
					"c": {"type": "boolean", "description": "This is a boolean parameter", "default": false},
					"d": {
						"type": "array",
						"items": {"type": "integer"},
						"description": "This is a list parameter",
						"default": [1, 2, 3]
					}
				},
				"required": ["a"]
			}
		}
	}`, string(data))
}

func TestNewEnumTool_Invoke(t *testing.T) {
	tool, err := NewEnumTool()
	require.NoError(t, err)
	res, err := tool.Call(map[string]any{"a": 1, "b": "YES"})
	require.NoError(t, err)
	args, ok := res.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, args["b"])
}

func TestNewRegistry(t *testing.T) {
	sample, err := NewSampleTool()
	require.NoError(t, err)
	reg := NewRegistry(sample)
	found, err := reg.Find("function")
	require.NoError(t, err)
	assert.Same(t, sample, found)
}
