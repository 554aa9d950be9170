package toolschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newYesNoTool wraps a callable recording its received arguments, with
// parameter b bound to the enum {YES: 1, NO: 0}.
func newYesNoTool(t *testing.T, opts ...Option) (*ToolEnabled, *map[string]any) {
	t.Helper()
	enum, err := NewEnumBinding(
		EnumMember{Name: "YES", Value: 1},
		EnumMember{Name: "NO", Value: 0},
	)
	require.NoError(t, err)
	var received map[string]any
	tool, err := EnableTool("f",
		func(args map[string]any) (any, error) {
			received = args
			return args["b"], nil
		},
		Signature{Params: []Param{
			{Name: "a", Type: TypeOf[int]()},
			{Name: "b", Type: EnumType(enum)},
		}},
		opts...,
	)
	require.NoError(t, err)
	return tool, &received
}

func TestToolEnabled_Call_DecodesEnumName(t *testing.T) {
	tool, received := newYesNoTool(t)
	res, err := tool.Call(map[string]any{"a": 1, "b": "YES"})
	require.NoError(t, err)
	assert.Equal(t, 1, res)
	assert.Equal(t, 1, (*received)["b"], "invoking with the name must equal invoking with the underlying value")
	assert.Equal(t, 1, (*received)["a"])
}

func TestToolEnabled_Call_PassesUnderlyingValue(t *testing.T) {
	tool, received := newYesNoTool(t)
	_, err := tool.Call(map[string]any{"a": 1, "b": 0})
	require.NoError(t, err)
	assert.Equal(t, 0, (*received)["b"])
}

func TestToolEnabled_Call_PassesOtherShapesUnchanged(t *testing.T) {
	tool, received := newYesNoTool(t)
	_, err := tool.Call(map[string]any{"a": "not an int", "b": 3.5})
	require.NoError(t, err, "the wrapper never rejects or type-checks non-enum arguments")
	assert.Equal(t, "not an int", (*received)["a"])
	assert.Equal(t, 3.5, (*received)["b"])
}

func TestToolEnabled_Call_UnknownNameAborts(t *testing.T) {
	tool, received := newYesNoTool(t)
	_, err := tool.Call(map[string]any{"b": "MAYBE"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEnumName)
	assert.Nil(t, *received, "the callable must not run on a bad enum name")
}

func TestToolEnabled_Call_DoesNotMutateInput(t *testing.T) {
	tool, _ := newYesNoTool(t)
	args := map[string]any{"b": "YES"}
	_, err := tool.Call(args)
	require.NoError(t, err)
	assert.Equal(t, "YES", args["b"])
}

func TestToolEnabled_AddEnum(t *testing.T) {
	tool := newHelloTool(t)
	require.NoError(t, tool.AddEnumNames("b", "Hello", "Goodbye"))
	p, ok := tool.Schema().Parameter("b")
	require.True(t, ok)
	require.NotNil(t, p.Enum())
	assert.Equal(t, []string{"Hello", "Goodbye"}, p.Enum().Names())
}

func TestToolEnabled_AddEnum_DuplicateLeavesBindingUnchanged(t *testing.T) {
	tool, _ := newYesNoTool(t)
	err := tool.AddEnum("b", EnumMember{Name: "YES", Value: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEnumName)
	p, _ := tool.Schema().Parameter("b")
	assert.Equal(t, []string{"YES", "NO"}, p.Enum().Names())
	v, err := p.Enum().Decode("YES")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestToolEnabled_Tags(t *testing.T) {
	tool := newHelloTool(t, WithTags("b", "a", "b"))
	assert.Equal(t, []string{"a", "b"}, tool.Tags(), "tags are deduplicated and sorted")
	assert.True(t, tool.HasTag("a"))
	assert.False(t, tool.HasTag("c"))
}

func TestToolEnabled_ToJSONDefault(t *testing.T) {
	tool := newHelloTool(t, WithSchemaType(SchemaTypeAnthropicClaude))
	out := tool.ToJSONDefault()
	assert.Contains(t, out, "input_schema")
	// An explicit shape still overrides the decoration-time default.
	api := tool.ToJSON(SchemaTypeOpenAIAPI)
	assert.Equal(t, "function", api["type"])
}

func TestToolEnabled_CallerErrorPropagates(t *testing.T) {
	wantErr := errors.New("boom")
	tool, err := EnableTool("failing",
		func(map[string]any) (any, error) { return nil, wantErr },
		Signature{},
	)
	require.NoError(t, err)
	_, err = tool.Call(map[string]any{})
	assert.ErrorIs(t, err, wantErr)
}

func TestToolEnabled_NameDescription(t *testing.T) {
	tool := newHelloTool(t)
	assert.Equal(t, "f", tool.Name())
	assert.Equal(t, "Desc.", tool.Description())
}
