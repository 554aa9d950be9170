// Package testutil provides sample decorated callables for toolschema tests.
package testutil

import (
	"fmt"

	"github.com/toolschema/toolschema"
)

// Greeting is the doc comment used by the sample callables.
const Greeting = `This is a test function.

:param a: This is a parameter;
:param b: This is another parameter;
:param c: This is a boolean parameter;
:param d: This is a list parameter;
`

// NewSampleTool returns a decorated callable with one of each primitive
// shape: required int, defaulted string, defaulted bool, defaulted int list.
func NewSampleTool(opts ...toolschema.Option) (*toolschema.ToolEnabled, error) {
	fn := func(args map[string]any) (any, error) {
		return fmt.Sprintf("%v|%v|%v|%v", args["a"], args["b"], args["c"], args["d"]), nil
	}
	sig := toolschema.Signature{
		Doc: Greeting,
		Params: []toolschema.Param{
			{Name: "a", Type: toolschema.TypeOf[int]()},
			{Name: "b", Type: toolschema.TypeOf[string](), Default: "Hello", HasDefault: true},
			{Name: "c", Type: toolschema.TypeOf[bool](), Default: false, HasDefault: true},
			{Name: "d", Type: toolschema.TypeOf[[]int](), Default: []any{1, 2, 3}, HasDefault: true},
		},
	}
	return toolschema.EnableTool("function", fn, sig, opts...)
}

// NewEnumTool returns a decorated callable whose second parameter is the
// enumerated type {YES: 1, NO: 0}.
func NewEnumTool(opts ...toolschema.Option) (*toolschema.ToolEnabled, error) {
	binding, err := toolschema.NewEnumBinding(
		toolschema.EnumMember{Name: "YES", Value: 1},
		toolschema.EnumMember{Name: "NO", Value: 0},
	)
	if err != nil {
		return nil, err
	}
	fn := func(args map[string]any) (any, error) {
		return args, nil
	}
	sig := toolschema.Signature{
		Doc: "Answer with a fixed choice.\n:param a: A number\n:param b: The choice",
		Params: []toolschema.Param{
			{Name: "a", Type: toolschema.TypeOf[int]()},
			{Name: "b", Type: toolschema.EnumType(binding)},
		},
	}
	return toolschema.EnableTool("enum_function", fn, sig, opts...)
}

// NewRegistry returns a Registry preloaded with the given callables.
func NewRegistry(tools ...*toolschema.ToolEnabled) *toolschema.Registry {
	reg := toolschema.NewRegistry()
	for _, t := range tools {
		reg.Register(t)
	}
	return reg
}
