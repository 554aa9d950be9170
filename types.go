package toolschema

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Kind is the schema type tag a parameter maps to.
type Kind string

const (
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindEnum    Kind = "enum"
)

// Type describes a parameter's declared type. It is an explicit descriptor
// produced at the API boundary (TypeOf, TypeFor, Enum...) so the mapping
// logic itself is reflection-free and directly testable. The zero value
// describes an absent annotation and maps to "object".
type Type struct {
	rt   reflect.Type
	enum *EnumBinding
}

// TypeOf returns the descriptor for Go type T.
func TypeOf[T any]() Type {
	return Type{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeFor returns the descriptor for a reflected type. rt may be nil,
// describing an absent annotation.
func TypeFor(rt reflect.Type) Type {
	return Type{rt: rt}
}

// EnumType returns a descriptor for an enumerated parameter backed by the
// given binding. The binding is shared, not copied; later Append calls on it
// are visible through the descriptor.
func EnumType(binding *EnumBinding) Type {
	return Type{enum: binding}
}

// Enum returns a descriptor for an enumerated parameter from (name, value)
// members. Fails with ErrEnumBindingConflict on a duplicate name.
func Enum(members ...EnumMember) (Type, error) {
	b, err := NewEnumBinding(members...)
	if err != nil {
		return Type{}, err
	}
	return Type{enum: b}, nil
}

// Literal returns a descriptor for a closed set of literal values; each
// value is its own name. Fails with ErrEnumBindingConflict on duplicates.
func Literal(values ...string) (Type, error) {
	b, err := EnumNames(values...)
	if err != nil {
		return Type{}, err
	}
	return Type{enum: b}, nil
}

// Enum returns the enum binding for enumerated descriptors, nil otherwise.
func (t Type) Enum() *EnumBinding { return t.enum }

// Kind maps the descriptor to its schema type tag. Rules are applied in
// order: enumerated types map to enum; exact integer, float, string, and
// bool kinds map to their primitive tags; slices and arrays map to array;
// everything else, including an absent annotation, maps to object. It never
// fails, so the builder always produces an entry for every retained
// parameter even under incomplete type information.
func (t Type) Kind() Kind {
	if t.enum != nil {
		return KindEnum
	}
	if t.rt == nil {
		return KindObject
	}
	switch t.rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Slice, reflect.Array:
		return KindArray
	default:
		return KindObject
	}
}

// Elem returns the descriptor of the element type for array descriptors and
// false for everything else.
func (t Type) Elem() (Type, bool) {
	if t.rt == nil {
		return Type{}, false
	}
	switch t.rt.Kind() {
	case reflect.Slice, reflect.Array:
		return Type{rt: t.rt.Elem()}, true
	default:
		return Type{}, false
	}
}

// toJSON returns the type contribution to a property schema: "type" plus
// "items" for arrays and "enum" (member names) for enumerated descriptors.
// Struct-typed object parameters are expanded to a full nested object schema
// via reflection.
func (t Type) toJSON() map[string]any {
	switch t.Kind() {
	case KindEnum:
		// The schema exposes member names; the underlying values are only
		// used when delegating to the wrapped callable.
		names := t.enum.Names()
		enum := make([]any, len(names))
		for i, n := range names {
			enum[i] = n
		}
		return map[string]any{"type": string(KindString), "enum": enum}
	case KindArray:
		out := map[string]any{"type": string(KindArray)}
		if elem, ok := t.Elem(); ok {
			out["items"] = elem.toJSON()
		}
		return out
	case KindObject:
		if nested := reflectObjectSchema(t.rt); nested != nil {
			return nested
		}
		return map[string]any{"type": string(KindObject)}
	default:
		return map[string]any{"type": string(t.Kind())}
	}
}

// reflectObjectSchema produces an inline object schema for struct-typed
// parameters (pointer to struct included). Returns nil for non-struct types;
// those stay a plain "object".
func reflectObjectSchema(rt reflect.Type) map[string]any {
	if rt == nil {
		return nil
	}
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}
	r := &jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	s := r.ReflectFromType(rt)
	data, err := json.Marshal(s)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	// Keep the property inline: schema-document keys have no place inside
	// a parameters block.
	delete(out, "$schema")
	delete(out, "$id")
	delete(out, "title")
	return out
}
