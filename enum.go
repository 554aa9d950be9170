package toolschema

import (
	"fmt"
	"reflect"
)

// EnumMember is one (name, value) pair of an EnumBinding. Name is what the
// schema exposes; Value is the underlying object passed to the wrapped
// callable.
type EnumMember struct {
	Name  string
	Value any
}

// EnumBinding is the ordered name↔value table for an enumerated parameter.
// Names are unique; order is declaration order. Bindings are single-writer
// (Append during setup), many-reader (Decode/Encode during calls); concurrent
// mutation requires external synchronization.
type EnumBinding struct {
	members []EnumMember
	index   map[string]int
}

// NewEnumBinding builds a binding from members in declaration order.
// A duplicate name fails with ErrEnumBindingConflict.
func NewEnumBinding(members ...EnumMember) (*EnumBinding, error) {
	b := &EnumBinding{index: make(map[string]int, len(members))}
	for _, m := range members {
		if _, ok := b.index[m.Name]; ok {
			return nil, fmt.Errorf("enum member %q: %w", m.Name, ErrEnumBindingConflict)
		}
		b.index[m.Name] = len(b.members)
		b.members = append(b.members, m)
	}
	return b, nil
}

// EnumNames builds a binding where each value is its own name (closed set of
// literal strings). A duplicate name fails with ErrEnumBindingConflict.
func EnumNames(names ...string) (*EnumBinding, error) {
	members := make([]EnumMember, len(names))
	for i, n := range names {
		members[i] = EnumMember{Name: n, Value: n}
	}
	return NewEnumBinding(members...)
}

// Len returns the number of members.
func (b *EnumBinding) Len() int { return len(b.members) }

// Names returns the member names in declaration order.
func (b *EnumBinding) Names() []string {
	names := make([]string, len(b.members))
	for i, m := range b.members {
		names[i] = m.Name
	}
	return names
}

// Members returns a copy of the members in declaration order.
func (b *EnumBinding) Members() []EnumMember {
	return append([]EnumMember(nil), b.members...)
}

// Append extends the binding with additional members. A name already
// present, or repeated within the batch, fails with ErrDuplicateEnumName and
// leaves the binding unchanged.
func (b *EnumBinding) Append(members ...EnumMember) error {
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, ok := b.index[m.Name]; ok {
			return fmt.Errorf("enum member %q: %w", m.Name, ErrDuplicateEnumName)
		}
		if _, ok := seen[m.Name]; ok {
			return fmt.Errorf("enum member %q: %w", m.Name, ErrDuplicateEnumName)
		}
		seen[m.Name] = struct{}{}
	}
	for _, m := range members {
		b.index[m.Name] = len(b.members)
		b.members = append(b.members, m)
	}
	return nil
}

// Decode returns the underlying value for name, failing with
// ErrUnknownEnumName if absent.
func (b *EnumBinding) Decode(name string) (any, error) {
	i, ok := b.index[name]
	if !ok {
		return nil, fmt.Errorf("enum name %q: %w", name, ErrUnknownEnumName)
	}
	return b.members[i].Value, nil
}

// Encode returns the name for an underlying value. Used for schema export
// and for encoding enum-typed defaults; not required at call time.
func (b *EnumBinding) Encode(value any) (string, bool) {
	for _, m := range b.members {
		// DeepEqual: underlying values may be slices or structs.
		if reflect.DeepEqual(m.Value, value) {
			return m.Name, true
		}
	}
	return "", false
}

// isValue reports whether value equals one of the underlying values.
func (b *EnumBinding) isValue(value any) bool {
	_, ok := b.Encode(value)
	return ok
}
