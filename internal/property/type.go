// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package property

import (
	"fmt"

	"github.com/specialistvlad/scenelogic/internal/value"
)

// Type describes the shape of a property tree. Primitive types have no
// Fields and no Elem. Struct types list named Fields; Array types repeat
// Elem Len times.
type Type struct {
	Name   string
	Kind   value.Kind
	Fields []Type
	Elem   *Type
	Len    int
}

// Prim describes a named primitive property.
func Prim(name string, k value.Kind) Type {
	return Type{Name: name, Kind: k}
}

// Struct describes a named struct property with the given fields.
func Struct(name string, fields ...Type) Type {
	return Type{Name: name, Kind: value.Struct, Fields: fields}
}

// ArrayOf describes a named array property of n elements. Element names are
// ignored; elements are addressed by index.
func ArrayOf(name string, n int, elem Type) Type {
	elem.Name = ""
	return Type{Name: name, Kind: value.Array, Elem: &elem, Len: n}
}

// Validate checks that t is well formed: struct fields are named and
// unique, arrays have a positive length and an element type.
func (t Type) Validate() error {
	switch {
	case t.Kind.IsPrimitive():
		if len(t.Fields) > 0 || t.Elem != nil {
			return fmt.Errorf("primitive %q cannot have children", t.Name)
		}
		return nil
	case t.Kind == value.Struct:
		seen := make(map[string]struct{}, len(t.Fields))
		for _, f := range t.Fields {
			if f.Name == "" {
				return fmt.Errorf("struct %q has an unnamed field", t.Name)
			}
			if _, dup := seen[f.Name]; dup {
				return fmt.Errorf("struct %q declares field %q twice", t.Name, f.Name)
			}
			seen[f.Name] = struct{}{}
			if err := f.Validate(); err != nil {
				return err
			}
		}
		return nil
	case t.Kind == value.Array:
		if t.Elem == nil {
			return fmt.Errorf("array %q has no element type", t.Name)
		}
		if t.Len <= 0 {
			return fmt.Errorf("array %q must have a positive length, got %d", t.Name, t.Len)
		}
		return t.Elem.Validate()
	}
	return fmt.Errorf("property %q has invalid kind", t.Name)
}

// Field returns the struct field with the given name.
func (t Type) Field(name string) (Type, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Type{}, false
}
