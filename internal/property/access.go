// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the typed accessors node behaviors use to read their
// inputs and write their outputs, plus conversion of whole trees to cty.

package property

import (
	"fmt"

	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// Get reads the primitive field name of root as a T.
func Get[T value.Primitive](root *Property, name string) (T, error) {
	var zero T
	p, err := root.ChildByName(name)
	if err != nil {
		return zero, err
	}
	v, err := p.Value()
	if err != nil {
		return zero, err
	}
	x, ok := value.As[T](v)
	if !ok {
		return zero, fmt.Errorf("%s: %w: stored %s", p.Path(), ErrKindMismatch, v.Kind())
	}
	return x, nil
}

// Put writes x into the primitive field name of root through the
// behavior write path.
func Put[T value.Primitive](root *Property, name string, x T) (bool, error) {
	p, err := root.ChildByName(name)
	if err != nil {
		return false, err
	}
	return p.Write(value.Of(x))
}

// Cty converts the tree rooted at p: structs become objects, arrays become
// tuples and primitives use value.ToCty.
func (p *Property) Cty() cty.Value {
	switch p.kind {
	case value.Struct:
		if len(p.children) == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, len(p.children))
		for _, c := range p.children {
			attrs[c.name] = c.Cty()
		}
		return cty.ObjectVal(attrs)
	case value.Array:
		elems := make([]cty.Value, len(p.children))
		for i, c := range p.children {
			elems[i] = c.Cty()
		}
		return cty.TupleVal(elems)
	default:
		return p.val.ToCty()
	}
}

// Assign sets the tree rooted at p from a cty value shaped like it, using
// the host write path for every leaf. Object attributes not present in v
// are left untouched.
func (p *Property) Assign(v cty.Value) error {
	switch p.kind {
	case value.Struct:
		if v.IsNull() || !v.Type().IsObjectType() {
			return fmt.Errorf("%s: expected an object, got %s", p.Path(), v.Type().FriendlyName())
		}
		for name, attr := range v.AsValueMap() {
			c, err := p.ChildByName(name)
			if err != nil {
				return err
			}
			if err := c.Assign(attr); err != nil {
				return err
			}
		}
		return nil
	case value.Array:
		if v.IsNull() || !(v.Type().IsTupleType() || v.Type().IsListType()) {
			return fmt.Errorf("%s: expected a tuple, got %s", p.Path(), v.Type().FriendlyName())
		}
		if v.LengthInt() != len(p.children) {
			return fmt.Errorf("%s: expected %d elements, got %d", p.Path(), len(p.children), v.LengthInt())
		}
		for i, elem := range v.AsValueSlice() {
			if err := p.children[i].Assign(elem); err != nil {
				return err
			}
		}
		return nil
	default:
		val, err := value.FromCty(p.kind, v)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Path(), err)
		}
		_, err = p.Set(val)
		return err
	}
}

// Type rebuilds the descriptor of the tree rooted at p.
func (p *Property) Type() Type {
	switch p.kind {
	case value.Struct:
		var fields []Type
		for _, c := range p.children {
			fields = append(fields, c.Type())
		}
		return Struct(p.name, fields...)
	case value.Array:
		return ArrayOf(p.name, len(p.children), p.children[0].Type())
	default:
		return Prim(p.name, p.kind)
	}
}
