// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package property implements the typed, hierarchical value containers that
// logic nodes expose as inputs and outputs.
package property

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/value"
)

var (
	ErrNotFound     = errors.New("property not found")
	ErrNotPrimitive = errors.New("property is not primitive")
	ErrReadOnly     = errors.New("property is read-only")
	ErrLinked       = errors.New("property is driven by a link")
	ErrKindMismatch = errors.New("value kind does not match property kind")
)

// Owner is the node a property tree belongs to.
type Owner interface {
	NodeID() handle.NodeID
	MarkDirty()
}

// LinkView answers whether a property currently has an incoming link.
type LinkView interface {
	HasIncoming(id handle.PropertyID) bool
}

// Property is one node of a property tree. Primitive properties hold a
// value; struct and array properties hold ordered children.
type Property struct {
	id       handle.PropertyID
	name     string
	kind     value.Kind
	role     Role
	parent   *Property
	children []*Property
	owner    Owner
	links    LinkView

	val     value.Value
	changed bool
}

// NewTree builds a property tree of type t. Every property in the tree
// shares role, owner and link view, and draws its ID from seq.
func NewTree(t Type, role Role, owner Owner, links LinkView, seq *handle.Sequence) (*Property, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return build(t, role, owner, links, seq, nil), nil
}

func build(t Type, role Role, owner Owner, links LinkView, seq *handle.Sequence, parent *Property) *Property {
	p := &Property{
		id:     handle.PropertyID(seq.Next()),
		name:   t.Name,
		kind:   t.Kind,
		role:   role,
		parent: parent,
		owner:  owner,
		links:  links,
	}
	switch t.Kind {
	case value.Struct:
		p.children = make([]*Property, 0, len(t.Fields))
		for _, f := range t.Fields {
			p.children = append(p.children, build(f, role, owner, links, seq, p))
		}
	case value.Array:
		p.children = make([]*Property, 0, t.Len)
		for range t.Len {
			p.children = append(p.children, build(*t.Elem, role, owner, links, seq, p))
		}
	default:
		p.val = value.Zero(t.Kind)
	}
	return p
}

func (p *Property) ID() handle.PropertyID { return p.id }
func (p *Property) Name() string          { return p.name }
func (p *Property) Kind() value.Kind      { return p.kind }
func (p *Property) Role() Role            { return p.role }
func (p *Property) Parent() *Property     { return p.parent }
func (p *Property) Owner() Owner          { return p.owner }
func (p *Property) ChildCount() int       { return len(p.children) }

// IsPrimitive reports whether p carries a value.
func (p *Property) IsPrimitive() bool { return p.kind.IsPrimitive() }

// Child returns the i-th child.
func (p *Property) Child(i int) (*Property, error) {
	if i < 0 || i >= len(p.children) {
		return nil, fmt.Errorf("%s[%d]: %w", p.Path(), i, ErrNotFound)
	}
	return p.children[i], nil
}

// ChildByName returns the struct field called name.
func (p *Property) ChildByName(name string) (*Property, error) {
	if p.kind == value.Struct {
		for _, c := range p.children {
			if c.name == name {
				return c, nil
			}
		}
	}
	return nil, fmt.Errorf("%s.%s: %w", p.Path(), name, ErrNotFound)
}

// Children returns the children in declaration order.
func (p *Property) Children() []*Property {
	out := make([]*Property, len(p.children))
	copy(out, p.children)
	return out
}

// Value returns the current value of a primitive property.
func (p *Property) Value() (value.Value, error) {
	if !p.IsPrimitive() {
		return value.Value{}, fmt.Errorf("%s: %w", p.Path(), ErrNotPrimitive)
	}
	return p.val, nil
}

// Set is the host write path. It fails on structural properties, on output
// roles and while an incoming link drives the property. It reports whether
// the stored value changed; a change marks the owner dirty.
func (p *Property) Set(v value.Value) (bool, error) {
	if !p.IsPrimitive() {
		return false, fmt.Errorf("%s: %w", p.Path(), ErrNotPrimitive)
	}
	if !p.role.HostWritable() {
		return false, fmt.Errorf("%s (%s): %w", p.Path(), p.role, ErrReadOnly)
	}
	if p.links != nil && p.links.HasIncoming(p.id) {
		return false, fmt.Errorf("%s: %w", p.Path(), ErrLinked)
	}
	changed, err := p.Write(v)
	if err != nil {
		return false, err
	}
	if changed && p.owner != nil {
		p.owner.MarkDirty()
	}
	return changed, nil
}

// Write stores v without role or link checks. It is used by node behaviors
// and by link propagation, and leaves the owner's dirty flag alone.
func (p *Property) Write(v value.Value) (bool, error) {
	if !p.IsPrimitive() {
		return false, fmt.Errorf("%s: %w", p.Path(), ErrNotPrimitive)
	}
	if v.Kind() != p.kind {
		return false, fmt.Errorf("%s: %w: want %s, got %s", p.Path(), ErrKindMismatch, p.kind, v.Kind())
	}
	if p.val.Equal(v) {
		return false, nil
	}
	p.val = v
	p.changed = true
	return true, nil
}

// Changed reports whether the value changed since the flag was last cleared.
func (p *Property) Changed() bool { return p.changed }

// MarkChanged forces the next propagation pass to treat p as changed.
func (p *Property) MarkChanged() { p.changed = true }

// ClearChanged resets the change flag.
func (p *Property) ClearChanged() { p.changed = false }

// Leaves returns the primitive properties of the tree rooted at p in
// depth-first declaration order.
func (p *Property) Leaves() []*Property {
	var out []*Property
	p.Walk(func(c *Property) {
		if c.IsPrimitive() {
			out = append(out, c)
		}
	})
	return out
}

// Walk visits p and its descendants depth first, parents before children.
func (p *Property) Walk(fn func(*Property)) {
	fn(p)
	for _, c := range p.children {
		c.Walk(fn)
	}
}

// Path renders the location of p inside its tree, e.g. "inputs.items[2].x".
func (p *Property) Path() string {
	var parts []string
	for cur := p; cur != nil; cur = cur.parent {
		if cur.parent != nil && cur.parent.kind == value.Array {
			parts = append(parts, fmt.Sprintf("[%d]", cur.parent.indexOf(cur)))
			continue
		}
		parts = append(parts, cur.name)
	}

	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]
		if sb.Len() > 0 && !strings.HasPrefix(part, "[") {
			sb.WriteByte('.')
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func (p *Property) indexOf(child *Property) int {
	for i, c := range p.children {
		if c == child {
			return i
		}
	}
	return -1
}
