// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package propaddr

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by every parse error.
var ErrInvalid = errors.New("invalid property address")

// Tree names the property tree an address points into.
type Tree string

const (
	Inputs  Tree = "inputs"
	Outputs Tree = "outputs"
)

// Segment is one step below the tree root: a field name followed by zero
// or more array indices.
type Segment struct {
	Name    string
	Indices []int
}

// Address is the structured form of a property address.
type Address struct {
	Node string
	Tree Tree
	// Indices applied to the tree root itself, as in "n.inputs[0]".
	RootIndices []int
	Path        []Segment
}

// String renders a in canonical form.
func (a Address) String() string {
	var sb strings.Builder
	sb.WriteString(a.Node)
	sb.WriteByte('.')
	sb.WriteString(string(a.Tree))
	writeIndices(&sb, a.RootIndices)
	for _, seg := range a.Path {
		sb.WriteByte('.')
		sb.WriteString(seg.Name)
		writeIndices(&sb, seg.Indices)
	}
	return sb.String()
}

// Equal reports whether a and other name the same property.
func (a Address) Equal(other Address) bool {
	return a.Node == other.Node &&
		a.Tree == other.Tree &&
		slices.Equal(a.RootIndices, other.RootIndices) &&
		slices.EqualFunc(a.Path, other.Path, func(x, y Segment) bool {
			return x.Name == y.Name && slices.Equal(x.Indices, y.Indices)
		})
}

func writeIndices(sb *strings.Builder, indices []int) {
	for _, i := range indices {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
	}
}
