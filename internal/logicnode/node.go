// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package logicnode defines the node a scene-logic graph is made of and the
// single contract every node kind implements.
package logicnode

import (
	"context"
	"fmt"

	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
)

// Kind names a family of nodes.
type Kind string

const (
	KindScript    Kind = "script"
	KindTimer     Kind = "timer"
	KindAnimation Kind = "animation"
	KindBinding   Kind = "binding"
	KindInterface Kind = "interface"
	KindDerived   Kind = "derived"
	KindDataArray Kind = "dataarray"
)

// Behavior is what a node does when it runs: read inputs, write outputs.
// Outputs must be written with property.Write or property.Put.
type Behavior interface {
	Execute(ctx context.Context, n *Node) error
}

// BehaviorFunc adapts a function to Behavior.
type BehaviorFunc func(ctx context.Context, n *Node) error

func (f BehaviorFunc) Execute(ctx context.Context, n *Node) error { return f(ctx, n) }

// Blueprint is everything needed to create a node of some kind.
type Blueprint struct {
	Kind       Kind
	Inputs     property.Type
	InputRole  property.Role
	Outputs    *property.Type
	OutputRole property.Role
	Behavior   Behavior
	// References lists nodes this node depends on outside of links, e.g.
	// the data arrays an animation reads. Referenced nodes refuse
	// destruction.
	References []handle.NodeID
	// Free-running nodes stay dirty after every execution.
	FreeRunning bool
}

// Node is a unit of behavior with an input tree and an optional output
// tree. Nodes are created and owned by an engine.
type Node struct {
	id          handle.NodeID
	name        string
	kind        Kind
	inputs      *property.Property
	outputs     *property.Property
	behavior    Behavior
	refs        []handle.NodeID
	freeRunning bool
	dirty       bool
}

// New builds a node from bp. New nodes start dirty so they run on the first
// update.
func New(id handle.NodeID, name string, bp Blueprint, links property.LinkView, seq *handle.Sequence) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("node name cannot be empty")
	}
	if bp.Behavior == nil {
		return nil, fmt.Errorf("node %q: %s blueprint has no behavior", name, bp.Kind)
	}
	if bp.InputRole == 0 {
		bp.InputRole = property.ScriptInput
	}
	if bp.OutputRole == 0 {
		bp.OutputRole = property.ScriptOutput
	}

	n := &Node{
		id:          id,
		name:        name,
		kind:        bp.Kind,
		behavior:    bp.Behavior,
		refs:        append([]handle.NodeID(nil), bp.References...),
		freeRunning: bp.FreeRunning,
		dirty:       true,
	}

	inType := bp.Inputs
	if inType.Kind == 0 {
		inType = property.Struct("inputs")
	}
	inType.Name = "inputs"
	if inType.Kind != value.Struct || (bp.Outputs != nil && bp.Outputs.Kind != value.Struct) {
		return nil, fmt.Errorf("node %q: property tree roots must be structs", name)
	}
	in, err := property.NewTree(inType, bp.InputRole, n, links, seq)
	if err != nil {
		return nil, fmt.Errorf("node %q inputs: %w", name, err)
	}
	n.inputs = in

	if bp.Outputs != nil {
		outType := *bp.Outputs
		outType.Name = "outputs"
		out, err := property.NewTree(outType, bp.OutputRole, n, links, seq)
		if err != nil {
			return nil, fmt.Errorf("node %q outputs: %w", name, err)
		}
		n.outputs = out
	}
	return n, nil
}

func (n *Node) ID() handle.NodeID     { return n.id }
func (n *Node) NodeID() handle.NodeID { return n.id }
func (n *Node) Name() string          { return n.name }
func (n *Node) Kind() Kind            { return n.kind }
func (n *Node) Behavior() Behavior    { return n.behavior }
func (n *Node) Dirty() bool           { return n.dirty }
func (n *Node) MarkDirty()            { n.dirty = true }

// Inputs returns the root of the input tree.
func (n *Node) Inputs() *property.Property { return n.inputs }

// Outputs returns the output tree, or nil for nodes without outputs.
func (n *Node) Outputs() *property.Property { return n.outputs }

// References returns the nodes this node reads outside of links.
func (n *Node) References() []handle.NodeID {
	return append([]handle.NodeID(nil), n.refs...)
}

// ClearDirty is called after a successful execution.
func (n *Node) ClearDirty() { n.dirty = n.freeRunning }

// Execute runs the node's behavior once.
func (n *Node) Execute(ctx context.Context) error {
	return n.behavior.Execute(ctx, n)
}

// Leaves returns the primitive properties of both trees, inputs first.
func (n *Node) Leaves() []*property.Property {
	leaves := n.inputs.Leaves()
	if n.outputs != nil {
		leaves = append(leaves, n.outputs.Leaves()...)
	}
	return leaves
}

func (n *Node) String() string {
	return fmt.Sprintf("%s %q", n.kind, n.name)
}
