// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/propaddr"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of a scene.
type Model struct {
	DataArrays []*DataArray
	Nodes      []*Node
	Links      []*Link
}

// DataArray is a named float array.
type DataArray struct {
	Name string
	Data []float32
}

// Node is the format-agnostic representation of a `node` block. Which
// fields apply depends on Kind.
type Node struct {
	Kind string
	Name string

	// Script names a library script (script nodes).
	Script string
	// Object names a scene object type (binding nodes).
	Object string
	// Expression and Output describe a derived node.
	Expression string
	Output     value.Kind
	// Inputs declares the input fields of interface, binding and derived
	// nodes. Script, timer and animation nodes have fixed inputs.
	Inputs   []property.Type
	Channels []*Channel

	// Values holds initial input values keyed by top-level input name.
	Values map[string]cty.Value
}

// Channel is one animation channel. Timestamps and Keyframes name data
// arrays.
type Channel struct {
	Name       string
	Timestamps string
	Keyframes  string
	Easing     string
}

// Link connects two property addresses, e.g. "timer.outputs.ticker_us".
type Link struct {
	From string
	To   string
	Weak bool
}

var knownKinds = map[string]bool{
	string(logicnode.KindScript):    true,
	string(logicnode.KindTimer):     true,
	string(logicnode.KindAnimation): true,
	string(logicnode.KindBinding):   true,
	string(logicnode.KindInterface): true,
	string(logicnode.KindDerived):   true,
}

// Validate checks the model for problems that do not need an engine:
// duplicate names, unknown kinds and missing kind-specific fields. All
// problems are reported together.
func (m *Model) Validate() error {
	var result *multierror.Error
	names := map[string]bool{}
	claim := func(what, name string) {
		if name == "" {
			result = multierror.Append(result, fmt.Errorf("%s with an empty name", what))
			return
		}
		if names[name] {
			result = multierror.Append(result, fmt.Errorf("%s %q: name already used", what, name))
		}
		names[name] = true
	}

	for _, da := range m.DataArrays {
		claim("dataarray", da.Name)
	}
	for _, n := range m.Nodes {
		claim("node", n.Name)
		if !knownKinds[n.Kind] {
			result = multierror.Append(result, fmt.Errorf("node %q: unknown kind %q", n.Name, n.Kind))
			continue
		}
		for _, err := range n.validate() {
			result = multierror.Append(result, fmt.Errorf("node %q: %w", n.Name, err))
		}
	}
	for i, l := range m.Links {
		if l.From == "" || l.To == "" {
			result = multierror.Append(result, fmt.Errorf("link #%d needs both from and to", i+1))
			continue
		}
		for _, raw := range []string{l.From, l.To} {
			if _, err := propaddr.Parse(raw); err != nil {
				result = multierror.Append(result, fmt.Errorf("link #%d: %w", i+1, err))
			}
		}
	}
	return result.ErrorOrNil()
}

func (n *Node) validate() []error {
	var errs []error
	switch logicnode.Kind(n.Kind) {
	case logicnode.KindScript:
		if n.Script == "" {
			errs = append(errs, fmt.Errorf("script nodes need a script name"))
		}
	case logicnode.KindBinding:
		if n.Object == "" {
			errs = append(errs, fmt.Errorf("binding nodes need an object"))
		}
	case logicnode.KindDerived:
		if n.Expression == "" {
			errs = append(errs, fmt.Errorf("derived nodes need an expression"))
		}
		if !n.Output.IsPrimitive() {
			errs = append(errs, fmt.Errorf("derived nodes need a primitive output kind"))
		}
	case logicnode.KindAnimation:
		if len(n.Channels) == 0 {
			errs = append(errs, fmt.Errorf("animation nodes need at least one channel"))
		}
	}
	if len(n.Inputs) > 0 {
		if err := property.Struct("inputs", n.Inputs...).Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// InputType returns the declared inputs as one struct type.
func (n *Node) InputType() property.Type {
	return property.Struct("inputs", n.Inputs...)
}
