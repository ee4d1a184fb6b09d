// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scene

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/specialistvlad/scenelogic/internal/config"
	"github.com/specialistvlad/scenelogic/internal/engine"
	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/nodes"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// Capture records the engine's current state. base supplies what the
// engine cannot know, such as script names and binding object types; it
// may be nil when e only holds interface, derived, timer and data array
// nodes. Nodes missing from e are dropped, values are refreshed from the
// live input trees and links are taken from e.
func Capture(e *engine.Engine, base *config.Model) (*config.Model, error) {
	defs := map[string]*config.Node{}
	if base != nil {
		for _, n := range base.Nodes {
			defs[n.Name] = n
		}
	}

	// Weak targets are captured too; a load restores them before the first
	// update reads them.
	linked := map[handle.PropertyID]bool{}
	links := e.AllLinks()
	for _, l := range links {
		if !l.Weak {
			linked[l.Target.ID()] = true
		}
	}

	m := &config.Model{}
	var result *multierror.Error
	for _, n := range e.Nodes() {
		if n.Kind() == logicnode.KindDataArray {
			data, _ := nodes.DataOf(n)
			m.DataArrays = append(m.DataArrays, &config.DataArray{Name: n.Name(), Data: data})
			continue
		}

		def, err := describe(n, defs[n.Name()])
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("node %q: %w", n.Name(), err))
			continue
		}
		def.Values = captureValues(n, linked)
		m.Nodes = append(m.Nodes, def)
	}

	for _, l := range links {
		m.Links = append(m.Links, &config.Link{From: address(e, l.Source), To: address(e, l.Target), Weak: l.Weak})
	}
	return m, result.ErrorOrNil()
}

func describe(n *logicnode.Node, base *config.Node) (*config.Node, error) {
	if base != nil && base.Kind == string(n.Kind()) {
		cp := *base
		return &cp, nil
	}

	def := &config.Node{Kind: string(n.Kind()), Name: n.Name()}
	switch n.Kind() {
	case logicnode.KindTimer:
	case logicnode.KindInterface:
		def.Inputs = n.Inputs().Type().Fields
	case logicnode.KindDerived:
		d, ok := nodes.DerivedOf(n)
		if !ok {
			return nil, fmt.Errorf("derived node has no expression")
		}
		def.Inputs = n.Inputs().Type().Fields
		def.Expression = d.Source
		def.Output = d.Output()
	default:
		return nil, fmt.Errorf("%s nodes need a definition in the base scene", n.Kind())
	}
	return def, nil
}

// captureValues records every top-level input that holds a non-zero value
// and has no strongly linked leaf. Those leaves get their values from links
// on the first update.
func captureValues(n *logicnode.Node, linked map[handle.PropertyID]bool) map[string]cty.Value {
	values := map[string]cty.Value{}
	for _, in := range n.Inputs().Children() {
		skip, nonZero := false, false
		for _, leaf := range in.Leaves() {
			if linked[leaf.ID()] {
				skip = true
				break
			}
			if v, err := leaf.Value(); err == nil && !v.Equal(value.Zero(leaf.Kind())) {
				nonZero = true
			}
		}
		if !skip && nonZero {
			values[in.Name()] = in.Cty()
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func address(e *engine.Engine, p *property.Property) string {
	name := p.Owner().NodeID().String()
	if n, ok := e.NodeByID(p.Owner().NodeID()); ok {
		name = n.Name()
	}
	return name + "." + p.Path()
}
