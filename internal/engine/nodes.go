// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/propaddr"
	"github.com/specialistvlad/scenelogic/internal/property"
)

// CreateNode adds a node built from bp. The node starts dirty.
func (e *Engine) CreateNode(name string, bp logicnode.Blueprint) (*logicnode.Node, error) {
	if err := e.beginCall(true); err != nil {
		return nil, err
	}
	for _, ref := range bp.References {
		if _, ok := e.nodes.Get(ref); !ok {
			return nil, e.fail(fmt.Errorf("node %q references %s: %w", name, ref, ErrUnknownNode))
		}
	}

	id := handle.NodeID(e.seq.Next())
	n, err := logicnode.New(id, name, bp, e.links, &e.seq)
	if err != nil {
		return nil, e.fail(err)
	}
	if err := e.nodes.Add(n); err != nil {
		return nil, e.fail(err)
	}
	e.topo.Invalidate()
	e.logger.Debug("Node created.", "node", name, "kind", bp.Kind, "id", id)
	return n, nil
}

// Destroy removes n and every link touching it. Nodes still referenced by
// other nodes (data arrays used by animations) refuse destruction.
func (e *Engine) Destroy(n *logicnode.Node) error {
	if err := e.beginCall(true); err != nil {
		return err
	}
	if n == nil {
		return e.fail(fmt.Errorf("destroy: %w", ErrUnknownNode))
	}
	if got, ok := e.nodes.Get(n.ID()); !ok || got != n {
		return e.fail(&DestroyError{Node: n.Name(), Err: ErrUnknownNode})
	}

	var users []string
	for _, other := range e.nodes.All() {
		if other != n && slices.Contains(other.References(), n.ID()) {
			users = append(users, other.Name())
		}
	}
	if len(users) > 0 {
		return e.fail(&DestroyError{Node: n.Name(), ReferencedBy: users, Err: ErrReferenced})
	}

	for _, l := range e.links.Touching(n.ID()) {
		if _, err := e.links.Remove(l.Source, l.Target); err != nil {
			return e.fail(fmt.Errorf("destroy %q: %w", n.Name(), err))
		}
	}
	if _, err := e.nodes.Remove(n.ID()); err != nil {
		return e.fail(err)
	}
	e.topo.Invalidate()
	e.logger.Debug("Node destroyed.", "node", n.Name())
	return nil
}

// Node looks a node up by name.
func (e *Engine) Node(name string) (*logicnode.Node, bool) {
	return e.nodes.ByName(name)
}

// NodeByID looks a node up by handle.
func (e *Engine) NodeByID(id handle.NodeID) (*logicnode.Node, bool) {
	return e.nodes.Get(id)
}

// Nodes returns every node in creation order.
func (e *Engine) Nodes() []*logicnode.Node {
	return e.nodes.All()
}

// FindProperty resolves an address such as "mover.inputs.items[2].x".
// See package propaddr for the syntax.
func (e *Engine) FindProperty(path string) (*property.Property, error) {
	addr, err := propaddr.Parse(path)
	if err != nil {
		return nil, err
	}

	n, ok := e.nodes.ByName(addr.Node)
	if !ok {
		return nil, fmt.Errorf("property address %q: node %q: %w", path, addr.Node, property.ErrNotFound)
	}

	cur := n.Inputs()
	if addr.Tree == propaddr.Outputs {
		cur = n.Outputs()
	}
	if cur == nil {
		return nil, fmt.Errorf("property address %q: node %q has no %s: %w", path, n.Name(), addr.Tree, property.ErrNotFound)
	}
	if cur, err = index(cur, addr.RootIndices); err != nil {
		return nil, err
	}

	for _, seg := range addr.Path {
		if cur, err = cur.ChildByName(seg.Name); err != nil {
			return nil, err
		}
		if cur, err = index(cur, seg.Indices); err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func index(p *property.Property, indices []int) (*property.Property, error) {
	var err error
	for _, i := range indices {
		if p, err = p.Child(i); err != nil {
			return nil, err
		}
	}
	return p, nil
}
