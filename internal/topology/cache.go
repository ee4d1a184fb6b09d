// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package topology

import "github.com/specialistvlad/scenelogic/internal/handle"

// Edge is a strong dependency between two nodes.
type Edge struct {
	From, To handle.NodeID
}

// Cache keeps the last valid execution order until invalidated.
type Cache struct {
	order []handle.NodeID
	valid bool
}

// Invalidate forces the next Order call to rebuild.
func (c *Cache) Invalidate() {
	c.order = nil
	c.valid = false
}

// Valid reports whether the cached order is current.
func (c *Cache) Valid() bool { return c.valid }

// Order returns the cached order, rebuilding it from nodes (in creation
// order) and edges when the cache is stale. A cycle leaves the cache stale,
// so the next call tries again.
func (c *Cache) Order(nodes []handle.NodeID, edges []Edge) ([]handle.NodeID, error) {
	if c.valid {
		return c.order, nil
	}

	g := New()
	for _, id := range nodes {
		g.AddNode(id)
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	order, err := g.Sort()
	if err != nil {
		return nil, err
	}
	c.order = order
	c.valid = true
	return order, nil
}
