// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package topology

import (
	"container/heap"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/scenelogic/internal/handle"
)

// CycleError reports the nodes that could not be ordered because of a
// strong cycle. Nodes downstream of a cycle are included.
type CycleError struct {
	Nodes []handle.NodeID
	Names []string
}

func (e *CycleError) Error() string {
	if len(e.Names) > 0 {
		return fmt.Sprintf("circular dependency detected involving: %s", strings.Join(e.Names, ", "))
	}
	ids := make([]string, len(e.Nodes))
	for i, id := range e.Nodes {
		ids[i] = id.String()
	}
	return fmt.Sprintf("circular dependency detected involving: %s", strings.Join(ids, ", "))
}

// Graph is a node graph built from strong links.
type Graph struct {
	order      []handle.NodeID
	position   map[handle.NodeID]int
	dependents map[handle.NodeID][]handle.NodeID
	edges      map[[2]handle.NodeID]struct{}
	inDegree   map[handle.NodeID]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		position:   make(map[handle.NodeID]int),
		dependents: make(map[handle.NodeID][]handle.NodeID),
		edges:      make(map[[2]handle.NodeID]struct{}),
		inDegree:   make(map[handle.NodeID]int),
	}
}

// AddNode adds a node. Nodes must be added in creation order.
func (g *Graph) AddNode(id handle.NodeID) {
	if _, exists := g.position[id]; exists {
		return
	}
	g.position[id] = len(g.order)
	g.order = append(g.order, id)
	g.inDegree[id] = 0
}

// AddEdge records that from must run before to. Repeated edges between the
// same pair collapse into one.
func (g *Graph) AddEdge(from, to handle.NodeID) error {
	if _, ok := g.position[from]; !ok {
		return fmt.Errorf("edge source %s not found in topology", from)
	}
	if _, ok := g.position[to]; !ok {
		return fmt.Errorf("edge target %s not found in topology", to)
	}
	key := [2]handle.NodeID{from, to}
	if _, dup := g.edges[key]; dup {
		return nil
	}
	g.edges[key] = struct{}{}
	g.dependents[from] = append(g.dependents[from], to)
	g.inDegree[to]++
	return nil
}

// Dependents returns the nodes that directly depend on id.
func (g *Graph) Dependents(id handle.NodeID) []handle.NodeID {
	return slices.Clone(g.dependents[id])
}

// Sort returns every node so that each edge's source precedes its target,
// breaking ties by creation order.
func (g *Graph) Sort() ([]handle.NodeID, error) {
	inDegree := make(map[handle.NodeID]int, len(g.inDegree))
	ready := &positionHeap{}
	for _, id := range g.order {
		inDegree[id] = g.inDegree[id]
		if inDegree[id] == 0 {
			heap.Push(ready, g.position[id])
		}
	}

	sorted := make([]handle.NodeID, 0, len(g.order))
	for ready.Len() > 0 {
		id := g.order[heap.Pop(ready).(int)]
		sorted = append(sorted, id)
		for _, dependent := range g.dependents[id] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				heap.Push(ready, g.position[dependent])
			}
		}
	}

	if len(sorted) != len(g.order) {
		var remaining []handle.NodeID
		for _, id := range g.order {
			if inDegree[id] > 0 {
				remaining = append(remaining, id)
			}
		}
		return nil, &CycleError{Nodes: remaining}
	}
	return sorted, nil
}

// positionHeap is a min-heap of creation positions.
type positionHeap []int

func (h positionHeap) Len() int           { return len(h) }
func (h positionHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h positionHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *positionHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *positionHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
