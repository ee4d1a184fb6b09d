// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/linkstore"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/nodestore"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/topology"
)

// NodeError is returned when a node's behavior fails during a pass.
type NodeError struct {
	Node handle.NodeID
	Name string
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %q failed: %v", e.Name, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }

// Result describes one pass.
type Result struct {
	// Executed lists the nodes that ran, in order. A failed node is not
	// included.
	Executed []handle.NodeID
	// Skipped counts nodes visited in the walk that were clean.
	Skipped int
	// Propagated counts strong link transfers that changed their target.
	Propagated int
	// WeakCommitted counts weak link transfers that changed their target.
	WeakCommitted int
}

// Scheduler runs update passes over the nodes and links of one engine.
type Scheduler struct {
	nodes nodestore.Store
	links linkstore.Store
	topo  *topology.Cache
}

// New creates a scheduler over the given collaborators.
func New(nodes nodestore.Store, links linkstore.Store, topo *topology.Cache) *Scheduler {
	return &Scheduler{nodes: nodes, links: links, topo: topo}
}

// Run executes one pass. See the package documentation for the steps.
func (s *Scheduler) Run(ctx context.Context) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	var res Result

	order, err := s.order()
	if err != nil {
		return res, err
	}

	if err := s.seed(&res); err != nil {
		return res, err
	}

	for _, id := range order {
		n, ok := s.nodes.Get(id)
		if !ok {
			return res, fmt.Errorf("topology references unknown node %s", id)
		}
		if !n.Dirty() {
			res.Skipped++
			continue
		}

		logger.Debug("Executing node.", "node", n.Name(), "kind", n.Kind())
		if err := n.Execute(ctx); err != nil {
			logger.Debug("Node execution failed, aborting pass.", "node", n.Name(), "error", err)
			return res, &NodeError{Node: n.ID(), Name: n.Name(), Err: err}
		}
		n.ClearDirty()
		res.Executed = append(res.Executed, n.ID())

		if err := s.propagateFrom(n, &res); err != nil {
			return res, err
		}
	}

	if err := s.commitWeak(&res); err != nil {
		return res, err
	}
	logger.Debug("Update pass finished.",
		"executed", len(res.Executed),
		"skipped", res.Skipped,
		"propagated", res.Propagated,
		"weak_committed", res.WeakCommitted,
	)
	return res, nil
}

func (s *Scheduler) order() ([]handle.NodeID, error) {
	all := s.nodes.All()
	ids := make([]handle.NodeID, len(all))
	for i, n := range all {
		ids[i] = n.ID()
	}

	var edges []topology.Edge
	for _, l := range s.links.All() {
		if !l.Weak {
			edges = append(edges, topology.Edge{From: l.SourceNode, To: l.TargetNode})
		}
	}

	order, err := s.topo.Order(ids, edges)
	var cycleErr *topology.CycleError
	if errors.As(err, &cycleErr) {
		for _, id := range cycleErr.Nodes {
			if n, ok := s.nodes.Get(id); ok {
				cycleErr.Names = append(cycleErr.Names, n.Name())
			}
		}
	}
	return order, err
}

// seed pushes values that changed outside of node execution along strong
// links.
func (s *Scheduler) seed(res *Result) error {
	var changed []*property.Property
	seen := make(map[handle.PropertyID]bool)
	for _, l := range s.links.All() {
		if l.Weak || seen[l.Source] {
			continue
		}
		seen[l.Source] = true
		src, ok := s.nodes.Property(l.Source)
		if !ok {
			return danglingLink(l)
		}
		if src.Changed() {
			changed = append(changed, src)
		}
	}

	for _, src := range changed {
		if err := s.pushStrong(src, res); err != nil {
			return err
		}
		src.ClearChanged()
	}
	return nil
}

// propagateFrom pushes the changed values of a node that just ran, then
// clears every change flag of the node.
func (s *Scheduler) propagateFrom(n *logicnode.Node, res *Result) error {
	for _, leaf := range n.Leaves() {
		if !leaf.Changed() {
			continue
		}
		if err := s.pushStrong(leaf, res); err != nil {
			return err
		}
		leaf.ClearChanged()
	}
	return nil
}

func (s *Scheduler) pushStrong(src *property.Property, res *Result) error {
	for _, l := range s.links.Outgoing(src.ID()) {
		if l.Weak {
			continue
		}
		changed, err := s.transfer(l)
		if err != nil {
			return err
		}
		if changed {
			res.Propagated++
		}
	}
	return nil
}

func (s *Scheduler) commitWeak(res *Result) error {
	for _, l := range s.links.All() {
		if !l.Weak {
			continue
		}
		changed, err := s.transfer(l)
		if err != nil {
			return err
		}
		if changed {
			res.WeakCommitted++
		}
	}
	return nil
}

// transfer copies the source value of l into its target and dirties the
// target's node when the value actually changed.
func (s *Scheduler) transfer(l linkstore.Link) (bool, error) {
	src, ok := s.nodes.Property(l.Source)
	if !ok {
		return false, danglingLink(l)
	}
	dst, ok := s.nodes.Property(l.Target)
	if !ok {
		return false, danglingLink(l)
	}
	v, err := src.Value()
	if err != nil {
		return false, err
	}
	changed, err := dst.Write(v)
	if err != nil {
		return false, err
	}
	if changed && dst.Owner() != nil {
		dst.Owner().MarkDirty()
	}
	return changed, nil
}

func danglingLink(l linkstore.Link) error {
	return fmt.Errorf("link %s -> %s refers to a property that no longer exists", l.Source, l.Target)
}
