// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/scenelogic/internal/linkstore"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/property"
)

// LinkInfo is one entry of an AllLinks snapshot.
type LinkInfo struct {
	Source *property.Property
	Target *property.Property
	Weak   bool
}

// Link creates a strong link. The target takes the source's value on the
// next Update and its node runs after the source's node. Cycles are not
// rejected here; they surface as ErrCycle from Update.
func (e *Engine) Link(source, target *property.Property) error {
	return e.link("link", source, target, false)
}

// LinkWeak creates a weak link. Its value is committed after every Update
// and observed by the target's node one Update later. Weak links do not
// order execution, so they may close loops.
func (e *Engine) LinkWeak(source, target *property.Property) error {
	return e.link("link weak", source, target, true)
}

func (e *Engine) link(op string, source, target *property.Property, weak bool) error {
	if err := e.beginCall(true); err != nil {
		return err
	}
	if err := e.checkLink(source, target); err != nil {
		return e.fail(&LinkError{Op: op, Source: e.describe(source), Target: e.describe(target), Err: err})
	}

	l := linkstore.Link{
		Source:     source.ID(),
		Target:     target.ID(),
		SourceNode: source.Owner().NodeID(),
		TargetNode: target.Owner().NodeID(),
		Weak:       weak,
	}
	if err := e.links.Add(l); err != nil {
		if errors.Is(err, linkstore.ErrTargetTaken) {
			err = ErrAlreadyLinked
		}
		return e.fail(&LinkError{Op: op, Source: e.describe(source), Target: e.describe(target), Err: err})
	}

	if !weak {
		e.topo.Invalidate()
		// The target must catch up with the source on the next update even
		// if the source does not change again.
		source.MarkChanged()
	}
	e.logger.Debug("Properties linked.", "source", e.describe(source), "target", e.describe(target), "weak", weak)
	return nil
}

// checkLink validates a candidate link without mutating anything.
func (e *Engine) checkLink(source, target *property.Property) error {
	if !e.owns(source) || !e.owns(target) {
		return ErrUnknownNode
	}
	if source.Owner().NodeID() == target.Owner().NodeID() {
		return ErrSameNode
	}
	if !source.IsPrimitive() || !target.IsPrimitive() {
		return ErrNotPrimitive
	}
	if !source.Role().CanSource() {
		return fmt.Errorf("%w: %s cannot be a link source", ErrWrongRole, source.Role())
	}
	if !target.Role().CanTarget() {
		return fmt.Errorf("%w: %s cannot be a link target", ErrWrongRole, target.Role())
	}
	if source.Kind() != target.Kind() {
		return fmt.Errorf("%w: %s vs %s", ErrKindMismatch, source.Kind(), target.Kind())
	}
	if e.links.HasIncoming(target.ID()) {
		return ErrAlreadyLinked
	}
	return nil
}

// Unlink removes the link from source to target, strong or weak. The
// target keeps its last value and becomes settable again.
func (e *Engine) Unlink(source, target *property.Property) error {
	if err := e.beginCall(true); err != nil {
		return err
	}
	if !e.owns(source) || !e.owns(target) {
		return e.fail(&LinkError{Op: "unlink", Source: e.describe(source), Target: e.describe(target), Err: ErrUnknownNode})
	}

	removed, err := e.links.Remove(source.ID(), target.ID())
	if err != nil {
		return e.fail(&LinkError{Op: "unlink", Source: e.describe(source), Target: e.describe(target), Err: ErrNoSuchLink})
	}
	if !removed.Weak {
		e.topo.Invalidate()
	}
	e.logger.Debug("Properties unlinked.", "source", e.describe(source), "target", e.describe(target))
	return nil
}

// IsLinked reports whether any link touches n. Nodes of other engines
// are never linked here.
func (e *Engine) IsLinked(n *logicnode.Node) bool {
	e.errs = nil
	if n == nil {
		return false
	}
	if got, ok := e.nodes.Get(n.ID()); !ok || got != n {
		return false
	}
	return len(e.links.Touching(n.ID())) > 0
}

// AllLinks returns a snapshot of every link, oldest first.
func (e *Engine) AllLinks() []LinkInfo {
	e.errs = nil
	all := e.links.All()
	out := make([]LinkInfo, 0, len(all))
	for _, l := range all {
		src, okSrc := e.nodes.Property(l.Source)
		dst, okDst := e.nodes.Property(l.Target)
		if !okSrc || !okDst {
			continue
		}
		out = append(out, LinkInfo{Source: src, Target: dst, Weak: l.Weak})
	}
	return out
}
