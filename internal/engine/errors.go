// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/scenelogic/internal/scheduler"
)

var (
	ErrSameNode         = errors.New("source and target belong to the same node")
	ErrKindMismatch     = errors.New("source and target have different kinds")
	ErrNotPrimitive     = errors.New("only primitive properties can be linked")
	ErrWrongRole        = errors.New("property role does not allow this link direction")
	ErrAlreadyLinked    = errors.New("target already has an incoming link")
	ErrNoSuchLink       = errors.New("no link between these properties")
	ErrCycle            = errors.New("topology invalid")
	ErrReferenced       = errors.New("node is referenced by other nodes")
	ErrUnknownNode      = errors.New("node or property does not belong to this engine")
	ErrUpdateInProgress = errors.New("engine is in the middle of an update")
)

// NodeError is returned by Update when a node's behavior fails.
type NodeError = scheduler.NodeError

// LinkError describes a rejected Link, LinkWeak or Unlink call.
type LinkError struct {
	Op     string
	Source string
	Target string
	Err    error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s %s -> %s: %v", e.Op, e.Source, e.Target, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }

// DestroyError describes a rejected Destroy call.
type DestroyError struct {
	Node         string
	ReferencedBy []string
	Err          error
}

func (e *DestroyError) Error() string {
	if len(e.ReferencedBy) > 0 {
		return fmt.Sprintf("destroy %q: %v: %s", e.Node, e.Err, strings.Join(e.ReferencedBy, ", "))
	}
	return fmt.Sprintf("destroy %q: %v", e.Node, e.Err)
}

func (e *DestroyError) Unwrap() error { return e.Err }
