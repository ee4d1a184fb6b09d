// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package linkstore defines the interface for storing the links between
// node properties.
//
// # Why Link Store Exists
//
// Links are the only edges of a scene-logic graph. The store keeps them by
// property handle, never by pointer, so destroying a node only requires
// removing the records that touch it. Legality (roles, kinds, same-node
// links) is checked by the engine before a link reaches the store; the
// store itself only enforces the structural rule that a property has at
// most one incoming link.
//
// # Ordering
//
// Every query that returns several links returns them in creation order.
// The topology and the update pass depend on that order being stable.
package linkstore

import (
	"errors"

	"github.com/specialistvlad/scenelogic/internal/handle"
)

var (
	// ErrTargetTaken is returned by Add when the target already has an
	// incoming link.
	ErrTargetTaken = errors.New("target already has an incoming link")
	// ErrNotFound is returned by Remove when no link joins the pair.
	ErrNotFound = errors.New("link not found")
)

// Link is a directed edge from a source property to a target property.
// Only strong links order node execution; weak links are committed after
// the ordered walk and may close feedback loops.
type Link struct {
	Source     handle.PropertyID
	Target     handle.PropertyID
	SourceNode handle.NodeID
	TargetNode handle.NodeID
	Weak       bool
}

// Store holds the link records of one engine.
type Store interface {
	// Add records l. It fails with ErrTargetTaken if l.Target already has
	// an incoming link.
	Add(l Link) error

	// Remove deletes the link from source to target and returns it.
	Remove(source, target handle.PropertyID) (Link, error)

	// Incoming returns the link driving target, if any.
	Incoming(target handle.PropertyID) (Link, bool)

	// HasIncoming reports whether target has an incoming link.
	HasIncoming(target handle.PropertyID) bool

	// Outgoing returns the links leaving source.
	Outgoing(source handle.PropertyID) []Link

	// Touching returns every link whose source or target belongs to node.
	Touching(node handle.NodeID) []Link

	// All returns a snapshot of every link.
	All() []Link

	// Len returns the number of links.
	Len() int
}
