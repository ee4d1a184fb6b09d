// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package nodestore defines the interface for the registry that owns the
// logic nodes of one engine.
//
// # Why Node Store Exists
//
// The node store is the identity and lifetime authority of an engine. It
// answers three questions the rest of the engine keeps asking:
//   - **Which nodes exist**, in creation order (the topology tie-break)
//   - **Which node has this name** (lookups from scene files and the host)
//   - **Which property has this handle** (links are stored by handle only)
//
// A node belongs to exactly one store for its whole life. Removing a node
// also forgets every property handle it owned, so stale handles resolve to
// nothing instead of to freed properties.
package nodestore

import (
	"errors"

	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/property"
)

var (
	// ErrDuplicateName is returned when a node name is already taken.
	ErrDuplicateName = errors.New("node name already in use")
	// ErrNotFound is returned when a node handle is unknown to the store.
	ErrNotFound = errors.New("node not found")
)

// Store owns nodes and indexes their properties.
type Store interface {
	// Add registers n and all of its properties. Names are unique.
	Add(n *logicnode.Node) error

	// Remove unregisters the node and its properties and returns it.
	Remove(id handle.NodeID) (*logicnode.Node, error)

	// Get looks a node up by handle.
	Get(id handle.NodeID) (*logicnode.Node, bool)

	// ByName looks a node up by name.
	ByName(name string) (*logicnode.Node, bool)

	// All returns every node in creation order.
	All() []*logicnode.Node

	// Property resolves a property handle.
	Property(id handle.PropertyID) (*property.Property, bool)

	// Len returns the number of nodes.
	Len() int
}
