// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package handle defines the opaque identities the engine hands out for
// nodes and properties.
package handle

import "strconv"

// NodeID identifies a node within one engine. IDs are never reused, and
// their order is the node creation order.
type NodeID uint64

func (id NodeID) String() string { return "node#" + strconv.FormatUint(uint64(id), 10) }

// PropertyID identifies a property within one engine.
type PropertyID uint64

func (id PropertyID) String() string { return "prop#" + strconv.FormatUint(uint64(id), 10) }

// Sequence hands out increasing identifiers starting at 1. Each engine owns
// its own sequence; it is not safe for concurrent use.
type Sequence struct {
	last uint64
}

// Next returns the next identifier.
func (s *Sequence) Next() uint64 {
	s.last++
	return s.last
}
