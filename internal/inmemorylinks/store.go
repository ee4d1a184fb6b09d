// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package inmemorylinks provides a simple, thread-safe, in-memory
// implementation of the linkstore.Store interface.
package inmemorylinks

import (
	"fmt"
	"slices"
	"sync"

	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/linkstore"
)

// Store keeps links in creation order with an index on the target, which
// is the hot lookup for both Set and propagation.
type Store struct {
	mu       sync.RWMutex
	links    []linkstore.Link
	incoming map[handle.PropertyID]linkstore.Link
}

// New creates a new, empty in-memory link store.
func New() *Store {
	return &Store{
		incoming: make(map[handle.PropertyID]linkstore.Link),
	}
}

var _ linkstore.Store = (*Store)(nil)

// Add records a link.
func (s *Store) Add(l linkstore.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, taken := s.incoming[l.Target]; taken {
		return fmt.Errorf("%w: %s is driven by %s", linkstore.ErrTargetTaken, l.Target, existing.Source)
	}
	s.incoming[l.Target] = l
	s.links = append(s.links, l)
	return nil
}

// Remove deletes the link between source and target.
func (s *Store) Remove(source, target handle.PropertyID) (linkstore.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.incoming[target]
	if !ok || l.Source != source {
		return linkstore.Link{}, fmt.Errorf("%w: %s -> %s", linkstore.ErrNotFound, source, target)
	}
	delete(s.incoming, target)
	s.links = slices.DeleteFunc(s.links, func(x linkstore.Link) bool { return x.Target == target })
	return l, nil
}

// Incoming returns the link whose target is the given property.
func (s *Store) Incoming(target handle.PropertyID) (linkstore.Link, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.incoming[target]
	return l, ok
}

// HasIncoming reports whether the property is a link target.
func (s *Store) HasIncoming(target handle.PropertyID) bool {
	_, ok := s.Incoming(target)
	return ok
}

// Outgoing returns the links leaving source, oldest first.
func (s *Store) Outgoing(source handle.PropertyID) []linkstore.Link {
	return s.filter(func(l linkstore.Link) bool { return l.Source == source })
}

// Touching returns the links with either end on node, oldest first.
func (s *Store) Touching(node handle.NodeID) []linkstore.Link {
	return s.filter(func(l linkstore.Link) bool { return l.SourceNode == node || l.TargetNode == node })
}

// All returns every link, oldest first.
func (s *Store) All() []linkstore.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.links)
}

// Len returns the number of stored links.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.links)
}

func (s *Store) filter(keep func(linkstore.Link) bool) []linkstore.Link {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []linkstore.Link
	for _, l := range s.links {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
