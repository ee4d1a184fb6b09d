// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inmemorystore

import (
	"fmt"
	"slices"
	"sync"

	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/nodestore"
	"github.com/specialistvlad/scenelogic/internal/property"
)

// Store is an in-memory implementation of nodestore.Store.
type Store struct {
	mu     sync.RWMutex
	order  []*logicnode.Node
	byID   map[handle.NodeID]*logicnode.Node
	byName map[string]*logicnode.Node

	props sync.Map // Key: handle.PropertyID, Value: *property.Property
}

// New creates a new, empty in-memory node store.
func New() *Store {
	return &Store{
		byID:   make(map[handle.NodeID]*logicnode.Node),
		byName: make(map[string]*logicnode.Node),
	}
}

var _ nodestore.Store = (*Store)(nil)

// Add registers a node and indexes its properties.
func (s *Store) Add(n *logicnode.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[n.Name()]; taken {
		return fmt.Errorf("%w: %q", nodestore.ErrDuplicateName, n.Name())
	}
	if _, taken := s.byID[n.ID()]; taken {
		return fmt.Errorf("node %s registered twice", n.ID())
	}
	s.order = append(s.order, n)
	s.byID[n.ID()] = n
	s.byName[n.Name()] = n
	s.indexProperties(n, true)
	return nil
}

// Remove unregisters a node.
func (s *Store) Remove(id handle.NodeID) (*logicnode.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", nodestore.ErrNotFound, id)
	}
	delete(s.byID, id)
	delete(s.byName, n.Name())
	s.order = slices.DeleteFunc(s.order, func(x *logicnode.Node) bool { return x == n })
	s.indexProperties(n, false)
	return n, nil
}

func (s *Store) indexProperties(n *logicnode.Node, add bool) {
	visit := func(p *property.Property) {
		if add {
			s.props.Store(p.ID(), p)
		} else {
			s.props.Delete(p.ID())
		}
	}
	n.Inputs().Walk(visit)
	if n.Outputs() != nil {
		n.Outputs().Walk(visit)
	}
}

// Get returns the node with the given handle.
func (s *Store) Get(id handle.NodeID) (*logicnode.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.byID[id]
	return n, ok
}

// ByName returns the node with the given name.
func (s *Store) ByName(name string) (*logicnode.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.byName[name]
	return n, ok
}

// All returns a snapshot of the nodes in creation order.
func (s *Store) All() []*logicnode.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.order)
}

// Property resolves a property handle to the live property.
func (s *Store) Property(id handle.PropertyID) (*property.Property, bool) {
	p, ok := s.props.Load(id)
	if !ok {
		return nil, false
	}
	return p.(*property.Property), true
}

// Len returns the number of registered nodes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
