// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"errors"
	"sort"

	"github.com/specialistvlad/scenelogic/internal/nodes"
)

// ErrNotRegistered is returned when a scene names an unknown script or
// object type.
var ErrNotRegistered = errors.New("not registered")

// Module is the interface that all modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// ScriptFactory builds a fresh script for every node that uses it, so
// scripts may keep per-node state in closures.
type ScriptFactory func() nodes.Script

// ObjectFactory builds the scene object a binding node named name writes
// to.
type ObjectFactory func(name string) (nodes.SceneObject, error)

// Registry holds the script library, the scene object types and the clock
// timer nodes read, for a single application instance.
type Registry struct {
	scripts map[string]ScriptFactory
	objects map[string]ObjectFactory
	clock   nodes.Clock
}

// New creates a Registry and registers every given module.
func New(modules ...Module) *Registry {
	r := &Registry{
		scripts: make(map[string]ScriptFactory),
		objects: make(map[string]ObjectFactory),
		clock:   nodes.SystemClock{},
	}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// SetClock replaces the clock handed to timer nodes.
func (r *Registry) SetClock(c nodes.Clock) {
	r.clock = c
}

// Clock returns the clock handed to timer nodes.
func (r *Registry) Clock() nodes.Clock {
	return r.clock
}

// Scripts returns the registered script names in sorted order.
func (r *Registry) Scripts() []string {
	return sortedKeys(r.scripts)
}

// Objects returns the registered scene object types in sorted order.
func (r *Registry) Objects() []string {
	return sortedKeys(r.objects)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
