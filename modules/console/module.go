// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package console provides scene object types for binding nodes: "console"
// prints every write and "memory" keeps the last value per path.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/specialistvlad/scenelogic/internal/nodes"
	"github.com/specialistvlad/scenelogic/internal/registry"
	"github.com/specialistvlad/scenelogic/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Out receives console writes. Defaults to os.Stdout.
	Out io.Writer
}

// Object prints "name.path = value" lines.
type Object struct {
	name string
	out  io.Writer
	mu   *sync.Mutex
}

func (o *Object) SetProperty(path string, v value.Value) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := fmt.Fprintf(o.out, "%s.%s = %s\n", o.name, path, v)
	return err
}

// Register registers the object types with the registry.
func (m *Module) Register(r *registry.Registry) {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}
	// Objects share the writer, so they share the lock too.
	var mu sync.Mutex
	r.RegisterObject("console", func(name string) (nodes.SceneObject, error) {
		return &Object{name: name, out: out, mu: &mu}, nil
	})
	r.RegisterObject("memory", func(string) (nodes.SceneObject, error) {
		return nodes.NewMemoryObject(), nil
	})
}
