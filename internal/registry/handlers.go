// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/scenelogic/internal/nodes"
)

// RegisterScript adds a script to the library. Registering a name twice
// panics.
func (r *Registry) RegisterScript(name string, f ScriptFactory) {
	if _, exists := r.scripts[name]; exists {
		panic(fmt.Sprintf("script with name '%s' already registered", name))
	}
	slog.Debug("Registering script.", "name", name)
	r.scripts[name] = f
}

// RegisterObject adds a scene object type. Registering a type twice
// panics.
func (r *Registry) RegisterObject(objectType string, f ObjectFactory) {
	if _, exists := r.objects[objectType]; exists {
		panic(fmt.Sprintf("object type '%s' already registered", objectType))
	}
	slog.Debug("Registering scene object type.", "type", objectType)
	r.objects[objectType] = f
}

// Script builds the named script.
func (r *Registry) Script(name string) (nodes.Script, error) {
	f, ok := r.scripts[name]
	if !ok {
		return nodes.Script{}, fmt.Errorf("script %q: %w", name, ErrNotRegistered)
	}
	return f(), nil
}

// Object builds a scene object of the given type for the binding node
// named name.
func (r *Registry) Object(objectType, name string) (nodes.SceneObject, error) {
	f, ok := r.objects[objectType]
	if !ok {
		return nil, fmt.Errorf("object type %q: %w", objectType, ErrNotRegistered)
	}
	return f(name)
}
