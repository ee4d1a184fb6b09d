// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodes

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
)

// SceneObject receives the values of a binding node. Paths are relative to
// the binding's input tree, e.g. "translation" or "color.r".
type SceneObject interface {
	SetProperty(path string, v value.Value) error
}

// NewBinding builds a binding node writing to obj. Only leaves whose
// value differs from the last one written reach obj.
func NewBinding(obj SceneObject, inputs property.Type) (logicnode.Blueprint, error) {
	if obj == nil {
		return logicnode.Blueprint{}, fmt.Errorf("binding needs a scene object")
	}
	written := map[handle.PropertyID]value.Value{}
	return logicnode.Blueprint{
		Kind:      logicnode.KindBinding,
		Inputs:    property.Struct("inputs", inputs.Fields...),
		InputRole: property.BindingInput,
		Behavior: logicnode.BehaviorFunc(func(ctx context.Context, n *logicnode.Node) error {
			logger := ctxlog.FromContext(ctx)
			for _, leaf := range n.Inputs().Leaves() {
				v, err := leaf.Value()
				if err != nil {
					return err
				}
				if prev, ok := written[leaf.ID()]; ok && prev.Equal(v) {
					continue
				}
				path := strings.TrimPrefix(leaf.Path(), "inputs.")
				if err := obj.SetProperty(path, v); err != nil {
					return fmt.Errorf("binding %q: set %s: %w", n.Name(), path, err)
				}
				written[leaf.ID()] = v
				logger.Debug("Binding wrote property.", "node", n.Name(), "path", path, "value", v)
			}
			return nil
		}),
	}, nil
}

// MemoryObject is a SceneObject that keeps written values in memory.
type MemoryObject struct {
	mu     sync.RWMutex
	values map[string]value.Value
	writes int
}

func NewMemoryObject() *MemoryObject {
	return &MemoryObject{values: map[string]value.Value{}}
}

func (o *MemoryObject) SetProperty(path string, v value.Value) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.values[path] = v
	o.writes++
	return nil
}

// Get returns the last value written to path.
func (o *MemoryObject) Get(path string) (value.Value, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.values[path]
	return v, ok
}

// Writes counts SetProperty calls.
func (o *MemoryObject) Writes() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.writes
}
