// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/specialistvlad/scenelogic/internal/nodes"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/registry"
	"github.com/specialistvlad/scenelogic/internal/value"
)

// RecorderModule registers the "record" script. It copies input "x" to
// output "x" and remembers every value it saw.
type RecorderModule struct {
	mu   sync.Mutex
	seen []float32
}

// Register implements the registry.Module interface.
func (m *RecorderModule) Register(r *registry.Registry) {
	r.RegisterScript("record", func() nodes.Script {
		return nodes.Script{
			Inputs:  property.Struct("", property.Prim("x", value.Float)),
			Outputs: property.Struct("", property.Prim("x", value.Float)),
			Run: func(_ context.Context, in, out *property.Property) error {
				x, err := property.Get[float32](in, "x")
				if err != nil {
					return err
				}
				m.mu.Lock()
				m.seen = append(m.seen, x)
				m.mu.Unlock()
				_, err = property.Put(out, "x", x)
				return err
			},
		}
	})
}

// Seen returns the recorded inputs in execution order.
func (m *RecorderModule) Seen() []float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.seen)
}
