// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package mathscripts registers small numeric scripts: add, scale, sine and
// counter.
package mathscripts

import (
	"context"
	"math"

	"github.com/specialistvlad/scenelogic/internal/nodes"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/registry"
	"github.com/specialistvlad/scenelogic/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func floats(names ...string) property.Type {
	fields := make([]property.Type, len(names))
	for i, n := range names {
		fields[i] = property.Prim(n, value.Float)
	}
	return property.Struct("", fields...)
}

// Add writes sum = a + b.
func Add() nodes.Script {
	return nodes.Script{
		Inputs:  floats("a", "b"),
		Outputs: floats("sum"),
		Run: func(_ context.Context, in, out *property.Property) error {
			a, err := property.Get[float32](in, "a")
			if err != nil {
				return err
			}
			b, err := property.Get[float32](in, "b")
			if err != nil {
				return err
			}
			_, err = property.Put(out, "sum", a+b)
			return err
		},
	}
}

// Scale writes result = value * factor.
func Scale() nodes.Script {
	return nodes.Script{
		Inputs:  floats("value", "factor"),
		Outputs: floats("result"),
		Run: func(_ context.Context, in, out *property.Property) error {
			v, err := property.Get[float32](in, "value")
			if err != nil {
				return err
			}
			f, err := property.Get[float32](in, "factor")
			if err != nil {
				return err
			}
			_, err = property.Put(out, "result", v*f)
			return err
		},
	}
}

// Sine writes value = amplitude * sin(2π * phase).
func Sine() nodes.Script {
	return nodes.Script{
		Inputs:  floats("phase", "amplitude"),
		Outputs: floats("value"),
		Run: func(_ context.Context, in, out *property.Property) error {
			phase, err := property.Get[float32](in, "phase")
			if err != nil {
				return err
			}
			amp, err := property.Get[float32](in, "amplitude")
			if err != nil {
				return err
			}
			v := float64(amp) * math.Sin(2*math.Pi*float64(phase))
			_, err = property.Put(out, "value", float32(v))
			return err
		},
	}
}

// Counter adds step to count every time it runs. Each node keeps its own
// count.
func Counter() nodes.Script {
	var count int64
	return nodes.Script{
		Inputs:  property.Struct("", property.Prim("step", value.Int32)),
		Outputs: property.Struct("", property.Prim("count", value.Int64)),
		Run: func(_ context.Context, in, out *property.Property) error {
			step, err := property.Get[int32](in, "step")
			if err != nil {
				return err
			}
			count += int64(step)
			_, err = property.Put(out, "count", count)
			return err
		},
	}
}

// Register registers the scripts with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterScript("add", Add)
	r.RegisterScript("scale", Scale)
	r.RegisterScript("sine", Sine)
	r.RegisterScript("counter", Counter)
}
