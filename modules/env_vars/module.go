// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package env_vars registers the "env" script, which reads a process
// environment variable into the graph.
package env_vars

import (
	"context"
	"os"

	"github.com/specialistvlad/scenelogic/internal/nodes"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/registry"
	"github.com/specialistvlad/scenelogic/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Lookup defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
}

// Env looks up the variable named by input "name". Outputs "value" and
// "set", which is false when the variable does not exist.
func (m *Module) Env() nodes.Script {
	lookup := m.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return nodes.Script{
		Inputs: property.Struct("", property.Prim("name", value.String)),
		Outputs: property.Struct("",
			property.Prim("value", value.String),
			property.Prim("set", value.Bool),
		),
		Run: func(_ context.Context, in, out *property.Property) error {
			name, err := property.Get[string](in, "name")
			if err != nil {
				return err
			}
			v, ok := "", false
			if name != "" {
				v, ok = lookup(name)
			}
			if _, err := property.Put(out, "value", v); err != nil {
				return err
			}
			_, err = property.Put(out, "set", ok)
			return err
		},
	}
}

// Register registers the script with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterScript("env", m.Env)
}
