// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodes

import (
	"context"

	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/property"
)

// ScriptFunc reads in and writes out. Outputs must be written with
// property.Put or property.Write.
type ScriptFunc func(ctx context.Context, in, out *property.Property) error

// Script is a host-provided behavior with a fixed interface.
type Script struct {
	Inputs  property.Type
	Outputs property.Type
	Run     ScriptFunc
}

// Validate checks the declared property types.
func (s Script) Validate() error {
	if err := property.Struct("inputs", s.Inputs.Fields...).Validate(); err != nil {
		return err
	}
	return property.Struct("outputs", s.Outputs.Fields...).Validate()
}

// NewScript builds a script node blueprint.
func NewScript(s Script) logicnode.Blueprint {
	outputs := property.Struct("outputs", s.Outputs.Fields...)
	return logicnode.Blueprint{
		Kind:       logicnode.KindScript,
		Inputs:     property.Struct("inputs", s.Inputs.Fields...),
		InputRole:  property.ScriptInput,
		Outputs:    &outputs,
		OutputRole: property.ScriptOutput,
		Behavior: logicnode.BehaviorFunc(func(ctx context.Context, n *logicnode.Node) error {
			return s.Run(ctx, n.Inputs(), n.Outputs())
		}),
	}
}
