// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodes

import (
	"context"

	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/property"
)

// NewInterface builds an interface node. Its properties can be link
// targets and link sources at the same time, so values flow through it
// unchanged.
func NewInterface(t property.Type) logicnode.Blueprint {
	return logicnode.Blueprint{
		Kind:      logicnode.KindInterface,
		Inputs:    property.Struct("inputs", t.Fields...),
		InputRole: property.Interface,
		Behavior:  logicnode.BehaviorFunc(func(context.Context, *logicnode.Node) error { return nil }),
	}
}
