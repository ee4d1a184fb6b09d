// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodes

import (
	"context"

	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/value"
)

// DataArray holds immutable float data shared by animations.
type DataArray struct {
	data value.Floats
}

func (d *DataArray) Execute(context.Context, *logicnode.Node) error { return nil }

// Data returns a copy of the array.
func (d *DataArray) Data() value.Floats {
	return append(value.Floats(nil), d.data...)
}

// NewDataArray builds a data array node. It has no properties.
func NewDataArray(data []float32) logicnode.Blueprint {
	return logicnode.Blueprint{
		Kind:     logicnode.KindDataArray,
		Behavior: &DataArray{data: append(value.Floats(nil), data...)},
	}
}

// DataOf returns the array held by a data array node.
func DataOf(n *logicnode.Node) (value.Floats, bool) {
	if n == nil {
		return nil, false
	}
	d, ok := n.Behavior().(*DataArray)
	if !ok {
		return nil, false
	}
	return d.Data(), true
}
