// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodes

import (
	"context"
	"time"

	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
)

// TickerField is the input and output name of a timer node.
const TickerField = "ticker_us"

// Clock supplies the current time to timer nodes.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// NewTimer builds a free-running timer. Its output is the clock in
// microseconds, unless the input is non-zero, in which case the input is
// passed through; that lets a host drive time explicitly.
func NewTimer(clock Clock) logicnode.Blueprint {
	if clock == nil {
		clock = SystemClock{}
	}
	outputs := property.Struct("outputs", property.Prim(TickerField, value.Int64))
	return logicnode.Blueprint{
		Kind:        logicnode.KindTimer,
		Inputs:      property.Struct("inputs", property.Prim(TickerField, value.Int64)),
		Outputs:     &outputs,
		FreeRunning: true,
		Behavior: logicnode.BehaviorFunc(func(_ context.Context, n *logicnode.Node) error {
			ticker, err := property.Get[int64](n.Inputs(), TickerField)
			if err != nil {
				return err
			}
			if ticker == 0 {
				ticker = clock.Now().UnixMicro()
			}
			_, err = property.Put(n.Outputs(), TickerField, ticker)
			return err
		}),
	}
}
