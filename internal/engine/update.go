// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/topology"
)

// Report describes one Update.
type Report struct {
	EngineID      uuid.UUID
	Engine        string
	Frame         uint64
	Executed      []string
	Skipped       int
	Propagated    int
	WeakCommitted int
	Duration      time.Duration
	Err           error
}

// Observer is notified after every Update, successful or not.
type Observer interface {
	OnUpdate(r Report)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Report)

func (f ObserverFunc) OnUpdate(r Report) { f(r) }

// Update runs one frame. It returns ErrCycle (wrapping a
// *topology.CycleError) when strong links form a cycle, in which case no
// node runs, or a *NodeError when a node fails, in which case the rest of
// the frame is skipped.
func (e *Engine) Update(ctx context.Context) error {
	if err := e.beginCall(true); err != nil {
		return err
	}
	e.updating = true
	defer func() { e.updating = false }()

	ctx = ctxlog.WithLogger(ctx, e.logger)
	e.frame++
	start := time.Now()

	res, err := e.sched.Run(ctx)

	var cycleErr *topology.CycleError
	if errors.As(err, &cycleErr) {
		err = fmt.Errorf("%w: %w", ErrCycle, cycleErr)
	}

	report := Report{
		EngineID:      e.id,
		Engine:        e.name,
		Frame:         e.frame,
		Skipped:       res.Skipped,
		Propagated:    res.Propagated,
		WeakCommitted: res.WeakCommitted,
		Duration:      time.Since(start),
		Err:           err,
	}
	for _, id := range res.Executed {
		if n, ok := e.nodes.Get(id); ok {
			report.Executed = append(report.Executed, n.Name())
		}
	}
	e.last = report

	if err != nil {
		e.logger.Warn("Update failed.", "frame", e.frame, "error", err)
		e.fail(err)
	} else {
		e.logger.Debug("Update finished.", "frame", e.frame, "executed", len(report.Executed), "duration", report.Duration)
	}

	for _, o := range e.observers {
		o.OnUpdate(report)
	}
	return err
}

// LastReport returns the report of the most recent Update.
func (e *Engine) LastReport() Report {
	return e.last
}
