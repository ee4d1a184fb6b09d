// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/remote"
	"github.com/specialistvlad/scenelogic/internal/scene"
)

// Run executes the configured number of frames, then dumps and saves the
// scene when asked to. A failing frame stops the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		if err := a.startHealthcheckServer(ctx); err != nil {
			return err
		}
		defer a.closeHealthcheckServer(ctx)
	}

	if a.config.PublishURL != "" {
		pub, err := remote.Dial(ctx, remote.Config{
			URL:       a.config.PublishURL,
			Namespace: a.config.PublishNamespace,
		})
		if err != nil {
			return fmt.Errorf("failed to connect publisher: %w", err)
		}
		defer pub.Close()
		a.engine.AddObserver(pub)
	}

	if err := a.runFrames(ctx); err != nil {
		return err
	}

	if a.config.Dump {
		if err := a.dump(); err != nil {
			return fmt.Errorf("failed to dump outputs: %w", err)
		}
	}
	if a.config.SavePath != "" {
		if err := a.save(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runFrames(ctx context.Context) error {
	var tick <-chan time.Time
	if a.config.FrameInterval > 0 {
		ticker := time.NewTicker(a.config.FrameInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	a.logger.Info("Running frames.", "frames", a.config.Frames, "interval", a.config.FrameInterval)
	for frame := 1; frame <= a.config.Frames; frame++ {
		if frame > 1 && tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := a.engine.Update(ctx); err != nil {
			return fmt.Errorf("frame %d failed: %w", frame, err)
		}
	}
	a.logger.Info("Frames finished.", "frames", a.config.Frames, "nodes_executed_last", a.Stats().LastExecuted)
	return nil
}

// dump prints every output leaf as "node.outputs.path = value".
func (a *App) dump() error {
	for _, n := range a.engine.Nodes() {
		if n.Outputs() == nil {
			continue
		}
		for _, leaf := range n.Outputs().Leaves() {
			v, err := leaf.Value()
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(a.outW, "%s.%s = %s\n", n.Name(), leaf.Path(), v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *App) save(ctx context.Context) error {
	m, err := scene.Capture(a.engine, a.scene)
	if err != nil {
		return fmt.Errorf("failed to capture scene: %w", err)
	}

	f, err := os.Create(a.config.SavePath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", a.config.SavePath, err)
	}
	if err := a.saver.Save(ctx, f, m); err != nil {
		f.Close()
		return fmt.Errorf("failed to save scene: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to save scene: %w", err)
	}
	a.logger.Info("Scene saved.", "path", a.config.SavePath, "nodes", len(m.Nodes))
	return nil
}
