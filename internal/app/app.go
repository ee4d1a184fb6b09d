// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/specialistvlad/scenelogic/internal/config"
	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/engine"
	"github.com/specialistvlad/scenelogic/internal/registry"
	"github.com/specialistvlad/scenelogic/internal/scene"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	engine   *engine.Engine
	scene    *config.Model
	saver    config.Saver

	// stats is written by the engine observer and read by the HTTP server.
	stats      atomic.Pointer[engine.Stats]
	httpServer *http.Server
}

// NewApp loads the scene, registers the modules (the core modules when none
// are given), validates the registry and builds the engine. Scene errors
// are aggregated into the returned error.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, saver config.Saver, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ScenePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	logger.Debug("Scene loaded.", "nodes", len(model.Nodes), "links", len(model.Links))

	if len(modules) == 0 {
		modules = coreModules(outW)
	}
	reg := registry.New(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}
	logger.Debug("Registry validation passed.")

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		scene:    model,
		saver:    saver,
	}
	a.engine = engine.New(
		engine.WithLogger(logger),
		engine.WithName(sceneName(cfg.ScenePath)),
		engine.WithObserver(engine.ObserverFunc(a.recordStats)),
	)
	a.recordStats(engine.Report{})

	if err := scene.Apply(ctx, a.engine, model, reg); err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	return a, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Engine returns the application's engine. This is primarily for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Stats returns the snapshot taken after the most recent frame.
func (a *App) Stats() engine.Stats {
	return *a.stats.Load()
}

func (a *App) recordStats(engine.Report) {
	s := a.engine.Stats()
	a.stats.Store(&s)
}

// sceneName derives the engine label from the scene path.
func sceneName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "scene"
	}
	return name
}
