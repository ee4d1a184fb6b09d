// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/scenelogic/internal/app"
	"github.com/specialistvlad/scenelogic/internal/hcl"
	"github.com/specialistvlad/scenelogic/internal/registry"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an end-to-end run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
	Dir    string
}

// RunScene writes files into a temporary scene directory, builds the app
// with cfg and runs it. ScenePath defaults to that directory, Frames to 1
// and the log level to debug. Startup errors end up in Err with App nil.
func RunScene(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunSceneWithContext(context.Background(), t, files, cfg, modules...)
}

// RunSceneWithContext is RunScene with a caller-provided context.
func RunSceneWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	sceneDir := filepath.Join(dir, "scene")
	require.NoError(t, os.Mkdir(sceneDir, 0o755))
	for name, content := range files {
		path := filepath.Join(sceneDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	if cfg.ScenePath == "" {
		cfg.ScenePath = sceneDir
	}
	if cfg.Frames == 0 {
		cfg.Frames = 1
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("SCENELOGIC_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), out.String())
		}
	})

	a, err := app.NewApp(out, appConfig, hcl.NewLoader(), hcl.NewSaver(), modules...)
	if err != nil {
		return &HarnessResult{Output: out.String(), Err: err, Dir: dir}
	}
	err = a.Run(ctx)
	return &HarnessResult{Output: out.String(), Err: err, App: a, Dir: dir}
}
