// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestRun_Scene(t *testing.T) {
	t.Parallel()

	path := writeScene(t, `
node "interface" "ui" {
  input "x" { type = float }
  values = { x = 0.25 }
}

node "script" "wave" {
  script = "sine"
}

node "binding" "out" {
  object = "console"
  input "y" { type = float }
}

link {
  from = "ui.inputs.x"
  to   = "wave.inputs.phase"
}

link {
  from = "wave.outputs.value"
  to   = "out.inputs.y"
}
`)
	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-log-level", "error", "-frames", "2", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "out.y = ")
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	path := writeScene(t, `
node "script" "broken" {
  script = "add"
`)
	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{path})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
