// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/scenelogic/internal/app"
	"github.com/specialistvlad/scenelogic/internal/engine"
	"github.com/specialistvlad/scenelogic/internal/hcl"
	"github.com/specialistvlad/scenelogic/internal/testutil"
	"github.com/specialistvlad/scenelogic/modules/mathscripts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sumScene = `
node "interface" "ui" {
  input "a" { type = float }
  input "b" { type = float }
  values = {
    a = 1.5
    b = 2
  }
}

node "script" "sum" {
  script = "add"
}

node "binding" "out" {
  object = "console"
  input "total" { type = float }
}

link {
  from = "ui.inputs.a"
  to   = "sum.inputs.a"
}

link {
  from = "ui.inputs.b"
  to   = "sum.inputs.b"
}

link {
  from = "sum.outputs.sum"
  to   = "out.inputs.total"
}
`

func TestApp_RunFrames(t *testing.T) {
	result := testutil.RunScene(t, map[string]string{"main.hcl": sumScene}, app.Config{Frames: 3})
	require.NoError(t, result.Err)

	assert.Equal(t, 1, strings.Count(result.Output, "out.total = 3.5\n"))
	testutil.AssertNodeRan(t, result, "sum")
	assert.Equal(t, 1, testutil.CountNodeRuns(result, "sum"), "clean nodes must not run again")

	stats := result.App.Stats()
	assert.Equal(t, uint64(3), stats.Frame)
	assert.Equal(t, 3, stats.Nodes)
	assert.Equal(t, 3, stats.StrongLinks)
	assert.Equal(t, "scene", stats.Engine)
}

func TestApp_FrameInterval(t *testing.T) {
	start := time.Now()
	result := testutil.RunScene(t, map[string]string{"main.hcl": sumScene}, app.Config{
		Frames:        3,
		FrameInterval: 10 * time.Millisecond,
	})
	require.NoError(t, result.Err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, uint64(3), result.App.Stats().Frame)
}

func TestApp_Dump(t *testing.T) {
	result := testutil.RunScene(t, map[string]string{"main.hcl": sumScene}, app.Config{Dump: true})
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "sum.outputs.sum = 3.5\n")
}

func TestApp_Save(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "saved.hcl")
	result := testutil.RunScene(t, map[string]string{"main.hcl": sumScene}, app.Config{SavePath: savePath})
	require.NoError(t, result.Err)

	m, err := hcl.NewLoader().Load(context.Background(), savePath)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 3)
	assert.Len(t, m.Links, 3)

	ui := m.Nodes[0]
	require.Equal(t, "ui", ui.Name)
	a, _ := ui.Values["a"].AsBigFloat().Float64()
	assert.Equal(t, 1.5, a)
}

func TestApp_StartupErrors(t *testing.T) {
	testCases := []struct {
		name  string
		scene string
		want  string
	}{
		{
			name:  "syntax error",
			scene: `node "script" "x" {`,
			want:  "failed to load scene",
		},
		{
			name:  "unknown script",
			scene: `node "script" "x" { script = "nope" }`,
			want:  "failed to build scene",
		},
		{
			name: "bad link",
			scene: sumScene + `
link {
  from = "sum.outputs.missing"
  to   = "out.inputs.total"
}
`,
			want: "failed to build scene",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunScene(t, map[string]string{"main.hcl": tc.scene}, app.Config{})
			require.Error(t, result.Err)
			assert.Nil(t, result.App)
			assert.Contains(t, result.Err.Error(), tc.want)
		})
	}
}

func TestApp_CycleFailsFrame(t *testing.T) {
	scene := `
node "script" "a" {
  script = "record"
}

node "script" "b" {
  script = "record"
}

link {
  from = "a.outputs.x"
  to   = "b.inputs.x"
}

link {
  from = "b.outputs.x"
  to   = "a.inputs.x"
}
`
	rec := &testutil.RecorderModule{}
	result := testutil.RunScene(t, map[string]string{"main.hcl": scene}, app.Config{Frames: 2}, rec)
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, engine.ErrCycle)
	assert.Contains(t, result.Err.Error(), "frame 1 failed")
	assert.Empty(t, rec.Seen())
}

func TestApp_WeakFeedback(t *testing.T) {
	scene := `
node "interface" "ui" {
  input "step" { type = float }
  values = { step = 1 }
}

node "script" "acc" {
  script = "add"
}

node "script" "hold" {
  script = "record"
}

link {
  from = "ui.inputs.step"
  to   = "acc.inputs.a"
}

link {
  from = "acc.outputs.sum"
  to   = "hold.inputs.x"
}

link {
  from = "hold.outputs.x"
  to   = "acc.inputs.b"
  weak = true
}
`
	rec := &testutil.RecorderModule{}
	result := testutil.RunScene(t, map[string]string{"main.hcl": scene}, app.Config{Frames: 4, Dump: true}, &mathscripts.Module{}, rec)
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "acc.outputs.sum = 4\n")
	assert.Equal(t, []float32{1, 2, 3, 4}, rec.Seen())
	assert.Equal(t, 4, testutil.CountNodeRuns(result, "acc"))
}

func TestApp_PublishURLRequiresHost(t *testing.T) {
	result := testutil.RunScene(t, map[string]string{"main.hcl": sumScene}, app.Config{PublishURL: "not a url"})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "failed to connect publisher")
}

func TestApp_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := testutil.RunSceneWithContext(ctx, t, map[string]string{"main.hcl": sumScene}, app.Config{})
	assert.ErrorIs(t, result.Err, context.Canceled)
}
