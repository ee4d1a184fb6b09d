// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/scenelogic/internal/config"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

const sampleScene = `
dataarray "times" {
  data = [0, 0.5, 1]
}

dataarray "heights" {
  data = [0, 2, 0]
}

node "timer" "clock" {}

node "interface" "ui" {
  input "speed" { type = float }
  input "tint" {
    type = struct({ r = float, "g" = float })
  }
  input "path" { type = array(vec3f, 2) }
  values = {
    speed = 2.5
    path  = [[0, 0, 0], [1, 1, 1]]
  }
}

node "derived" "double" {
  expression = "speed * 2"
  output     = float
  input "speed" { type = float }
}

node "animation" "bounce" {
  channel "y" {
    timestamps = "times"
    keyframes  = "heights"
    easing     = "out_bounce"
  }
}

node "binding" "cube" {
  object = "console"
  input "height" { type = float }
}

node "script" "add" {
  script = "add"
}

link {
  from = "ui.inputs.speed"
  to   = "double.inputs.speed"
}

link {
  from = "bounce.outputs.y"
  to   = "cube.inputs.height"
  weak = true
}
`

func writeScene(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func node(t *testing.T, m *config.Model, name string) *config.Node {
	t.Helper()
	for _, n := range m.Nodes {
		if n.Name == name {
			return n
		}
	}
	t.Fatalf("node %q not in model", name)
	return nil
}

func TestLoader_Load(t *testing.T) {
	dir := writeScene(t, map[string]string{"scene/main.hcl": sampleScene})

	m, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	require.Len(t, m.DataArrays, 2)
	assert.Equal(t, &config.DataArray{Name: "times", Data: []float32{0, 0.5, 1}}, m.DataArrays[0])
	require.Len(t, m.Nodes, 6)
	require.Len(t, m.Links, 2)
	assert.Equal(t, &config.Link{From: "bounce.outputs.y", To: "cube.inputs.height", Weak: true}, m.Links[1])

	ui := node(t, m, "ui")
	assert.Equal(t, "interface", ui.Kind)
	assert.Equal(t, []property.Type{
		property.Prim("speed", value.Float),
		property.Struct("tint", property.Prim("r", value.Float), property.Prim("g", value.Float)),
		property.ArrayOf("path", 2, property.Prim("", value.Vec3f)),
	}, ui.Inputs)
	require.Contains(t, ui.Values, "speed")
	assert.True(t, ui.Values["speed"].Equals(cty.NumberFloatVal(2.5)).True())
	assert.Equal(t, 2, ui.Values["path"].LengthInt())

	double := node(t, m, "double")
	assert.Equal(t, "speed * 2", double.Expression)
	assert.Equal(t, value.Float, double.Output)

	bounce := node(t, m, "bounce")
	assert.Equal(t, []*config.Channel{{Name: "y", Timestamps: "times", Keyframes: "heights", Easing: "out_bounce"}}, bounce.Channels)

	assert.Equal(t, "console", node(t, m, "cube").Object)
	assert.Equal(t, "add", node(t, m, "add").Script)
	assert.Empty(t, node(t, m, "clock").Values)
}

func TestLoader_MergesFiles(t *testing.T) {
	dir := writeScene(t, map[string]string{
		"a.hcl": `node "timer" "one" {}`,
		"b.hcl": `node "timer" "two" {}`,
		"c.txt": `not hcl at all`,
	})
	m, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, m.Nodes, 2)
	assert.Equal(t, "one", m.Nodes[0].Name)
	assert.Equal(t, "two", m.Nodes[1].Name)
}

func TestLoader_Errors(t *testing.T) {
	input := func(typ string) string {
		return "node \"interface\" \"i\" {\n  input \"a\" { type = " + typ + " }\n}\n"
	}
	cases := map[string]struct {
		src  string
		want string
	}{
		"syntax":            {src: `node "timer" {`, want: "failed to parse"},
		"unknown block":     {src: `widget "x" {}`, want: "failed to decode"},
		"unknown attribute": {src: `node "timer" "t" { speed = 1 }`, want: "failed to decode"},
		"unknown keyword":   {src: input("decimal"), want: `unknown primitive type "decimal"`},
		"bad constructor":   {src: input("map(float)"), want: `unknown type constructor function "map"`},
		"bad array length":  {src: input("array(float, 0)"), want: "positive length"},
		"array arg count":   {src: input("array(float)"), want: "element type and a length"},
		"struct arg":        {src: input("struct(float)"), want: "object argument"},
		"dup struct field":  {src: input("struct({ x = float, x = int32 })"), want: "twice"},
		"bad output":        {src: `node "derived" "d" { output = struct }`, want: "output must be a primitive kind keyword"},
		"values not object": {src: `node "timer" "t" { values = [1] }`, want: "values must be an object"},
		"values use vars":   {src: `node "timer" "t" { values = { a = other.b } }`, want: "invalid values"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewLoader().LoadBytes(context.Background(), []byte(tc.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoader_NoFiles(t *testing.T) {
	dir := writeScene(t, map[string]string{"readme.md": "# empty"})
	_, err := NewLoader().Load(context.Background(), dir)
	assert.ErrorContains(t, err, "no .hcl scene files")

	_, err = NewLoader().Load(context.Background(), filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

// stripValues separates cty values, which are compared semantically, from
// the rest of the model.
func stripValues(m *config.Model) map[string]map[string]cty.Value {
	out := map[string]map[string]cty.Value{}
	for _, n := range m.Nodes {
		out[n.Name] = n.Values
		n.Values = nil
	}
	return out
}

func TestSaver_RoundTrip(t *testing.T) {
	ctx := context.Background()
	original, err := NewLoader().LoadBytes(ctx, []byte(sampleScene), "sample.hcl")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewSaver().Save(ctx, &buf, original))

	reloaded, err := NewLoader().LoadBytes(ctx, buf.Bytes(), "saved.hcl")
	require.NoError(t, err, "saved scene:\n%s", buf.String())

	wantValues := stripValues(original)
	gotValues := stripValues(reloaded)
	assert.Equal(t, original, reloaded)

	require.Len(t, gotValues, len(wantValues))
	for name, want := range wantValues {
		got := gotValues[name]
		require.Len(t, got, len(want), "node %s", name)
		for attr, v := range want {
			assert.True(t, got[attr].Equals(v).True(), "node %s value %s: got %#v want %#v", name, attr, got[attr], v)
		}
	}
}

func TestSaver_Format(t *testing.T) {
	m := &config.Model{
		DataArrays: []*config.DataArray{{Name: "empty"}},
		Nodes: []*config.Node{{
			Kind:   "interface",
			Name:   "ui",
			Inputs: []property.Type{property.Prim("speed", value.Float)},
			Values: map[string]cty.Value{"speed": value.Of(float32(0.1)).ToCty()},
		}},
		Links: []*config.Link{{From: "ui.inputs.speed", To: "x.inputs.y", Weak: true}},
	}
	var buf bytes.Buffer
	require.NoError(t, NewSaver().Save(context.Background(), &buf, m))
	out := buf.String()

	assert.Contains(t, out, `dataarray "empty" {`)
	assert.Contains(t, out, `data = []`)
	assert.Contains(t, out, `node "interface" "ui" {`)
	assert.Contains(t, out, `type = float`)
	assert.Contains(t, out, `speed = 0.1`)
	assert.Contains(t, out, `weak = true`)
}
