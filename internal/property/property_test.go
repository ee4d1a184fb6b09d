// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package property

import (
	"math"
	"testing"

	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type fakeOwner struct{ dirty int }

func (o *fakeOwner) NodeID() handle.NodeID { return 1 }
func (o *fakeOwner) MarkDirty()            { o.dirty++ }

type fakeLinks map[handle.PropertyID]bool

func (l fakeLinks) HasIncoming(id handle.PropertyID) bool { return l[id] }

func sampleType() Type {
	return Struct("inputs",
		Prim("speed", value.Float),
		Struct("transform",
			Prim("position", value.Vec3f),
			Prim("visible", value.Bool),
		),
		ArrayOf("items", 3, Prim("item", value.Int32)),
	)
}

func newSample(t *testing.T, role Role) (*Property, *fakeOwner, fakeLinks) {
	t.Helper()
	owner := &fakeOwner{}
	links := fakeLinks{}
	root, err := NewTree(sampleType(), role, owner, links, &handle.Sequence{})
	require.NoError(t, err)
	return root, owner, links
}

func TestNewTree_Shape(t *testing.T) {
	root, _, _ := newSample(t, ScriptInput)

	assert.Equal(t, value.Struct, root.Kind())
	assert.Equal(t, 3, root.ChildCount())

	items, err := root.ChildByName("items")
	require.NoError(t, err)
	assert.Equal(t, value.Array, items.Kind())
	assert.Equal(t, 3, items.ChildCount())

	second, err := items.Child(1)
	require.NoError(t, err)
	assert.Equal(t, "inputs.items[1]", second.Path())

	pos, err := root.ChildByName("transform")
	require.NoError(t, err)
	leaf, err := pos.ChildByName("position")
	require.NoError(t, err)
	assert.Equal(t, "inputs.transform.position", leaf.Path())

	v, err := leaf.Value()
	require.NoError(t, err)
	assert.True(t, value.Zero(value.Vec3f).Equal(v))
}

func TestProperty_TypeRoundTrip(t *testing.T) {
	root, _, _ := newSample(t, ScriptInput)
	assert.Equal(t, sampleType(), root.Type())
}

func TestNewTree_IDsAreUnique(t *testing.T) {
	root, _, _ := newSample(t, ScriptInput)
	seen := map[handle.PropertyID]bool{}
	root.Walk(func(p *Property) {
		assert.False(t, seen[p.ID()], "duplicate id %s", p.ID())
		seen[p.ID()] = true
	})
	assert.Len(t, seen, 9)
}

func TestNewTree_InvalidType(t *testing.T) {
	testCases := []struct {
		name string
		typ  Type
	}{
		{"duplicate field", Struct("in", Prim("a", value.Float), Prim("a", value.Int32))},
		{"unnamed field", Struct("in", Prim("", value.Float))},
		{"empty array", ArrayOf("arr", 0, Prim("x", value.Float))},
		{"invalid kind", Type{Name: "x"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTree(tc.typ, ScriptInput, nil, nil, &handle.Sequence{})
			assert.Error(t, err)
		})
	}
}

func TestProperty_Lookup_NotFound(t *testing.T) {
	root, _, _ := newSample(t, ScriptInput)

	_, err := root.ChildByName("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = root.Child(7)
	assert.ErrorIs(t, err, ErrNotFound)

	items, _ := root.ChildByName("items")
	_, err = items.ChildByName("item")
	assert.ErrorIs(t, err, ErrNotFound, "array elements are addressed by index only")
}

func TestProperty_Leaves(t *testing.T) {
	root, _, _ := newSample(t, ScriptInput)

	var paths []string
	for _, l := range root.Leaves() {
		paths = append(paths, l.Path())
	}
	assert.Equal(t, []string{
		"inputs.speed",
		"inputs.transform.position",
		"inputs.transform.visible",
		"inputs.items[0]",
		"inputs.items[1]",
		"inputs.items[2]",
	}, paths)
}

func TestProperty_Set(t *testing.T) {
	t.Run("reports change and marks owner dirty", func(t *testing.T) {
		root, owner, _ := newSample(t, ScriptInput)
		speed, _ := root.ChildByName("speed")

		changed, err := speed.Set(value.Of(float32(2)))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, speed.Changed())
		assert.Equal(t, 1, owner.dirty)

		changed, err = speed.Set(value.Of(float32(2)))
		require.NoError(t, err)
		assert.False(t, changed, "same value is not a change")
		assert.Equal(t, 1, owner.dirty)
	})

	t.Run("rejects structural properties", func(t *testing.T) {
		root, _, _ := newSample(t, ScriptInput)
		_, err := root.Set(value.Of(float32(1)))
		assert.ErrorIs(t, err, ErrNotPrimitive)
		_, err = root.Value()
		assert.ErrorIs(t, err, ErrNotPrimitive)
	})

	t.Run("rejects output roles", func(t *testing.T) {
		root, _, _ := newSample(t, ScriptOutput)
		speed, _ := root.ChildByName("speed")
		_, err := speed.Set(value.Of(float32(1)))
		assert.ErrorIs(t, err, ErrReadOnly)
	})

	t.Run("rejects linked inputs", func(t *testing.T) {
		root, owner, links := newSample(t, ScriptInput)
		speed, _ := root.ChildByName("speed")
		links[speed.ID()] = true

		_, err := speed.Set(value.Of(float32(1)))
		assert.ErrorIs(t, err, ErrLinked)
		assert.Zero(t, owner.dirty)
	})

	t.Run("rejects kind mismatch", func(t *testing.T) {
		root, _, _ := newSample(t, ScriptInput)
		speed, _ := root.ChildByName("speed")
		_, err := speed.Set(value.Of(int32(1)))
		assert.ErrorIs(t, err, ErrKindMismatch)
	})
}

func TestProperty_SetNaNTwice(t *testing.T) {
	root, owner, _ := newSample(t, ScriptInput)
	speed, _ := root.ChildByName("speed")
	nan := value.Of(float32(math.NaN()))

	changed, err := speed.Set(nan)
	require.NoError(t, err)
	assert.True(t, changed)
	speed.ClearChanged()

	changed, err = speed.Set(nan)
	require.NoError(t, err)
	assert.False(t, changed, "a stored NaN is not rewritten")
	assert.False(t, speed.Changed())
	assert.Equal(t, 1, owner.dirty)
}

func TestProperty_WriteLeavesOwnerClean(t *testing.T) {
	root, owner, _ := newSample(t, ScriptOutput)
	speed, _ := root.ChildByName("speed")

	changed, err := speed.Write(value.Of(float32(3)))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Zero(t, owner.dirty)

	speed.ClearChanged()
	assert.False(t, speed.Changed())
}

func TestGetPut(t *testing.T) {
	root, _, _ := newSample(t, ScriptOutput)

	changed, err := Put(root, "speed", float32(1.5))
	require.NoError(t, err)
	assert.True(t, changed)

	got, err := Get[float32](root, "speed")
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), got)

	_, err = Get[int32](root, "speed")
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = Get[float32](root, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProperty_CtyAndAssign(t *testing.T) {
	root, _, _ := newSample(t, ScriptInput)

	err := root.Assign(cty.ObjectVal(map[string]cty.Value{
		"speed": cty.NumberFloatVal(0.5),
		"transform": cty.ObjectVal(map[string]cty.Value{
			"position": cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2), cty.NumberIntVal(3)}),
		}),
		"items": cty.TupleVal([]cty.Value{cty.NumberIntVal(7), cty.NumberIntVal(8), cty.NumberIntVal(9)}),
	}))
	require.NoError(t, err)

	speed, err := Get[float32](root, "speed")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), speed)

	items, _ := root.ChildByName("items")
	last, _ := items.Child(2)
	v, _ := last.Value()
	assert.True(t, value.Of(int32(9)).Equal(v))

	out := root.Cty()
	assert.True(t, out.GetAttr("items").Index(cty.NumberIntVal(0)).RawEquals(cty.NumberIntVal(7)))
	assert.True(t, out.GetAttr("transform").GetAttr("visible").RawEquals(cty.False))

	t.Run("unknown field", func(t *testing.T) {
		err := root.Assign(cty.ObjectVal(map[string]cty.Value{"bogus": cty.True}))
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("wrong array length", func(t *testing.T) {
		err := root.Assign(cty.ObjectVal(map[string]cty.Value{
			"items": cty.TupleVal([]cty.Value{cty.NumberIntVal(1)}),
		}))
		assert.Error(t, err)
	})
}

func TestRole_Legality(t *testing.T) {
	assert.True(t, ScriptOutput.CanSource())
	assert.True(t, AnimationOutput.CanSource())
	assert.True(t, Interface.CanSource())
	assert.False(t, ScriptInput.CanSource())
	assert.False(t, BindingInput.CanSource())

	assert.True(t, ScriptInput.CanTarget())
	assert.True(t, BindingInput.CanTarget())
	assert.True(t, AnimationInput.CanTarget())
	assert.True(t, Interface.CanTarget())
	assert.False(t, ScriptOutput.CanTarget())
	assert.False(t, AnimationOutput.CanTarget())
}
