// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestValue_KindAndZero(t *testing.T) {
	for k := Bool; k < Struct; k++ {
		t.Run(k.String(), func(t *testing.T) {
			z := Zero(k)
			require.True(t, z.IsValid())
			assert.Equal(t, k, z.Kind())
		})
	}
	assert.False(t, Zero(Struct).IsValid())
	assert.Equal(t, Invalid, Value{}.Kind())
}

func TestValue_Equal(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	testCases := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"same int32", Of(int32(4)), Of(int32(4)), true},
		{"different int32", Of(int32(4)), Of(int32(5)), false},
		{"int32 vs int64", Of(int32(4)), Of(int64(4)), false},
		{"vectors", Of(V3f{1, 2, 3}), Of(V3f{1, 2, 3}), true},
		{"float arrays", Of(Floats{1, 2}), Of(Floats{1, 2}), true},
		{"float arrays differ in length", Of(Floats{1, 2}), Of(Floats{1}), false},
		{"float array vs float", Of(Floats{1}), Of(float32(1)), false},
		{"float vs float array", Of(float32(1)), Of(Floats{1}), false},
		{"invalid values", Value{}, Value{}, true},
		{"NaN equals NaN", Of(nan), Of(nan), true},
		{"NaN vs zero", Of(nan), Of(float32(0)), false},
		{"signed zeros differ", Of(float32(0)), Of(negZero), false},
		{"vectors holding NaN", Of(V2f{nan, 1}), Of(V2f{nan, 1}), true},
		{"vec4 holding NaN", Of(V4f{1, 2, 3, nan}), Of(V4f{1, 2, 3, nan}), true},
		{"float arrays holding NaN", Of(Floats{1, nan}), Of(Floats{1, nan}), true},
		{"vec3 vs vec2", Of(V3f{1, 2, 0}), Of(V2f{1, 2}), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, tc.a.Equal(tc.b))
		})
	}
}

func TestValue_FloatsAreCopied(t *testing.T) {
	src := Floats{1, 2, 3}
	v := Of(src)
	src[0] = 42

	got, ok := As[Floats](v)
	require.True(t, ok)
	assert.Equal(t, Floats{1, 2, 3}, got)

	got[1] = 42
	again, _ := As[Floats](v)
	assert.Equal(t, Floats{1, 2, 3}, again)
}

func TestValue_As(t *testing.T) {
	v := Of(int64(7))
	n, ok := As[int64](v)
	require.True(t, ok)
	assert.Equal(t, int64(7), n)

	_, ok = As[int32](v)
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("vec3i")
	require.True(t, ok)
	assert.Equal(t, Vec3i, k)

	_, ok = ParseKind("struct")
	assert.False(t, ok, "structural kinds need a shape")

	_, ok = ParseKind("double")
	assert.False(t, ok)
}

func TestValue_CtyRoundTrip(t *testing.T) {
	values := []Value{
		Of(true),
		Of(int32(-3)),
		Of(int64(1) << 40),
		Of(float32(0.5)),
		Of(V2f{1, 2}),
		Of(V3f{1, 2, 3}),
		Of(V4f{1, 2, 3, 4}),
		Of(V2i{1, 2}),
		Of(V3i{1, 2, 3}),
		Of(V4i{1, 2, 3, 4}),
		Of("hello"),
		Of(Floats{0.25, 0.5}),
		Of(Floats{}),
	}

	for _, v := range values {
		t.Run(v.Kind().String(), func(t *testing.T) {
			back, err := FromCty(v.Kind(), v.ToCty())
			require.NoError(t, err)
			assert.True(t, v.Equal(back), "got %#v", back)
		})
	}
}

func TestFromCty_Errors(t *testing.T) {
	testCases := []struct {
		name string
		kind Kind
		in   cty.Value
	}{
		{"null", Float, cty.NullVal(cty.Number)},
		{"unknown", Float, cty.UnknownVal(cty.Number)},
		{"fraction into int", Int32, cty.NumberFloatVal(1.5)},
		{"int32 overflow", Int32, cty.NumberIntVal(1 << 40)},
		{"wrong vector length", Vec3f, cty.TupleVal([]cty.Value{cty.NumberIntVal(1)})},
		{"string into bool", Bool, cty.StringVal("maybe")},
		{"structural kind", Struct, cty.EmptyObjectVal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromCty(tc.kind, tc.in)
			assert.Error(t, err)
		})
	}
}

func TestFromCty_AcceptsTuples(t *testing.T) {
	v, err := FromCty(Vec3i, cty.TupleVal([]cty.Value{
		cty.NumberIntVal(1), cty.NumberIntVal(2), cty.NumberIntVal(3),
	}))
	require.NoError(t, err)
	assert.True(t, Of(V3i{1, 2, 3}).Equal(v))
}
