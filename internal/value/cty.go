// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package value

import (
	"fmt"
	"math"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ToCty converts v into its cty representation. Vectors and float arrays
// become lists of numbers.
func (v Value) ToCty() cty.Value {
	switch x := v.v.(type) {
	case bool:
		return cty.BoolVal(x)
	case int32:
		return cty.NumberIntVal(int64(x))
	case int64:
		return cty.NumberIntVal(x)
	case float32:
		return floatVal(x)
	case string:
		return cty.StringVal(x)
	case V2f:
		return floatList(x[:])
	case V3f:
		return floatList(x[:])
	case V4f:
		return floatList(x[:])
	case Floats:
		return floatList(x)
	case V2i:
		return intList(x[:])
	case V3i:
		return intList(x[:])
	case V4i:
		return intList(x[:])
	}
	return cty.NilVal
}

func floatList(f []float32) cty.Value {
	if len(f) == 0 {
		return cty.ListValEmpty(cty.Number)
	}
	vals := make([]cty.Value, len(f))
	for i, x := range f {
		vals[i] = floatVal(x)
	}
	return cty.ListVal(vals)
}

// floatVal keeps the shortest decimal form of x, so 0.1 stays 0.1 instead
// of its widened float64 expansion.
// NaN has no cty form and becomes null.
func floatVal(x float32) cty.Value {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return cty.NullVal(cty.Number)
	case math.IsInf(f, 0):
		return cty.NumberFloatVal(f)
	}
	return cty.MustParseNumberVal(strconv.FormatFloat(float64(x), 'g', -1, 32))
}

func intList(n []int32) cty.Value {
	vals := make([]cty.Value, len(n))
	for i, x := range n {
		vals[i] = cty.NumberIntVal(int64(x))
	}
	return cty.ListVal(vals)
}

// FromCty converts a cty value into a Value of kind k. Tuples and lists are
// accepted for vectors and float arrays; numbers must be whole for integer
// kinds.
func FromCty(k Kind, cv cty.Value) (Value, error) {
	if cv.IsNull() {
		return Value{}, fmt.Errorf("cannot use null as %s", k)
	}
	if !cv.IsWhollyKnown() {
		return Value{}, fmt.Errorf("cannot use unknown value as %s", k)
	}

	switch k {
	case Bool:
		var b bool
		if err := decode(cv, cty.Bool, &b); err != nil {
			return Value{}, err
		}
		return Of(b), nil
	case Int32:
		var n int32
		if err := decode(cv, cty.Number, &n); err != nil {
			return Value{}, err
		}
		return Of(n), nil
	case Int64:
		var n int64
		if err := decode(cv, cty.Number, &n); err != nil {
			return Value{}, err
		}
		return Of(n), nil
	case Float:
		var f float64
		if err := decode(cv, cty.Number, &f); err != nil {
			return Value{}, err
		}
		return Of(float32(f)), nil
	case String:
		var s string
		if err := decode(cv, cty.String, &s); err != nil {
			return Value{}, err
		}
		return Of(s), nil
	case FloatArray:
		var fs []float64
		if err := decode(cv, cty.List(cty.Number), &fs); err != nil {
			return Value{}, err
		}
		out := make(Floats, len(fs))
		for i, f := range fs {
			out[i] = float32(f)
		}
		return Of(out), nil
	case Vec2f, Vec3f, Vec4f:
		var fs []float64
		if err := decode(cv, cty.List(cty.Number), &fs); err != nil {
			return Value{}, err
		}
		if len(fs) != k.vectorLen() {
			return Value{}, fmt.Errorf("%s needs %d components, got %d", k, k.vectorLen(), len(fs))
		}
		return floatVector(k, fs), nil
	case Vec2i, Vec3i, Vec4i:
		var ns []int32
		if err := decode(cv, cty.List(cty.Number), &ns); err != nil {
			return Value{}, err
		}
		if len(ns) != k.vectorLen() {
			return Value{}, fmt.Errorf("%s needs %d components, got %d", k, k.vectorLen(), len(ns))
		}
		return intVector(k, ns), nil
	}
	return Value{}, fmt.Errorf("kind %s has no value representation", k)
}

func decode(cv cty.Value, want cty.Type, target any) error {
	converted, err := convert.Convert(cv, want)
	if err != nil {
		return fmt.Errorf("expected %s: %w", want.FriendlyName(), err)
	}
	if err := gocty.FromCtyValue(converted, target); err != nil {
		return err
	}
	return nil
}

func floatVector(k Kind, fs []float64) Value {
	switch k {
	case Vec2f:
		return Of(V2f{float32(fs[0]), float32(fs[1])})
	case Vec3f:
		return Of(V3f{float32(fs[0]), float32(fs[1]), float32(fs[2])})
	default:
		return Of(V4f{float32(fs[0]), float32(fs[1]), float32(fs[2]), float32(fs[3])})
	}
}

func intVector(k Kind, ns []int32) Value {
	switch k {
	case Vec2i:
		return Of(V2i{ns[0], ns[1]})
	case Vec3i:
		return Of(V3i{ns[0], ns[1], ns[2]})
	default:
		return Of(V4i{ns[0], ns[1], ns[2], ns[3]})
	}
}
