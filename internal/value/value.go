// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package value

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

type (
	V2f [2]float32
	V3f [3]float32
	V4f [4]float32
	V2i [2]int32
	V3i [3]int32
	V4i [4]int32
	// Floats is the payload of a FloatArray value.
	Floats []float32
)

// Primitive is the set of Go types a Value can wrap.
type Primitive interface {
	bool | int32 | int64 | float32 | V2f | V3f | V4f | V2i | V3i | V4i | string | Floats
}

// Value is an immutable primitive value. The zero Value is invalid.
type Value struct {
	v any
}

// Of wraps x. Float arrays are copied so the caller keeps ownership of its
// slice.
func Of[T Primitive](x T) Value {
	if f, ok := any(x).(Floats); ok {
		return Value{v: Floats(slices.Clone(f))}
	}
	return Value{v: x}
}

// As unwraps v when it holds a T.
func As[T Primitive](v Value) (T, bool) {
	x, ok := v.v.(T)
	if f, isFloats := any(x).(Floats); ok && isFloats {
		return any(Floats(slices.Clone(f))).(T), true
	}
	return x, ok
}

// Zero returns the default value for a primitive kind.
func Zero(k Kind) Value {
	switch k {
	case Bool:
		return Of(false)
	case Int32:
		return Of(int32(0))
	case Int64:
		return Of(int64(0))
	case Float:
		return Of(float32(0))
	case Vec2f:
		return Of(V2f{})
	case Vec3f:
		return Of(V3f{})
	case Vec4f:
		return Of(V4f{})
	case Vec2i:
		return Of(V2i{})
	case Vec3i:
		return Of(V3i{})
	case Vec4i:
		return Of(V4i{})
	case String:
		return Of("")
	case FloatArray:
		return Of(Floats{})
	}
	return Value{}
}

// Kind reports the kind of the wrapped value.
func (v Value) Kind() Kind {
	switch v.v.(type) {
	case bool:
		return Bool
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float
	case V2f:
		return Vec2f
	case V3f:
		return Vec3f
	case V4f:
		return Vec4f
	case V2i:
		return Vec2i
	case V3i:
		return Vec3i
	case V4i:
		return Vec4i
	case string:
		return String
	case Floats:
		return FloatArray
	}
	return Invalid
}

// IsValid reports whether v holds anything.
func (v Value) IsValid() bool {
	return v.v != nil
}

// Equal is structural equality. Values of different kinds are never equal.
// Floats compare by bit pattern, so NaN equals itself and +0 differs from -0.
func (v Value) Equal(o Value) bool {
	switch a := v.v.(type) {
	case float32:
		b, ok := o.v.(float32)
		return ok && sameFloat(a, b)
	case V2f:
		b, ok := o.v.(V2f)
		return ok && slices.EqualFunc(a[:], b[:], sameFloat)
	case V3f:
		b, ok := o.v.(V3f)
		return ok && slices.EqualFunc(a[:], b[:], sameFloat)
	case V4f:
		b, ok := o.v.(V4f)
		return ok && slices.EqualFunc(a[:], b[:], sameFloat)
	case Floats:
		b, ok := o.v.(Floats)
		return ok && slices.EqualFunc(a, b, sameFloat)
	}
	if _, ok := o.v.(Floats); ok {
		return false
	}
	return v.v == o.v
}

func sameFloat(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

// GoString renders v for debugging.
func (v Value) GoString() string {
	return fmt.Sprintf("value.Value{%s:%s}", v.Kind(), v.String())
}

func (v Value) String() string {
	switch x := v.v.(type) {
	case nil:
		return "<invalid>"
	case string:
		return strconv.Quote(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case V2f:
		return floatsString(x[:])
	case V3f:
		return floatsString(x[:])
	case V4f:
		return floatsString(x[:])
	case Floats:
		return floatsString(x)
	case V2i:
		return intsString(x[:])
	case V3i:
		return intsString(x[:])
	case V4i:
		return intsString(x[:])
	default:
		return fmt.Sprint(x)
	}
}

func floatsString(f []float32) string {
	parts := make([]string, len(f))
	for i, x := range f {
		parts[i] = strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func intsString(n []int32) string {
	parts := make([]string, len(n))
	for i, x := range n {
		parts[i] = strconv.FormatInt(int64(x), 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
