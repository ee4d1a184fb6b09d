// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package value defines the closed set of values a property can hold.
package value

// Kind enumerates every type a property may have. Struct and Array are
// structural: properties of those kinds hold children, never a Value.
type Kind int

const (
	Invalid Kind = iota
	Bool
	Int32
	Int64
	Float
	Vec2f
	Vec3f
	Vec4f
	Vec2i
	Vec3i
	Vec4i
	String
	FloatArray
	Struct
	Array
)

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	Bool:       "bool",
	Int32:      "int32",
	Int64:      "int64",
	Float:      "float",
	Vec2f:      "vec2f",
	Vec3f:      "vec3f",
	Vec4f:      "vec4f",
	Vec2i:      "vec2i",
	Vec3i:      "vec3i",
	Vec4i:      "vec4i",
	String:     "string",
	FloatArray: "floatarray",
	Struct:     "struct",
	Array:      "array",
}

// String returns the keyword used for the kind in scene files.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// IsPrimitive reports whether properties of this kind carry a value and can
// take part in links.
func (k Kind) IsPrimitive() bool {
	return k > Invalid && k < Struct
}

// ParseKind resolves a primitive kind keyword. Structural kinds are not
// accepted here since they need a shape.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s && k.IsPrimitive() {
			return k, true
		}
	}
	return Invalid, false
}

// vectorLen returns the component count for vector kinds and 0 otherwise.
func (k Kind) vectorLen() int {
	switch k {
	case Vec2f, Vec2i:
		return 2
	case Vec3f, Vec3i:
		return 3
	case Vec4f, Vec4i:
		return 4
	}
	return 0
}
