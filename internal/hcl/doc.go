// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hcl provides the concrete HCL implementation of the scene Loader
// and Saver interfaces defined in the `config` package.
//
// A scene file holds three kinds of top-level blocks:
//
//	dataarray "times" {
//	  data = [0, 1, 2]
//	}
//
//	node "interface" "ui" {
//	  input "speed" { type = float }
//	  input "tint"  { type = struct({ r = float, g = float }) }
//	  values = { speed = 2.5 }
//	}
//
//	link {
//	  from = "ui.inputs.speed"
//	  to   = "double.inputs.x"
//	  weak = false
//	}
//
// Type expressions are kind keywords (bool, int32, int64, float, vec2f,
// vec3f, vec4f, vec2i, vec3i, vec4i, string, floatarray), `struct({...})`
// and `array(<type>, <length>)`.
package hcl
