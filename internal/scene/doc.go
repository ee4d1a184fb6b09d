// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package scene moves scenes between the format-agnostic config.Model and a
// live engine.
//
// Apply builds data arrays, then nodes, then initial values, then links.
// It keeps going after a failure and reports every problem at once; whatever
// could be built stays in the engine. Capture goes the other way and records
// the engine's current nodes, input values and links.
package scene
