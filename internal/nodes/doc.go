// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package nodes provides the built-in node kinds. Each constructor returns
// a logicnode.Blueprint; the engine treats every kind the same way through
// logicnode.Behavior.
//
// # Kinds
//
//   - **script:** a host-provided Go function with declared input and output
//     types
//   - **timer:** a free-running clock publishing microseconds
//   - **animation:** keyframe channels over data arrays, eased with gween
//   - **binding:** forwards changed inputs to an external scene object
//   - **interface:** linkable pass-through properties with no behavior
//   - **derived:** an HCL expression over the node's inputs
//   - **dataarray:** a float array referenced by animations
package nodes
