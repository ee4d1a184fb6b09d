// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package registry provides the central "glue" between scene files and Go
// code.
//
// The Registry maps the string identifiers used in scenes (e.g. the
// `script = "add"` of a script node or the `object = "console"` of a
// binding node) to the Go factories that implement them. Modules populate it
// at startup; the scene package reads from it while building nodes.
package registry
