// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config defines the format-agnostic scene model and the interfaces
// (Loader, Saver) for reading and writing it.
//
// A Model lists data arrays, nodes and links by name. It is the single
// source of truth for the scene package, which applies a Model to an engine
// and captures an engine back into one. Concrete formats, such as HCL, live
// in separate packages.
package config
