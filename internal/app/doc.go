// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package app wires a scene-logic run together: it loads the scene, builds
// the engine through the registry, runs the requested frames and optionally
// dumps, saves and publishes the results. It knows nothing about the CLI.
package app
