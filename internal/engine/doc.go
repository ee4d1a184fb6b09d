// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package engine is the host-facing facade of the scene-logic runtime.
//
// # Why Engine Exists
//
// An Engine composes the node store, the link store, the topology cache and
// the scheduler into one object with a small API:
//   - **Nodes:** CreateNode, Destroy, Node, Nodes, FindProperty
//   - **Links:** Link, LinkWeak, Unlink, IsLinked, AllLinks
//   - **Frames:** Update, LastReport, Stats
//   - **Diagnostics:** Errors, plus observers notified after every Update
//
// Every operation returns its error directly. The same errors are also kept
// in a per-call list (Errors) that is reset at the start of each call, so
// hosts that prefer polling can inspect what went wrong last.
//
// # Concurrency
//
// An Engine is single-threaded: calls must not overlap, and mutating calls
// made from inside Update (for example from a node behavior) are rejected.
// Separate engines share no mutable state and can run on separate
// goroutines.
package engine
