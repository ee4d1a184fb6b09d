// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package scheduler runs one update pass over a scene-logic graph.
//
// # How It Works
//
// Every pass follows the same five steps:
//  1. **Order:** reuse the cached topological order or rebuild it. A strong
//     cycle aborts the pass before anything runs; no dirty flag is cleared.
//  2. **Seed:** values written since the last pass (host edits, new links)
//     flow along the strong links that leave them. A target whose value
//     really changes marks its node dirty.
//  3. **Walk:** nodes run in topological order, but only if dirty. After a
//     node runs, its changed values flow along its outgoing strong links,
//     dirtying downstream nodes that are still ahead in the order.
//  4. **Commit weak links:** every weak link copies its source into its
//     target. Targets that change are dirty for the *next* pass; nothing
//     runs twice within one pass.
//  5. **Report:** the caller receives a Result describing the pass.
//
// A node that fails aborts the rest of the walk and skips step 4. Values
// already propagated stay committed, the failing node stays dirty, and
// nodes not yet visited keep their dirty flags.
//
// # Relationship with Other Components
//
//   - **Node Store:** resolves node and property handles
//   - **Link Store:** supplies the strong and weak links, oldest first
//   - **Topology Cache:** owns the execution order; the engine invalidates it
package scheduler
