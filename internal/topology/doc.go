// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package topology derives the execution order of logic nodes from their
strong links.

A strong link from a property of node A to a property of node B is an edge
A -> B: A must run before B within an update. Weak links never contribute
edges, which is what lets them close feedback loops.

Ordering uses Kahn's algorithm. Whenever several nodes are ready at once the
one created first is taken, so the order is a pure function of the node
set, their creation order and the strong edges. A strong cycle leaves some
nodes unsorted; Sort then returns a *CycleError naming them and no partial
order.

The Cache type holds the last computed order and is invalidated by the
engine whenever nodes or strong links come or go.
*/
package topology
