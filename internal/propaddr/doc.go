// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package propaddr parses and renders property addresses, the strings scene
files use to name one property of one node:

	node.tree.field[index].field

The first segment is the node name, the second is the tree ("inputs" or
"outputs") and the rest walk the tree. An index selects an array element;
nested arrays repeat it, e.g. `grid[1][2]`.
*/
package propaddr
