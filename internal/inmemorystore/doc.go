// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package inmemorystore provides an in-memory implementation of the
// nodestore.Store interface.
//
// # Characteristics
//
//   - **Ordered:** nodes are kept in creation order, which the topology uses
//     to break ties between independent nodes
//   - **Indexed:** lookups by handle, by name and by property handle are
//     O(1) average case
//   - **Thread-Safe:** an RWMutex guards the node list and name index; the
//     property index uses sync.Map because it is read on every propagated
//     value and written only when nodes come and go
//
// The engine itself is single-threaded. Thread-safety here lets read-only
// observers (the stats endpoint, tests) inspect a store without racing a
// concurrent writer.
package inmemorystore
