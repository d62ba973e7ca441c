// Copyright 2026 Nexusgraph Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hypergraph defines the read-only atom store the planner queries
// while it works, and a couple of implementations of it.
//
// # Constructor Return Type Pattern
//
// Public constructors return the concrete backend type, which satisfies
// the Hypergraph interface:
//
//	hg := hypergraph.NewMemory()            // returns *hypergraph.Memory
//	store, err := badger.NewMemoryStore()   // returns *badger.Store
//
// # Implementations
//
//   - memory.go: an in-memory reference implementation, used directly by
//     planner tests.
//   - badger/: a persistent, type-indexed implementation backed by
//     BadgerDB.
//
// # Thread Safety
//
// Implementations must support concurrent reads; the planner never
// mutates a Hypergraph.
package hypergraph
