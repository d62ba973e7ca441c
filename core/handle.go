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

package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// Handle is an opaque reference to an atom held by a Hypergraph. Planner
// code never looks inside a Handle; it is always resolved through the
// Hypergraph collaborator.
type Handle uint64

// Undefined is the zero Handle. It never refers to a real atom; Starter
// Finder and the strategies return it to signal "no starter found".
const Undefined Handle = 0

// IsValid reports whether h is not Undefined.
func (h Handle) IsValid() bool {
	return h != Undefined
}

// HandleFromContent derives a deterministic Handle from a canonical
// content string, using a 64-bit BLAKE2b digest. Two atoms with identical
// content (see Atom.ContentKey) always resolve to the same Handle, without
// requiring a shared intern table — this is what lets hypergraph/badger
// assign handles independently of insertion order.
func HandleFromContent(content string) Handle {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(content))
	sum := h.Sum(nil)
	return Handle(binary.LittleEndian.Uint64(sum))
}
