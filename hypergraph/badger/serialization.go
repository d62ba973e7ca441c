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

package badger

import (
	"github.com/nexusgraph/hyperplan/core"
)

// MarshalAtom serializes an Atom to bytes using the generated mus-go
// codec (see core/atom.go's //go:generate directive).
func MarshalAtom(a core.Atom) []byte {
	buf := make([]byte, core.AtomMUS.Size(a))
	core.AtomMUS.Marshal(a, buf)
	return buf
}

// UnmarshalAtom deserializes an Atom from bytes.
func UnmarshalAtom(data []byte) (core.Atom, error) {
	a, _, err := core.AtomMUS.Unmarshal(data)
	return a, err
}
