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

//go:generate go run ../cmd/musgen

import (
	"fmt"
	"strings"
)

// Atom is the tagged-variant data model spec.md §9 calls for: a node
// (Type + Name) or a link (Type + an ordered Outgoing set), never both.
// It is the unit of storage in a Hypergraph; the planner itself only ever
// holds Handles and asks the Hypergraph to resolve them to Atoms.
type Atom struct {
	Type     Type
	Name     string   // set for nodes, empty for links
	Outgoing []Handle // set for links, nil for nodes
}

// NewNode constructs a node atom.
func NewNode(t Type, name string) Atom {
	return Atom{Type: t, Name: name}
}

// NewLink constructs a link atom with the given ordered children.
func NewLink(t Type, outgoing ...Handle) Atom {
	return Atom{Type: t, Outgoing: outgoing}
}

// IsNode reports whether a is a node atom.
func (a Atom) IsNode() bool {
	return IsNodeType(a.Type)
}

// IsLink reports whether a is a link atom.
func (a Atom) IsLink() bool {
	return IsLinkType(a.Type)
}

// ContentKey returns the canonical string used to derive a's Handle via
// HandleFromContent. It is the Atom analogue of Concept.Tuple() in the
// teacher's content-addressed model: two atoms built independently with
// the same type/name (nodes) or type/children (links) produce identical
// keys, and therefore identical handles.
func (a Atom) ContentKey() string {
	if a.IsNode() {
		return fmt.Sprintf("N:%d:%s", a.Type, a.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "L:%d", a.Type)
	for _, h := range a.Outgoing {
		fmt.Fprintf(&b, ":%d", h)
	}
	return b.String()
}

// Handle derives this atom's content-addressed Handle.
func (a Atom) Handle() Handle {
	return HandleFromContent(a.ContentKey())
}
