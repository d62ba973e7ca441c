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

// Variables describes the variable set of a Pattern: which handles are
// variables, and what, if anything, is known about the types they may be
// grounded to. This mirrors opencog's Variables class (see
// original_source/opencog/query/InitiateSearchCB.cc, setup_variable_search)
// without carrying over any of the unification machinery — the planner
// only ever reads type restrictions to estimate rarity (spec.md §1).
type Variables struct {
	// VarSeq holds variable handles in discovery order, so iteration is
	// deterministic across runs of the same pattern.
	VarSeq []Handle

	// SimpleTypeMap restricts a variable to one of a fixed set of atom
	// types. Absence from this map means "no simple type restriction".
	SimpleTypeMap map[Handle][]Type

	// DeepTypeMap records a deep structural type constraint: the variable
	// must be groundable against the sub-pattern named by the Handle
	// value. Recognized but never exploited, per spec.md §4.6 step 1 and
	// §9 ("not implemented; see users").
	DeepTypeMap map[Handle]Handle

	varSet map[Handle]struct{}
}

// NewVariables returns an empty Variables set.
func NewVariables() *Variables {
	return &Variables{
		SimpleTypeMap: make(map[Handle][]Type),
		DeepTypeMap:   make(map[Handle]Handle),
		varSet:        make(map[Handle]struct{}),
	}
}

// Add registers h as a variable, if it is not already one.
func (v *Variables) Add(h Handle) {
	if _, ok := v.varSet[h]; ok {
		return
	}
	v.varSet[h] = struct{}{}
	v.VarSeq = append(v.VarSeq, h)
}

// Has reports whether h is a variable in this set.
func (v *Variables) Has(h Handle) bool {
	_, ok := v.varSet[h]
	return ok
}

// Len returns the number of variables.
func (v *Variables) Len() int {
	return len(v.varSet)
}

// RestrictSimpleType records that h may only be grounded to one of types.
func (v *Variables) RestrictSimpleType(h Handle, types ...Type) {
	v.Add(h)
	v.SimpleTypeMap[h] = append(v.SimpleTypeMap[h], types...)
}

// RestrictDeepType records a deep structural type constraint on h.
func (v *Variables) RestrictDeepType(h, pattern Handle) {
	v.Add(h)
	v.DeepTypeMap[h] = pattern
}

// Extend merges other's variables and type restrictions into v, without
// duplicating variables already present. The JIT Expander does not call
// it: expansion carries the pattern's variable set over unchanged.
func (v *Variables) Extend(other *Variables) {
	if other == nil {
		return
	}
	for _, h := range other.VarSeq {
		v.Add(h)
	}
	for h, types := range other.SimpleTypeMap {
		v.SimpleTypeMap[h] = append(v.SimpleTypeMap[h], types...)
	}
	for h, pattern := range other.DeepTypeMap {
		v.DeepTypeMap[h] = pattern
	}
}
