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

// HandleSet is a small helper for deduplicating handles while preserving
// no particular order; callers that need order keep a parallel slice.
type HandleSet map[Handle]struct{}

// NewHandleSet builds a HandleSet from the given handles.
func NewHandleSet(hs ...Handle) HandleSet {
	s := make(HandleSet, len(hs))
	for _, h := range hs {
		s[h] = struct{}{}
	}
	return s
}

// Add inserts h into the set.
func (s HandleSet) Add(h Handle) {
	s[h] = struct{}{}
}

// Has reports whether h is in the set.
func (s HandleSet) Has(h Handle) bool {
	_, ok := s[h]
	return ok
}

// Pattern is the planner's view of a query: the set of variables to
// ground, the mandatory clauses that must all match, the optional clauses
// that may or may not, and the evaluatable terms mixed into either. This
// corresponds to opencog's PatternLink contents as consumed by
// setup_neighbor_search / setup_no_search / setup_link_type_search /
// setup_variable_search (original_source/opencog/query/InitiateSearchCB.cc).
type Pattern struct {
	// Vars is the variable set this pattern grounds.
	Vars *Variables

	// Mandatory holds the clauses every grounding must satisfy.
	Mandatory []Handle

	// Optional holds clauses that participate in the search but whose
	// absence does not disqualify a grounding (e.g. the body of an
	// AbsentLink elsewhere in the match engine's own logic).
	Optional []Handle

	// Evaluatable marks evaluatable terms (EvaluationLink-shaped or
	// similar) and the clauses that hold them, rather than plain
	// groundable structure. The starter finder never descends into a
	// handle in this set, and a clause in it is never a usable starter
	// clause.
	Evaluatable HandleSet
}

// NewPattern returns an empty Pattern with an initialized Variables set.
func NewPattern() *Pattern {
	return &Pattern{
		Vars:        NewVariables(),
		Evaluatable: make(HandleSet),
	}
}

// AllClauses returns mandatory and optional clauses concatenated, mandatory
// first. Several planner stages (thinnest-clause selection, choice setup)
// want to walk "every clause" without caring which kind it is.
func (p *Pattern) AllClauses() []Handle {
	all := make([]Handle, 0, len(p.Mandatory)+len(p.Optional))
	all = append(all, p.Mandatory...)
	all = append(all, p.Optional...)
	return all
}

// Choice is one independent seed for a search: a clause to anchor on, the
// starter term within that clause to ground first, and (once a Strategy
// has run) the concrete starting atom. A Pattern with a
// top-level ChoiceLink among its clauses produces one Choice per
// ChoiceLink branch, any of which is sufficient to satisfy that clause
// (original_source find_starter, the ChoiceLink branch).
type Choice struct {
	// Clause is the mandatory or optional clause this choice seeds.
	Clause Handle

	// StartTerm is the sub-term of Clause that the starter is drawn from.
	StartTerm Handle

	// BestStart is the chosen starting atom, set once a Strategy commits
	// to it. Undefined until then.
	BestStart Handle

	// Strategy names which of the four strategies produced BestStart, for
	// diagnostics only.
	Strategy string
}

// dedupKey identifies a Choice for duplicate elimination: two choices with
// the same clause, starting atom, and starting term are redundant even if
// discovered via different recursive paths (original_source TODO in
// setup_neighbor_search notes this exact duplicate).
type dedupKey struct {
	Clause    Handle
	BestStart Handle
	StartTerm Handle
}

// DedupChoices removes Choice records that are exact duplicates under
// dedupKey, preserving the first occurrence's order.
func DedupChoices(choices []Choice) []Choice {
	seen := make(map[dedupKey]struct{}, len(choices))
	out := make([]Choice, 0, len(choices))
	for _, c := range choices {
		k := dedupKey{Clause: c.Clause, BestStart: c.BestStart, StartTerm: c.StartTerm}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Definition is a named, reusable sub-pattern: the body a DefinedSchemaNode
// expands to just-in-time (spec.md §4.7). It mirrors how opencog resolves
// a DefinedSchemaNode to the PatternLink stored under it (jit_analyze).
type Definition struct {
	Name Handle
	Body Handle
}

// DefinitionRegistry resolves a defined term's name to its body. The
// planner never mutates a hypergraph to do this; it asks the registry
// instead, keeping JIT expansion independent of any particular backend.
type DefinitionRegistry interface {
	// Resolve returns the body bound to name, or ok=false if name is not
	// a registered definition.
	Resolve(name Handle) (body Handle, ok bool)
}

// MapDefinitionRegistry is the simplest DefinitionRegistry: a static map
// of name to body, suitable for tests and for callers that already hold
// every definition in memory.
type MapDefinitionRegistry map[Handle]Handle

// Resolve implements DefinitionRegistry.
func (m MapDefinitionRegistry) Resolve(name Handle) (Handle, bool) {
	body, ok := m[name]
	return body, ok
}
