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

package planner

import (
	"github.com/nexusgraph/hyperplan/core"
	"github.com/nexusgraph/hyperplan/hypergraph"
)

// starterResult carries find_starter_recursive's (depth, startrm, width)
// triple, plus the starting atom itself. depth and startTerm are
// "inherited" values threaded down from the caller and only overwritten
// by a branch that found something strictly better (thinner, or equally
// thin and deeper) than what it inherited.
type starterResult struct {
	Starter   core.Handle
	StartTerm core.Handle
	Depth     int
	Width     int
}

// starterFinder implements find_starter_recursive: a depth-first search
// for the thinnest (smallest incoming set), and among thinnest ties the
// deepest, constant node reachable from a clause. Any ChoiceLink
// encountered along the way spins off an independent Choice instead of
// participating in the thinnest/deepest comparison.
type starterFinder struct {
	hg      hypergraph.Hypergraph
	pattern *core.Pattern
	clause  core.Handle
	choices []core.Choice
}

// unbounded stands in for the original's SIZE_MAX sentinel: no real
// incoming set is ever this large, so any actual width wins a comparison
// against it.
const unbounded = int(^uint(0) >> 1)

// recursive walks h, carrying the depth and starting term inherited from
// the caller. It returns the resolved (possibly unchanged) triple.
func (f *starterFinder) recursive(h core.Handle, depth int, inherited starterResult) starterResult {
	if f.pattern.Evaluatable.Has(h) {
		// A term present in the evaluatable set is not descended into:
		// it cannot be grounded by structural lookup, so it never
		// yields a starter (spec.md §4.1 base case).
		return starterResult{
			Starter:   core.Undefined,
			StartTerm: inherited.StartTerm,
			Depth:     inherited.Depth,
			Width:     unbounded,
		}
	}

	t := f.hg.TypeOf(h)

	if core.IsNodeType(t) {
		if core.IsVariableType(t) || core.IsGlobType(t) {
			// Variables and globs are never starters; report back
			// whatever the caller already had, at unbounded width so a
			// sibling with any real width wins the comparison.
			return starterResult{
				Starter:   core.Undefined,
				StartTerm: inherited.StartTerm,
				Depth:     inherited.Depth,
				Width:     unbounded,
			}
		}
		// A constant node. Per the dead-write simplification (the C++
		// base case writes startrm = h here, but a node is never used as
		// a start_term; the recursive() caller already holds the start
		// term from the link level), startTerm is left untouched.
		return starterResult{
			Starter:   h,
			StartTerm: inherited.StartTerm,
			Depth:     depth,
			Width:     f.hg.IncomingSize(h),
		}
	}

	if core.IsQuoteType(t) {
		children := f.hg.Outgoing(h)
		if len(children) != 1 {
			return starterResult{Starter: core.Undefined, Depth: inherited.Depth, Width: unbounded}
		}
		return f.recursive(children[0], depth, inherited)
	}

	best := starterResult{Starter: core.Undefined, StartTerm: inherited.StartTerm, Depth: inherited.Depth, Width: unbounded}

	for _, child := range f.hg.Outgoing(h) {
		childType := f.hg.TypeOf(child)

		if core.IsChoiceType(childType) {
			for _, grandchild := range f.hg.Outgoing(child) {
				sub := f.recursive(grandchild, depth+1, starterResult{StartTerm: grandchild})
				if sub.Starter.IsValid() {
					f.choices = append(f.choices, core.Choice{
						Clause:    f.clause,
						StartTerm: grandchild,
						BestStart: sub.Starter,
					})
				}
			}
			continue
		}

		// sbr: the start term handed down to child. It is h, the link
		// that directly contains child: a constant-node child keeps it,
		// and a link child reports back the link that directly contains
		// its own starter. If the current link is itself a ChoiceLink,
		// sbr is inherited from the grandparent instead.
		sbr := h
		if core.IsChoiceType(t) {
			sbr = inherited.StartTerm
		}

		candidate := f.recursive(child, depth+1, starterResult{StartTerm: sbr})
		if !candidate.Starter.IsValid() {
			continue
		}

		if core.IsChoiceType(t) {
			// h is itself a ChoiceLink (e.g. a whole clause): each branch
			// seeds its own Choice instead of competing for h's starter.
			f.choices = append(f.choices, core.Choice{Clause: f.clause, StartTerm: child, BestStart: candidate.Starter})
			continue
		}

		if isThinnerOrDeeper(candidate, best) {
			best = candidate
		}
	}

	return best
}

// isThinnerOrDeeper reports whether candidate should replace current:
// strictly thinner wins outright; equally thin and strictly deeper wins
// too (find_thinnest's tie-break towards depth).
func isThinnerOrDeeper(candidate, current starterResult) bool {
	if candidate.Width < current.Width {
		return true
	}
	return candidate.Width == current.Width && candidate.Depth > current.Depth
}

// findStarter implements find_starter: the non-recursive entry point
// for one clause. It returns the best starterResult found plus any
// ChoiceLink branches spun off along the way.
func findStarter(hg hypergraph.Hypergraph, pattern *core.Pattern, clause core.Handle) (starterResult, []core.Choice) {
	t := hg.TypeOf(clause)

	if core.IsNodeType(t) {
		if core.IsVariableType(t) || core.IsGlobType(t) {
			return starterResult{Width: unbounded}, nil
		}
		// Dead write omitted (spec.md REDESIGN FLAGS): StartTerm stays
		// Undefined here, matching the original's unused assignment.
		return starterResult{Starter: clause, Width: hg.IncomingSize(clause)}, nil
	}

	f := &starterFinder{hg: hg, pattern: pattern, clause: clause}
	result := f.recursive(clause, 0, starterResult{Width: unbounded})
	return result, f.choices
}
