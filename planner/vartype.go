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

import "github.com/nexusgraph/hyperplan/core"

// variableTypeGuardLimit bounds how many times the same pattern may be
// retried through the Variable-Type Strategy before it is treated as
// non-converging. The original kept this as a process-wide static
// counter; here it lives on the Planner so two planners working
// different patterns concurrently never interfere with each other's
// guard state (spec.md REDESIGN FLAGS).
const variableTypeGuardLimit = 300

// VariableTypeResult is the outcome of the Variable-Type Strategy.
type VariableTypeResult struct {
	Clause     core.Handle
	Variable   core.Handle
	StartTerm  core.Handle
	Types      []core.Type
	Degenerate bool
	Found      bool
}

// variableTypeStrategy implements setup_variable_search: the last-resort
// strategy, reached only when no clause offers a constant starter and no
// mandatory clause is held together by a rare link type. It is a method
// on *Planner, not a free function, because it carries instance-scoped
// infinite-loop guard state across calls.
func (p *Planner) variableTypeStrategy(pattern *core.Pattern) (VariableTypeResult, error) {
	if p.guardPattern == pattern {
		p.guardCount++
	} else {
		p.guardPattern = pattern
		p.guardCount = 1
	}
	if p.guardCount > variableTypeGuardLimit {
		return VariableTypeResult{}, ErrInfiniteLoop
	}
	if pattern.Vars.Len() == 0 {
		return VariableTypeResult{}, ErrInvariantViolation
	}

	// Deep type constraints require unifying against a sub-pattern, which
	// this planner does not implement (spec.md §4.6 step 1, §9). Warn and
	// skip past them rather than attempting to exploit them for rarity.
	for h := range pattern.Vars.DeepTypeMap {
		p.logger.Warn("variable has a deep type restriction, skipping", "variable", h)
	}

	best := VariableTypeResult{}
	bestCount := unbounded

	// Evaluatable clauses are skipped when picking a variable's holding
	// clause, unless every clause in the pattern is evaluatable — in
	// which case there is no non-evaluatable clause left to anchor on,
	// and the best variable itself becomes start_term (spec.md §4.6
	// step 3; original_source InitiateSearchCB.cc:687,706-707).
	allClausesEvaluatable := allEvaluatable(pattern, pattern.AllClauses())

	for _, v := range pattern.Vars.VarSeq {
		types := pattern.Vars.SimpleTypeMap[v]
		if len(types) == 0 {
			continue
		}

		clause, ok := clauseHolding(p.hg, pattern, v, allClausesEvaluatable)
		if !ok {
			continue
		}

		count := 0
		for _, t := range types {
			count += p.hg.CountOfType(t)
		}
		if count >= bestCount {
			continue
		}

		startTerm := clause
		if allClausesEvaluatable {
			startTerm = v
		} else if holder, found := leastHolder(p.hg, clause, v); found {
			startTerm = holder
		}

		best = VariableTypeResult{Clause: clause, Variable: v, StartTerm: startTerm, Types: types, Found: true}
		bestCount = count
	}

	if best.Found {
		return best, nil
	}

	return p.degenerateVariableSearch(pattern)
}

// clauseHolding returns the first clause (mandatory, then optional) that
// directly or transitively contains v. Clauses held as evaluatable terms
// are skipped unless allClausesEvaluatable is true, in which case there
// is nothing else to pick from (spec.md §4.6 step 3).
func clauseHolding(hg hypergraphReader, pattern *core.Pattern, v core.Handle, allClausesEvaluatable bool) (core.Handle, bool) {
	for _, clause := range pattern.AllClauses() {
		if pattern.Evaluatable.Has(clause) && !allClausesEvaluatable {
			continue
		}
		if containsHandle(hg, clause, v) {
			return clause, true
		}
	}
	return core.Undefined, false
}

// containsHandle reports whether target appears anywhere in h's subtree,
// including h itself.
func containsHandle(hg hypergraphReader, h, target core.Handle) bool {
	if h == target {
		return true
	}
	for _, child := range hg.Outgoing(h) {
		if containsHandle(hg, child, target) {
			return true
		}
	}
	return false
}

// hypergraphReader is the narrow slice of hypergraph.Hypergraph that
// leastHolder and containsHandle need; declared locally so they don't
// have to import the hypergraph package just for a type name.
type hypergraphReader interface {
	TypeOf(core.Handle) core.Type
	Outgoing(core.Handle) []core.Handle
}

// degenerateVariableSearch implements the fallback chain at the bottom of
// setup_variable_search: when no variable carries a usable simple type
// restriction, anchor on a PresentLink-holding mandatory clause if one
// exists, or else the very first clause and the very first variable.
// Neither branch can narrow the search by type, so the resulting search
// set is left empty: the original falls back here to enumerating every
// atom in the atomspace (get_handles_by_type(ATOM, true)), which has no
// equivalent in an open, extensible Type model with no universal "any
// type" sentinel. Callers see Degenerate=true and should treat an empty
// candidate set as "caller must supply its own enumeration", not as "no
// candidates exist".
func (p *Planner) degenerateVariableSearch(pattern *core.Pattern) (VariableTypeResult, error) {
	p.logger.Warn("no variable has a simple type restriction, using degenerate variable search")

	for _, clause := range pattern.Mandatory {
		if p.hg.TypeOf(clause) == core.PresentLink {
			children := p.hg.Outgoing(clause)
			if len(children) == 1 {
				return VariableTypeResult{Clause: clause, StartTerm: children[0], Degenerate: true, Found: true}, nil
			}
		}
	}

	if len(pattern.Mandatory) == 0 && len(pattern.Optional) == 0 {
		return VariableTypeResult{}, ErrInvariantViolation
	}

	clauses := pattern.Mandatory
	if len(clauses) == 0 {
		clauses = pattern.Optional
	}
	clause := clauses[0]

	if pattern.Vars.Len() == 0 {
		return VariableTypeResult{}, ErrInvariantViolation
	}

	return VariableTypeResult{
		Clause:     clause,
		Variable:   pattern.Vars.VarSeq[0],
		StartTerm:  clause,
		Degenerate: true,
		Found:      true,
	}, nil
}

// leastHolder performs a depth-first search for a link within cl that
// directly contains varH in its outgoing set, returning the first match
// found: a link's own children are checked before its subtrees are
// descended, so cl itself wins if it holds varH directly. This simplifies the original
// FindAtoms::least_holders, which collects the full set of minimal
// enclosing holders; a single representative is enough to seed a search
// from.
func leastHolder(hg hypergraphReader, cl, varH core.Handle) (core.Handle, bool) {
	t := hg.TypeOf(cl)
	if core.IsNodeType(t) {
		return core.Undefined, false
	}

	children := hg.Outgoing(cl)
	for _, child := range children {
		if child == varH {
			return cl, true
		}
	}
	for _, child := range children {
		if holder, found := leastHolder(hg, child, varH); found {
			return holder, true
		}
	}
	return core.Undefined, false
}
