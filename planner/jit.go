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

// jitAnalyze implements the JIT Expander: any clause that is itself a
// DefinedSchemaNode reference is replaced by its registered body, and
// the result is re-scanned until no clause is a reference anymore.
//
// The original C++ (jit_analyze) expands definitions unconditionally,
// with no protection against a definition that refers to itself,
// directly or through a chain of other definitions; doing so would
// simply recurse forever. Per the Open Question this raises, this
// implementation resolves it by expanding eagerly but tracking the
// chain of names being expanded for one clause, returning
// ErrRecursiveDefinition the moment a name reappears in its own chain.
func (p *Planner) jitAnalyze(pattern *core.Pattern) (*core.Pattern, error) {
	if p.registry == nil {
		return pattern, nil
	}

	expanded := pattern
	for {
		newMandatory, mandatoryChanged, err := p.expandClauses(expanded.Mandatory)
		if err != nil {
			return nil, err
		}
		newOptional, optionalChanged, err := p.expandClauses(expanded.Optional)
		if err != nil {
			return nil, err
		}
		if !mandatoryChanged && !optionalChanged {
			return expanded, nil
		}
		expanded = &core.Pattern{
			Vars:        expanded.Vars,
			Mandatory:   newMandatory,
			Optional:    newOptional,
			Evaluatable: expanded.Evaluatable,
		}
	}
}

func (p *Planner) expandClauses(clauses []core.Handle) ([]core.Handle, bool, error) {
	out := make([]core.Handle, len(clauses))
	changed := false
	for i, c := range clauses {
		resolved, didExpand, err := p.expandDefinedTerm(c, make(map[core.Handle]bool))
		if err != nil {
			return nil, false, err
		}
		out[i] = resolved
		changed = changed || didExpand
	}
	return out, changed, nil
}

func (p *Planner) expandDefinedTerm(h core.Handle, seen map[core.Handle]bool) (core.Handle, bool, error) {
	if p.hg.TypeOf(h) != core.DefinedSchemaNode {
		return h, false, nil
	}
	if seen[h] {
		return core.Undefined, false, ErrRecursiveDefinition
	}
	seen[h] = true

	body, ok := p.registry.Resolve(h)
	if !ok {
		// Unresolved reference: leave it as-is for the engine to reject.
		return h, false, nil
	}

	resolved, _, err := p.expandDefinedTerm(body, seen)
	if err != nil {
		return core.Undefined, false, err
	}
	return resolved, true, nil
}
