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

import "fmt"

// ValidatePattern validates a Pattern before it is handed to a match
// engine (spec.md §3 invariants). Planner.InitiateSearch does not call
// it, since a pattern with zero variables is valid planner input.
//
// Validation rules:
//   - Pattern must not be nil
//   - Vars must contain at least one variable
//   - there must be at least one mandatory or optional clause
//   - every handle named in a type restriction must be a registered
//     variable
//
// NOT validated here: clause structure (the hypergraph is the only
// authority on what an atom's outgoing set looks like), and whether the
// pattern is satisfiable at all (that is the match engine's job).
func ValidatePattern(p *Pattern) error {
	if p == nil {
		return fmt.Errorf("%w: pattern is nil", ErrInvalidPattern)
	}

	if err := ValidateVariables(p.Vars); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	if len(p.Mandatory) == 0 && len(p.Optional) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, ErrNoClauses)
	}

	return nil
}

// ValidateVariables validates a Variables set on its own: it must be
// non-nil, non-empty, and every type-restricted handle must have been
// added to the set first.
func ValidateVariables(v *Variables) error {
	if v == nil || v.Len() == 0 {
		return ErrNoVariables
	}

	for h := range v.SimpleTypeMap {
		if !v.Has(h) {
			return fmt.Errorf("%w: handle %d", ErrUnknownVariable, h)
		}
	}
	for h := range v.DeepTypeMap {
		if !v.Has(h) {
			return fmt.Errorf("%w: handle %d", ErrUnknownVariable, h)
		}
	}

	return nil
}

// ValidateChoice validates a Choice has both a clause and a start term
// defined. BestStart and Strategy are allowed to be unset; a Choice is
// legitimately empty of those until a Strategy commits to it.
func ValidateChoice(c Choice) error {
	if !c.Clause.IsValid() || !c.StartTerm.IsValid() {
		return ErrEmptyChoice
	}
	return nil
}
