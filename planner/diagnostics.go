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
	"fmt"
	"strings"
)

// String renders a diagnostic dump of the plan: which strategy fired,
// what it chose, and whether it grounded anything. Grounded on
// to_string/oc_to_string (original_source/opencog/query/InitiateSearchCB.cc),
// which dump the planner's variables, pattern, root and starter term,
// and choices for debugging a stuck search.
func (pl *Plan) String() string {
	if pl == nil {
		return "<nil plan>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "correlation_id: %s\n", pl.CorrelationID)
	fmt.Fprintf(&b, "strategy: %s\n", pl.Strategy)
	fmt.Fprintf(&b, "grounded: %t\n", pl.Grounded)
	fmt.Fprintf(&b, "choices (%d):\n", len(pl.Choices))
	for _, c := range pl.Choices {
		fmt.Fprintf(&b, "  clause=%d start_term=%d best_start=%d strategy=%s\n",
			c.Clause, c.StartTerm, c.BestStart, c.Strategy)
	}
	return b.String()
}

// String renders a diagnostic dump of the planner's current guard state,
// useful when chasing down an ErrInfiniteLoop.
func (p *Planner) String() string {
	if p == nil {
		return "<nil planner>"
	}
	return fmt.Sprintf("planner{guardCount=%d, hasPattern=%t}", p.guardCount, p.guardPattern != nil)
}
