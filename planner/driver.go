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
	"sync"

	"github.com/nexusgraph/hyperplan/core"
)

// driveChoices implements choice_loop: for each Choice the chosen
// strategy produced, enumerate the incoming set of best_start filtered
// by the type of start_term (spec.md §4.3, §4.8) and hand each such
// incoming link to the match engine as a candidate anchor, in order.
// Returns on the first grounding success, trying the next choice only
// if the current one is exhausted without one (spec.md §2 bullet 6,
// §4.8 "Returns on the first success"; original choice_loop /
// search_loop both read "if (found) return true;").
func (p *Planner) driveChoices(choices []core.Choice) bool {
	for _, c := range choices {
		candidates := p.hg.IncomingFiltered(c.BestStart, p.hg.TypeOf(c.StartTerm))
		for _, candidate := range candidates {
			ok := p.engine.ExploreNeighborhood(c.Clause, c.StartTerm, candidate)
			p.monitor.ChoiceExplored(c, ok)
			if ok {
				return true
			}
		}
	}
	return false
}

// driveSearchSet implements search_loop: call into the match engine once
// per candidate anchor in candidates, grounding rootClause via
// startTerm, stopping at the first success. Used by the Link-Type and
// Variable-Type strategies, which pick a type to enumerate rather than a
// single starting atom, so candidates here is already the pre-built
// type-indexed search set (spec.md §4.8) rather than an incoming set.
// Runs sequentially unless a worker pool was installed with
// WithParallelSearch, mirroring the original's disabled
// PM_PARALLEL/OMP_PM_PARALLEL blocks made real rather than left as dead
// code behind a build tag.
func (p *Planner) driveSearchSet(rootClause, startTerm core.Handle, candidates []core.Handle) bool {
	if p.pool == nil {
		for _, anchor := range candidates {
			ok := p.engine.ExploreNeighborhood(rootClause, startTerm, anchor)
			p.monitor.ChoiceExplored(core.Choice{Clause: rootClause, StartTerm: startTerm, BestStart: anchor}, ok)
			if ok {
				return true
			}
		}
		return false
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		grounded bool
	)

	for _, anchor := range candidates {
		mu.Lock()
		stop := grounded
		mu.Unlock()
		if stop {
			break
		}

		anchor := anchor
		wg.Add(1)
		if err := p.pool.Submit(func() {
			defer wg.Done()

			mu.Lock()
			already := grounded
			mu.Unlock()
			if already {
				return
			}

			ok := p.engine.ExploreNeighborhood(rootClause, startTerm, anchor)
			if ok {
				mu.Lock()
				grounded = true
				mu.Unlock()
			}
			p.monitor.ChoiceExplored(core.Choice{Clause: rootClause, StartTerm: startTerm, BestStart: anchor}, ok)
		}); err != nil {
			wg.Done()
			p.logger.Error("failed to submit search task", "err", err)
		}
	}
	wg.Wait()

	return grounded
}
