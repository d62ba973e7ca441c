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
	"log/slog"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/nexusgraph/hyperplan/core"
	"github.com/nexusgraph/hyperplan/hypergraph"
	"github.com/nexusgraph/hyperplan/match"
)

// Planner picks where a pattern match should start and drives the match
// engine from there. See the package doc for the four-strategy cascade
// it runs through.
type Planner struct {
	hg       hypergraph.Hypergraph
	engine   match.Engine
	registry core.DefinitionRegistry
	monitor  PlanMonitor
	logger   *slog.Logger
	pool     *ants.Pool

	guardPattern *core.Pattern
	guardCount   int
}

// Option configures a Planner.
type Option func(*Planner) error

// WithDefinitionRegistry sets the registry used by the JIT Expander to
// resolve DefinedSchemaNode references. Without one, jitAnalyze is a
// no-op and any such reference is passed through to the match engine
// unexpanded.
func WithDefinitionRegistry(registry core.DefinitionRegistry) Option {
	return func(p *Planner) error {
		p.registry = registry
		return nil
	}
}

// WithMonitor sets a custom PlanMonitor. Default is a no-op monitor.
func WithMonitor(monitor PlanMonitor) Option {
	return func(p *Planner) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		p.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithParallelSearch installs a worker pool of the given size so the
// Link-Type and Variable-Type strategies explore their candidate
// anchors concurrently instead of one at a time. Off by default: the
// original kept this behind PM_PARALLEL/OMP_PM_PARALLEL build flags,
// never enabled, because the grounding-report callback it feeds needs a
// lock the sequential loop doesn't pay for.
func WithParallelSearch(size int) Option {
	return func(p *Planner) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// NewPlanner creates a Planner over hg and engine.
func NewPlanner(hg hypergraph.Hypergraph, engine match.Engine, opts ...Option) (*Planner, error) {
	if hg == nil {
		return nil, ErrNilHypergraph
	}
	if engine == nil {
		return nil, ErrNilEngine
	}

	p := &Planner{
		hg:      hg,
		engine:  engine,
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Release releases resources held by the Planner, including its worker
// pool if one was installed. The planner should not be used afterward.
func (p *Planner) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// Plan is the record of one InitiateSearch call: which strategy fired,
// what it chose, and whether the match engine found at least one
// grounding from it. CorrelationID ties this plan's log lines and
// monitor callbacks together across the cascade, since a busy planner
// may have several InitiateSearch calls in flight concurrently.
type Plan struct {
	CorrelationID string
	Pattern       *core.Pattern
	Strategy      string
	Choices       []core.Choice
	Grounded      bool
}

// InitiateSearch runs the full cascade: JIT-expand the pattern, install
// it into the match engine, then try Neighborhood, No-Search, Link-Type
// and Variable-Type in turn, stopping at the first strategy that
// produces a usable starting point and driving the match engine from
// it.
func (p *Planner) InitiateSearch(pattern *core.Pattern) (*Plan, error) {
	if pattern == nil {
		return nil, ErrNilPattern
	}
	if pattern.Vars == nil {
		return nil, core.ErrNoVariables
	}
	if len(pattern.Mandatory) == 0 && len(pattern.Optional) == 0 {
		return nil, core.ErrNoClauses
	}

	correlationID := uuid.NewString()
	logger := p.logger.With("correlation_id", correlationID)

	p.monitor.Start(pattern)

	expanded, err := p.jitAnalyze(pattern)
	if err != nil {
		return nil, err
	}
	p.monitor.AfterJITExpansion(expanded)

	p.engine.InstallPattern(expanded.Vars, expanded)

	plan := &Plan{CorrelationID: correlationID, Pattern: expanded}
	logger.Debug("initiating search", "mandatory", len(expanded.Mandatory), "optional", len(expanded.Optional))

	if NoSearchStrategy(expanded) {
		plan.Strategy = "no-search"
		p.monitor.StrategyAttempted(plan.Strategy, true)
		plan.Grounded = p.engine.ExploreConstantEvaluatables(expanded.Mandatory)
		p.monitor.Finish(plan)
		return plan, nil
	}

	if result, ok := NeighborhoodStrategy(p.hg, expanded); ok {
		plan.Strategy = "neighborhood"
		plan.Choices = result.Choices
		p.monitor.StrategyAttempted(plan.Strategy, true)
		p.monitor.StrategyChosen(plan.Strategy, plan.Choices)
		plan.Grounded = p.driveChoices(plan.Choices)
		p.monitor.Finish(plan)
		return plan, nil
	}
	p.monitor.StrategyAttempted("neighborhood", false)

	if NoSearchStrategy(expanded) {
		plan.Strategy = "no-search"
		p.monitor.StrategyAttempted(plan.Strategy, true)
		plan.Grounded = p.engine.ExploreConstantEvaluatables(expanded.Mandatory)
		p.monitor.Finish(plan)
		return plan, nil
	}

	if result := LinkTypeStrategy(p.hg, expanded); result.Found {
		plan.Strategy = "link-type"
		p.monitor.StrategyAttempted(plan.Strategy, true)
		candidates := p.hg.EnumerateOfType(result.Type, false)
		startTerm := result.Clause
		plan.Choices = []core.Choice{{Clause: result.Clause, StartTerm: startTerm, Strategy: plan.Strategy}}
		p.monitor.StrategyChosen(plan.Strategy, plan.Choices)
		plan.Grounded = p.driveSearchSet(result.Clause, startTerm, candidates)
		p.monitor.Finish(plan)
		return plan, nil
	}
	p.monitor.StrategyAttempted("link-type", false)

	varResult, err := p.variableTypeStrategy(expanded)
	if err != nil {
		return nil, err
	}
	plan.Strategy = "variable-type"
	p.monitor.StrategyAttempted(plan.Strategy, varResult.Found)

	var candidates []core.Handle
	for _, t := range varResult.Types {
		candidates = append(candidates, p.hg.EnumerateOfType(t, false)...)
	}
	plan.Choices = []core.Choice{{Clause: varResult.Clause, StartTerm: varResult.StartTerm, Strategy: plan.Strategy}}
	p.monitor.StrategyChosen(plan.Strategy, plan.Choices)
	plan.Grounded = p.driveSearchSet(varResult.Clause, varResult.StartTerm, candidates)
	p.monitor.Finish(plan)
	return plan, nil
}
