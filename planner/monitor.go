package planner

import "github.com/nexusgraph/hyperplan/core"

// PlanMonitor provides hooks to observe planning as it happens. Implement
// this interface to track which strategy fired and what it chose.
type PlanMonitor interface {
	Start(pattern *core.Pattern)
	AfterJITExpansion(pattern *core.Pattern)
	StrategyAttempted(name string, ok bool)
	StrategyChosen(name string, choices []core.Choice)
	ChoiceExplored(choice core.Choice, grounded bool)
	Finish(plan *Plan)
}

// noopMonitor is a no-op implementation of PlanMonitor.
type noopMonitor struct{}

var _ PlanMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Pattern)                    {}
func (n *noopMonitor) AfterJITExpansion(_ *core.Pattern)        {}
func (n *noopMonitor) StrategyAttempted(_ string, _ bool)       {}
func (n *noopMonitor) StrategyChosen(_ string, _ []core.Choice) {}
func (n *noopMonitor) ChoiceExplored(_ core.Choice, _ bool)     {}
func (n *noopMonitor) Finish(_ *Plan)                           {}
