package planner

import (
	"testing"

	"github.com/nexusgraph/hyperplan/core"
)

func TestNoSearchStrategy(t *testing.T) {
	pattern := core.NewPattern()
	if !NoSearchStrategy(pattern) {
		t.Fatal("NoSearchStrategy should apply to a pattern with zero variables")
	}

	pattern.Vars.Add(1)
	if NoSearchStrategy(pattern) {
		t.Fatal("NoSearchStrategy should not apply once a variable is registered")
	}
}
