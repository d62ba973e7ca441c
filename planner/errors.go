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

import "errors"

var (
	// ErrNilHypergraph is returned when a Planner is built without a
	// Hypergraph collaborator.
	ErrNilHypergraph = errors.New("hypergraph required")

	// ErrNilEngine is returned when a Planner is built without a
	// match.Engine collaborator.
	ErrNilEngine = errors.New("match engine required")

	// ErrNilPattern is returned when InitiateSearch is called with a nil
	// pattern.
	ErrNilPattern = errors.New("pattern required")

	// ErrRecursiveDefinition is returned by the JIT Expander when
	// expanding a DefinedSchemaNode would require expanding itself,
	// directly or transitively.
	ErrRecursiveDefinition = errors.New("recursive definition")

	// ErrInvariantViolation is returned when the Variable-Type Strategy is
	// reached with a pattern that has no variables, or when its degenerate
	// fallback chain runs out of options: no type-restricted variable, no
	// PresentLink-holding mandatory clause, and no clause at all to fall
	// back to.
	ErrInvariantViolation = errors.New("pattern has no clause to anchor a search on")

	// ErrInfiniteLoop is returned when the Variable-Type Strategy's
	// instance-scoped guard counter trips: the same pattern has been
	// retried past the guard threshold without converging.
	ErrInfiniteLoop = errors.New("variable-type strategy exceeded retry guard")
)
