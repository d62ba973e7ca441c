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

import "errors"

// Domain validation errors.
var (
	// ErrInvalidPattern indicates a Pattern failed validation.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNoVariables indicates a pattern has no variables to ground.
	ErrNoVariables = errors.New("pattern has no variables")

	// ErrNoClauses indicates a pattern has no mandatory or optional clauses.
	ErrNoClauses = errors.New("pattern has no clauses")

	// ErrUnknownVariable indicates a type restriction refers to a handle
	// that was never added to the variable set.
	ErrUnknownVariable = errors.New("type restriction on unknown variable")

	// ErrEmptyChoice indicates a Choice has an undefined clause or start
	// term.
	ErrEmptyChoice = errors.New("choice has an undefined clause or term")
)
