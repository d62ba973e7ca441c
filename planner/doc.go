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

// Package planner decides where a pattern match should start.
//
// Given a Pattern (the clauses to ground and the variables within them)
// and a Hypergraph to consult for population counts, a Planner picks one
// or more starting anchors and hands them to a match.Engine, which does
// the actual grounding. The planner never grounds anything itself; its
// only job is choosing the cheapest place to begin, the way a query
// planner picks an index before a database ever reads a row.
//
// Four strategies are tried in order, each one a fallback for when the
// previous one cannot apply:
//
//   - Neighborhood: find the rarest constant term reachable from a
//     clause and start from its neighborhood. This is the common case.
//   - No-Search: the pattern has no variables at all; every clause is
//     just evaluated directly.
//   - Link-Type: no constant term exists, but clauses are held together
//     by rare link types; start by enumerating atoms of that type.
//   - Variable-Type: no constant and no rare link type; fall back to a
//     type restriction on a variable itself, or the most degenerate case
//     of enumerating an entire type's population.
//
// A Pattern first passes through the JIT Expander, which inlines any
// DefinedSchemaNode references into their bodies, and then through the
// Choice Driver, which walks every resulting Choice and calls into the
// match.Engine.
package planner
