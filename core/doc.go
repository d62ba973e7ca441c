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

// Package core defines the data model shared by the hypergraph, match, and
// planner packages: atom handles, the tagged Atom variant, pattern
// variables, clauses, and the Choice record used to seed a search.
//
// Nothing in this package talks to a store or a match engine; it is the
// vocabulary those packages share.
package core
