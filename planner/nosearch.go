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

import "github.com/nexusgraph/hyperplan/core"

// NoSearchStrategy implements setup_no_search: a pattern with no
// variables at all needs no starter; every clause is simply evaluated
// in place. It applies only when the variable set is empty.
func NoSearchStrategy(pattern *core.Pattern) bool {
	return pattern.Vars.Len() == 0
}
