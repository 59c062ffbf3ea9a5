/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package condition compiles user expressions with the expr-lang library.

Two kinds of programs are supported: boolean conditions used by the filter transform,
and numeric value expressions used by map_expr. Both are compiled once per invocation
and evaluated against a map environment built from the current row.

# Functions

	like_match(text, pattern) - SQL LIKE matching with % and _ wildcards
	is_null(x)                - true when x is absent

# Examples

	cond, err := condition.NewExprCondition("value > 1 && like_match(name, 'fuel%')")
	keep, err := cond.Evaluate(map[string]any{"value": 2.0, "name": "fuel_state"})

	ve, err := condition.NewValueExpr("value >= 0.5 ? 1 : 0")
	f, ok, err := ve.Eval(map[string]any{"value": 0.7})
*/
package condition
