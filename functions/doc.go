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
Package functions provides the table transform functions and the registry that looks them up.

Every function receives a whole table (names, type tags, data rows) plus optional
positional and named parameters, and returns a new table. The input table is never
modified and no state survives between calls, so one registry can serve concurrent
callers without extra locking on the call path.

# Function Types

	TypeUDTF   - Row-wise transforms; output rows follow input rows
	TypeUDAF   - Column aggregates; one output row
	TypeUDSF   - Set-to-set transforms; the row count may change
	TypeCustom - User-defined functions

# Built-in Functions

	// Elementwise (absent cells stay absent)
	ge_half(c)          - 1.0 if value >= 0.5 else 0.0
	nzero (cnz)         - 1.0 if value != 0 else 0.0
	div_144(c)          - value / 144
	div(c)              - value / divisor (args[0] or divisor=)
	map_expr(c)         - expr-lang expression over value, name, row (expr=)

	// Cross-row
	count_up            - adjacent increasing pairs per column
	ifbreak             - zero share >= 0.5 per column, first column is the key
	avg_driving_session_div_6 - mean driving run length / 6 (closed_only=)
	lead                - next broken_down per tagid
	startstop           - transitions across 5 per tagid, with stop marker

	// Windowing
	timebucket10m       - column 1 in 10 minute buckets
	timebucketdayten    - column 1 in day buckets, column 2 in 10 minute buckets
	timebucket          - column= in window= buckets

	// Reshape and grouping
	transposition_by_truck - path columns to truck, name, value rows
	transposition          - same, entity segment chosen by entity=
	div_load_cap           - entity.avgload = current_load / load_capacity
	filter                 - rows matching where=

# Errors

Failures are *types.UDFError values of kind MalformedInput, Arithmetic or GroupingKey;
use errors.Is with types.ErrMalformedInput, types.ErrArithmetic or types.ErrGroupingKey.
A function either returns a complete table or an error, never both.

# Custom Function Registration

	RegisterCustomFunction(
		"double_all",
		TypeCustom,
		"elementwise",
		"multiplies every value by two",
		1, -1, // min and max columns
		func(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
			out := in.Clone()
			for _, row := range out.Rows {
				for i, v := range row {
					if f, ok := v.(float64); ok {
						row[i] = f * 2
					}
				}
			}
			return out, nil
		},
	)

Custom functions can also be built with NewCustomFunction and registered on a private
registry created with NewBuiltinRegistry or NewFunctionRegistry.
*/
package functions
