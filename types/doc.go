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
Package types provides the core data structures shared by every transform in tableudf.

The host exchanges tables in a "wire form": a slice of rows where row 0 carries the
column names, row 1 the column type tags and rows 2..N the data. This package turns that
loosely typed form into a validated Table once, at the boundary, so that transforms can
index columns by position without re-checking shapes.

# Table

	type Table struct {
		Names []string   // column names, row 0 of the wire form
		Types []DataType // column type tags, row 1 of the wire form
		Rows  [][]any    // data rows, nil marks an absent value
	}

	t, err := types.FromRows([][]any{
		{"key", "a.truck1.sensor.temp"},
		{"LONG", "DOUBLE"},
		{int64(1), 98.6},
	})

# Parameters

Positional and named arguments supplied by the host travel in Params. Getters coerce
values with spf13/cast and report a MalformedInput error when conversion fails.

# Errors

UDFError carries one of three kinds (MalformedInput, Arithmetic, GroupingKey) and matches
the package sentinels through errors.Is:

	if errors.Is(err, types.ErrArithmetic) {
		// denominator was zero or absent
	}

# Arrow

ToArrowRecord and FromArrowRecord convert between Table and an apache/arrow-go record so
that columnar hosts can hand over batches without going through the wire form.
*/
package types
