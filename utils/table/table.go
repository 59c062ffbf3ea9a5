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

package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/utils/cast"
)

// nullText is printed for absent values
const nullText = "null"

// PrintTable prints t with a name row, a type row and one line per data row.
func PrintTable(w io.Writer, t *types.Table) {
	if len(t.Names) == 0 {
		fmt.Fprintln(w, "(0 columns)")
		return
	}

	cells := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells[r] = make([]string, len(row))
		for c, v := range row {
			cells[r][c] = FormatValue(v)
		}
	}

	// Calculate maximum width for each column
	colWidths := make([]int, len(t.Names))
	for i, name := range t.Names {
		colWidths[i] = len(name)
		if i < len(t.Types) && len(t.Types[i]) > colWidths[i] {
			colWidths[i] = len(t.Types[i])
		}
		for _, row := range cells {
			if i < len(row) && len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
		// Minimum width is 4
		if colWidths[i] < 4 {
			colWidths[i] = 4
		}
	}

	PrintTableBorder(w, colWidths)
	printLine(w, colWidths, t.Names)
	types := make([]string, len(t.Names))
	for i := range types {
		if i < len(t.Types) {
			types[i] = string(t.Types[i])
		}
	}
	printLine(w, colWidths, types)
	PrintTableBorder(w, colWidths)
	for _, row := range cells {
		printLine(w, colWidths, row)
	}
	PrintTableBorder(w, colWidths)

	// Print row count statistics
	fmt.Fprintf(w, "(%d rows)\n", len(t.Rows))
}

func printLine(w io.Writer, colWidths []int, values []string) {
	fmt.Fprint(w, "|")
	for i, width := range colWidths {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		fmt.Fprintf(w, " %-*s |", width, val)
	}
	fmt.Fprintln(w)
}

// PrintTableBorder prints table border
func PrintTableBorder(w io.Writer, columnWidths []int) {
	var b strings.Builder
	b.WriteString("+")
	for _, width := range columnWidths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	fmt.Fprintln(w, b.String())
}

// FormatValue renders one cell; absent values print as null and bytes as text.
func FormatValue(v any) string {
	if v == nil {
		return nullText
	}
	return cast.ToString(v)
}
