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

package types

import (
	"fmt"
)

// KeyColumn is the conventional name of the host's key (timestamp) axis.
const KeyColumn = "key"

// Table is the two-header-row-plus-data-rows structure exchanged with the host.
// A nil cell is an absent value.
type Table struct {
	Names []string
	Types []DataType
	Rows  [][]any
}

// NewTable creates an empty table with the given header.
func NewTable(names []string, types []DataType) *Table {
	return &Table{
		Names: names,
		Types: types,
		Rows:  make([][]any, 0),
	}
}

// FromRows validates the host wire form and builds a Table from it.
// The data rows are copied so the result never aliases the caller's slices.
func FromRows(rows [][]any) (*Table, error) {
	if len(rows) < 2 {
		return nil, MalformedInput("", "table needs 2 header rows, got %d rows", len(rows))
	}
	names := make([]string, len(rows[0]))
	for i, v := range rows[0] {
		s, ok := v.(string)
		if !ok {
			return nil, MalformedInput("", "column name must be a string, got %T", v).WithColumn(i)
		}
		names[i] = s
	}
	if len(rows[1]) != len(names) {
		return nil, MalformedInput("", "header has %d names but %d types", len(names), len(rows[1]))
	}
	dataTypes := make([]DataType, len(rows[1]))
	for i, v := range rows[1] {
		var tag string
		switch x := v.(type) {
		case string:
			tag = x
		case DataType:
			tag = string(x)
		default:
			return nil, MalformedInput("", "column type must be a string, got %T", v).WithColumn(i)
		}
		dt, err := ParseDataType(tag)
		if err != nil {
			return nil, MalformedInput("", "invalid column type").WithColumn(i).WithCause(err)
		}
		dataTypes[i] = dt
	}
	t := NewTable(names, dataTypes)
	for r, row := range rows[2:] {
		if len(row) != len(names) {
			return nil, MalformedInput("", "data row has %d values, header has %d columns", len(row), len(names)).WithRow(r)
		}
		t.Rows = append(t.Rows, append([]any(nil), row...))
	}
	return t, nil
}

// ToRows renders the table back into the host wire form.
func (t *Table) ToRows() [][]any {
	out := make([][]any, 0, len(t.Rows)+2)
	names := make([]any, len(t.Names))
	for i, n := range t.Names {
		names[i] = n
	}
	dataTypes := make([]any, len(t.Types))
	for i, dt := range t.Types {
		dataTypes[i] = string(dt)
	}
	out = append(out, names, dataTypes)
	for _, row := range t.Rows {
		out = append(out, append([]any(nil), row...))
	}
	return out
}

// Validate checks that every data row matches the header width.
func (t *Table) Validate() error {
	if t == nil {
		return MalformedInput("", "nil table")
	}
	if len(t.Names) != len(t.Types) {
		return MalformedInput("", "header has %d names but %d types", len(t.Names), len(t.Types))
	}
	for r, row := range t.Rows {
		if len(row) != len(t.Names) {
			return MalformedInput("", "data row has %d values, header has %d columns", len(row), len(t.Names)).WithRow(r)
		}
	}
	return nil
}

// NumColumns 列数
func (t *Table) NumColumns() int {
	return len(t.Names)
}

// NumRows 数据行数（不含表头）
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// AppendRow appends a data row; the row length must match the header.
func (t *Table) AppendRow(values ...any) error {
	if len(values) != len(t.Names) {
		return MalformedInput("", "row has %d values, header has %d columns", len(values), len(t.Names))
	}
	t.Rows = append(t.Rows, values)
	return nil
}

// Column returns a copy of column i across all data rows.
func (t *Table) Column(i int) []any {
	col := make([]any, len(t.Rows))
	for r, row := range t.Rows {
		col[r] = row[i]
	}
	return col
}

// ColumnIndex returns the position of the first column with the given name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, n := range t.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy; []byte cells are copied too.
func (t *Table) Clone() *Table {
	out := &Table{
		Names: append([]string(nil), t.Names...),
		Types: append([]DataType(nil), t.Types...),
		Rows:  make([][]any, len(t.Rows)),
	}
	for r, row := range t.Rows {
		cp := make([]any, len(row))
		for i, v := range row {
			if b, ok := v.([]byte); ok {
				v = append([]byte(nil), b...)
			}
			cp[i] = v
		}
		out.Rows[r] = cp
	}
	return out
}

func (t *Table) String() string {
	return fmt.Sprintf("Table{columns=%d, rows=%d}", len(t.Names), len(t.Rows))
}
