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

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/spf13/cast"
)

// ArrowType maps a type tag to its arrow data type.
func ArrowType(t DataType) (arrow.DataType, error) {
	switch t {
	case Boolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case Double:
		return arrow.PrimitiveTypes.Float64, nil
	case Long:
		return arrow.PrimitiveTypes.Int64, nil
	case Binary:
		return arrow.BinaryTypes.Binary, nil
	case String:
		return arrow.BinaryTypes.String, nil
	default:
		return nil, fmt.Errorf("no arrow type for %q", t)
	}
}

// FromArrowType maps an arrow data type to a type tag. Narrow integer and float
// types widen to LONG and DOUBLE.
func FromArrowType(dt arrow.DataType) (DataType, error) {
	switch dt.ID() {
	case arrow.BOOL:
		return Boolean, nil
	case arrow.FLOAT64, arrow.FLOAT32:
		return Double, nil
	case arrow.INT64, arrow.INT32, arrow.INT16, arrow.INT8:
		return Long, nil
	case arrow.BINARY:
		return Binary, nil
	case arrow.STRING:
		return String, nil
	default:
		return "", fmt.Errorf("unsupported arrow type %s", dt)
	}
}

// ToArrowRecord builds an arrow record from t. The caller owns the returned record
// and must Release it.
func ToArrowRecord(mem memory.Allocator, t *Table) (arrow.Record, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	fields := make([]arrow.Field, len(t.Names))
	for i, name := range t.Names {
		dt, err := ArrowType(t.Types[i])
		if err != nil {
			return nil, MalformedInput("", "invalid column type").WithColumn(i).WithCause(err)
		}
		fields[i] = arrow.Field{Name: name, Type: dt, Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	for col := range t.Names {
		fb := b.Field(col)
		for r, row := range t.Rows {
			if err := appendArrowValue(fb, t.Types[col], row[col]); err != nil {
				return nil, MalformedInput("", "cannot convert value to %s", t.Types[col]).
					WithColumn(col).WithRow(r).WithCause(err)
			}
		}
	}
	return b.NewRecord(), nil
}

func appendArrowValue(builder array.Builder, t DataType, v any) error {
	if v == nil {
		builder.AppendNull()
		return nil
	}
	switch t {
	case Boolean:
		x, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		builder.(*array.BooleanBuilder).Append(x)
	case Double:
		x, err := cast.ToFloat64E(v)
		if err != nil {
			return err
		}
		builder.(*array.Float64Builder).Append(x)
	case Long:
		x, err := cast.ToInt64E(v)
		if err != nil {
			return err
		}
		builder.(*array.Int64Builder).Append(x)
	case Binary:
		switch x := v.(type) {
		case []byte:
			builder.(*array.BinaryBuilder).Append(x)
		case string:
			builder.(*array.BinaryBuilder).Append([]byte(x))
		default:
			return fmt.Errorf("expected bytes, got %T", v)
		}
	case String:
		if b, ok := v.([]byte); ok {
			builder.(*array.StringBuilder).Append(string(b))
			return nil
		}
		x, err := cast.ToStringE(v)
		if err != nil {
			return err
		}
		builder.(*array.StringBuilder).Append(x)
	}
	return nil
}

// FromArrowRecord copies an arrow record into a new Table.
func FromArrowRecord(rec arrow.Record) (*Table, error) {
	schema := rec.Schema()
	ncols := int(rec.NumCols())
	nrows := int(rec.NumRows())

	names := make([]string, ncols)
	dataTypes := make([]DataType, ncols)
	for i := 0; i < ncols; i++ {
		field := schema.Field(i)
		dt, err := FromArrowType(field.Type)
		if err != nil {
			return nil, MalformedInput("", "unsupported column").WithColumn(i).WithCause(err)
		}
		names[i] = field.Name
		dataTypes[i] = dt
	}

	t := NewTable(names, dataTypes)
	t.Rows = make([][]any, nrows)
	for r := range t.Rows {
		t.Rows[r] = make([]any, ncols)
	}
	for c := 0; c < ncols; c++ {
		col := rec.Column(c)
		for r := 0; r < nrows; r++ {
			t.Rows[r][c] = arrowValue(col, r)
		}
	}
	return t, nil
}

func arrowValue(col arrow.Array, pos int) any {
	if col.IsNull(pos) {
		return nil
	}
	switch a := col.(type) {
	case *array.Boolean:
		return a.Value(pos)
	case *array.Float64:
		return a.Value(pos)
	case *array.Float32:
		return float64(a.Value(pos))
	case *array.Int64:
		return a.Value(pos)
	case *array.Int32:
		return int64(a.Value(pos))
	case *array.Int16:
		return int64(a.Value(pos))
	case *array.Int8:
		return int64(a.Value(pos))
	case *array.Binary:
		// Value aliases the arrow buffer, which the record owner may release.
		return append([]byte(nil), a.Value(pos)...)
	case *array.String:
		return a.Value(pos)
	default:
		return nil
	}
}
