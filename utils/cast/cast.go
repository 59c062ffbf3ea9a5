/*
 * Copyright 2024 The RuleGo Authors.
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

// Package cast coerces table cells while keeping absent (nil) values distinct from zero.
package cast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// ToFloat64 converts a cell to float64. ok is false when the cell is absent.
func ToFloat64(x any) (f float64, ok bool, err error) {
	switch v := x.(type) {
	case nil:
		return 0, false, nil
	case []byte:
		return 0, false, fmt.Errorf("invalid operation: float(%T)", x)
	case float64:
		return v, true, nil
	}
	f, err = cast.ToFloat64E(x)
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}

// ToInt64 converts a cell to int64. Floats must be integral.
func ToInt64(x any) (i int64, ok bool, err error) {
	switch v := x.(type) {
	case nil:
		return 0, false, nil
	case int64:
		return v, true, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false, fmt.Errorf("invalid operation: int(%v)", v)
		}
		return int64(v), true, nil
	case float32:
		return ToInt64(float64(v))
	case []byte:
		return 0, false, fmt.Errorf("invalid operation: int(%T)", x)
	}
	i, err = cast.ToInt64E(x)
	if err != nil {
		return 0, false, err
	}
	return i, true, nil
}

// ToString renders a cell as text; []byte is taken verbatim.
func ToString(x any) string {
	if b, ok := x.([]byte); ok {
		return string(b)
	}
	return cast.ToString(x)
}

// Float64Column converts every cell of a column, keeping nil for absent values.
func Float64Column(col []any) ([]*float64, error) {
	out := make([]*float64, len(col))
	for i, x := range col {
		f, ok, err := ToFloat64(x)
		if err != nil {
			return nil, &CellError{Index: i, Err: err}
		}
		if ok {
			out[i] = &f
		}
	}
	return out, nil
}

// CellError reports which cell of a column failed conversion.
type CellError struct {
	Index int
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %d: %v", e.Index, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
