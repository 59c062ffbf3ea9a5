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

package window

import (
	"errors"
	"time"

	"github.com/rulego/tableudf/utils/cast"
)

// 常用窗口大小（纳秒）
const (
	TenMinutes = int64(10 * time.Minute)
	Day        = int64(24 * time.Hour)
)

// ErrInvalidSize is returned for a window size that is not positive.
var ErrInvalidSize = errors.New("window size must be positive")

// Align 将 v 对齐到以 origin 为起点、宽度为 size 的窗口起始位置，size 必须大于 0。
func Align(v, origin, size int64) int64 {
	offset := v - origin
	q := offset / size
	if offset%size != 0 && offset < 0 {
		q--
	}
	return origin + q*size
}

// Buckets aligns every present value of col to a window of the given size anchored at
// the column minimum. The result has the same length as col; values are int64 or nil.
func Buckets(col []any, size int64) ([]any, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	values := make([]int64, len(col))
	present := make([]bool, len(col))
	var origin int64
	found := false
	for i, x := range col {
		v, ok, err := cast.ToInt64(x)
		if err != nil {
			return nil, &cast.CellError{Index: i, Err: err}
		}
		if !ok {
			continue
		}
		values[i], present[i] = v, true
		if !found || v < origin {
			origin, found = v, true
		}
	}

	out := make([]any, len(col))
	for i := range col {
		if present[i] {
			out[i] = Align(values[i], origin, size)
		}
	}
	return out, nil
}

// Runs returns the length of every maximal run of true values in order.
// When closedOnly is set a run still open at the end of flags is not reported.
func Runs(flags []bool, closedOnly bool) []int {
	runs := make([]int, 0)
	start := -1
	for i, on := range flags {
		if start < 0 {
			if on {
				start = i
			}
			continue
		}
		if !on {
			runs = append(runs, i-start)
			start = -1
		}
	}
	if start >= 0 && !closedOnly {
		runs = append(runs, len(flags)-start)
	}
	return runs
}
