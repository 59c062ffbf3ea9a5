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

package cast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect float64
		ok     bool
		hasErr bool
	}{
		{"nil", nil, 0, false, false},
		{"float64", 98.6, 98.6, true, false},
		{"int", 3, 3, true, false},
		{"int64", int64(-2), -2, true, false},
		{"float32", float32(0.5), 0.5, true, false},
		{"string", "1.5", 1.5, true, false},
		{"bool", true, 1, true, false},
		{"bytes", []byte("1"), 0, false, true},
		{"invalid string", "abc", 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ToFloat64(tt.input)
			if tt.hasErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestToInt64(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect int64
		ok     bool
		hasErr bool
	}{
		{"nil", nil, 0, false, false},
		{"int64", int64(600000000000), 600000000000, true, false},
		{"int", 7, 7, true, false},
		{"integral float", 3.0, 3, true, false},
		{"fractional float", 3.5, 0, false, true},
		{"string", "42", 42, true, false},
		{"bytes", []byte("42"), 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ToInt64(tt.input)
			if tt.hasErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestFloat64Column(t *testing.T) {
	col, err := Float64Column([]any{1, nil, 2.5})
	require.NoError(t, err)
	require.Len(t, col, 3)
	assert.Equal(t, 1.0, *col[0])
	assert.Nil(t, col[1])
	assert.Equal(t, 2.5, *col[2])

	_, err = Float64Column([]any{1, "x"})
	var cellErr *CellError
	require.True(t, errors.As(err, &cellErr))
	assert.Equal(t, 1, cellErr.Index)
}

func TestToString(t *testing.T) {
	assert.Equal(t, "truck1", ToString([]byte("truck1")))
	assert.Equal(t, "12", ToString(12))
	assert.Equal(t, "", ToString(nil))
}
