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
	"strings"
)

// DataType 列类型标签
type DataType string

const (
	Boolean DataType = "BOOLEAN"
	Double  DataType = "DOUBLE"
	Long    DataType = "LONG"
	Binary  DataType = "BINARY"
	String  DataType = "STRING"
)

// ParseDataType parses a type tag case-insensitively.
func ParseDataType(s string) (DataType, error) {
	switch DataType(strings.ToUpper(strings.TrimSpace(s))) {
	case Boolean:
		return Boolean, nil
	case Double:
		return Double, nil
	case Long:
		return Long, nil
	case Binary:
		return Binary, nil
	case String:
		return String, nil
	default:
		return "", fmt.Errorf("unknown data type %q", s)
	}
}

func (t DataType) String() string {
	return string(t)
}

// Repeat returns n copies of t, used when every output column shares one type.
func Repeat(t DataType, n int) []DataType {
	out := make([]DataType, n)
	for i := range out {
		out[i] = t
	}
	return out
}
