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
	"errors"
	"fmt"
	"strings"
)

// ErrorKind 错误类型
type ErrorKind int

const (
	// KindMalformedInput header/data shape mismatch or an unparseable column path
	KindMalformedInput ErrorKind = iota
	// KindArithmetic division by zero or by an absent denominator
	KindArithmetic
	// KindGroupingKey a grouped transform could not resolve a row's group key
	KindGroupingKey
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrArithmetic     = errors.New("arithmetic error")
	ErrGroupingKey    = errors.New("grouping key error")
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedInput:
		return "MALFORMED_INPUT"
	case KindArithmetic:
		return "ARITHMETIC"
	case KindGroupingKey:
		return "GROUPING_KEY"
	default:
		return "UNKNOWN"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindMalformedInput:
		return ErrMalformedInput
	case KindArithmetic:
		return ErrArithmetic
	case KindGroupingKey:
		return ErrGroupingKey
	default:
		return nil
	}
}

// UDFError is returned by every transform. Row and Column are -1 when unknown.
type UDFError struct {
	Kind     ErrorKind
	Function string
	Column   int
	Row      int
	Message  string
	Cause    error
}

// Error 实现 error 接口
func (e *UDFError) Error() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("[%s]", e.Kind))
	if e.Function != "" {
		builder.WriteString(" " + e.Function + ":")
	}
	builder.WriteString(" " + e.Message)
	if e.Row >= 0 {
		builder.WriteString(fmt.Sprintf(" at row %d", e.Row))
	}
	if e.Column >= 0 {
		builder.WriteString(fmt.Sprintf(" (column %d)", e.Column))
	}
	if e.Cause != nil {
		builder.WriteString(": " + e.Cause.Error())
	}
	return builder.String()
}

func (e *UDFError) Unwrap() error {
	return e.Cause
}

// Is matches the kind sentinels so callers can use errors.Is(err, ErrArithmetic).
func (e *UDFError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// WithColumn 记录出错的列
func (e *UDFError) WithColumn(col int) *UDFError {
	e.Column = col
	return e
}

// WithRow 记录出错的数据行（从0开始，不含表头）
func (e *UDFError) WithRow(row int) *UDFError {
	e.Row = row
	return e
}

// WithCause 记录底层错误
func (e *UDFError) WithCause(err error) *UDFError {
	e.Cause = err
	return e
}

func newError(kind ErrorKind, fn, format string, args ...any) *UDFError {
	return &UDFError{
		Kind:     kind,
		Function: fn,
		Column:   -1,
		Row:      -1,
		Message:  fmt.Sprintf(format, args...),
	}
}

func MalformedInput(fn, format string, args ...any) *UDFError {
	return newError(KindMalformedInput, fn, format, args...)
}

func Arithmetic(fn, format string, args ...any) *UDFError {
	return newError(KindArithmetic, fn, format, args...)
}

func GroupingKey(fn, format string, args ...any) *UDFError {
	return newError(KindGroupingKey, fn, format, args...)
}

// KindOf reports the kind of a UDFError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var udfErr *UDFError
	if errors.As(err, &udfErr) {
		return udfErr.Kind, true
	}
	return 0, false
}
