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

package logger

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"}, // 测试未知级别
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

// TestParseLevel 测试级别解析
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		hasErr   bool
	}{
		{"debug", DEBUG, false},
		{" INFO ", INFO, false},
		{"", INFO, false},
		{"warning", WARN, false},
		{"Error", ERROR, false},
		{"off", OFF, false},
		{"verbose", INFO, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.hasErr, err != nil)
		})
	}
}

// TestLevelFiltering 测试级别过滤
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WARN, &buf)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn %s", "message")
	l.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "[WARN] warn message")
	assert.Contains(t, output, "[ERROR] error message")

	buf.Reset()
	l.SetLevel(OFF)
	l.Error("silenced")
	assert.Empty(t, buf.String())

	l.SetLevel(DEBUG)
	l.Debug("debug %d", 1)
	assert.Contains(t, buf.String(), "[DEBUG] debug 1")
}

// TestNamedLogger 测试命名日志器
func TestNamedLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(DEBUG, &buf)
	l := Named(parent, "udf:lead")

	l.Info("emitted %d rows", 3)
	assert.Contains(t, buf.String(), "[INFO] [udf:lead] emitted 3 rows")

	l.SetLevel(ERROR)
	buf.Reset()
	parent.Info("hidden")
	assert.Empty(t, buf.String())
}

// TestDefaultLogger 测试全局默认日志器
func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(DEBUG, &buf))
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	SetDefault(NewDiscardLogger())
	assert.NotPanics(t, func() {
		Info("dropped")
	})
}

// TestOutputWriter 测试输出目标解析
func TestOutputWriter(t *testing.T) {
	assert.Equal(t, os.Stderr, OutputWriter("stderr"))
	assert.Equal(t, io.Discard, OutputWriter("discard"))
	assert.Equal(t, os.Stdout, OutputWriter("stdout"))
	assert.Equal(t, os.Stdout, OutputWriter("unknown"))
}
