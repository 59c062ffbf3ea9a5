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

package tableudf

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rulego/tableudf/functions"
	"github.com/rulego/tableudf/logger"
	"github.com/rulego/tableudf/types"
)

// Option 表示对引擎默认行为的修改配置。
// 显式选项优先于 WithConfig 中的同类配置，与选项顺序无关。
type Option func(*Engine)

// WithConfig 使用已加载的配置，通常来自 config.Load。
//
// 示例:
//
//	cfg, err := config.Load("tableudf.yaml")
//	engine := tableudf.New(tableudf.WithConfig(cfg))
func WithConfig(cfg types.Config) Option {
	return func(e *Engine) {
		e.config = cfg
	}
}

// WithLogger 设置自定义日志记录器。
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	engine := tableudf.New(tableudf.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithLogLevel 设置日志级别。
//
// 示例:
//
//	// 关闭日志
//	engine := tableudf.New(tableudf.WithLogLevel(logger.OFF))
func WithLogLevel(level logger.Level) Option {
	return func(e *Engine) {
		e.logLevel = &level
	}
}

// WithLogOutput 设置日志输出目标和级别。
//
// 示例:
//
//	engine := tableudf.New(tableudf.WithLogOutput(os.Stderr, logger.WARN))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Engine) {
		e.logOutput = output
		e.logLevel = &level
	}
}

// WithDiscardLog 禁用所有日志输出。
func WithDiscardLog() Option {
	return func(e *Engine) {
		e.log = logger.NewDiscardLogger()
	}
}

// WithRegistry 使用自定义函数注册器代替内置注册器。
//
// 示例:
//
//	reg := functions.NewBuiltinRegistry()
//	_ = reg.Register(myFunction)
//	engine := tableudf.New(tableudf.WithRegistry(reg))
func WithRegistry(registry *functions.FunctionRegistry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithMetrics 在 reg 上注册调用次数、耗时和行数指标。
// 同一个 reg 只能用于一个引擎，重复注册会 panic。
//
// 示例:
//
//	reg := prometheus.NewRegistry()
//	engine := tableudf.New(tableudf.WithMetrics(reg))
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registerer = reg
	}
}
