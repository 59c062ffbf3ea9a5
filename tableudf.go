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
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rulego/tableudf/functions"
	"github.com/rulego/tableudf/logger"
	"github.com/rulego/tableudf/metrics"
	"github.com/rulego/tableudf/types"
)

// Engine 是表变换函数的调用入口。
// 它负责函数查找、输入输出校验、日志和监控，具体变换由 functions 包实现。
//
// 使用示例:
//
//	engine := tableudf.New(tableudf.WithLogLevel(logger.WARN))
//	out, err := engine.TransformRows("div_144", rows, nil, nil)
type Engine struct {
	config   types.Config
	registry *functions.FunctionRegistry
	log      logger.Logger
	metrics  *metrics.Collector
	disabled map[string]struct{}

	// 由选项设置，New 中统一生效
	logLevel   *logger.Level
	logOutput  io.Writer
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

// New 创建一个新的引擎实例。
// 支持通过可选的Option参数进行配置，未指定时使用默认配置和内置函数注册器。
//
// 示例:
//
//	// 创建默认实例
//	engine := tableudf.New()
//
//	// 从配置文件创建并记录监控指标
//	cfg, _ := config.Load("tableudf.yaml")
//	engine := tableudf.New(tableudf.WithConfig(cfg), tableudf.WithMetrics(prometheus.NewRegistry()))
func New(options ...Option) *Engine {
	e := &Engine{
		config: types.NewConfig(),
	}

	// 应用所有配置选项
	for _, option := range options {
		option(e)
	}
	e.config.ApplyDefaults()

	e.initLogger()
	if e.registry == nil {
		e.registry = functions.NewBuiltinRegistry()
	}
	e.disabled = make(map[string]struct{}, len(e.config.Functions.Disabled))
	for _, name := range e.config.Functions.Disabled {
		e.disabled[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	e.initMetrics()

	e.log.Debug("engine ready: %d functions, %d disabled", len(e.registry.Names()), len(e.disabled))
	return e
}

func (e *Engine) initLogger() {
	level := logger.INFO
	if e.logLevel != nil {
		level = *e.logLevel
	} else if parsed, err := logger.ParseLevel(e.config.Log.Level); err == nil {
		level = parsed
	}

	if e.log != nil {
		if e.logLevel != nil {
			e.log.SetLevel(level)
		}
		return
	}
	output := e.logOutput
	if output == nil {
		output = logger.OutputWriter(e.config.Log.Output)
	}
	e.log = logger.NewLogger(level, output)
	if _, err := logger.ParseLevel(e.config.Log.Level); err != nil && e.logLevel == nil {
		e.log.Warn("%v, using %s", err, level)
	}
}

func (e *Engine) initMetrics() {
	if e.registerer == nil && e.config.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		e.registerer, e.gatherer = reg, reg
	}
	if e.registerer != nil {
		e.metrics = metrics.NewCollector(e.registerer, e.config.Metrics.Namespace)
	}
}

// Config returns the effective configuration.
func (e *Engine) Config() types.Config {
	return e.config
}

// Gatherer returns the engine's own metrics registry when metrics were enabled through
// configuration without an explicit registerer, or nil otherwise.
func (e *Engine) Gatherer() prometheus.Gatherer {
	return e.gatherer
}

// Logger returns the engine logger.
func (e *Engine) Logger() logger.Logger {
	return e.log
}

// lookup resolves an enabled function.
func (e *Engine) lookup(name string) (functions.Function, error) {
	if _, off := e.disabled[strings.ToLower(name)]; off {
		return nil, fmt.Errorf("%w: %s (disabled)", functions.ErrFunctionNotFound, name)
	}
	fn, ok := e.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", functions.ErrFunctionNotFound, name)
	}
	return fn, nil
}

// Transform 调用指定函数，返回新表。输入表不会被修改。
//
// 调用流程：查找函数 -> 校验输入 -> 执行 -> 校验输出 -> 记录监控指标。
// 失败时返回的错误可用 errors.Is 与 types.ErrMalformedInput、types.ErrArithmetic、
// types.ErrGroupingKey 或 functions.ErrFunctionNotFound 比较。
func (e *Engine) Transform(name string, in *types.Table, params *types.Params) (*types.Table, error) {
	fn, err := e.lookup(name)
	if err != nil {
		e.log.Warn("transform %s: %v", name, err)
		return nil, err
	}
	fnName := fn.GetName()
	log := logger.Named(e.log, fnName)
	start := time.Now()

	out, err := e.invoke(fn, log, in, params)

	rowsIn, rowsOut := 0, 0
	if in != nil {
		rowsIn = in.NumRows()
	}
	if out != nil {
		rowsOut = out.NumRows()
	}
	elapsed := time.Since(start)
	e.metrics.Observe(fnName, elapsed, rowsIn, rowsOut, err)
	if err != nil {
		log.Warn("failed after %v: %v", elapsed, err)
		return nil, err
	}
	log.Debug("%d rows in, %d rows out, %d columns, %v", rowsIn, rowsOut, out.NumColumns(), elapsed)
	return out, nil
}

func (e *Engine) invoke(fn functions.Function, log logger.Logger, in *types.Table, params *types.Params) (*types.Table, error) {
	if err := fn.Validate(in, params); err != nil {
		return nil, err
	}
	out, err := fn.Execute(&functions.FunctionContext{Name: fn.GetName(), Logger: log}, in, params)
	if err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("function %s produced an invalid table: %w", fn.GetName(), err)
	}
	return out, nil
}

// TransformRows is Transform on the host wire form: row 0 names, row 1 type tags, then data.
func (e *Engine) TransformRows(name string, rows [][]any, args []any, kwargs map[string]any) ([][]any, error) {
	in, err := types.FromRows(rows)
	if err != nil {
		e.log.Warn("transform %s: %v", name, err)
		return nil, err
	}
	out, err := e.Transform(name, in, types.NewParams(args, kwargs))
	if err != nil {
		return nil, err
	}
	return out.ToRows(), nil
}

// TransformArrow is Transform on arrow records. The caller keeps ownership of rec and
// must Release the returned record. A nil allocator uses the Go allocator.
func (e *Engine) TransformArrow(mem memory.Allocator, name string, rec arrow.Record, params *types.Params) (arrow.Record, error) {
	in, err := types.FromArrowRecord(rec)
	if err != nil {
		return nil, err
	}
	out, err := e.Transform(name, in, params)
	if err != nil {
		return nil, err
	}
	return types.ToArrowRecord(mem, out)
}

// Functions returns the enabled function names in sorted order.
func (e *Engine) Functions() []string {
	names := e.registry.Names()
	enabled := names[:0]
	for _, name := range names {
		if _, off := e.disabled[name]; !off {
			enabled = append(enabled, name)
		}
	}
	return enabled
}

// Describe returns the description of an enabled function.
func (e *Engine) Describe(name string) (functions.Info, error) {
	fn, err := e.lookup(name)
	if err != nil {
		return functions.Info{}, err
	}
	return functions.Describe(fn), nil
}
