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

package functions

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rulego/tableudf/logger"
	"github.com/rulego/tableudf/types"
)

// FunctionType 函数类型枚举
type FunctionType string

const (
	// 逐行变换，输出行与输入行一一对应
	TypeUDTF FunctionType = "udtf"
	// 列聚合，输出一行
	TypeUDAF FunctionType = "udaf"
	// 集合到集合的变换，行数可变
	TypeUDSF FunctionType = "udsf"
	// 用户自定义函数
	TypeCustom FunctionType = "custom"
)

// ErrFunctionNotFound is returned for names that are not registered (or are disabled).
var ErrFunctionNotFound = errors.New("function not found")

// FunctionContext 函数执行上下文
type FunctionContext struct {
	// 调用名称（注册名的小写形式）
	Name string
	// 调用级日志，可以为空
	Logger logger.Logger
}

// Log returns the call logger, or a discard logger when none is set.
func (ctx *FunctionContext) Log() logger.Logger {
	if ctx == nil || ctx.Logger == nil {
		return logger.NewDiscardLogger()
	}
	return ctx.Logger
}

// Function 表变换函数接口
type Function interface {
	// GetName 获取函数名称
	GetName() string
	// GetType 获取函数类型
	GetType() FunctionType
	// GetCategory 获取函数分类
	GetCategory() string
	// GetDescription 获取函数描述
	GetDescription() string
	// Validate 验证输入表和参数
	Validate(in *types.Table, params *types.Params) error
	// Execute 执行变换，返回新表，不修改输入
	Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error)
}

// Info is a read-only description of a registered function.
type Info struct {
	Name        string       `json:"name" yaml:"name"`
	Type        FunctionType `json:"type" yaml:"type"`
	Category    string       `json:"category" yaml:"category"`
	Description string       `json:"description" yaml:"description"`
}

// Describe returns the Info of fn.
func Describe(fn Function) Info {
	return Info{
		Name:        fn.GetName(),
		Type:        fn.GetType(),
		Category:    fn.GetCategory(),
		Description: fn.GetDescription(),
	}
}

// FunctionRegistry 函数注册器
type FunctionRegistry struct {
	mu         sync.RWMutex
	functions  map[string]Function
	categories map[FunctionType][]Function
}

// 全局函数注册器实例
var globalRegistry = NewBuiltinRegistry()

// NewFunctionRegistry 创建空的函数注册器
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions:  make(map[string]Function),
		categories: make(map[FunctionType][]Function),
	}
}

// NewBuiltinRegistry creates a registry holding every built-in transform.
func NewBuiltinRegistry() *FunctionRegistry {
	r := NewFunctionRegistry()
	registerBuiltinFunctions(r)
	return r
}

// Register 注册函数
func (r *FunctionRegistry) Register(fn Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(fn.GetName())
	if name == "" {
		return errors.New("function name cannot be empty")
	}

	// 检查函数是否已存在
	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("function %s already registered", name)
	}

	r.functions[name] = fn
	r.categories[fn.GetType()] = append(r.categories[fn.GetType()], fn)
	return nil
}

// Get 获取函数，名称不区分大小写
func (r *FunctionRegistry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.functions[strings.ToLower(name)]
	return fn, exists
}

// GetByType 按类型获取函数列表
func (r *FunctionRegistry) GetByType(fnType FunctionType) []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Function(nil), r.categories[fnType]...)
}

// ListAll 列出所有注册的函数
func (r *FunctionRegistry) ListAll() map[string]Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Function, len(r.functions))
	for name, fn := range r.functions {
		result[name] = fn
	}
	return result
}

// Names returns the registered names in sorted order.
func (r *FunctionRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister 注销函数
func (r *FunctionRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.ToLower(name)
	fn, exists := r.functions[name]
	if !exists {
		return false
	}

	delete(r.functions, name)

	// 从分类中移除
	fnType := fn.GetType()
	if funcs, ok := r.categories[fnType]; ok {
		for i, f := range funcs {
			if strings.ToLower(f.GetName()) == name {
				r.categories[fnType] = append(funcs[:i:i], funcs[i+1:]...)
				break
			}
		}
	}

	return true
}

// Execute looks up name, validates the input and runs the function.
func (r *FunctionRegistry) Execute(name string, ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	fn, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}

	if err := fn.Validate(in, params); err != nil {
		return nil, fmt.Errorf("function %s validation failed: %w", name, err)
	}

	return fn.Execute(ctx, in, params)
}

// 全局函数注册和获取方法
func Register(fn Function) error {
	return globalRegistry.Register(fn)
}

func Get(name string) (Function, bool) {
	return globalRegistry.Get(name)
}

func GetByType(fnType FunctionType) []Function {
	return globalRegistry.GetByType(fnType)
}

func ListAll() map[string]Function {
	return globalRegistry.ListAll()
}

func Unregister(name string) bool {
	return globalRegistry.Unregister(name)
}

// Execute 使用全局注册器执行函数
func Execute(name string, ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	return globalRegistry.Execute(name, ctx, in, params)
}

// Default returns the global registry.
func Default() *FunctionRegistry {
	return globalRegistry
}

// RegisterCustomFunction 注册自定义函数
func RegisterCustomFunction(name string, fnType FunctionType, category, description string,
	minColumns, maxColumns int, executor func(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error)) error {

	return Register(NewCustomFunction(name, fnType, category, description, minColumns, maxColumns, executor))
}

// CustomFunction 自定义函数实现
type CustomFunction struct {
	*BaseFunction
	executor func(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error)
}

// NewCustomFunction wraps executor as a Function so it can be registered on any registry.
func NewCustomFunction(name string, fnType FunctionType, category, description string,
	minColumns, maxColumns int, executor func(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error)) *CustomFunction {
	return &CustomFunction{
		BaseFunction: NewBaseFunction(name, fnType, category, description, minColumns, maxColumns),
		executor:     executor,
	}
}

func (f *CustomFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	return f.executor(ctx, in, params)
}
