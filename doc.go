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

/*
Package tableudf 是一组供列式查询引擎调用的表变换函数（UDF）。

宿主每次调用传入一张表（列名行、类型行和数据行）以及可选的位置参数和命名参数，
函数返回一张新表。函数无状态、不做任何 I/O，也不会修改输入表，因此同一个 Engine
可以被并发调用。

# 核心特性

• 表进表出 - 统一的 transform(table, args, kwargs) 调用约定
• 内置函数 - 阈值、除法、计数、会话、分组移位、时间分桶、转置、负载比
• 表达式支持 - filter 与 map_expr 使用 expr-lang 表达式
• Arrow 互通 - 直接处理 arrow.Record
• 可观测性 - 分级日志与 Prometheus 指标
• 配置 - YAML 文件加环境变量覆盖

# 入门示例

	engine := tableudf.New()

	rows := [][]any{
		{"avg(a.truck_1.current_load)", "avg(a.truck_1.load_capacity)"},
		{"DOUBLE", "DOUBLE"},
		{50.0, 100.0},
	}
	out, err := engine.TransformRows("div_load_cap", rows, nil, nil)
	// out: [[a.truck_1.avgload] [DOUBLE] [0.5]]

带参数调用：

	out, err := engine.TransformRows("timebucket", rows, nil, map[string]any{
		"column": 1,
		"window": int64(10 * time.Minute),
	})

# 错误处理

失败时返回 *types.UDFError，可以用 errors.Is 判断类型：

	switch {
	case errors.Is(err, types.ErrMalformedInput):  // 表结构或列路径不符合要求
	case errors.Is(err, types.ErrArithmetic):      // 除数为零或缺失
	case errors.Is(err, types.ErrGroupingKey):     // 分组键缺失或不是整数
	case errors.Is(err, functions.ErrFunctionNotFound):
	}

函数要么返回完整的表，要么返回错误，不会返回部分结果。

# 配置

	cfg, err := config.Load("tableudf.yaml")
	engine := tableudf.New(
		tableudf.WithConfig(cfg),
		tableudf.WithMetrics(prometheus.DefaultRegisterer),
	)

配置文件示例：

	schema_version: v1
	log:
	  level: debug
	  output: stderr
	metrics:
	  enabled: true
	  namespace: tableudf
	functions:
	  disabled: [map_expr, filter]

环境变量 TABLEUDF__LOG__LEVEL=warn 之类的设置会覆盖文件中的值。
*/
package tableudf
