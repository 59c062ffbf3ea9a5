package condition

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rulego/tableudf/utils/cast"
)

// Condition 行过滤条件
type Condition interface {
	Evaluate(env map[string]any) (bool, error)
}

// ExprCondition is a boolean expr-lang program.
type ExprCondition struct {
	source  string
	program *vm.Program
}

// functions available to every expression
func exprOptions() []expr.Option {
	return []expr.Option{
		// 添加自定义字符串函数支持（startsWith、endsWith、contains是内置操作符）
		expr.Function("like_match", func(params ...any) (any, error) {
			if len(params) != 2 {
				return false, fmt.Errorf("like_match function requires 2 parameters")
			}
			text, ok1 := params[0].(string)
			pattern, ok2 := params[1].(string)
			if !ok1 || !ok2 {
				return false, fmt.Errorf("like_match function requires string parameters")
			}
			return matchesLikePattern(text, pattern), nil
		}),
		expr.Function("is_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_null function requires 1 parameter")
			}
			return params[0] == nil, nil
		}),
		expr.AllowUndefinedVariables(),
	}
}

// NewExprCondition compiles a boolean expression such as "value > 1 && like_match(name, 'fuel%')".
func NewExprCondition(expression string) (*ExprCondition, error) {
	options := append(exprOptions(), expr.AsBool())
	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}
	return &ExprCondition{source: expression, program: program}, nil
}

// Evaluate runs the condition against env. A runtime failure is returned, not treated as false.
func (ec *ExprCondition) Evaluate(env map[string]any) (bool, error) {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false, err
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q returned %T, want bool", ec.source, result)
	}
	return b, nil
}

func (ec *ExprCondition) String() string {
	return ec.source
}

// ValueExpr is a numeric expr-lang program mapping one cell to a float64.
type ValueExpr struct {
	source  string
	program *vm.Program
}

// NewValueExpr compiles an expression such as "value >= 0.5 ? 1 : 0".
func NewValueExpr(expression string) (*ValueExpr, error) {
	program, err := expr.Compile(expression, exprOptions()...)
	if err != nil {
		return nil, err
	}
	return &ValueExpr{source: expression, program: program}, nil
}

// Eval runs the expression; a nil result is reported as absent (ok == false).
func (ve *ValueExpr) Eval(env map[string]any) (f float64, ok bool, err error) {
	result, err := expr.Run(ve.program, env)
	if err != nil {
		return 0, false, err
	}
	f, ok, err = cast.ToFloat64(result)
	if err != nil {
		return 0, false, fmt.Errorf("expression %q returned %T: %w", ve.source, result, err)
	}
	return f, ok, nil
}

func (ve *ValueExpr) String() string {
	return ve.source
}

// matchesLikePattern 实现LIKE模式匹配
// 支持%（匹配任意字符序列）和_（匹配单个字符）
func matchesLikePattern(text, pattern string) bool {
	return likeMatch(text, pattern, 0, 0)
}

// likeMatch 递归实现LIKE匹配算法
func likeMatch(text, pattern string, textIndex, patternIndex int) bool {
	if patternIndex >= len(pattern) {
		return textIndex >= len(text)
	}

	// 文本已结束，剩余模式必须全是%
	if textIndex >= len(text) {
		for i := patternIndex; i < len(pattern); i++ {
			if pattern[i] != '%' {
				return false
			}
		}
		return true
	}

	switch patternChar := pattern[patternIndex]; patternChar {
	case '%':
		for i := textIndex; i <= len(text); i++ {
			if likeMatch(text, pattern, i, patternIndex+1) {
				return true
			}
		}
		return false
	case '_':
		return likeMatch(text, pattern, textIndex+1, patternIndex+1)
	default:
		if text[textIndex] == patternChar {
			return likeMatch(text, pattern, textIndex+1, patternIndex+1)
		}
		return false
	}
}
