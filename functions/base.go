package functions

import (
	"errors"

	"github.com/rulego/tableudf/types"
)

// BaseFunction 基础函数实现，提供通用功能
type BaseFunction struct {
	name        string
	fnType      FunctionType
	category    string
	description string
	minColumns  int
	maxColumns  int // -1 表示无限制
}

// NewBaseFunction 创建基础函数
func NewBaseFunction(name string, fnType FunctionType, category, description string, minColumns, maxColumns int) *BaseFunction {
	return &BaseFunction{
		name:        name,
		fnType:      fnType,
		category:    category,
		description: description,
		minColumns:  minColumns,
		maxColumns:  maxColumns,
	}
}

func (bf *BaseFunction) GetName() string {
	return bf.name
}

func (bf *BaseFunction) GetType() FunctionType {
	return bf.fnType
}

func (bf *BaseFunction) GetCategory() string {
	return bf.category
}

func (bf *BaseFunction) GetDescription() string {
	return bf.description
}

// ValidateColumnCount 验证列数
func (bf *BaseFunction) ValidateColumnCount(in *types.Table) error {
	n := in.NumColumns()

	if n < bf.minColumns {
		return bf.malformed("requires at least %d columns, got %d", bf.minColumns, n)
	}

	if bf.maxColumns != -1 && n > bf.maxColumns {
		return bf.malformed("accepts at most %d columns, got %d", bf.maxColumns, n)
	}

	return nil
}

// Validate checks the table shape and the column count.
func (bf *BaseFunction) Validate(in *types.Table, _ *types.Params) error {
	if err := in.Validate(); err != nil {
		return bf.own(err)
	}
	return bf.ValidateColumnCount(in)
}

// Label wraps a column name with the function name, e.g. div_144(x).
func (bf *BaseFunction) Label(name string) string {
	return bf.name + "(" + name + ")"
}

// wrapNames labels every column except the key axis.
func (bf *BaseFunction) wrapNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if n == types.KeyColumn {
			out[i] = n
			continue
		}
		out[i] = bf.Label(n)
	}
	return out
}

func (bf *BaseFunction) malformed(format string, args ...any) *types.UDFError {
	return types.MalformedInput(bf.name, format, args...)
}

func (bf *BaseFunction) arithmetic(format string, args ...any) *types.UDFError {
	return types.Arithmetic(bf.name, format, args...)
}

func (bf *BaseFunction) groupingKey(format string, args ...any) *types.UDFError {
	return types.GroupingKey(bf.name, format, args...)
}

// own stamps the function name on a UDFError raised by shared code.
func (bf *BaseFunction) own(err error) error {
	var udfErr *types.UDFError
	if errors.As(err, &udfErr) && udfErr.Function == "" {
		udfErr.Function = bf.name
	}
	return err
}
