package functions

import (
	"github.com/rulego/tableudf/condition"
	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/utils/cast"
)

// GeHalfFunction 阈值函数：v >= 0.5 输出 1.0，否则 0.0
type GeHalfFunction struct {
	*BaseFunction
}

func NewGeHalfFunction() *GeHalfFunction {
	return &GeHalfFunction{
		BaseFunction: NewBaseFunction("ge_half", TypeUDTF, "elementwise",
			"1.0 where the value is at least 0.5, else 0.0", 1, -1),
	}
}

func (f *GeHalfFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	return f.mapDoubleCells(in, f.Label, func(v float64, _, _ int) (float64, bool, error) {
		if v >= 0.5 {
			return 1, true, nil
		}
		return 0, true, nil
	})
}

// NzeroFunction 非零标记：v != 0 输出 1.0，否则 0.0
type NzeroFunction struct {
	*BaseFunction
}

func NewNzeroFunction() *NzeroFunction {
	return &NzeroFunction{
		BaseFunction: NewBaseFunction("nzero", TypeUDTF, "elementwise",
			"1.0 where the value is non-zero, else 0.0", 1, -1),
	}
}

func (f *NzeroFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	rename := func(name string) string { return name + "nz" }
	return f.mapDoubleCells(in, rename, func(v float64, _, _ int) (float64, bool, error) {
		if v != 0 {
			return 1, true, nil
		}
		return 0, true, nil
	})
}

// DivFunction divides every value by a divisor, either fixed at construction or
// taken from the first positional argument / the "divisor" named argument.
type DivFunction struct {
	*BaseFunction
	divisor float64
	fixed   bool
}

// NewDiv144Function 固定除数 144
func NewDiv144Function() *DivFunction {
	return &DivFunction{
		BaseFunction: NewBaseFunction("div_144", TypeUDTF, "elementwise",
			"value / 144", 1, -1),
		divisor: 144,
		fixed:   true,
	}
}

// NewDivFunction 除数由参数给出
func NewDivFunction() *DivFunction {
	return &DivFunction{
		BaseFunction: NewBaseFunction("div", TypeUDTF, "elementwise",
			"value / divisor; divisor is the first argument or the divisor keyword", 1, -1),
	}
}

func (f *DivFunction) Validate(in *types.Table, params *types.Params) error {
	if err := f.BaseFunction.Validate(in, params); err != nil {
		return err
	}
	_, err := f.resolveDivisor(params)
	return err
}

func (f *DivFunction) resolveDivisor(params *types.Params) (float64, error) {
	if f.fixed {
		return f.divisor, nil
	}
	v, ok := params.Lookup("divisor", 0)
	if !ok {
		return 0, f.arithmetic("divisor is absent")
	}
	d, present, err := cast.ToFloat64(v)
	if err != nil {
		return 0, f.malformed("divisor is not numeric").WithCause(err)
	}
	if !present || d == 0 {
		return 0, f.arithmetic("division by zero")
	}
	return d, nil
}

func (f *DivFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	d, err := f.resolveDivisor(params)
	if err != nil {
		return nil, err
	}
	return f.mapDoubleCells(in, f.Label, func(v float64, _, _ int) (float64, bool, error) {
		return v / d, true, nil
	})
}

// MapExprFunction evaluates the expr-lang expression in the "expr" named argument
// for every present cell. The expression sees value, name and row.
type MapExprFunction struct {
	*BaseFunction
}

func NewMapExprFunction() *MapExprFunction {
	return &MapExprFunction{
		BaseFunction: NewBaseFunction("map_expr", TypeUDTF, "elementwise",
			"evaluates the expr keyword over value, name and row for every present cell", 1, -1),
	}
}

func (f *MapExprFunction) Validate(in *types.Table, params *types.Params) error {
	if err := f.BaseFunction.Validate(in, params); err != nil {
		return err
	}
	_, err := f.compile(params)
	return err
}

func (f *MapExprFunction) compile(params *types.Params) (*condition.ValueExpr, error) {
	source, err := params.String("expr", "")
	if err != nil {
		return nil, f.own(err)
	}
	if source == "" {
		return nil, f.malformed("expr keyword is required")
	}
	ve, err := condition.NewValueExpr(source)
	if err != nil {
		return nil, f.malformed("invalid expression %q", source).WithCause(err)
	}
	return ve, nil
}

func (f *MapExprFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	ve, err := f.compile(params)
	if err != nil {
		return nil, err
	}
	ctx.Log().Debug("map_expr %s over %d rows", ve, in.NumRows())
	env := map[string]any{}
	return f.mapDoubleCells(in, f.Label, func(v float64, row, col int) (float64, bool, error) {
		env["value"] = v
		env["name"] = in.Names[col]
		env["row"] = row
		res, ok, err := ve.Eval(env)
		if err != nil {
			return 0, false, f.malformed("expression failed").WithRow(row).WithColumn(col).WithCause(err)
		}
		return res, ok, nil
	})
}
