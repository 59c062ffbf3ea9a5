package functions

import (
	"github.com/rulego/tableudf/condition"
	"github.com/rulego/tableudf/types"
)

// FilterFunction keeps the rows for which the expr-lang condition in the "where"
// named argument holds. Each column is visible by name (first occurrence wins),
// along with row (all columns) and index; BINARY cells are exposed as strings.
type FilterFunction struct {
	*BaseFunction
}

func NewFilterFunction() *FilterFunction {
	return &FilterFunction{
		BaseFunction: NewBaseFunction("filter", TypeUDSF, "filter",
			"keeps rows matching the where keyword, e.g. where=\"value > 5 && like_match(name, 'truck%')\"", 0, -1),
	}
}

func (f *FilterFunction) Validate(in *types.Table, params *types.Params) error {
	if err := f.BaseFunction.Validate(in, params); err != nil {
		return err
	}
	_, err := f.compile(params)
	return err
}

func (f *FilterFunction) compile(params *types.Params) (condition.Condition, error) {
	where, err := params.String("where", "")
	if err != nil {
		return nil, f.own(err)
	}
	if where == "" {
		return nil, f.malformed("where keyword is required")
	}
	cond, err := condition.NewExprCondition(where)
	if err != nil {
		return nil, f.malformed("invalid condition %q", where).WithCause(err)
	}
	return cond, nil
}

func (f *FilterFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	cond, err := f.compile(params)
	if err != nil {
		return nil, err
	}
	out := types.NewTable(append([]string(nil), in.Names...), append([]types.DataType(nil), in.Types...))
	for r, row := range in.Rows {
		ok, err := cond.Evaluate(rowEnv(in, r))
		if err != nil {
			return nil, f.malformed("condition failed").WithRow(r).WithCause(err)
		}
		if ok {
			out.Rows = append(out.Rows, copyRow(row))
		}
	}
	ctx.Log().Debug("filter %v kept %d of %d rows", cond, out.NumRows(), in.NumRows())
	return out, nil
}

// rowEnv exposes data row r to an expression.
func rowEnv(in *types.Table, r int) map[string]any {
	values := make(map[string]any, in.NumColumns())
	env := make(map[string]any, in.NumColumns()+2)
	for c, name := range in.Names {
		v := in.Rows[r][c]
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		if _, dup := values[name]; !dup {
			values[name] = v
		}
		if _, dup := env[name]; !dup {
			env[name] = v
		}
	}
	env["row"] = values
	env["index"] = r
	return env
}
