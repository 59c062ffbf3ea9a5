package functions

import (
	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/utils/cast"
	"github.com/rulego/tableudf/utils/fieldpath"
)

// minPathDepth 路径列至少包含 prefix.entity.field 三段
const minPathDepth = 3

// TranspositionFunction pivots path-encoded columns into (entity, field, value) rows.
// Columns named key are skipped.
type TranspositionFunction struct {
	*BaseFunction
	entityHeader string
	entityIdx    int
	fixed        bool
}

// NewTranspositionByTruckFunction 第二段为 truck 标识
func NewTranspositionByTruckFunction() *TranspositionFunction {
	return &TranspositionFunction{
		BaseFunction: NewBaseFunction("transposition_by_truck", TypeUDSF, "reshape",
			"pivots prefix.truck...field columns into truck, name, value rows", 0, -1),
		entityHeader: "truck",
		entityIdx:    1,
		fixed:        true,
	}
}

// NewTranspositionFunction 实体段由参数 entity 指定，默认 1
func NewTranspositionFunction() *TranspositionFunction {
	return &TranspositionFunction{
		BaseFunction: NewBaseFunction("transposition", TypeUDSF, "reshape",
			"pivots path columns into entity, name, value rows; entity keyword selects the entity segment (default 1)", 0, -1),
		entityHeader: "entity",
		entityIdx:    1,
	}
}

// pathColumn 解析后的路径列
type pathColumn struct {
	index  int
	entity string
	field  string
}

func (f *TranspositionFunction) Validate(in *types.Table, params *types.Params) error {
	if err := f.BaseFunction.Validate(in, params); err != nil {
		return err
	}
	_, err := f.columns(in, params)
	return err
}

func (f *TranspositionFunction) columns(in *types.Table, params *types.Params) ([]pathColumn, error) {
	entityIdx := int64(f.entityIdx)
	if !f.fixed {
		var err error
		if entityIdx, err = params.Int64("entity", entityIdx); err != nil {
			return nil, f.own(err)
		}
	}
	cols := make([]pathColumn, 0, in.NumColumns())
	for i, name := range in.Names {
		if name == types.KeyColumn {
			continue
		}
		entity, field, err := fieldpath.EntityField(name, int(entityIdx), minPathDepth)
		if err != nil {
			return nil, f.malformed("column %q is not a series path", name).WithColumn(i).WithCause(err)
		}
		cols = append(cols, pathColumn{index: i, entity: entity, field: field})
	}
	return cols, nil
}

func (f *TranspositionFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	cols, err := f.columns(in, params)
	if err != nil {
		return nil, err
	}
	out := types.NewTable(
		[]string{f.entityHeader, "name", "value"},
		[]types.DataType{types.Binary, types.Binary, types.Double},
	)
	out.Rows = make([][]any, 0, len(cols)*in.NumRows())
	for r, row := range in.Rows {
		for _, c := range cols {
			v, ok, err := cast.ToFloat64(row[c.index])
			if err != nil {
				return nil, f.malformed("value is not numeric").WithRow(r).WithColumn(c.index).WithCause(err)
			}
			var value any
			if ok {
				value = v
			}
			out.Rows = append(out.Rows, []any{[]byte(c.entity), []byte(c.field), value})
		}
	}
	return out, nil
}
