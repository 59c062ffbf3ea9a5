package functions

import (
	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/utils/fieldpath"
)

const (
	loadField     = "current_load"
	capacityField = "load_capacity"
	avgLoadSuffix = ".avgload"
)

// DivLoadCapFunction 按实体计算 current_load / load_capacity
type DivLoadCapFunction struct {
	*BaseFunction
}

func NewDivLoadCapFunction() *DivLoadCapFunction {
	return &DivLoadCapFunction{
		BaseFunction: NewBaseFunction("div_load_cap", TypeUDTF, "group",
			"entity.avgload = current_load / load_capacity for every entity carrying both fields", 0, -1),
	}
}

// loadEntity 一个实体的负载列和容量列位置，-1 表示缺失；重复列以最后一列为准
type loadEntity struct {
	name     string
	load     int
	capacity int
}

func (f *DivLoadCapFunction) Validate(in *types.Table, params *types.Params) error {
	if err := f.BaseFunction.Validate(in, params); err != nil {
		return err
	}
	_, err := f.entities(in)
	return err
}

// entities returns the entities that carry both fields, in first-seen order.
func (f *DivLoadCapFunction) entities(in *types.Table) ([]*loadEntity, error) {
	byName := make(map[string]*loadEntity)
	order := make([]*loadEntity, 0)
	for i, name := range in.Names {
		entity, field, err := fieldpath.SplitLast(fieldpath.StripCall(name))
		if err != nil {
			return nil, f.malformed("column %q has no entity.field form", name).WithColumn(i).WithCause(err)
		}
		e, ok := byName[entity]
		if !ok {
			e = &loadEntity{name: entity, load: -1, capacity: -1}
			byName[entity] = e
			order = append(order, e)
		}
		switch field {
		case loadField:
			e.load = i
		case capacityField:
			e.capacity = i
		}
	}
	qualified := order[:0]
	for _, e := range order {
		if e.load >= 0 && e.capacity >= 0 {
			qualified = append(qualified, e)
		}
	}
	return qualified, nil
}

func (f *DivLoadCapFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	entities, err := f.entities(in)
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 || in.NumRows() == 0 {
		ctx.Log().Debug("div_load_cap: %d entities, %d rows, empty result", len(entities), in.NumRows())
		return types.NewTable([]string{}, []types.DataType{}), nil
	}

	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = e.name + avgLoadSuffix
	}
	out := types.NewTable(names, types.Repeat(types.Double, len(entities)))
	for r := range in.Rows {
		row := make([]any, len(entities))
		for i, e := range entities {
			capacity, ok, err := f.floatCell(in, r, e.capacity)
			if err != nil {
				return nil, err
			}
			if !ok || capacity == 0 {
				return nil, f.arithmetic("load capacity of %s is zero or absent", e.name).
					WithRow(r).WithColumn(e.capacity)
			}
			load, ok, err := f.floatCell(in, r, e.load)
			if err != nil {
				return nil, err
			}
			if ok {
				row[i] = load / capacity
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}
