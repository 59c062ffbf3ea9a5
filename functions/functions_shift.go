package functions

import (
	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/utils/cast"
)

// 分组移位函数的固定输入列：key, tagid, ten, value
const (
	shiftTagCol   = 1
	shiftTenCol   = 2
	shiftValueCol = 3
	shiftColumns  = 4
)

// shiftRow copies row with key, tagid and ten normalised to int64; the value cell is
// carried as is. Row r is reported on error.
func (bf *BaseFunction) shiftRow(row []any, r int) ([]any, error) {
	out := copyRow(row)
	for c := 0; c < shiftValueCol; c++ {
		v, ok, err := cast.ToInt64(row[c])
		if err != nil {
			return nil, bf.malformed("value is not an integer").WithRow(r).WithColumn(c).WithCause(err)
		}
		if !ok {
			return nil, bf.malformed("value is absent").WithRow(r).WithColumn(c)
		}
		out[c] = v
	}
	return out, nil
}

// LeadFunction 按 tagid 分组，取组内下一行的 broken_down
type LeadFunction struct {
	*BaseFunction
}

func NewLeadFunction() *LeadFunction {
	return &LeadFunction{
		BaseFunction: NewBaseFunction("lead", TypeUDSF, "cross-row",
			"appends the next broken_down of the same tagid; input is key, tagid, ten, broken_down", shiftColumns, shiftColumns),
	}
}

func (f *LeadFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	groups, err := f.groupRows(in, shiftTagCol)
	if err != nil {
		return nil, err
	}
	names := append(f.wrapNames(in.Names), f.Label("next_broken_down"))
	dataTypes := append(append([]types.DataType(nil), in.Types...), types.Boolean)
	out := types.NewTable(names, dataTypes)

	for r, row := range in.Rows {
		nr, ok := groups.next(r)
		if !ok {
			continue
		}
		next := in.Rows[nr][shiftValueCol]
		if next == nil {
			continue
		}
		normalised, err := f.shiftRow(row, r)
		if err != nil {
			return nil, err
		}
		out.Rows = append(out.Rows, append(normalised, next))
	}
	ctx.Log().Debug("lead: %d groups, %d of %d rows kept", len(groups.members), out.NumRows(), in.NumRows())
	return out, nil
}

// StartStopFunction 按 tagid 分组，保留 driving 相对上一行跨越阈值的行，
// 并以组内下一个保留行的 ten 作为 stop。
type StartStopFunction struct {
	*BaseFunction
}

// startStopThreshold 与上游查询保持一致的阈值
const startStopThreshold = 5

func NewStartStopFunction() *StartStopFunction {
	return &StartStopFunction{
		BaseFunction: NewBaseFunction("startstop", TypeUDSF, "cross-row",
			"rows where driving crosses 5 against the previous row of the same tagid, with the next such row's ten as stop; input is key, tagid, ten, driving", shiftColumns, shiftColumns),
	}
}

func (f *StartStopFunction) above(in *types.Table, r int) (bool, error) {
	v, ok, err := f.floatCell(in, r, shiftValueCol)
	return ok && v > startStopThreshold, err
}

func (f *StartStopFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	groups, err := f.groupRows(in, shiftTagCol)
	if err != nil {
		return nil, err
	}

	// 第一遍：找出分类发生变化的行
	changed := types.NewTable(in.Names, in.Types)
	for r, row := range in.Rows {
		pr, ok := groups.prev(r)
		if !ok || in.Rows[pr][shiftValueCol] == nil {
			continue
		}
		cur, err := f.above(in, r)
		if err != nil {
			return nil, err
		}
		prev, err := f.above(in, pr)
		if err != nil {
			return nil, err
		}
		if cur != prev {
			normalised, err := f.shiftRow(row, r)
			if err != nil {
				return nil, err
			}
			changed.Rows = append(changed.Rows, normalised)
		}
	}

	// 第二遍：在变化行中按组取下一行的 ten
	kept, err := f.groupRows(changed, shiftTagCol)
	if err != nil {
		return nil, err
	}
	names := append(f.wrapNames(in.Names), f.Label("stop"))
	dataTypes := append(append([]types.DataType(nil), in.Types...), types.Long)
	out := types.NewTable(names, dataTypes)
	for r, row := range changed.Rows {
		nr, ok := kept.next(r)
		if !ok {
			continue
		}
		out.Rows = append(out.Rows, copyRow(row, changed.Rows[nr][shiftTenCol]))
	}
	ctx.Log().Debug("startstop: %d transitions, %d rows emitted", changed.NumRows(), out.NumRows())
	return out, nil
}
