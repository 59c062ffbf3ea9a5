package functions

import (
	"math"

	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/window"
)

// CountUpFunction 统计每列中相邻两行都存在且后值大于前值的次数
type CountUpFunction struct {
	*BaseFunction
}

func NewCountUpFunction() *CountUpFunction {
	return &CountUpFunction{
		BaseFunction: NewBaseFunction("count_up", TypeUDAF, "cross-row",
			"number of adjacent present pairs where the later value is greater", 1, -1),
	}
}

func (f *CountUpFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	ncols := in.NumColumns()
	names := make([]string, ncols)
	row := make([]any, ncols)
	for c := 0; c < ncols; c++ {
		names[c] = f.Label(in.Names[c])
		count := 0
		for r := 0; r+1 < in.NumRows(); r++ {
			prev, okPrev, err := f.floatCell(in, r, c)
			if err != nil {
				return nil, err
			}
			cur, okCur, err := f.floatCell(in, r+1, c)
			if err != nil {
				return nil, err
			}
			if okPrev && okCur && cur > prev {
				count++
			}
		}
		row[c] = float64(count)
	}
	out := types.NewTable(names, types.Repeat(types.Double, ncols))
	out.Rows = append(out.Rows, row)
	return out, nil
}

// IfBreakFunction 首列为 key，其余每列零值占存在值的比例 >= 0.5 时输出 true
type IfBreakFunction struct {
	*BaseFunction
}

func NewIfBreakFunction() *IfBreakFunction {
	return &IfBreakFunction{
		BaseFunction: NewBaseFunction("ifbreak", TypeUDAF, "cross-row",
			"true where at least half of the present values of a column are zero; the first column is the key", 1, -1),
	}
}

func (f *IfBreakFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	ncols := in.NumColumns() - 1
	names := make([]string, ncols)
	row := make([]any, ncols)
	for c := 1; c <= ncols; c++ {
		names[c-1] = f.Label(in.Names[c])
		zeros, present := 0, 0
		for r := range in.Rows {
			v, ok, err := f.floatCell(in, r, c)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			present++
			if v == 0 {
				zeros++
			}
		}
		if present == 0 {
			return nil, f.arithmetic("column has no present values").WithColumn(c)
		}
		row[c-1] = float64(zeros)/float64(present) >= 0.5
	}
	out := types.NewTable(names, types.Repeat(types.Boolean, ncols))
	if ncols > 0 {
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// AvgSessionFunction 每列的平均行驶会话长度除以 6。
// 行驶定义为 floor(v/10) != 0，缺失值视为未行驶。
type AvgSessionFunction struct {
	*BaseFunction
}

func NewAvgSessionFunction() *AvgSessionFunction {
	return &AvgSessionFunction{
		BaseFunction: NewBaseFunction("avg_driving_session_div_6", TypeUDAF, "cross-row",
			"mean length of driving runs (floor(v/10) != 0) divided by 6; closed_only=true ignores a run still open at the end", 1, -1),
	}
}

// sessionLabel is the output label; it differs from the registered name.
const sessionLabel = "avg_session"

func (f *AvgSessionFunction) Validate(in *types.Table, params *types.Params) error {
	if err := f.BaseFunction.Validate(in, params); err != nil {
		return err
	}
	_, err := params.Bool("closed_only", false)
	return f.own(err)
}

func (f *AvgSessionFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	closedOnly, err := params.Bool("closed_only", false)
	if err != nil {
		return nil, f.own(err)
	}
	ncols := in.NumColumns()
	names := make([]string, ncols)
	row := make([]any, ncols)
	flags := make([]bool, in.NumRows())
	for c := 0; c < ncols; c++ {
		names[c] = sessionLabel + "(" + in.Names[c] + ")"
		for r := range in.Rows {
			v, ok, err := f.floatCell(in, r, c)
			if err != nil {
				return nil, err
			}
			flags[r] = ok && math.Floor(v/10) != 0
		}
		runs := window.Runs(flags, closedOnly)
		mean := 0.0
		if len(runs) > 0 {
			total := 0
			for _, n := range runs {
				total += n
			}
			mean = float64(total) / float64(len(runs))
		}
		row[c] = mean / 6
	}
	out := types.NewTable(names, types.Repeat(types.Double, ncols))
	out.Rows = append(out.Rows, row)
	return out, nil
}
