package functions

import (
	"errors"

	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/utils/cast"
	"github.com/rulego/tableudf/window"
)

// bucketSpec 一列及其窗口大小，按列号升序排列
type bucketSpec struct {
	column int
	size   int64
}

// TimeBucketFunction replaces reference columns with their minimum-anchored window start.
// Specs are either fixed at construction or read from the column/window named arguments.
type TimeBucketFunction struct {
	*BaseFunction
	specs []bucketSpec
}

// NewTimeBucket10mFunction 第 1 列按 10 分钟分桶
func NewTimeBucket10mFunction() *TimeBucketFunction {
	return &TimeBucketFunction{
		BaseFunction: NewBaseFunction("timebucket10m", TypeUDSF, "window",
			"aligns column 1 to 10 minute windows anchored at its minimum", 2, -1),
		specs: []bucketSpec{{column: 1, size: window.TenMinutes}},
	}
}

// NewTimeBucketDayTenFunction 第 1 列按天分桶，第 2 列按 10 分钟分桶
func NewTimeBucketDayTenFunction() *TimeBucketFunction {
	return &TimeBucketFunction{
		BaseFunction: NewBaseFunction("timebucketdayten", TypeUDSF, "window",
			"aligns column 1 to day windows and column 2 to 10 minute windows", 3, -1),
		specs: []bucketSpec{
			{column: 1, size: window.Day},
			{column: 2, size: window.TenMinutes},
		},
	}
}

// NewTimeBucketFunction 由参数 column（默认 1）和 window 指定
func NewTimeBucketFunction() *TimeBucketFunction {
	return &TimeBucketFunction{
		BaseFunction: NewBaseFunction("timebucket", TypeUDSF, "window",
			"aligns the column keyword (default 1) to windows of the window keyword", 1, -1),
	}
}

func (f *TimeBucketFunction) Validate(in *types.Table, params *types.Params) error {
	if err := f.BaseFunction.Validate(in, params); err != nil {
		return err
	}
	_, err := f.resolve(in, params)
	return err
}

func (f *TimeBucketFunction) resolve(in *types.Table, params *types.Params) ([]bucketSpec, error) {
	if f.specs != nil {
		return f.specs, nil
	}
	col, err := params.Int64("column", 1)
	if err != nil {
		return nil, f.own(err)
	}
	if !params.Has("window") {
		return nil, f.malformed("window keyword is required")
	}
	size, err := params.Int64("window", 0)
	if err != nil {
		return nil, f.own(err)
	}
	if size <= 0 {
		return nil, f.malformed("window must be positive, got %d", size)
	}
	if col < 0 || col >= int64(in.NumColumns()) {
		return nil, f.malformed("column %d out of range", col)
	}
	return []bucketSpec{{column: int(col), size: size}}, nil
}

func (f *TimeBucketFunction) Execute(ctx *FunctionContext, in *types.Table, params *types.Params) (*types.Table, error) {
	specs, err := f.resolve(in, params)
	if err != nil {
		return nil, err
	}
	out := in.Clone()
	out.Names = f.wrapNames(in.Names)

	for _, s := range specs {
		buckets, err := window.Buckets(in.Column(s.column), s.size)
		if err != nil {
			var cellErr *cast.CellError
			if errors.As(err, &cellErr) {
				return nil, f.malformed("reference value is not an integer").
					WithRow(cellErr.Index).WithColumn(s.column).WithCause(cellErr.Err)
			}
			return nil, f.malformed("cannot bucket column").WithColumn(s.column).WithCause(err)
		}
		for r, b := range buckets {
			out.Rows[r][s.column] = b
		}
	}
	return out, nil
}
