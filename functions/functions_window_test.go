package functions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/window"
)

func TestTimeBucket(t *testing.T) {
	in := newTable(t,
		[]any{"key", "t", "v"},
		[]any{"LONG", "LONG", "DOUBLE"},
		[]any{int64(1), int64(100), 1.5},
		[]any{int64(2), int64(250), nil},
		[]any{int64(3), int64(700), 3.5},
	)
	params := types.NewParams(nil, map[string]any{"window": 300})

	out, err := run(t, "timebucket", in, params)
	require.NoError(t, err)
	assert.Equal(t, []string{"key", "timebucket(t)", "timebucket(v)"}, out.Names)
	assert.Equal(t, in.Types, out.Types)
	assert.Equal(t, [][]any{
		{int64(1), int64(100), 1.5},
		{int64(2), int64(100), nil},
		{int64(3), int64(700), 3.5},
	}, out.Rows)

	// 对已对齐的列再次分桶不改变结果
	again, err := run(t, "timebucket", out, params)
	require.NoError(t, err)
	assert.Equal(t, out.Rows, again.Rows)
}

func TestTimeBucketColumnKeyword(t *testing.T) {
	in := newTable(t,
		[]any{"t", "v"},
		[]any{"LONG", "DOUBLE"},
		[]any{int64(1005), 1.0},
		[]any{int64(1019), 2.0},
		[]any{nil, 3.0},
	)
	out, err := run(t, "timebucket", in, types.NewParams(nil, map[string]any{"column": 0, "window": "10"}))
	require.NoError(t, err)
	assert.Equal(t, [][]any{
		{int64(1005), 1.0},
		{int64(1015), 2.0},
		{nil, 3.0},
	}, out.Rows)
}

func TestTimeBucket10m(t *testing.T) {
	base := int64(1_451_606_400_000_000_000)
	in := newTable(t,
		[]any{"key", "ts"},
		[]any{"LONG", "LONG"},
		[]any{int64(1), base + 599_000_000_000},
		[]any{int64(2), base},
		[]any{int64(3), base + window.TenMinutes},
		[]any{int64(4), nil},
	)
	out, err := run(t, "timebucket10m", in, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"key", "timebucket10m(ts)"}, out.Names)
	assert.Equal(t, [][]any{
		{int64(1), base},
		{int64(2), base},
		{int64(3), base + window.TenMinutes},
		{int64(4), nil},
	}, out.Rows)
}

func TestTimeBucketDayTen(t *testing.T) {
	day := int64(1_451_606_400_000_000_000)
	ten := int64(1_000)
	in := newTable(t,
		[]any{"key", "day", "ten", "v"},
		[]any{"LONG", "LONG", "LONG", "DOUBLE"},
		[]any{int64(1), day + window.Day + 5, ten, 1.0},
		[]any{int64(2), day, ten + window.TenMinutes - 1, 2.0},
		[]any{int64(3), day + window.Day - 1, ten + 2*window.TenMinutes + 7, 3.0},
	)
	out, err := run(t, "timebucketdayten", in, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"key", "timebucketdayten(day)", "timebucketdayten(ten)", "timebucketdayten(v)"}, out.Names)
	assert.Equal(t, [][]any{
		{int64(1), day + window.Day, ten, 1.0},
		{int64(2), day, ten, 2.0},
		{int64(3), day, ten + 2*window.TenMinutes, 3.0},
	}, out.Rows)
}

func TestTimeBucketErrors(t *testing.T) {
	in := newTable(t,
		[]any{"key", "t"},
		[]any{"LONG", "DOUBLE"},
		[]any{int64(1), 100.0},
		[]any{int64(2), 150.5},
	)
	tests := []struct {
		name     string
		funcName string
		params   *types.Params
	}{
		{"missing window", "timebucket", nil},
		{"zero window", "timebucket", types.NewParams(nil, map[string]any{"window": 0})},
		{"negative window", "timebucket", types.NewParams(nil, map[string]any{"window": -5})},
		{"column out of range", "timebucket", types.NewParams(nil, map[string]any{"window": 5, "column": 9})},
		{"fractional reference", "timebucket10m", nil},
		{"too few columns", "timebucketdayten", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.funcName, in, tt.params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrMalformedInput), err.Error())
		})
	}

	_, err := run(t, "timebucket10m", in, nil)
	var udfErr *types.UDFError
	require.True(t, errors.As(err, &udfErr))
	assert.Equal(t, 1, udfErr.Row)
	assert.Equal(t, 1, udfErr.Column)
}
