package functions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/tableudf/types"
)

func TestElementwiseFunctions(t *testing.T) {
	in := func(t *testing.T) *types.Table {
		return newTable(t,
			[]any{"a", "b"},
			[]any{"DOUBLE", "LONG"},
			[]any{0.5, int64(0)},
			[]any{nil, int64(288)},
			[]any{0.25, nil},
		)
	}

	tests := []struct {
		name     string
		funcName string
		params   *types.Params
		names    []string
		rows     [][]any
	}{
		{
			name:     "ge_half",
			funcName: "ge_half",
			names:    []string{"ge_half(a)", "ge_half(b)"},
			rows:     [][]any{{1.0, 0.0}, {nil, 1.0}, {0.0, nil}},
		},
		{
			name:     "nzero",
			funcName: "nzero",
			names:    []string{"anz", "bnz"},
			rows:     [][]any{{1.0, 0.0}, {nil, 1.0}, {1.0, nil}},
		},
		{
			name:     "div_144",
			funcName: "div_144",
			names:    []string{"div_144(a)", "div_144(b)"},
			rows:     [][]any{{0.5 / 144, 0.0}, {nil, 2.0}, {0.25 / 144, nil}},
		},
		{
			name:     "div positional",
			funcName: "div",
			params:   types.NewParams([]any{2}, nil),
			names:    []string{"div(a)", "div(b)"},
			rows:     [][]any{{0.25, 0.0}, {nil, 144.0}, {0.125, nil}},
		},
		{
			name:     "div keyword",
			funcName: "div",
			params:   types.NewParams(nil, map[string]any{"divisor": "4"}),
			names:    []string{"div(a)", "div(b)"},
			rows:     [][]any{{0.125, 0.0}, {nil, 72.0}, {0.0625, nil}},
		},
		{
			name:     "map_expr",
			funcName: "map_expr",
			params:   types.NewParams(nil, map[string]any{"expr": "value * 2 + row"}),
			names:    []string{"map_expr(a)", "map_expr(b)"},
			rows:     [][]any{{1.0, 0.0}, {nil, 577.0}, {2.5, nil}},
		},
		{
			name:     "map_expr absent result",
			funcName: "map_expr",
			params:   types.NewParams(nil, map[string]any{"expr": "name == 'a' ? value : nil"}),
			names:    []string{"map_expr(a)", "map_expr(b)"},
			rows:     [][]any{{0.5, nil}, {nil, nil}, {0.25, nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.funcName, in(t), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.names, out.Names)
			assert.Equal(t, []types.DataType{types.Double, types.Double}, out.Types)
			assert.Equal(t, tt.rows, out.Rows)
		})
	}
}

func TestElementwiseErrors(t *testing.T) {
	numbers := newTable(t, []any{"a"}, []any{"DOUBLE"}, []any{1.0})
	text := newTable(t, []any{"a"}, []any{"STRING"}, []any{1.0}, []any{"abc"})

	tests := []struct {
		name     string
		funcName string
		in       *types.Table
		params   *types.Params
		target   error
	}{
		{"non numeric cell", "ge_half", text, nil, types.ErrMalformedInput},
		{"binary cell", "nzero", newTable(t, []any{"a"}, []any{"BINARY"}, []any{[]byte("x")}), nil, types.ErrMalformedInput},
		{"zero divisor", "div", numbers, types.NewParams([]any{0}, nil), types.ErrArithmetic},
		{"absent divisor", "div", numbers, nil, types.ErrArithmetic},
		{"bad divisor", "div", numbers, types.NewParams(nil, map[string]any{"divisor": "x"}), types.ErrMalformedInput},
		{"missing expr", "map_expr", numbers, nil, types.ErrMalformedInput},
		{"bad expr", "map_expr", numbers, types.NewParams(nil, map[string]any{"expr": "value +"}), types.ErrMalformedInput},
		{"expr runtime error", "map_expr", numbers, types.NewParams(nil, map[string]any{"expr": "'x'"}), types.ErrMalformedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.funcName, tt.in, tt.params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), err.Error())
		})
	}

	_, err := run(t, "ge_half", text, nil)
	var udfErr *types.UDFError
	require.True(t, errors.As(err, &udfErr))
	assert.Equal(t, 1, udfErr.Row)
	assert.Equal(t, 0, udfErr.Column)
	assert.Equal(t, "ge_half", udfErr.Function)
}

func TestElementwiseDeterministic(t *testing.T) {
	in := newTable(t, []any{"a"}, []any{"DOUBLE"}, []any{3.0}, []any{nil}, []any{0.0})
	for _, name := range []string{"ge_half", "nzero", "div_144"} {
		first, err := run(t, name, in, nil)
		require.NoError(t, err)
		second, err := run(t, name, in, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second, name)

		// 在自身输出上再次运行同样确定
		again1, err := run(t, name, first, nil)
		require.NoError(t, err)
		again2, err := run(t, name, first, nil)
		require.NoError(t, err)
		assert.Equal(t, again1, again2, name)
	}
}
