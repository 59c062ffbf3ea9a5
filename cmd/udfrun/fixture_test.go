package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/tableudf/types"
)

func TestFixtureTable(t *testing.T) {
	fx, err := ReadFixture(strings.NewReader(`
function: transposition
kwargs: {entity: 2}
names: [key, tag, v]
types: [LONG, BINARY, DOUBLE]
rows:
  - [1, a, 2]
  - [2, ~, 2.5]
`))
	require.NoError(t, err)
	assert.Equal(t, "transposition", fx.Function)
	assert.Equal(t, map[string]any{"entity": 2}, fx.KwArgs)

	tbl, err := fx.Table()
	require.NoError(t, err)
	assert.Equal(t, []types.DataType{types.Long, types.Binary, types.Double}, tbl.Types)
	assert.Equal(t, []any{int64(1), []byte("a"), 2.0}, tbl.Rows[0])
	assert.Equal(t, []any{int64(2), nil, 2.5}, tbl.Rows[1])
}

func TestFixtureTableInvalid(t *testing.T) {
	fx := &Fixture{Names: []string{"a", "b"}, Types: []string{"DOUBLE"}}
	_, err := fx.Table()
	assert.ErrorIs(t, err, types.ErrMalformedInput)

	_, err = ReadFixture(strings.NewReader("names: [unclosed"))
	assert.ErrorContains(t, err, "decode fixture")
}

func TestFixtureFromTable(t *testing.T) {
	tbl := types.NewTable([]string{"truck", "value"}, []types.DataType{types.Binary, types.Double})
	require.NoError(t, tbl.AppendRow([]byte("truck_1"), 1.5))

	fx := FixtureFromTable(tbl)
	assert.Equal(t, []string{"truck", "value"}, fx.Names)
	assert.Equal(t, []string{"BINARY", "DOUBLE"}, fx.Types)
	assert.Equal(t, [][]any{{"truck_1", 1.5}}, fx.Rows)

	back, err := fx.Table()
	require.NoError(t, err)
	assert.Equal(t, tbl.Rows, back.Rows)
}

func TestKwFlags(t *testing.T) {
	k := kwFlags{}
	require.NoError(t, k.Set("window=300"))
	require.NoError(t, k.Set("closed_only=true"))
	require.NoError(t, k.Set("where=v > 1 && tag == 'a'"))
	require.NoError(t, k.Set("empty="))

	assert.Equal(t, 300, k["window"])
	assert.Equal(t, true, k["closed_only"])
	assert.Equal(t, "v > 1 && tag == 'a'", k["where"])
	assert.Equal(t, "", k["empty"])

	assert.Error(t, k.Set("=1"))
	assert.Error(t, k.Set("noequals"))
}

func TestMergeParams(t *testing.T) {
	fx := &Fixture{Args: []any{3}, KwArgs: map[string]any{"window": 600, "column": 1}}
	params := mergeParams(fx, kwFlags{"window": 300})

	window, err := params.Int64("window", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(300), window)
	column, err := params.Int64("column", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), column)
}
