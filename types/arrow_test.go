package types

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowRoundTrip(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	tbl := NewTable(
		[]string{"key", "truck", "name", "value", "ok", "note"},
		[]DataType{Long, Binary, Binary, Double, Boolean, String},
	)
	require.NoError(t, tbl.AppendRow(int64(1), []byte("truck1"), []byte("temp"), 98.6, true, "a"))
	require.NoError(t, tbl.AppendRow(int64(2), []byte("truck2"), nil, nil, false, nil))

	rec, err := ToArrowRecord(mem, tbl)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, int64(6), rec.NumCols())

	back, err := FromArrowRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, tbl.Names, back.Names)
	assert.Equal(t, tbl.Types, back.Types)
	assert.Equal(t, tbl.Rows, back.Rows)
}

func TestToArrowRecordCoercesAndRejects(t *testing.T) {
	tbl := NewTable([]string{"v"}, []DataType{Double})
	require.NoError(t, tbl.AppendRow(3))
	rec, err := ToArrowRecord(nil, tbl)
	require.NoError(t, err)
	back, err := FromArrowRecord(rec)
	rec.Release()
	require.NoError(t, err)
	assert.Equal(t, 3.0, back.Rows[0][0])

	bad := NewTable([]string{"v"}, []DataType{Double})
	require.NoError(t, bad.AppendRow([]byte("x")))
	_, err = ToArrowRecord(nil, bad)
	assert.ErrorIs(t, err, ErrMalformedInput)
}
