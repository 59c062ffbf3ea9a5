package functions

import (
	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/utils/cast"
)

// floatCell reads cell (row, col) as a number; ok is false for an absent cell.
func (bf *BaseFunction) floatCell(in *types.Table, row, col int) (float64, bool, error) {
	f, ok, err := cast.ToFloat64(in.Rows[row][col])
	if err != nil {
		return 0, false, bf.malformed("value is not numeric").WithRow(row).WithColumn(col).WithCause(err)
	}
	return f, ok, nil
}

// mapDoubleCells builds a DOUBLE table of the same shape as in, renaming every column
// with rename and mapping each present cell through f. Absent cells stay absent, and
// f may report an absent result by returning ok == false.
func (bf *BaseFunction) mapDoubleCells(in *types.Table, rename func(string) string,
	f func(v float64, row, col int) (float64, bool, error)) (*types.Table, error) {

	names := make([]string, in.NumColumns())
	for i, n := range in.Names {
		names[i] = rename(n)
	}
	out := types.NewTable(names, types.Repeat(types.Double, len(names)))
	out.Rows = make([][]any, 0, in.NumRows())

	for r := range in.Rows {
		row := make([]any, len(names))
		for c := range names {
			v, ok, err := bf.floatCell(in, r, c)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			res, ok, err := f(v, r, c)
			if err != nil {
				return nil, bf.own(err)
			}
			if ok {
				row[c] = res
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// rowGroups maps each group key to the ordered indices of its rows, and records each
// row's key and position inside its group.
type rowGroups struct {
	members map[int64][]int
	keys    []int64
	pos     []int
}

// groupRows groups the data rows of in by the integer value of column col.
// An absent or non-integer key is a GroupingKey error.
func (bf *BaseFunction) groupRows(in *types.Table, col int) (*rowGroups, error) {
	g := &rowGroups{
		members: make(map[int64][]int),
		keys:    make([]int64, in.NumRows()),
		pos:     make([]int, in.NumRows()),
	}
	for r, row := range in.Rows {
		k, ok, err := cast.ToInt64(row[col])
		if err != nil {
			return nil, bf.groupingKey("group key is not an integer").WithRow(r).WithColumn(col).WithCause(err)
		}
		if !ok {
			return nil, bf.groupingKey("group key is absent").WithRow(r).WithColumn(col)
		}
		g.keys[r] = k
		g.pos[r] = len(g.members[k])
		g.members[k] = append(g.members[k], r)
	}
	return g, nil
}

// next returns the row following r in its group.
func (g *rowGroups) next(r int) (int, bool) {
	m := g.members[g.keys[r]]
	if p := g.pos[r] + 1; p < len(m) {
		return m[p], true
	}
	return 0, false
}

// prev returns the row preceding r in its group.
func (g *rowGroups) prev(r int) (int, bool) {
	if p := g.pos[r]; p > 0 {
		return g.members[g.keys[r]][p-1], true
	}
	return 0, false
}

// copyRow copies a data row, []byte cells included, so the output never shares
// memory with the input.
func copyRow(row []any, extra ...any) []any {
	out := make([]any, 0, len(row)+len(extra))
	for _, v := range row {
		if b, ok := v.([]byte); ok {
			v = append([]byte(nil), b...)
		}
		out = append(out, v)
	}
	return append(out, extra...)
}
