package domain

import "sort"

// Table is an in-memory tabular structure: a shared ordered column list and
// row-major string cells. Cells are always strings; an empty cell is "".
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the value at (row, col), or "" when the row is shorter than
// the column list.
func (t *Table) Cell(row, col int) string {
	if col < len(t.Rows[row]) {
		return t.Rows[row][col]
	}
	return ""
}

// ColumnValues returns every cell of the given column, in row order.
func (t *Table) ColumnValues(col int) []string {
	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Cell(i, col)
	}
	return values
}

// Clone returns a deep copy of the table. Engine operations never mutate
// their input table; they clone and append.
func (t *Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	return out
}

// AppendColumn adds a column to the table. values must have one entry per row.
func (t *Table) AppendColumn(name string, values []string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		for len(t.Rows[i]) < len(t.Columns)-1 {
			t.Rows[i] = append(t.Rows[i], "")
		}
		t.Rows[i] = append(t.Rows[i], values[i])
	}
}

// DistinctByFrequency returns the distinct values of a slice ordered by
// descending occurrence count. Ties keep first-appearance order, so the
// result is deterministic for a given input sequence.
func DistinctByFrequency(values []string) []string {
	counts := make(map[string]int, len(values))
	firstSeen := make(map[string]int, len(values))
	var distinct []string
	for i, v := range values {
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
			distinct = append(distinct, v)
		}
		counts[v]++
	}
	sort.SliceStable(distinct, func(a, b int) bool {
		if counts[distinct[a]] != counts[distinct[b]] {
			return counts[distinct[a]] > counts[distinct[b]]
		}
		return firstSeen[distinct[a]] < firstSeen[distinct[b]]
	})
	return distinct
}

// Distinct returns the distinct values of a slice in first-appearance order.
func Distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
