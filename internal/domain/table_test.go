package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistinctByFrequency(t *testing.T) {
	t.Parallel()

	values := []string{"b", "a", "b", "c", "a", "b", "", ""}
	got := DistinctByFrequency(values)

	// b×3, then a×2 and ""×2 tie broken by first appearance, then c.
	assert.Equal(t, []string{"b", "a", "", "c"}, got)
}

func TestDistinctByFrequency_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DistinctByFrequency(nil))
}

func TestDistinct(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"x", "y", "z"}, Distinct([]string{"x", "y", "x", "z", "y"}))
}

func TestTable_AppendColumn(t *testing.T) {
	t.Parallel()

	tbl := Table{
		Columns: []string{"id", "name"},
		Rows: [][]string{
			{"1", "Acme"},
			{"2"}, // short row
		},
	}
	tbl.AppendColumn("name_Padronizado", []string{"Acme", "Beta"})

	require.Equal(t, []string{"id", "name", "name_Padronizado"}, tbl.Columns)
	assert.Equal(t, []string{"1", "Acme", "Acme"}, tbl.Rows[0])
	assert.Equal(t, []string{"2", "", "Beta"}, tbl.Rows[1])
}

func TestTable_CloneIsDeep(t *testing.T) {
	t.Parallel()

	tbl := Table{Columns: []string{"a"}, Rows: [][]string{{"v"}}}
	cp := tbl.Clone()
	cp.Rows[0][0] = "changed"
	cp.Columns[0] = "b"

	assert.Equal(t, "v", tbl.Rows[0][0])
	assert.Equal(t, "a", tbl.Columns[0])
}

func TestTable_ColumnValues_PadsShortRows(t *testing.T) {
	t.Parallel()

	tbl := Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}, {"3"}}}
	idx, ok := tbl.ColumnIndex("b")
	require.True(t, ok)
	assert.Equal(t, []string{"2", ""}, tbl.ColumnValues(idx))
}
