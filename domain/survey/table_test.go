package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kumungchi/vyzkumdata/domain/core"
)

func TestNewTable_PadsShortRows(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"}, [][]string{
		{"1"},
		{"1", "2", "3", "4"}, // extra cells are dropped
	})
	assert.Equal(t, []string{"1", "", ""}, table.Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[1])
}

func TestTable_CellLookups(t *testing.T) {
	table := NewTable([]string{"A", "B"}, [][]string{{"1", "2"}})
	assert.Equal(t, "2", table.Cell(0, "B"))
	assert.Equal(t, "", table.Cell(0, "Z"), "unknown column reads as empty")
	assert.Equal(t, "", table.Cell(5, "A"), "out-of-range row reads as empty")
	assert.True(t, table.HasColumn("A"))
	assert.False(t, table.HasColumn("a"), "column lookup is exact")
}

func TestTable_Validate(t *testing.T) {
	empty := NewTable([]string{"A"}, nil)
	assert.ErrorIs(t, empty.Validate(), core.ErrEmptyTable)

	ok := NewTable([]string{"A"}, [][]string{{"1"}})
	assert.NoError(t, ok.Validate())
}

func TestTable_CloneIsDeep(t *testing.T) {
	table := NewTable([]string{"A"}, [][]string{{"1"}})
	clone := table.Clone()
	clone.Columns[0] = "changed"
	clone.Rows[0][0] = "changed"
	assert.Equal(t, "A", table.Columns[0])
	assert.Equal(t, "1", table.Rows[0][0])
}

func TestTable_MissingColumns(t *testing.T) {
	table := NewTable([]string{"A", "B"}, [][]string{{"1", "2"}})
	assert.Nil(t, table.MissingColumns([]string{"A", "B"}))
	assert.Equal(t, []string{"C"}, table.MissingColumns([]string{"A", "C"}))
}
