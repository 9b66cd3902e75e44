package survey

import (
	"github.com/Kumungchi/vyzkumdata/domain/core"
)

// Table is an in-memory tabular dataset: an ordered header plus string
// cells, exactly as read from a CSV or spreadsheet. All core computation
// starts from a Table; the readers in adapters/tabular produce them.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates a table from a header and rows. Short rows are padded
// with empty cells so every row has one cell per column.
func NewTable(columns []string, rows [][]string) *Table {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) >= len(columns) {
			padded[i] = row[:len(columns)]
			continue
		}
		p := make([]string, len(columns))
		copy(p, row)
		padded[i] = p
	}
	return &Table{Columns: columns, Rows: padded}
}

// ColumnIndex returns the position of a column by exact name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// HasColumn reports whether the table contains a column by exact name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// Cell returns the cell at row i in the named column, or "" if the
// column does not exist.
func (t *Table) Cell(i int, column string) string {
	idx, ok := t.ColumnIndex(column)
	if !ok || i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][idx]
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	columns := make([]string, len(t.Columns))
	copy(columns, t.Columns)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		r := make([]string, len(row))
		copy(r, row)
		rows[i] = r
	}
	return &Table{Columns: columns, Rows: rows}
}

// Validate ensures the table is internally consistent.
func (t *Table) Validate() error {
	if len(t.Rows) == 0 {
		return core.ErrEmptyTable
	}
	return nil
}

// MissingColumns returns the subset of required that the table lacks.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
