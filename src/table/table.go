package table

import "fmt"

// Table is an ordered set of named columns with rows of values. It is the
// shape data takes crossing the boundary between the bank client, the sync
// layer and the store: a query result comes back as a Table, and a bulk
// append takes one.
type Table struct {
	Columns []string
	Rows    [][]any
}

func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds a single row. The caller is responsible for matching the
// column order; a mismatched width is rejected so a malformed batch fails
// at build time rather than inside a database write.
func (t *Table) Append(row ...any) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("table: row has %d values, want %d", len(row), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Col returns the index of the named column, or -1 if absent.
func (t *Table) Col(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the value at (row, column name), or nil if the column does
// not exist.
func (t *Table) Value(row int, name string) any {
	i := t.Col(name)
	if i < 0 {
		return nil
	}
	return t.Rows[row][i]
}

// Strings collects the named column as strings, skipping NULLs. Used for
// id-set reads like the reconciler's stored-account scan.
func (t *Table) Strings(name string) []string {
	i := t.Col(name)
	if i < 0 {
		return nil
	}
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		switch v := row[i].(type) {
		case nil:
		case string:
			out = append(out, v)
		case []byte:
			out = append(out, string(v))
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}
