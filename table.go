package csvgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoRow               = errors.New("no current row")
	ErrBadRecord           = errors.New("unsupported record type")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// Table accumulates rows of named cells without a pre-declared schema.
// A column is registered the first time its name is used, in any row, and
// keeps that first-seen position for the life of the table. Rows are
// sparse: a row only holds the cells that were set on it, and exports read
// missing cells as empty.
//
// The zero value is ready to use. Table is not safe for concurrent use;
// exports read whatever state is present at call time, and callers
// populating from multiple goroutines must serialize access themselves.
type Table struct {
	cols    []string
	colSeen map[string]struct{}
	rows    []map[string]any
}

// New returns an empty Table.
func New() *Table { return &Table{} }

// StartRow appends a new empty row and makes it the target of subsequent
// [Table.SetCell] calls.
func (t *Table) StartRow() {
	t.rows = append(t.rows, map[string]any{})
}

// SetCell sets the named cell on the current row. A previously unseen
// column name is appended to the column order; setting the same cell twice
// on one row replaces the value. Returns [ErrNoRow] when called before any
// StartRow.
func (t *Table) SetCell(column string, value any) error {
	if len(t.rows) == 0 {
		return fmt.Errorf("%w: SetCell(%q) before StartRow", ErrNoRow, column)
	}
	if _, ok := t.colSeen[column]; !ok {
		if t.colSeen == nil {
			t.colSeen = make(map[string]struct{})
		}
		t.colSeen[column] = struct{}{}
		t.cols = append(t.cols, column)
	}
	t.rows[len(t.rows)-1][column] = value
	return nil
}

// Columns returns the column names in first-seen order.
// The returned slice is a copy.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// Len returns the number of rows started so far.
func (t *Table) Len() int { return len(t.rows) }
