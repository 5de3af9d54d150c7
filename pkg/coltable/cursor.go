package coltable

import (
	"github.com/colstorehq/coltable/pkg/coltable/codec"
	cterrors "github.com/colstorehq/coltable/pkg/errors"
)

// Cursor is a forward, resettable iterator over a Table's rows. Advance moves to the next row and reports
// whether one exists; Current decodes a column of the current row; Reset
// rewinds to before the first row. A Cursor holds no exclusive lock on the
// table — scanning never mutates it (mutation after freeze is a non-goal).
//
// Grounded on ArrayTable.enumerator(), a java.util.Enumerator over row
// indices, adapted to Go's lack of generators: ordinal state plus
// explicit Advance/Current/Reset.
type Cursor struct {
	table   *Table
	ordinal int
}

// Advance moves the cursor to the next row, returning false once the
// table is exhausted. Calling Advance again after it returns false is a
// no-op that keeps returning false.
func (c *Cursor) Advance() bool {
	if c.ordinal+1 >= c.table.rows {
		c.ordinal = c.table.rows
		return false
	}
	c.ordinal++
	return true
}

// Current decodes column i of the row the cursor is positioned on.
// Calling Current before the first Advance, or after Advance has returned
// false, is a fatal programming error.
func (c *Cursor) Current(column int) codec.Value {
	if c.ordinal < 0 || c.ordinal >= c.table.rows {
		panic(cterrors.Newf(cterrors.ErrorTypeOrdinal, "cursor not positioned on a row (ordinal %d, rows %d)", c.ordinal, c.table.rows))
	}
	return c.table.Column(column).Get(c.ordinal)
}

// CurrentRow decodes every column of the row the cursor is positioned on,
// in schema order.
func (c *Cursor) CurrentRow() []codec.Value {
	row := make([]codec.Value, c.table.ColumnCount())
	for i := range row {
		row[i] = c.Current(i)
	}
	return row
}

// Ordinal returns the zero-based row index the cursor is positioned on, or
// -1 before the first Advance.
func (c *Cursor) Ordinal() int { return c.ordinal }

// Reset rewinds the cursor to before the first row, so the next Advance
// lands on row 0 again.
func (c *Cursor) Reset() { c.ordinal = -1 }
