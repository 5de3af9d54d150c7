package coltable

import "github.com/colstorehq/coltable/pkg/coltable/codec"

// Column is one frozen column: a spec, the codec chosen for it, and the
// immutable payload that codec produced. Columns never change shape after
// freeze.
type Column struct {
	Spec    ColumnSpec
	Codec   codec.Codec
	Payload any
	rows    int
}

// Get decodes the value at ordinal. Out-of-range ordinals are a fatal
// programming error surfaced as a panic by the underlying codec.
func (c *Column) Get(ordinal int) codec.Value {
	return c.Codec.Get(c.Payload, ordinal)
}

// Representation reports which physical layout this column ended up with.
func (c *Column) Representation() codec.RepresentationType {
	return c.Codec.Type()
}

// Rows reports the number of logical rows frozen into this column.
func (c *Column) Rows() int {
	return c.rows
}
