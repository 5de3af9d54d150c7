package coltable

import (
	"context"

	"github.com/colstorehq/coltable/pkg/config"
	cterrors "github.com/colstorehq/coltable/pkg/errors"
	"github.com/colstorehq/coltable/pkg/logger"

	"github.com/colstorehq/coltable/pkg/coltable/codec"
	"go.uber.org/zap"
)

// Table is a frozen, immutable collection of columns sharing one row
// count. Once constructed it supports only reads: row_count, column
// access, and forward scans.
//
// Grounded on ArrayTable: schema + Representation[] + rowCount, built
// once by ArrayTableColumnLoader and read thereafter via enumerator().
type Table struct {
	schema  []ColumnSpec
	columns []*Column
	rows    int
	ctx     DataContext
}

// NewTable freezes columnValues (one []codec.Value per schema column, all
// of equal length) into a Table, selecting each column's representation
// with cfg. ctx is an opaque handle stored on the Table and returned
// unmodified by Context(); the core never interprets it. Arity mismatches
// are a fatal construction-time error; per-column freeze preconditions
// (e.g. a null in a non-nullable PrimitiveArray candidate) surface as
// errors, not panics, since freeze is the one boundary the host is
// expected to validate input against.
func NewTable(schema []ColumnSpec, columnValues [][]codec.Value, cfg config.SelectorConfig, ctx DataContext) (*Table, error) {
	if len(columnValues) != len(schema) {
		return nil, cterrors.Newf(cterrors.ErrorTypeArity,
			"schema has %d columns but %d value lists were supplied", len(schema), len(columnValues))
	}

	rows := 0
	if len(columnValues) > 0 {
		rows = len(columnValues[0])
	}
	for i, vals := range columnValues {
		if len(vals) != rows {
			return nil, cterrors.Newf(cterrors.ErrorTypeArity,
				"column %d (%s) has %d rows, expected %d", i, schema[i].Name, len(vals), rows)
		}
	}

	tableName, _ := ctx.(string)

	columns := make([]*Column, len(schema))
	for i, spec := range schema {
		chosen, err := SelectCodec(spec, columnValues[i], cfg)
		if err != nil {
			return nil, cterrors.Wrap(err, cterrors.ErrorTypeFreezePrecondition,
				"selecting representation for column "+spec.Name)
		}
		payload, err := chosen.Freeze(columnValues[i])
		if err != nil {
			return nil, cterrors.Wrap(err, cterrors.ErrorTypeFreezePrecondition,
				"freezing column "+spec.Name)
		}
		columns[i] = &Column{Spec: spec, Codec: chosen, Payload: payload, rows: rows}

		logCtx := context.WithValue(context.Background(), logger.OperationKey, "freeze")
		logCtx = context.WithValue(logCtx, logger.ColumnKey, spec.Name)
		if tableName != "" {
			logCtx = context.WithValue(logCtx, logger.TableKey, tableName)
		}
		logger.WithContext(logCtx).Debug("froze column",
			zap.String("representation", chosen.Type().String()),
			zap.Int("rows", rows))
	}

	return &Table{schema: schema, columns: columns, rows: rows, ctx: ctx}, nil
}

// Context returns the opaque DataContext supplied at construction.
func (t *Table) Context() DataContext { return t.ctx }

// RowType describes the table's arity, echoing the field count a caller
// would need to validate a row against before appending it.
func (t *Table) RowType() RowType { return RowType{Fields: len(t.schema)} }

// Schema returns the table's column specs, in declaration order.
func (t *Table) Schema() []ColumnSpec { return t.schema }

// RowCount returns the number of rows frozen into the table.
func (t *Table) RowCount() int { return t.rows }

// Column returns the i-th column. A negative or out-of-range i is a fatal
// programming error.
func (t *Table) Column(i int) *Column {
	if i < 0 || i >= len(t.columns) {
		panic(cterrors.Newf(cterrors.ErrorTypeOrdinal, "column ordinal %d out of range [0, %d)", i, len(t.columns)))
	}
	return t.columns[i]
}

// ColumnCount returns the number of columns in the table.
func (t *Table) ColumnCount() int { return len(t.columns) }

// Scan returns a forward, resettable Cursor over every row.
func (t *Table) Scan() *Cursor {
	logCtx := context.WithValue(context.Background(), logger.OperationKey, "scan")
	if tableName, ok := t.ctx.(string); ok && tableName != "" {
		logCtx = context.WithValue(logCtx, logger.TableKey, tableName)
	}
	logger.WithContext(logCtx).Debug("scan started", zap.Int("rows", t.rows))

	return &Cursor{table: t, ordinal: -1}
}
