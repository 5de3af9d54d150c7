package coltable

import (
	"encoding/csv"
	"io"
	"strconv"

	goccyjson "github.com/goccy/go-json"

	"github.com/colstorehq/coltable/pkg/coltable/codec"
	"github.com/colstorehq/coltable/pkg/config"
	cterrors "github.com/colstorehq/coltable/pkg/errors"
)

// Builder accumulates rows against a fixed schema and freezes them into a
// Table exactly once. It is the host-facing ingestion surface the core
// table/cursor/codec types never expose directly.
//
// Grounded on DirectCSVToColumnar's direct per-row column append (no
// intermediate row representation) and ColumnStore.AppendRow.
type Builder struct {
	schema  []ColumnSpec
	columns [][]codec.Value
	cfg     config.SelectorConfig
	ctx     DataContext
}

// NewBuilder creates a Builder for schema, using the selector policy cfg.
// ctx is an opaque handle carried through to the Table Freeze produces;
// the Builder never inspects it.
func NewBuilder(schema []ColumnSpec, cfg config.SelectorConfig, ctx DataContext) *Builder {
	columns := make([][]codec.Value, len(schema))
	return &Builder{schema: schema, columns: columns, cfg: cfg, ctx: ctx}
}

// AppendRow appends one row of already-typed values. len(row) must equal
// the schema's arity.
func (b *Builder) AppendRow(row []codec.Value) error {
	if len(row) != len(b.schema) {
		return cterrors.Newf(cterrors.ErrorTypeArity, "row has %d values, schema has %d columns", len(row), len(b.schema))
	}
	for i, v := range row {
		b.columns[i] = append(b.columns[i], v)
	}
	return nil
}

// AppendCSV reads CSV rows from r and appends each, matching CSV columns
// to schema columns positionally (the header row, if present, is the
// caller's responsibility to skip before calling this). Every cell is
// parsed according to the corresponding schema column's LogicalType; an
// empty cell on a nullable column becomes null.
func (b *Builder) AppendCSV(r *csv.Reader) error {
	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		row, err := b.parseCSVRow(record)
		if err != nil {
			return err
		}
		if err := b.AppendRow(row); err != nil {
			return err
		}
	}
}

func (b *Builder) parseCSVRow(record []string) ([]codec.Value, error) {
	if len(record) != len(b.schema) {
		return nil, cterrors.Newf(cterrors.ErrorTypeArity, "csv row has %d fields, schema has %d columns", len(record), len(b.schema))
	}
	row := make([]codec.Value, len(b.schema))
	for i, spec := range b.schema {
		v, err := valueFromCSVField(spec, record[i])
		if err != nil {
			return nil, cterrors.Wrap(err, cterrors.ErrorTypeFreezePrecondition, "parsing column "+spec.Name)
		}
		row[i] = v
	}
	return row, nil
}

func valueFromCSVField(spec ColumnSpec, field string) (codec.Value, error) {
	if field == "" && spec.Nullable {
		return codec.NullValue(), nil
	}
	switch spec.Type {
	case TypeBoolean:
		x, err := strconv.ParseBool(field)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.BoolValue(x), nil
	case TypeByte, TypeShort, TypeInt, TypeLong:
		x, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.IntValue(x), nil
	case TypeChar:
		if len(field) == 0 {
			return codec.CharValue(0), nil
		}
		r := []rune(field)
		return codec.CharValue(uint16(r[0])), nil
	case TypeFloat:
		x, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.Float32Value(float32(x)), nil
	case TypeDouble:
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return codec.Value{}, err
		}
		return codec.Float64Value(x), nil
	case TypeByteString:
		return codec.BytesValue([]byte(field)), nil
	case TypeString:
		return codec.StringValue(field), nil
	default:
		return codec.ObjectValue(field), nil
	}
}

// AppendJSONRows decodes data as a JSON array of objects, keyed by schema
// column name, and appends each as a row. Uses goccy/go-json rather than
// encoding/json for the decode.
func (b *Builder) AppendJSONRows(data []byte) error {
	var raw []map[string]any
	if err := goccyjson.Unmarshal(data, &raw); err != nil {
		return cterrors.Wrap(err, cterrors.ErrorTypeFreezePrecondition, "decoding json rows")
	}
	for _, obj := range raw {
		row := make([]codec.Value, len(b.schema))
		for i, spec := range b.schema {
			v, err := valueFromJSON(spec, obj[spec.Name])
			if err != nil {
				return cterrors.Wrap(err, cterrors.ErrorTypeFreezePrecondition, "parsing column "+spec.Name)
			}
			row[i] = v
		}
		if err := b.AppendRow(row); err != nil {
			return err
		}
	}
	return nil
}

func valueFromJSON(spec ColumnSpec, raw any) (codec.Value, error) {
	if raw == nil {
		return codec.NullValue(), nil
	}
	switch spec.Type {
	case TypeBoolean:
		x, ok := raw.(bool)
		if !ok {
			return codec.Value{}, cterrors.Newf(cterrors.ErrorTypeFreezePrecondition, "expected bool, got %T", raw)
		}
		return codec.BoolValue(x), nil
	case TypeByte, TypeShort, TypeInt, TypeLong:
		x, ok := raw.(float64)
		if !ok {
			return codec.Value{}, cterrors.Newf(cterrors.ErrorTypeFreezePrecondition, "expected number, got %T", raw)
		}
		return codec.IntValue(int64(x)), nil
	case TypeChar:
		s, ok := raw.(string)
		if !ok || len(s) == 0 {
			return codec.Value{}, cterrors.Newf(cterrors.ErrorTypeFreezePrecondition, "expected single-character string, got %T", raw)
		}
		return codec.CharValue(uint16([]rune(s)[0])), nil
	case TypeFloat:
		x, ok := raw.(float64)
		if !ok {
			return codec.Value{}, cterrors.Newf(cterrors.ErrorTypeFreezePrecondition, "expected number, got %T", raw)
		}
		return codec.Float32Value(float32(x)), nil
	case TypeDouble:
		x, ok := raw.(float64)
		if !ok {
			return codec.Value{}, cterrors.Newf(cterrors.ErrorTypeFreezePrecondition, "expected number, got %T", raw)
		}
		return codec.Float64Value(x), nil
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return codec.Value{}, cterrors.Newf(cterrors.ErrorTypeFreezePrecondition, "expected string, got %T", raw)
		}
		return codec.StringValue(s), nil
	case TypeByteString:
		s, ok := raw.(string)
		if !ok {
			return codec.Value{}, cterrors.Newf(cterrors.ErrorTypeFreezePrecondition, "expected string, got %T", raw)
		}
		return codec.BytesValue([]byte(s)), nil
	default:
		return codec.ObjectValue(raw), nil
	}
}

// Freeze converts every accumulated row into a Table. The Builder must not
// be reused afterward: Freeze does not copy the buffered values (an
// ObjectArray column aliases them), and the Builder itself does not refuse
// further AppendRow calls.
func (b *Builder) Freeze() (*Table, error) {
	return NewTable(b.schema, b.columns, b.cfg, b.ctx)
}
