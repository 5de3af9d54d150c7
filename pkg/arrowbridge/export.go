// Package arrowbridge exports a frozen coltable.Table as a single
// Apache Arrow in-memory record, for handoff to tools that already speak
// Arrow (query engines, Parquet writers, RPC layers). The table engine
// itself never depends on Arrow — only this bridge does.
package arrowbridge

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/colstorehq/coltable/pkg/coltable"
	"github.com/colstorehq/coltable/pkg/coltable/codec"
	cterrors "github.com/colstorehq/coltable/pkg/errors"
)

// Export materializes every row of t into one arrow.Record. The caller
// owns the returned record and must call Release() on it.
//
// Grounded on arrow_impl.go's schema-conversion and
// array.RecordBuilder/appendArrowValue/getArrowColumnValue approach,
// replacing its models.Record round-trip with a direct Cursor scan since
// this engine's rows never leave the Column/Cursor representation before
// export.
func Export(t *coltable.Table) (arrow.Record, error) {
	schema, err := toArrowSchema(t.Schema())
	if err != nil {
		return nil, err
	}

	pool := memory.NewGoAllocator()
	builder := array.NewRecordBuilder(pool, schema)
	defer builder.Release()

	cursor := t.Scan()
	for cursor.Advance() {
		for i, spec := range t.Schema() {
			v := cursor.Current(i)
			if err := appendValue(builder.Field(i), spec.Type, v); err != nil {
				return nil, cterrors.Wrap(err, cterrors.ErrorTypeUnsupportedPrimitive, "appending column "+spec.Name)
			}
		}
	}

	return builder.NewRecord(), nil
}

func toArrowSchema(columns []coltable.ColumnSpec) (*arrow.Schema, error) {
	fields := make([]arrow.Field, len(columns))
	for i, spec := range columns {
		dt, err := arrowTypeFor(spec.Type)
		if err != nil {
			return nil, err
		}
		fields[i] = arrow.Field{Name: spec.Name, Type: dt, Nullable: spec.Nullable}
	}
	return arrow.NewSchema(fields, nil), nil
}

func arrowTypeFor(t coltable.LogicalType) (arrow.DataType, error) {
	switch t {
	case coltable.TypeBoolean:
		return arrow.FixedWidthTypes.Boolean, nil
	case coltable.TypeByte:
		return arrow.PrimitiveTypes.Int8, nil
	case coltable.TypeShort:
		return arrow.PrimitiveTypes.Int16, nil
	case coltable.TypeInt:
		return arrow.PrimitiveTypes.Int32, nil
	case coltable.TypeLong:
		return arrow.PrimitiveTypes.Int64, nil
	case coltable.TypeChar:
		return arrow.PrimitiveTypes.Uint16, nil
	case coltable.TypeFloat:
		return arrow.PrimitiveTypes.Float32, nil
	case coltable.TypeDouble:
		return arrow.PrimitiveTypes.Float64, nil
	case coltable.TypeString:
		return arrow.BinaryTypes.String, nil
	case coltable.TypeByteString:
		return arrow.BinaryTypes.Binary, nil
	case coltable.TypeObject:
		// No generic object type in Arrow; objects round-trip through
		// their fmt.Stringer/%v representation as a string column.
		return arrow.BinaryTypes.String, nil
	default:
		return nil, cterrors.Newf(cterrors.ErrorTypeUnsupportedPrimitive, "logical type %s has no Arrow mapping", t)
	}
}

func appendValue(b array.Builder, t coltable.LogicalType, v codec.Value) error {
	if v.IsNull {
		b.AppendNull()
		return nil
	}
	switch t {
	case coltable.TypeBoolean:
		b.(*array.BooleanBuilder).Append(v.Bool())
	case coltable.TypeByte:
		b.(*array.Int8Builder).Append(int8(v.Int()))
	case coltable.TypeShort:
		b.(*array.Int16Builder).Append(int16(v.Int()))
	case coltable.TypeInt:
		b.(*array.Int32Builder).Append(int32(v.Int()))
	case coltable.TypeLong:
		b.(*array.Int64Builder).Append(v.Int())
	case coltable.TypeChar:
		b.(*array.Uint16Builder).Append(v.Char())
	case coltable.TypeFloat:
		b.(*array.Float32Builder).Append(v.Float32())
	case coltable.TypeDouble:
		b.(*array.Float64Builder).Append(v.Float64())
	case coltable.TypeString:
		b.(*array.StringBuilder).Append(v.String())
	case coltable.TypeByteString:
		b.(*array.BinaryBuilder).Append(v.Bytes())
	case coltable.TypeObject:
		b.(*array.StringBuilder).Append(fmt.Sprintf("%v", v.Object()))
	default:
		return cterrors.Newf(cterrors.ErrorTypeUnsupportedPrimitive, "logical type %s has no Arrow append path", t)
	}
	return nil
}
