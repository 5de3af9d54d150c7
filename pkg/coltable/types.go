// Package coltable implements a columnar in-memory table engine: rows are
// ingested once, each column is frozen into a compressed physical
// representation chosen from a small codec family, and reads happen by
// scanning row ordinals back through each column's codec.
package coltable

import "fmt"

// LogicalType is the declared type of a column, independent of how it is
// physically represented after freeze.
type LogicalType int

const (
	TypeBoolean LogicalType = iota
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeChar
	TypeString
	TypeByteString
	TypeObject
)

func (t LogicalType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeByte:
		return "byte"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeChar:
		return "char"
	case TypeString:
		return "string"
	case TypeByteString:
		return "byte-string"
	case TypeObject:
		return "object"
	default:
		return fmt.Sprintf("LogicalType(%d)", int(t))
	}
}

// IsPrimitiveNumeric reports whether t is a primitive numeric or boolean
// type eligible for PrimitiveArray / BitSlicedPrimitiveArray / PrimitiveDictionary.
func (t LogicalType) IsPrimitiveNumeric() bool {
	switch t {
	case TypeBoolean, TypeByte, TypeShort, TypeInt, TypeLong, TypeFloat, TypeDouble, TypeChar:
		return true
	default:
		return false
	}
}

// ColumnSpec describes one column of a Table's schema.
type ColumnSpec struct {
	Name     string
	Type     LogicalType
	Nullable bool
	// ObjectTypeName is an opaque, caller-supplied label for TypeObject
	// columns; the core never interprets it. Mirrors the host's
	// "object-of-type-T" annotation.
	ObjectTypeName string
}

// RowType is an opaque descriptor echoed back from construction, carrying
// only the field count needed for arity assertions.
type RowType struct {
	Fields int
}

// DataContext is an opaque handle supplied at Table/Builder construction
// and echoed back via Context(). The core never inspects or interprets
// it; it exists purely for the caller to thread its own state (a query
// context, a catalog handle, a request ID) through table construction
// and back out again. Grounded on ArrayTable.getDataContext().
type DataContext any
