package codec

import (
	cterrors "github.com/colstorehq/coltable/pkg/errors"
)

// RepresentationType self-identifies a codec's physical layout, mirroring
// ArrayTable.RepresentationType's enum.
type RepresentationType int

const (
	ObjectArray RepresentationType = iota
	PrimitiveArray
	BitSlicedPrimitiveArray
	PrimitiveDictionary
	ObjectDictionary
	StringDictionary
	ByteStringDictionary
)

func (t RepresentationType) String() string {
	switch t {
	case ObjectArray:
		return "OBJECT_ARRAY"
	case PrimitiveArray:
		return "PRIMITIVE_ARRAY"
	case BitSlicedPrimitiveArray:
		return "BIT_SLICED_PRIMITIVE_ARRAY"
	case PrimitiveDictionary:
		return "PRIMITIVE_DICTIONARY"
	case ObjectDictionary:
		return "OBJECT_DICTIONARY"
	case StringDictionary:
		return "STRING_DICTIONARY"
	case ByteStringDictionary:
		return "BYTE_STRING_DICTIONARY"
	default:
		return "UNKNOWN_REPRESENTATION"
	}
}

// Codec is the contract every representation implements: freeze a value
// list into an immutable payload once, and decode a value at a given row
// ordinal in O(1). Like ArrayTable.Representation, this is a polymorphic
// interface: callers dispatch through it dynamically, payloads are typed
// as any, and each codec's Get type-asserts the payload back to its own
// payload type.
type Codec interface {
	// Type returns the codec's self-identifying tag.
	Type() RepresentationType

	// Freeze performs a one-shot, idempotent, pure conversion from values
	// to an immutable payload owned by the caller.
	Freeze(values []Value) (any, error)

	// Get performs O(1) random access into a payload produced by Freeze.
	// ordinal must be in [0, N) where N is the length passed to Freeze;
	// violating this is a fatal programming error.
	Get(payload any, ordinal int) Value
}

func errOrdinalOutOfRange(ordinal, n int) error {
	return cterrors.Newf(cterrors.ErrorTypeOrdinal, "ordinal %d out of range [0, %d)", ordinal, n)
}

func errFreezePrecondition(msg string) error {
	return cterrors.New(cterrors.ErrorTypeFreezePrecondition, msg)
}

func errUnsupportedPrimitive(kind PrimitiveKind) error {
	return cterrors.Newf(cterrors.ErrorTypeUnsupportedPrimitive, "unsupported primitive kind %s", kind)
}
