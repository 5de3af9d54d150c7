package codec

import (
	"math/bits"
	"sort"
)

// PrimitiveDictionaryPayload holds a sorted, canonicalized dictionary of
// distinct primitive values plus per-row codes. Dict is sorted such that code(v1) < code(v2) iff
// v1 < v2 under the primitive's natural order.
//
// This repo's decision for the open null-handling question:
// when HasNull is true, code 0 is reserved for null and dictionary
// entries occupy codes 1..len(Dict); otherwise entries occupy codes
// 0..len(Dict)-1. HasNull self-describes which layout is in effect.
type PrimitiveDictionaryPayload struct {
	Kind    PrimitiveKind
	Dict    *PrimitiveArrayPayload
	HasNull bool
	Codes   *BitSlicedPrimitiveArrayPayload
}

// PrimitiveDictionaryCodec dictionary-encodes a primitive-typed column
// (ArrayTable.PrimitiveDictionary throws
// UnsupportedOperationException instead of implementing this).
//
// Grounded on StringColumn.convertToDictionary's scan-once,
// assign-codes-while-building-the-map approach, adapted to sort-then-
// assign so the ordering invariant holds, with codes stored via
// BitSlicedPrimitiveArrayCodec.
type PrimitiveDictionaryCodec struct {
	Kind     PrimitiveKind
	Nullable bool
}

var _ Codec = PrimitiveDictionaryCodec{}

func (PrimitiveDictionaryCodec) Type() RepresentationType { return PrimitiveDictionary }

func (c PrimitiveDictionaryCodec) Freeze(values []Value) (any, error) {
	distinct := make([]Value, 0, len(values))
	sawNull := false
	for _, v := range values {
		if v.IsNull {
			sawNull = true
			continue
		}
		distinct = append(distinct, v)
	}

	sort.Slice(distinct, func(i, j int) bool {
		return primitiveLess(c.Kind, distinct[i], distinct[j])
	})
	distinct = dedupeSortedPrimitives(c.Kind, distinct)

	// hasNull is a property of the column, not just this batch: a nullable
	// column reserves code 0 even if this particular freeze saw no nulls,
	// so later rows decoded through the same payload stay self-consistent.
	hasNull := c.Nullable
	_ = sawNull

	dictPayloadAny, err := PrimitiveArrayCodec{Kind: c.Kind}.Freeze(distinct)
	if err != nil {
		return nil, err
	}
	dictPayload := dictPayloadAny.(*PrimitiveArrayPayload)

	codeSpace := len(distinct)
	if hasNull {
		codeSpace++
	}
	bitCount := bitsNeeded(codeSpace)

	codeValues := make([]Value, len(values))
	for i, v := range values {
		var code int64
		if v.IsNull {
			code = 0
		} else {
			idx := sort.Search(len(distinct), func(j int) bool {
				return !primitiveLess(c.Kind, distinct[j], v)
			})
			if hasNull {
				code = int64(idx) + 1
			} else {
				code = int64(idx)
			}
		}
		codeValues[i] = IntValue(code)
	}

	codesPayloadAny, err := BitSlicedPrimitiveArrayCodec{BitCount: bitCount, Kind: KindInt64}.Freeze(codeValues)
	if err != nil {
		return nil, err
	}

	return &PrimitiveDictionaryPayload{
		Kind:    c.Kind,
		Dict:    dictPayload,
		HasNull: hasNull,
		Codes:   codesPayloadAny.(*BitSlicedPrimitiveArrayPayload),
	}, nil
}

func (PrimitiveDictionaryCodec) Get(payload any, ordinal int) Value {
	p := payload.(*PrimitiveDictionaryPayload)
	if ordinal < 0 || ordinal >= p.Codes.Len {
		panic(errOrdinalOutOfRange(ordinal, p.Codes.Len))
	}
	code := getLong(p.Codes.BitCount, p.Codes.Words, ordinal)
	if p.HasNull {
		if code == 0 {
			return NullValue()
		}
		code--
	}
	return PrimitiveArrayCodec{Kind: p.Kind}.Get(p.Dict, int(code))
}

func bitsNeeded(codeSpace int) int {
	if codeSpace <= 1 {
		return 1
	}
	return bits.Len(uint(codeSpace - 1))
}

func primitiveLess(kind PrimitiveKind, a, b Value) bool {
	switch kind {
	case KindBool:
		return !a.Bool() && b.Bool()
	case KindChar:
		return a.Char() < b.Char()
	case KindFloat32:
		return a.Float32() < b.Float32()
	case KindFloat64:
		return a.Float64() < b.Float64()
	default:
		return a.Int() < b.Int()
	}
}

func primitiveEqual(kind PrimitiveKind, a, b Value) bool {
	switch kind {
	case KindBool:
		return a.Bool() == b.Bool()
	case KindChar:
		return a.Char() == b.Char()
	case KindFloat32:
		return a.Float32() == b.Float32()
	case KindFloat64:
		return a.Float64() == b.Float64()
	default:
		return a.Int() == b.Int()
	}
}

func dedupeSortedPrimitives(kind PrimitiveKind, sorted []Value) []Value {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if !primitiveEqual(kind, out[len(out)-1], v) {
			out = append(out, v)
		}
	}
	return out
}
