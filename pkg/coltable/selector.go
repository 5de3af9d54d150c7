package coltable

import (
	"math"
	"reflect"

	"github.com/colstorehq/coltable/pkg/coltable/codec"
	"github.com/colstorehq/coltable/pkg/config"
	cterrors "github.com/colstorehq/coltable/pkg/errors"
)

func errUnsupportedLogicalType(t LogicalType) error {
	return cterrors.Newf(cterrors.ErrorTypeUnsupportedPrimitive, "logical type %s has no primitive codec", t)
}

// SelectCodec implements the Representation Selector: given
// a column's declared type, its materialized values, and the policy knobs
// in cfg, it picks the one codec Freeze should be called with. Selection
// never looks at more than this one column's values and never revisits a
// choice once Freeze has run.
//
// Grounded on ArrayTable.ArrayTableColumnLoader, which hand-picks
// PrimitiveArray vs BitSlicedPrimitiveArray by scanning min/max and falls
// back to ObjectArray for everything else, generalized to the full codec
// family and to a configurable dictionary policy since that loader never
// implements dictionary coding at all.
func SelectCodec(spec ColumnSpec, values []codec.Value, cfg config.SelectorConfig) (codec.Codec, error) {
	switch spec.Type {
	case TypeString:
		return codec.StringDictionaryCodec{
			Nullable:                spec.Nullable,
			MaxInlineLength:         cfg.MaxInlineLength,
			EagerExceptionFrequency: cfg.EagerExceptionFrequency,
		}, nil
	case TypeByteString:
		return codec.ByteStringDictionaryCodec{
			Nullable:                spec.Nullable,
			MaxInlineLength:         cfg.MaxInlineLength,
			EagerExceptionFrequency: cfg.EagerExceptionFrequency,
		}, nil
	case TypeObject:
		return selectObjectCodec(spec, values, cfg), nil
	default:
		return selectPrimitiveCodec(spec, values, cfg)
	}
}

func selectObjectCodec(spec ColumnSpec, values []codec.Value, cfg config.SelectorConfig) codec.Codec {
	for _, v := range values {
		if !v.IsNull && !reflect.TypeOf(v.Object()).Comparable() {
			return codec.ObjectArrayCodec{}
		}
	}
	total, distinct := countDistinctObjects(values)
	if total > 0 {
		savings := 1 - float64(distinct)/float64(total)
		if savings >= cfg.ObjectDictionarySavingsThreshold {
			return codec.ObjectDictionaryCodec{Nullable: spec.Nullable}
		}
	}
	return codec.ObjectArrayCodec{}
}

func countDistinctObjects(values []codec.Value) (total, distinct int) {
	seen := make(map[any]struct{}, len(values))
	for _, v := range values {
		if v.IsNull {
			continue
		}
		total++
		obj := v.Object()
		if _, ok := seen[obj]; !ok {
			seen[obj] = struct{}{}
			distinct++
		}
	}
	return total, distinct
}

func selectPrimitiveCodec(spec ColumnSpec, values []codec.Value, cfg config.SelectorConfig) (codec.Codec, error) {
	kind, ok := primitiveKindFor(spec.Type)
	if !ok {
		return nil, errUnsupportedLogicalType(spec.Type)
	}

	// PrimitiveArray and BitSlicedPrimitiveArray reject nulls outright: a
	// nullable primitive column can only ever be frozen through
	// PrimitiveDictionary, whose reserved null code absorbs it.
	if spec.Nullable {
		return codec.PrimitiveDictionaryCodec{Kind: kind, Nullable: true}, nil
	}

	total, distinct, minVal, maxVal, allNonNegative := scanPrimitiveStats(kind, values)
	if total == 0 {
		return codec.PrimitiveArrayCodec{Kind: kind}, nil
	}

	// Booleans always bit-slice at bitCount = 1, even though that equals
	// KindBool's native width: PrimitiveArray would store one full byte
	// per row for no benefit over a 1-bit-per-row packed word.
	if kind == codec.KindBool {
		return codec.BitSlicedPrimitiveArrayCodec{BitCount: 1, Kind: codec.KindBool}, nil
	}

	if float64(distinct)/float64(total) < cfg.DictionaryCardinalityRatio {
		return codec.PrimitiveDictionaryCodec{Kind: kind, Nullable: false}, nil
	}

	nativeWidth := kind.NativeWidth()
	if allNonNegative && kind.IsInteger() {
		bitCount := minimalUnsignedBitWidth(maxVal)
		if bitCount > 0 && bitCount < nativeWidth {
			return codec.BitSlicedPrimitiveArrayCodec{BitCount: bitCount, Kind: kind}, nil
		}
	}
	_ = minVal

	return codec.PrimitiveArrayCodec{Kind: kind}, nil
}

func primitiveKindFor(t LogicalType) (codec.PrimitiveKind, bool) {
	switch t {
	case TypeBoolean:
		return codec.KindBool, true
	case TypeByte:
		return codec.KindInt8, true
	case TypeShort:
		return codec.KindInt16, true
	case TypeInt:
		return codec.KindInt32, true
	case TypeLong:
		return codec.KindInt64, true
	case TypeFloat:
		return codec.KindFloat32, true
	case TypeDouble:
		return codec.KindFloat64, true
	case TypeChar:
		return codec.KindChar, true
	default:
		return 0, false
	}
}

// scanPrimitiveStats reports the distinct-value count and integer range
// needed by the selector's cardinality and bit-width checks. minVal/maxVal
// and allNonNegative are meaningless (and unused) for float kinds, which
// never qualify for bit-slicing.
func scanPrimitiveStats(kind codec.PrimitiveKind, values []codec.Value) (total, distinct int, minVal, maxVal int64, allNonNegative bool) {
	allNonNegative = true
	seen := make(map[int64]struct{}, len(values))
	first := true
	for _, v := range values {
		if v.IsNull {
			continue
		}
		total++
		var x int64
		switch kind {
		case codec.KindBool:
			if v.Bool() {
				x = 1
			}
		case codec.KindChar:
			x = int64(v.Char())
		case codec.KindFloat32, codec.KindFloat64:
			key := int64(math.Float64bits(v.Float64()))
			if kind == codec.KindFloat32 {
				key = int64(math.Float32bits(v.Float32()))
			}
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				distinct++
			}
			continue
		default:
			x = v.Int()
		}
		if x < 0 {
			allNonNegative = false
		}
		if _, ok := seen[x]; !ok {
			seen[x] = struct{}{}
			distinct++
		}
		if first {
			minVal, maxVal = x, x
			first = false
		} else {
			if x < minVal {
				minVal = x
			}
			if x > maxVal {
				maxVal = x
			}
		}
	}
	return total, distinct, minVal, maxVal, allNonNegative
}

// minimalUnsignedBitWidth returns the fewest bits needed to hold v as an
// unsigned quantity, which is what the zero-extend-then-cast decode rule
// requires for a bit-sliced layout to round-trip correctly.
func minimalUnsignedBitWidth(v int64) int {
	if v <= 0 {
		return 1
	}
	n := 0
	for u := uint64(v); u != 0; u >>= 1 {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}
