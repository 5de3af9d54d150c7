package codec

// BitSlicedPrimitiveArrayPayload packs ⌊64/bitCount⌋ chunks of BitCount
// bits each into every 64-bit word, in ascending chunk order within a
// word and ascending word order by row position.
type BitSlicedPrimitiveArrayPayload struct {
	BitCount int
	Kind     PrimitiveKind
	Words    []uint64
	Len      int // number of logical rows; trailing chunks beyond this are zero-filled
}

func chunksPerWord(bitCount int) int { return 64 / bitCount }

func wordCountFor(n, bitCount int) int {
	cpw := chunksPerWord(bitCount)
	return (n + cpw - 1) / cpw
}

// BitSlicedPrimitiveArrayCodec packs values narrower than their kind's
// native width into shared 64-bit words. Chunks are stored unsigned
// (zero-extended) and reinterpreted on decode per the kind's cast rule:
// zero-extend then cast, not sign-extend, regardless of what the
// original field's javadoc comment claimed about signed intent.
//
// Grounded on ArrayTable.BitSlicedPrimitiveArray (freeze/getObject/
// getLong/orLong) and BoolColumn's bit-packed word layout ([]uint64, 64
// bools per word) for the word-packing idiom.
type BitSlicedPrimitiveArrayCodec struct {
	BitCount int
	Kind     PrimitiveKind
}

var _ Codec = BitSlicedPrimitiveArrayCodec{}

func (BitSlicedPrimitiveArrayCodec) Type() RepresentationType { return BitSlicedPrimitiveArray }

func (c BitSlicedPrimitiveArrayCodec) Freeze(values []Value) (any, error) {
	if c.BitCount < 1 || c.BitCount > 63 {
		return nil, errFreezePrecondition("bitCount must be in [1, 63]")
	}
	n := len(values)
	words := make([]uint64, wordCountFor(n, c.BitCount))
	mask := uint64(1)<<uint(c.BitCount) - 1

	for ordinal, v := range values {
		if v.IsNull {
			return nil, errFreezePrecondition("BitSlicedPrimitiveArray does not support null values")
		}
		var raw uint64
		switch c.Kind {
		case KindBool:
			if v.Bool() {
				raw = 1
			}
		default:
			raw = uint64(v.Int()) & mask
		}
		orLong(c.BitCount, words, ordinal, raw)
	}

	return &BitSlicedPrimitiveArrayPayload{
		BitCount: c.BitCount,
		Kind:     c.Kind,
		Words:    words,
		Len:      n,
	}, nil
}

func (BitSlicedPrimitiveArrayCodec) Get(payload any, ordinal int) Value {
	p := payload.(*BitSlicedPrimitiveArrayPayload)
	if ordinal < 0 || ordinal >= p.Len {
		panic(errOrdinalOutOfRange(ordinal, p.Len))
	}
	x := getLong(p.BitCount, p.Words, ordinal)
	switch p.Kind {
	case KindBool:
		return BoolValue(x != 0)
	case KindInt8:
		return IntValue(int64(int8(x)))
	case KindInt16:
		return IntValue(int64(int16(x)))
	case KindInt32:
		return IntValue(int64(int32(x)))
	case KindInt64:
		return IntValue(int64(x))
	case KindChar:
		return CharValue(uint16(x))
	default:
		panic(errUnsupportedPrimitive(p.Kind))
	}
}

// getLong decodes the raw (zero-extended) bitCount-wide chunk at ordinal.
// Exposed for bulk use by dictionary codecs that store their codes
// bit-sliced.
func getLong(bitCount int, words []uint64, ordinal int) uint64 {
	cpw := chunksPerWord(bitCount)
	word := ordinal / cpw
	chunk := ordinal % cpw
	mask := uint64(1)<<uint(bitCount) - 1
	return (words[word] >> uint(chunk*bitCount)) & mask
}

// orLong ORs the low bitCount bits of value into the chunk at ordinal.
// Used only during freeze by builders needing random-access assembly;
// the payload is immutable once Freeze returns.
func orLong(bitCount int, words []uint64, ordinal int, value uint64) {
	cpw := chunksPerWord(bitCount)
	word := ordinal / cpw
	chunk := ordinal % cpw
	mask := uint64(1)<<uint(bitCount) - 1
	words[word] |= (value & mask) << uint(chunk*bitCount)
}

// GetLong is the exported form of getLong, for higher layers (e.g. tests,
// dictionary codecs outside this file) needing direct chunk access.
func GetLong(bitCount int, words []uint64, ordinal int) uint64 {
	return getLong(bitCount, words, ordinal)
}

// OrLong is the exported form of orLong.
func OrLong(bitCount int, words []uint64, ordinal int, value uint64) {
	orLong(bitCount, words, ordinal, value)
}
