package codec

import (
	"encoding/binary"
)

// ByteDictionaryPayload is the shared payload shape for StringDictionary
// and ByteStringDictionary.
//
//   - Block holds length-prefixed entries (u16 big-endian length + bytes);
//     only entries shorter than 2^16 bytes ever live here.
//   - Offsets[c] is the byte offset into Block where dictionary entry c's
//     length prefix begins; code c < ExceptionBase.
//   - Exceptions holds the null sentinel (if nullable), overlong entries
//     (>= 2^16 bytes), and entries the selector chose to pre-materialize
//     for frequency. Exception codes occupy [ExceptionBase, ExceptionBase+len(Exceptions)).
//   - Codes stores the per-row code, bit-sliced at the smallest width
//     covering the whole code space.
type ByteDictionaryPayload struct {
	AsString      bool
	Block         []byte
	Offsets       []int
	Exceptions    []Value
	ExceptionBase int
	Codes         *BitSlicedPrimitiveArrayPayload
}

const maxInlineEntryLength = 1<<16 - 1

// freezeByteDictionary builds a shared-block string/byte-string dictionary:
// overlong entries and entries whose frequency exceeds
// eagerExceptionFrequency are pre-materialized into Exceptions; everything
// else is packed into the shared Block in sorted order.
//
// Grounded on CompressedColumnStore.serializeColumn's string branch
// (length-prefixed entries, a dict map, a codes array) for the
// length-prefix idiom, generalized to add the exceptions side table that
// serializer never needed.
func freezeByteDictionary(values []Value, asString bool, maxInlineLength int, eagerExceptionFrequency float64, nullable bool) (*ByteDictionaryPayload, error) {
	if maxInlineLength <= 0 || maxInlineLength > maxInlineEntryLength {
		maxInlineLength = maxInlineEntryLength
	}

	bytesOf := func(v Value) []byte {
		if asString {
			return []byte(v.String())
		}
		return v.Bytes()
	}

	total := len(values)
	counts := make(map[string]int, total)
	order := make([]string, 0, total)
	sawNull := false
	for _, v := range values {
		if v.IsNull {
			sawNull = true
			continue
		}
		key := string(bytesOf(v))
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}

	type entry struct {
		key      string
		freq     float64
		overlong bool
	}
	entries := make([]entry, len(order))
	for i, key := range order {
		entries[i] = entry{
			key:      key,
			freq:     float64(counts[key]) / float64(total),
			overlong: len(key) > maxInlineLength,
		}
	}

	var inline []string
	var exceptionKeys []string
	for _, e := range entries {
		if e.overlong || e.freq > eagerExceptionFrequency {
			exceptionKeys = append(exceptionKeys, e.key)
		} else {
			inline = append(inline, e.key)
		}
	}
	sortStrings(inline)
	sortStrings(exceptionKeys)

	hasNull := nullable
	exceptions := make([]Value, 0, len(exceptionKeys)+1)
	if hasNull {
		exceptions = append(exceptions, NullValue())
	}
	for _, key := range exceptionKeys {
		if asString {
			exceptions = append(exceptions, StringValue(key))
		} else {
			exceptions = append(exceptions, BytesValue([]byte(key)))
		}
	}

	inlineCode := make(map[string]int, len(inline))
	block := make([]byte, 0, 256)
	offsets := make([]int, len(inline))
	for i, key := range inline {
		inlineCode[key] = i
		offsets[i] = len(block)
		var lenBuf [2]byte
		binary.BigEndian.PutUint16(lenBuf[:], uint16(len(key)))
		block = append(block, lenBuf[:]...)
		block = append(block, key...)
	}

	exceptionCode := make(map[string]int, len(exceptionKeys))
	exceptionBase := len(inline)
	nullCodeOffset := 0
	if hasNull {
		nullCodeOffset = 1
	}
	for i, key := range exceptionKeys {
		exceptionCode[key] = exceptionBase + nullCodeOffset + i
	}

	codeValues := make([]Value, total)
	for i, v := range values {
		var code int64
		if v.IsNull {
			code = int64(exceptionBase) // null is always exceptions[0] when hasNull
		} else {
			key := string(bytesOf(v))
			if c, ok := inlineCode[key]; ok {
				code = int64(c)
			} else {
				code = int64(exceptionCode[key])
			}
		}
		codeValues[i] = IntValue(code)
	}

	codeSpace := exceptionBase + len(exceptions)
	bitCount := bitsNeeded(codeSpace)
	codesPayloadAny, err := BitSlicedPrimitiveArrayCodec{BitCount: bitCount, Kind: KindInt64}.Freeze(codeValues)
	if err != nil {
		return nil, err
	}

	_ = sawNull
	return &ByteDictionaryPayload{
		AsString:      asString,
		Block:         block,
		Offsets:       offsets,
		Exceptions:    exceptions,
		ExceptionBase: exceptionBase,
		Codes:         codesPayloadAny.(*BitSlicedPrimitiveArrayPayload),
	}, nil
}

func getByteDictionary(p *ByteDictionaryPayload, ordinal int) Value {
	if ordinal < 0 || ordinal >= p.Codes.Len {
		panic(errOrdinalOutOfRange(ordinal, p.Codes.Len))
	}
	code := int(getLong(p.Codes.BitCount, p.Codes.Words, ordinal))
	if code >= p.ExceptionBase {
		return p.Exceptions[code-p.ExceptionBase]
	}
	offset := p.Offsets[code]
	length := int(binary.BigEndian.Uint16(p.Block[offset: offset+2]))
	data := p.Block[offset+2: offset+2+length]
	if p.AsString {
		return StringValue(string(data))
	}
	out := make([]byte, length)
	copy(out, data)
	return BytesValue(out)
}

func sortStrings(s []string) {
	// insertion sort is fine: dictionary sizes are small relative to row
	// counts in the columns this codec is chosen for.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
