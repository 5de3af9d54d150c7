package codec

// ObjectDictionaryPayload holds a canonicalized (first-seen order, not
// necessarily sorted) table of distinct opaque references plus per-row
// codes. Canonicalization order is first-seen, matching
// StringColumn.dict's map[string]uint32 assignment order.
type ObjectDictionaryPayload struct {
	Dict    []any
	HasNull bool
	Codes   *BitSlicedPrimitiveArrayPayload
}

// ObjectDictionaryCodec dictionary-encodes a column of opaque object
// values (ArrayTable.ObjectDictionary throws
// UnsupportedOperationException instead). Dictionary keys must be
// comparable (usable as a Go map key) — the selector only chooses this
// representation for columns whose object values satisfy that.
type ObjectDictionaryCodec struct {
	Nullable bool
}

var _ Codec = ObjectDictionaryCodec{}

func (ObjectDictionaryCodec) Type() RepresentationType { return ObjectDictionary }

func (c ObjectDictionaryCodec) Freeze(values []Value) (any, error) {
	dict := make([]any, 0, len(values))
	index := make(map[any]int, len(values))
	hasNull := c.Nullable

	codeValues := make([]Value, len(values))
	for i, v := range values {
		var code int64
		if v.IsNull {
			code = 0
		} else {
			obj := v.Object()
			idx, ok := index[obj]
			if !ok {
				idx = len(dict)
				dict = append(dict, obj)
				index[obj] = idx
			}
			if hasNull {
				code = int64(idx) + 1
			} else {
				code = int64(idx)
			}
		}
		codeValues[i] = IntValue(code)
	}

	codeSpace := len(dict)
	if hasNull {
		codeSpace++
	}
	bitCount := bitsNeeded(codeSpace)

	codesPayloadAny, err := BitSlicedPrimitiveArrayCodec{BitCount: bitCount, Kind: KindInt64}.Freeze(codeValues)
	if err != nil {
		return nil, err
	}

	return &ObjectDictionaryPayload{
		Dict:    dict,
		HasNull: hasNull,
		Codes:   codesPayloadAny.(*BitSlicedPrimitiveArrayPayload),
	}, nil
}

func (ObjectDictionaryCodec) Get(payload any, ordinal int) Value {
	p := payload.(*ObjectDictionaryPayload)
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
	return ObjectValue(p.Dict[code])
}
