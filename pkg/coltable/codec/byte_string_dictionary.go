package codec

// ByteStringDictionaryCodec is structurally identical to
// StringDictionaryCodec but over raw byte strings with no UTF-8
// constraint.
type ByteStringDictionaryCodec struct {
	Nullable                bool
	MaxInlineLength         int
	EagerExceptionFrequency float64
}

var _ Codec = ByteStringDictionaryCodec{}

func (ByteStringDictionaryCodec) Type() RepresentationType { return ByteStringDictionary }

func (c ByteStringDictionaryCodec) Freeze(values []Value) (any, error) {
	for _, v := range values {
		if !v.IsNull && v.kind != kindBytes {
			return nil, errFreezePrecondition("ByteStringDictionary requires byte-string values")
		}
	}
	return freezeByteDictionary(values, false, c.MaxInlineLength, c.EagerExceptionFrequency, c.Nullable)
}

func (ByteStringDictionaryCodec) Get(payload any, ordinal int) Value {
	return getByteDictionary(payload.(*ByteDictionaryPayload), ordinal)
}
