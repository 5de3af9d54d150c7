package codec

// StringDictionaryCodec stores distinct UTF-8 strings once in a shared
// byte block, referenced by per-row codes, with null/overlong/high
// frequency entries pre-materialized into a small exceptions table.
// ArrayTable never implements string columns beyond plain object arrays;
// this is the full dictionary layout those columns never got.
type StringDictionaryCodec struct {
	Nullable                bool
	MaxInlineLength         int
	EagerExceptionFrequency float64
}

var _ Codec = StringDictionaryCodec{}

func (StringDictionaryCodec) Type() RepresentationType { return StringDictionary }

func (c StringDictionaryCodec) Freeze(values []Value) (any, error) {
	for _, v := range values {
		if !v.IsNull && v.kind != kindString {
			return nil, errFreezePrecondition("StringDictionary requires string values")
		}
	}
	return freezeByteDictionary(values, true, c.MaxInlineLength, c.EagerExceptionFrequency, c.Nullable)
}

func (StringDictionaryCodec) Get(payload any, ordinal int) Value {
	return getByteDictionary(payload.(*ByteDictionaryPayload), ordinal)
}
