package codec

// ObjectArrayCodec stores an ordered sequence of opaque references; nulls
// round-trip as the sentinel null value.
//
// Grounded on ArrayTable.ObjectArray: freeze assumes the slice does not
// need to be copied and that values have already been canonicalized by
// the caller, so equal-by-reference implies equal-by-value downstream.
type ObjectArrayCodec struct{}

var _ Codec = ObjectArrayCodec{}

func (ObjectArrayCodec) Type() RepresentationType { return ObjectArray }

// Freeze aliases the input slice directly; no copy, no validation beyond
// trusting the caller already produced column-homogeneous values and will
// not mutate the slice after freeze.
func (ObjectArrayCodec) Freeze(values []Value) (any, error) {
	return values, nil
}

func (ObjectArrayCodec) Get(payload any, ordinal int) Value {
	values := payload.([]Value)
	if ordinal < 0 || ordinal >= len(values) {
		panic(errOrdinalOutOfRange(ordinal, len(values)))
	}
	return values[ordinal]
}
