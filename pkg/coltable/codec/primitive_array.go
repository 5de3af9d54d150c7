package codec

// PrimitiveArrayPayload is the dense, monomorphized storage for one
// primitive kind. Exactly one of the slices is non-nil, selected by Kind.
// Using a typed slice per kind, rather than a reflective per-width
// switch, avoids the boxing and type-assertion overhead a reflective
// Array.getDouble/getInt-style accessor would incur in Go.
type PrimitiveArrayPayload struct {
	Kind     PrimitiveKind
	Bools    []bool
	Int8s    []int8
	Int16s   []int16
	Int32s   []int32
	Int64s   []int64
	Chars    []uint16
	Float32s []float32
	Float64s []float64
}

func (p *PrimitiveArrayPayload) Len() int {
	switch p.Kind {
	case KindBool:
		return len(p.Bools)
	case KindInt8:
		return len(p.Int8s)
	case KindInt16:
		return len(p.Int16s)
	case KindInt32:
		return len(p.Int32s)
	case KindInt64:
		return len(p.Int64s)
	case KindChar:
		return len(p.Chars)
	case KindFloat32:
		return len(p.Float32s)
	case KindFloat64:
		return len(p.Float64s)
	default:
		return 0
	}
}

// PrimitiveArrayCodec stores a densely packed array of a fixed primitive
// kind. No null support: the column must be
// non-nullable when this codec is chosen.
//
// Grounded on ArrayTable.PrimitiveArray (Array.getDouble/getInt/...
// per-kind switch) and IntColumn/FloatColumn/BoolColumn's typed-slice
// storage.
type PrimitiveArrayCodec struct {
	Kind PrimitiveKind
}

var _ Codec = PrimitiveArrayCodec{}

func (PrimitiveArrayCodec) Type() RepresentationType { return PrimitiveArray }

func (c PrimitiveArrayCodec) Freeze(values []Value) (any, error) {
	payload := &PrimitiveArrayPayload{Kind: c.Kind}
	n := len(values)
	switch c.Kind {
	case KindBool:
		out := make([]bool, n)
		for i, v := range values {
			if v.IsNull {
				return nil, errFreezePrecondition("PrimitiveArray does not support null values")
			}
			out[i] = v.Bool()
		}
		payload.Bools = out
	case KindInt8:
		out := make([]int8, n)
		for i, v := range values {
			if v.IsNull {
				return nil, errFreezePrecondition("PrimitiveArray does not support null values")
			}
			out[i] = int8(v.Int())
		}
		payload.Int8s = out
	case KindInt16:
		out := make([]int16, n)
		for i, v := range values {
			if v.IsNull {
				return nil, errFreezePrecondition("PrimitiveArray does not support null values")
			}
			out[i] = int16(v.Int())
		}
		payload.Int16s = out
	case KindInt32:
		out := make([]int32, n)
		for i, v := range values {
			if v.IsNull {
				return nil, errFreezePrecondition("PrimitiveArray does not support null values")
			}
			out[i] = int32(v.Int())
		}
		payload.Int32s = out
	case KindInt64:
		out := make([]int64, n)
		for i, v := range values {
			if v.IsNull {
				return nil, errFreezePrecondition("PrimitiveArray does not support null values")
			}
			out[i] = v.Int()
		}
		payload.Int64s = out
	case KindChar:
		out := make([]uint16, n)
		for i, v := range values {
			if v.IsNull {
				return nil, errFreezePrecondition("PrimitiveArray does not support null values")
			}
			out[i] = v.Char()
		}
		payload.Chars = out
	case KindFloat32:
		out := make([]float32, n)
		for i, v := range values {
			if v.IsNull {
				return nil, errFreezePrecondition("PrimitiveArray does not support null values")
			}
			out[i] = v.Float32()
		}
		payload.Float32s = out
	case KindFloat64:
		out := make([]float64, n)
		for i, v := range values {
			if v.IsNull {
				return nil, errFreezePrecondition("PrimitiveArray does not support null values")
			}
			out[i] = v.Float64()
		}
		payload.Float64s = out
	default:
		return nil, errUnsupportedPrimitive(c.Kind)
	}
	return payload, nil
}

func (PrimitiveArrayCodec) Get(payload any, ordinal int) Value {
	p := payload.(*PrimitiveArrayPayload)
	n := p.Len()
	if ordinal < 0 || ordinal >= n {
		panic(errOrdinalOutOfRange(ordinal, n))
	}
	switch p.Kind {
	case KindBool:
		return BoolValue(p.Bools[ordinal])
	case KindInt8:
		return IntValue(int64(p.Int8s[ordinal]))
	case KindInt16:
		return IntValue(int64(p.Int16s[ordinal]))
	case KindInt32:
		return IntValue(int64(p.Int32s[ordinal]))
	case KindInt64:
		return IntValue(p.Int64s[ordinal])
	case KindChar:
		return CharValue(p.Chars[ordinal])
	case KindFloat32:
		return Float32Value(p.Float32s[ordinal])
	case KindFloat64:
		return Float64Value(p.Float64s[ordinal])
	default:
		panic(errUnsupportedPrimitive(p.Kind))
	}
}
