package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveArray_RoundTrip(t *testing.T) {
	cases := []struct {
		kind   PrimitiveKind
		values []Value
	}{
		{KindBool, []Value{BoolValue(true), BoolValue(false), BoolValue(true)}},
		{KindInt8, []Value{IntValue(-128), IntValue(0), IntValue(127)}},
		{KindInt16, []Value{IntValue(-32768), IntValue(32767)}},
		{KindInt32, []Value{IntValue(-2147483648), IntValue(2147483647)}},
		{KindInt64, []Value{IntValue(-9223372036854775808), IntValue(9223372036854775807)}},
		{KindChar, []Value{CharValue('a'), CharValue('Z'), CharValue(0)}},
		{KindFloat32, []Value{Float32Value(3.5), Float32Value(-1.25)}},
		{KindFloat64, []Value{Float64Value(2.71828), Float64Value(-0.5)}},
	}

	for _, c := range cases {
		codec := PrimitiveArrayCodec{Kind: c.kind}
		payload, err := codec.Freeze(c.values)
		require.NoError(t, err, c.kind)
		for i, v := range c.values {
			got := codec.Get(payload, i)
			assert.True(t, v.Equal(got), "%s ordinal %d: want %+v got %+v", c.kind, i, v, got)
		}
	}
}

func TestPrimitiveArray_RejectsNull(t *testing.T) {
	_, err := PrimitiveArrayCodec{Kind: KindInt32}.Freeze([]Value{IntValue(1), NullValue()})
	assert.Error(t, err)
}

func TestPrimitiveArray_OrdinalOutOfRange(t *testing.T) {
	codec := PrimitiveArrayCodec{Kind: KindInt32}
	payload, err := codec.Freeze([]Value{IntValue(1)})
	require.NoError(t, err)
	assert.Panics(t, func() { codec.Get(payload, -1) })
	assert.Panics(t, func() { codec.Get(payload, 1) })
}

func TestPrimitiveArray_Empty(t *testing.T) {
	codec := PrimitiveArrayCodec{Kind: KindFloat64}
	payload, err := codec.Freeze(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, payload.(*PrimitiveArrayPayload).Len())
}
