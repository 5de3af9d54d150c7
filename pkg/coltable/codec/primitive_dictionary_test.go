package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveDictionary_RoundTrip(t *testing.T) {
	values := []Value{IntValue(30), IntValue(10), IntValue(20), IntValue(10), IntValue(30)}
	codec := PrimitiveDictionaryCodec{Kind: KindInt32, Nullable: false}
	payloadAny, err := codec.Freeze(values)
	require.NoError(t, err)
	payload := payloadAny.(*PrimitiveDictionaryPayload)

	assert.False(t, payload.HasNull)
	assert.Equal(t, 3, payload.Dict.Len())

	for i, v := range values {
		got := codec.Get(payload, i)
		assert.Equal(t, v.Int(), got.Int(), "ordinal %d", i)
	}
}

// TestPrimitiveDictionary_SortedOrder pins the ordering invariant: code(v1)
// < code(v2) iff v1 < v2 under the primitive's natural order.
func TestPrimitiveDictionary_SortedOrder(t *testing.T) {
	values := []Value{IntValue(9), IntValue(1), IntValue(5)}
	codec := PrimitiveDictionaryCodec{Kind: KindInt32}
	payloadAny, err := codec.Freeze(values)
	require.NoError(t, err)
	payload := payloadAny.(*PrimitiveDictionaryPayload)

	require.Equal(t, 3, payload.Dict.Len())
	assert.Equal(t, int64(1), int64(payload.Dict.Int32s[0]))
	assert.Equal(t, int64(5), int64(payload.Dict.Int32s[1]))
	assert.Equal(t, int64(9), int64(payload.Dict.Int32s[2]))
}

func TestPrimitiveDictionary_NullReservesCodeZero(t *testing.T) {
	values := []Value{IntValue(7), NullValue(), IntValue(3), NullValue()}
	codec := PrimitiveDictionaryCodec{Kind: KindInt32, Nullable: true}
	payloadAny, err := codec.Freeze(values)
	require.NoError(t, err)
	payload := payloadAny.(*PrimitiveDictionaryPayload)

	require.True(t, payload.HasNull)
	for i, v := range values {
		got := codec.Get(payload, i)
		if v.IsNull {
			assert.True(t, got.IsNull, "ordinal %d", i)
		} else {
			assert.Equal(t, v.Int(), got.Int(), "ordinal %d", i)
		}
	}

	// null always decodes from code 0 regardless of row position.
	assert.Equal(t, uint64(0), getLong(payload.Codes.BitCount, payload.Codes.Words, 1))
}

func TestPrimitiveDictionary_OrdinalOutOfRange(t *testing.T) {
	codec := PrimitiveDictionaryCodec{Kind: KindInt32}
	payloadAny, err := codec.Freeze([]Value{IntValue(1)})
	require.NoError(t, err)
	assert.Panics(t, func() { codec.Get(payloadAny, 5) })
}
