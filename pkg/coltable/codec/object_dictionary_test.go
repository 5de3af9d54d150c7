package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectDictionary_RoundTrip(t *testing.T) {
	values := []Value{ObjectValue("b"), ObjectValue("a"), ObjectValue("b"), ObjectValue("c")}
	codec := ObjectDictionaryCodec{Nullable: false}
	payloadAny, err := codec.Freeze(values)
	require.NoError(t, err)
	payload := payloadAny.(*ObjectDictionaryPayload)

	// first-seen order: "b" then "a" then "c".
	require.Equal(t, []any{"b", "a", "c"}, payload.Dict)

	for i, v := range values {
		got := codec.Get(payloadAny, i)
		assert.Equal(t, v.Object(), got.Object(), "ordinal %d", i)
	}
}

func TestObjectDictionary_Null(t *testing.T) {
	values := []Value{ObjectValue("x"), NullValue()}
	codec := ObjectDictionaryCodec{Nullable: true}
	payloadAny, err := codec.Freeze(values)
	require.NoError(t, err)
	payload := payloadAny.(*ObjectDictionaryPayload)
	require.True(t, payload.HasNull)

	assert.True(t, codec.Get(payloadAny, 1).IsNull)
	assert.Equal(t, "x", codec.Get(payloadAny, 0).Object())
}
