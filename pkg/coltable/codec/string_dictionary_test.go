package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringDictionary_RoundTrip(t *testing.T) {
	values := []Value{
		StringValue("apple"), StringValue("banana"), StringValue("apple"),
		NullValue(), StringValue("cherry"),
	}
	codec := StringDictionaryCodec{Nullable: true, MaxInlineLength: 65535, EagerExceptionFrequency: 1.0}
	payloadAny, err := codec.Freeze(values)
	require.NoError(t, err)

	for i, v := range values {
		got := codec.Get(payloadAny, i)
		assert.Equal(t, v.IsNull, got.IsNull, "ordinal %d", i)
		if !v.IsNull {
			assert.Equal(t, v.String(), got.String(), "ordinal %d", i)
		}
	}
}

func TestStringDictionary_OverlongEntryBecomesException(t *testing.T) {
	overlong := strings.Repeat("x", 70000)
	values := []Value{StringValue("short"), StringValue(overlong), StringValue("short")}
	codec := StringDictionaryCodec{MaxInlineLength: 65535, EagerExceptionFrequency: 1.0}
	payloadAny, err := codec.Freeze(values)
	require.NoError(t, err)
	payload := payloadAny.(*ByteDictionaryPayload)

	require.Len(t, payload.Exceptions, 1)
	assert.Equal(t, overlong, payload.Exceptions[0].String())

	got := codec.Get(payloadAny, 1)
	assert.Equal(t, overlong, got.String())
}

func TestStringDictionary_HighFrequencyEntryBecomesException(t *testing.T) {
	values := make([]Value, 10)
	for i := range values {
		values[i] = StringValue("common")
	}
	values[9] = StringValue("rare")

	codec := StringDictionaryCodec{MaxInlineLength: 65535, EagerExceptionFrequency: 0.5}
	payloadAny, err := codec.Freeze(values)
	require.NoError(t, err)
	payload := payloadAny.(*ByteDictionaryPayload)

	require.Len(t, payload.Exceptions, 1)
	assert.Equal(t, "common", payload.Exceptions[0].String())

	for i, v := range values {
		got := codec.Get(payloadAny, i)
		assert.Equal(t, v.String(), got.String(), "ordinal %d", i)
	}
}

func TestByteStringDictionary_RoundTrip(t *testing.T) {
	values := []Value{BytesValue([]byte{1, 2, 3}), BytesValue([]byte{4, 5}), BytesValue([]byte{1, 2, 3})}
	codec := ByteStringDictionaryCodec{MaxInlineLength: 65535, EagerExceptionFrequency: 1.0}
	payloadAny, err := codec.Freeze(values)
	require.NoError(t, err)

	for i, v := range values {
		got := codec.Get(payloadAny, i)
		assert.Equal(t, v.Bytes(), got.Bytes(), "ordinal %d", i)
	}
}

func TestStringDictionary_RejectsWrongKind(t *testing.T) {
	codec := StringDictionaryCodec{}
	_, err := codec.Freeze([]Value{IntValue(1)})
	assert.Error(t, err)
}
