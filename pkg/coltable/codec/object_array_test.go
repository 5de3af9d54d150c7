package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectArray_RoundTrip(t *testing.T) {
	values := []Value{ObjectValue("a"), NullValue(), ObjectValue(42), ObjectValue([]int{1, 2})}
	codec := ObjectArrayCodec{}
	payload, err := codec.Freeze(values)
	require.NoError(t, err)

	for i, v := range values {
		got := codec.Get(payload, i)
		assert.Equal(t, v.IsNull, got.IsNull, "ordinal %d", i)
		if !v.IsNull {
			assert.Equal(t, v.Object(), got.Object(), "ordinal %d", i)
		}
	}
}

func TestObjectArray_AliasesInput(t *testing.T) {
	values := []Value{ObjectValue("x")}
	codec := ObjectArrayCodec{}
	payload, err := codec.Freeze(values)
	require.NoError(t, err)
	got := payload.([]Value)
	assert.Same(t, &values[0], &got[0])
}

func TestObjectArray_OrdinalOutOfRange(t *testing.T) {
	codec := ObjectArrayCodec{}
	payload, err := codec.Freeze([]Value{ObjectValue(1)})
	require.NoError(t, err)
	assert.Panics(t, func() { codec.Get(payload, 3) })
}
