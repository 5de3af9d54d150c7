package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Equal(t *testing.T) {
	assert.True(t, NullValue().Equal(NullValue()))
	assert.False(t, NullValue().Equal(IntValue(0)))
	assert.False(t, IntValue(0).Equal(NullValue()))

	assert.True(t, IntValue(5).Equal(IntValue(5)))
	assert.False(t, IntValue(5).Equal(IntValue(6)))

	assert.True(t, StringValue("a").Equal(StringValue("a")))
	assert.True(t, BytesValue([]byte("a")).Equal(BytesValue([]byte("a"))))
	assert.True(t, BoolValue(true).Equal(BoolValue(true)))
	assert.True(t, CharValue('z').Equal(CharValue('z')))
	assert.True(t, Float32Value(1.5).Equal(Float32Value(1.5)))
	assert.True(t, Float64Value(1.5).Equal(Float64Value(1.5)))
}

func TestObjectValue_NilIsNull(t *testing.T) {
	v := ObjectValue(nil)
	assert.True(t, v.IsNull)
}
