package coltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colstorehq/coltable/pkg/coltable/codec"
	"github.com/colstorehq/coltable/pkg/config"
)

func TestSelectCodec_StringAlwaysDictionary(t *testing.T) {
	spec := ColumnSpec{Name: "s", Type: TypeString}
	c, err := SelectCodec(spec, []codec.Value{codec.StringValue("a")}, config.DefaultSelectorConfig())
	require.NoError(t, err)
	assert.Equal(t, codec.StringDictionary, c.Type())
}

func TestSelectCodec_NullablePrimitiveAlwaysDictionary(t *testing.T) {
	spec := ColumnSpec{Name: "n", Type: TypeInt, Nullable: true}
	c, err := SelectCodec(spec, []codec.Value{codec.IntValue(1), codec.NullValue()}, config.DefaultSelectorConfig())
	require.NoError(t, err)
	assert.Equal(t, codec.PrimitiveDictionary, c.Type())
}

func TestSelectCodec_LowCardinalityPrefersDictionary(t *testing.T) {
	values := make([]codec.Value, 100)
	for i := range values {
		values[i] = codec.IntValue(int64(i % 3))
	}
	spec := ColumnSpec{Name: "cat", Type: TypeInt}
	c, err := SelectCodec(spec, values, config.DefaultSelectorConfig())
	require.NoError(t, err)
	assert.Equal(t, codec.PrimitiveDictionary, c.Type())
}

func TestSelectCodec_SmallNonNegativeRangePrefersBitSliced(t *testing.T) {
	values := make([]codec.Value, 200)
	for i := range values {
		values[i] = codec.IntValue(int64(i % 200))
	}
	spec := ColumnSpec{Name: "wide", Type: TypeInt}
	cfg := config.DefaultSelectorConfig()
	cfg.DictionaryCardinalityRatio = 0.1
	c, err := SelectCodec(spec, values, cfg)
	require.NoError(t, err)
	assert.Equal(t, codec.BitSlicedPrimitiveArray, c.Type())
}

func TestSelectCodec_NegativeValuesFallBackToPrimitiveArray(t *testing.T) {
	values := make([]codec.Value, 200)
	for i := range values {
		values[i] = codec.IntValue(int64(i) - 100)
	}
	spec := ColumnSpec{Name: "signed", Type: TypeInt}
	cfg := config.DefaultSelectorConfig()
	cfg.DictionaryCardinalityRatio = 0.1
	c, err := SelectCodec(spec, values, cfg)
	require.NoError(t, err)
	assert.Equal(t, codec.PrimitiveArray, c.Type())
}

func TestSelectCodec_BooleanAlwaysBitSliced(t *testing.T) {
	values := []codec.Value{codec.BoolValue(true), codec.BoolValue(false), codec.BoolValue(true), codec.BoolValue(true)}
	spec := ColumnSpec{Name: "active", Type: TypeBoolean}
	c, err := SelectCodec(spec, values, config.DefaultSelectorConfig())
	require.NoError(t, err)
	require.Equal(t, codec.BitSlicedPrimitiveArray, c.Type())
	bc, ok := c.(codec.BitSlicedPrimitiveArrayCodec)
	require.True(t, ok)
	assert.Equal(t, 1, bc.BitCount)
}

func TestSelectCodec_ObjectSavingsThreshold(t *testing.T) {
	values := make([]codec.Value, 10)
	for i := range values {
		values[i] = codec.ObjectValue("repeated")
	}
	spec := ColumnSpec{Name: "o", Type: TypeObject}
	c, err := SelectCodec(spec, values, config.DefaultSelectorConfig())
	require.NoError(t, err)
	assert.Equal(t, codec.ObjectDictionary, c.Type())

	distinctValues := make([]codec.Value, 10)
	for i := range distinctValues {
		distinctValues[i] = codec.ObjectValue(i)
	}
	c2, err := SelectCodec(spec, distinctValues, config.DefaultSelectorConfig())
	require.NoError(t, err)
	assert.Equal(t, codec.ObjectArray, c2.Type())
}
