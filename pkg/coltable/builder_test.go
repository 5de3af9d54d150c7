package coltable

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colstorehq/coltable/pkg/coltable/codec"
	"github.com/colstorehq/coltable/pkg/config"
)

func TestBuilder_AppendRowAndFreeze(t *testing.T) {
	b := NewBuilder(testSchema(), config.DefaultSelectorConfig(), nil)
	require.NoError(t, b.AppendRow([]codec.Value{codec.IntValue(1), codec.StringValue("x"), codec.BoolValue(true)}))
	require.NoError(t, b.AppendRow([]codec.Value{codec.IntValue(2), codec.NullValue(), codec.BoolValue(false)}))

	table, err := b.Freeze()
	require.NoError(t, err)
	assert.Equal(t, 2, table.RowCount())
}

func TestBuilder_AppendRowArityMismatch(t *testing.T) {
	b := NewBuilder(testSchema(), config.DefaultSelectorConfig(), nil)
	err := b.AppendRow([]codec.Value{codec.IntValue(1)})
	assert.Error(t, err)
}

func TestBuilder_AppendCSV(t *testing.T) {
	schema := []ColumnSpec{
		{Name: "id", Type: TypeLong},
		{Name: "name", Type: TypeString, Nullable: true},
		{Name: "active", Type: TypeBoolean},
	}
	b := NewBuilder(schema, config.DefaultSelectorConfig(), nil)
	r := csv.NewReader(strings.NewReader("1,alice,true\n2,,false\n3,carol,true\n"))
	require.NoError(t, b.AppendCSV(r))

	table, err := b.Freeze()
	require.NoError(t, err)
	assert.Equal(t, 3, table.RowCount())
	assert.True(t, table.Column(1).Get(1).IsNull)
	assert.Equal(t, "carol", table.Column(1).Get(2).String())
}

func TestBuilder_AppendJSONRows(t *testing.T) {
	schema := []ColumnSpec{
		{Name: "id", Type: TypeLong},
		{Name: "name", Type: TypeString, Nullable: true},
	}
	b := NewBuilder(schema, config.DefaultSelectorConfig(), nil)
	data := []byte(`[{"id": 1, "name": "alice"}, {"id": 2, "name": null}]`)
	require.NoError(t, b.AppendJSONRows(data))

	table, err := b.Freeze()
	require.NoError(t, err)
	assert.Equal(t, 2, table.RowCount())
	assert.True(t, table.Column(1).Get(1).IsNull)
}
