package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfer_NarrowestType(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Type
	}{
		{"all ints", []string{"1", "42", "-7"}, TypeInt},
		{"ints widen to float", []string{"1", "2.5"}, TypeFloat},
		{"text forces string", []string{"1", "2.5", "n/a"}, TypeString},
		{"bools", []string{"true", "false"}, TypeBool},
		{"timestamps stay string", []string{"2024-01-01 05:00:00"}, TypeString},
		{"empty cells ignored", []string{"", "3", ""}, TypeInt},
		{"all empty is string", []string{"", ""}, TypeString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([][]string, len(tt.values))
			for i, v := range tt.values {
				records[i] = []string{v}
			}
			tbl, err := Infer([]string{"col"}, records)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tbl.Columns()[0].Type)
		})
	}
}

func TestInfer_TypedValues(t *testing.T) {
	tbl, err := Infer(
		[]string{"sensor_id", "temperature", "humidity"},
		[][]string{
			{"S1", "20.5", "60"},
			{"S2", "", "55"},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "S1", tbl.Value(0, 0))
	assert.Equal(t, 20.5, tbl.Value(0, 1))
	assert.Equal(t, int64(60), tbl.Value(0, 2))
	assert.Nil(t, tbl.Value(1, 1))
}

// ParseFloat accepts NaN and Inf spellings, but neither has a usable
// ordering or aggregate value: they load as null.
func TestInfer_NaNAndInfBecomeNull(t *testing.T) {
	tbl, err := Infer(
		[]string{"temperature"},
		[][]string{{"20.5"}, {"NaN"}, {"+Inf"}, {"-Inf"}},
	)
	require.NoError(t, err)

	assert.Equal(t, TypeFloat, tbl.Columns()[0].Type)
	assert.Equal(t, 20.5, tbl.Value(0, 0))
	assert.Nil(t, tbl.Value(1, 0))
	assert.Nil(t, tbl.Value(2, 0))
	assert.Nil(t, tbl.Value(3, 0))
}

func TestInfer_NoRows(t *testing.T) {
	_, err := Infer([]string{"a"}, nil)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
}

func TestInfer_NoColumns(t *testing.T) {
	_, err := Infer(nil, [][]string{{"1"}})
	var se *SchemaError
	require.ErrorAs(t, err, &se)
}

func TestInfer_ArityMismatch(t *testing.T) {
	_, err := Infer([]string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Row)
}
