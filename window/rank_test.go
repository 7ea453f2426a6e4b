package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowforge/rowforge/table"
)

func avgTable(t *testing.T, rows [][]interface{}) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]table.Column{
			{Name: "sensor_id", Type: table.TypeString},
			{Name: "avg_temp", Type: table.TypeFloat},
		},
		rows,
	)
	require.NoError(t, err)
	return tbl
}

func TestRank_Descending(t *testing.T) {
	tbl := avgTable(t, [][]interface{}{
		{"S2", 25.0},
		{"S1", 30.0},
		{"S3", 20.0},
	})

	out, err := Rank(tbl, OrderSpec{Column: "avg_temp", Desc: true}, "rank_temp")
	require.NoError(t, err)

	require.Equal(t, 3, out.NumRows())
	assert.Equal(t, "S1", out.Value(0, 0))
	assert.Equal(t, int64(1), out.Value(0, 2))
	assert.Equal(t, "S2", out.Value(1, 0))
	assert.Equal(t, int64(2), out.Value(1, 2))
	assert.Equal(t, "S3", out.Value(2, 0))
	assert.Equal(t, int64(3), out.Value(2, 2))
}

// Competition ranking: ties share a rank and the next distinct value skips
// ahead by the tie-group size.
func TestRank_TiesSkip(t *testing.T) {
	tbl := avgTable(t, [][]interface{}{
		{"S1", 25.0},
		{"S2", 25.0},
		{"S3", 20.0},
	})

	out, err := Rank(tbl, OrderSpec{Column: "avg_temp", Desc: true}, "rank_temp")
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Value(0, 2))
	assert.Equal(t, int64(1), out.Value(1, 2))
	assert.Equal(t, int64(3), out.Value(2, 2))
}

func TestRank_NullsLast(t *testing.T) {
	tbl := avgTable(t, [][]interface{}{
		{"S1", nil},
		{"S2", 25.0},
	})

	out, err := Rank(tbl, OrderSpec{Column: "avg_temp", Desc: true}, "rank_temp")
	require.NoError(t, err)

	assert.Equal(t, "S2", out.Value(0, 0))
	assert.Equal(t, int64(1), out.Value(0, 2))
	assert.Equal(t, "S1", out.Value(1, 0))
	assert.Equal(t, int64(2), out.Value(1, 2))
}

func TestRank_UnknownColumn(t *testing.T) {
	tbl := avgTable(t, nil)
	_, err := Rank(tbl, OrderSpec{Column: "missing"}, "rank")
	var ce *table.ConfigurationError
	require.ErrorAs(t, err, &ce)
}

func TestTop(t *testing.T) {
	tbl := avgTable(t, [][]interface{}{
		{"S1", 30.0},
		{"S2", 25.0},
		{"S3", 20.0},
	})
	assert.Equal(t, 2, Top(tbl, 2).NumRows())
	assert.Equal(t, 3, Top(tbl, 5).NumRows())
}
