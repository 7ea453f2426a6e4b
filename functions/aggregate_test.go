package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	for _, typ := range []AggregateType{Sum, Count, Avg, Min, Max} {
		agg, err := Create(typ)
		require.NoError(t, err, "type %s", typ)
		require.NotNil(t, agg)
	}
	_, err := Create("median")
	assert.Error(t, err)
}

func TestAggregators(t *testing.T) {
	tests := []struct {
		name     string
		typ      AggregateType
		values   []interface{}
		expected interface{}
	}{
		{"sum", Sum, []interface{}{1.0, 2.5, 3.5}, 7.0},
		{"sum ignores nulls", Sum, []interface{}{1.0, nil, 2.0}, 3.0},
		{"sum empty is null", Sum, nil, nil},
		{"count non-null", Count, []interface{}{1.0, nil, "x"}, int64(2)},
		{"count empty is zero", Count, nil, int64(0)},
		{"avg", Avg, []interface{}{20.0, 40.0}, 30.0},
		{"avg single value", Avg, []interface{}{25.0}, 25.0},
		{"avg empty is null", Avg, nil, nil},
		{"min", Min, []interface{}{3.0, 1.0, 2.0}, 1.0},
		{"max", Max, []interface{}{3.0, 1.0, 2.0}, 3.0},
		{"max ints", Max, []interface{}{int64(5), int64(9)}, 9.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := Create(tt.typ)
			require.NoError(t, err)
			for _, v := range tt.values {
				agg.Add(v)
			}
			assert.Equal(t, tt.expected, agg.Result())
		})
	}
}

// Merging partial states must give the same result as a single pass over
// all values, whatever the split.
func TestMerge_EqualsSinglePass(t *testing.T) {
	values := []interface{}{20.0, 40.0, nil, 25.0, 10.0, nil, 35.0}

	for _, typ := range []AggregateType{Sum, Count, Avg, Min, Max} {
		for split := 0; split <= len(values); split++ {
			single, err := Create(typ)
			require.NoError(t, err)
			left, _ := Create(typ)
			right, _ := Create(typ)

			for i, v := range values {
				single.Add(v)
				if i < split {
					left.Add(v)
				} else {
					right.Add(v)
				}
			}
			left.Merge(right)
			assert.Equal(t, single.Result(), left.Result(), "%s split at %d", typ, split)
		}
	}
}

func TestMerge_Commutative(t *testing.T) {
	for _, typ := range []AggregateType{Sum, Count, Avg, Min, Max} {
		a1, _ := Create(typ)
		a2, _ := Create(typ)
		b1, _ := Create(typ)
		b2, _ := Create(typ)

		for _, v := range []interface{}{1.0, 2.0} {
			a1.Add(v)
			b2.Add(v)
		}
		for _, v := range []interface{}{10.0, 20.0, 30.0} {
			a2.Add(v)
			b1.Add(v)
		}
		a1.Merge(a2)
		b1.Merge(b2)
		assert.Equal(t, a1.Result(), b1.Result(), "type %s", typ)
	}
}

// Avg must merge (sum, count) pairs, not partial averages: the buckets here
// have different sizes, so merging averages would give the wrong answer.
func TestAvgMerge_UnevenBuckets(t *testing.T) {
	left, _ := Create(Avg)
	right, _ := Create(Avg)

	left.Add(10.0)
	right.Add(40.0)
	right.Add(40.0)
	right.Add(40.0)

	left.Merge(right)
	assert.Equal(t, 32.5, left.Result())
}

func TestNew_StartsFresh(t *testing.T) {
	agg, _ := Create(Sum)
	agg.Add(5.0)
	fresh := agg.New()
	assert.Nil(t, fresh.Result())
}
