package functions

import (
	"fmt"

	"github.com/spf13/cast"
)

// AggregateType names a built-in aggregate function.
type AggregateType string

const (
	Sum   AggregateType = "sum"
	Count AggregateType = "count"
	Avg   AggregateType = "avg"
	Min   AggregateType = "min"
	Max   AggregateType = "max"
)

// AggregatorFunction supports incremental computation of one aggregate over
// one bucket. Add ignores null values; Result returns nil when no non-null
// value was seen (count returns 0 instead). Merge folds another instance of
// the same function into the receiver; it is associative and commutative,
// so partitioned aggregation gives the same result as a single pass. Avg
// merges its (sum, count) pair, never partial averages.
type AggregatorFunction interface {
	New() AggregatorFunction
	Add(value interface{})
	Merge(other AggregatorFunction)
	Result() interface{}
}

// Create returns a fresh aggregator instance for the given type.
func Create(t AggregateType) (AggregatorFunction, error) {
	switch t {
	case Sum:
		return &SumAggregator{}, nil
	case Count:
		return &CountAggregator{}, nil
	case Avg:
		return &AvgAggregator{}, nil
	case Min:
		return &MinAggregator{}, nil
	case Max:
		return &MaxAggregator{}, nil
	default:
		return nil, fmt.Errorf("aggregator function %s not found", t)
	}
}

// IsNumeric reports whether the aggregate requires a numeric source column.
func (t AggregateType) IsNumeric() bool {
	return t != Count
}

// SumAggregator sums numeric values, null when no value was seen.
type SumAggregator struct {
	value     float64
	hasValues bool
}

func (s *SumAggregator) New() AggregatorFunction { return &SumAggregator{} }

func (s *SumAggregator) Add(v interface{}) {
	if v == nil {
		return
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		s.value += f
		s.hasValues = true
	}
}

func (s *SumAggregator) Merge(other AggregatorFunction) {
	o := other.(*SumAggregator)
	s.value += o.value
	s.hasValues = s.hasValues || o.hasValues
}

func (s *SumAggregator) Result() interface{} {
	if !s.hasValues {
		return nil
	}
	return s.value
}

// CountAggregator counts non-null values.
type CountAggregator struct {
	count int64
}

func (c *CountAggregator) New() AggregatorFunction { return &CountAggregator{} }

func (c *CountAggregator) Add(v interface{}) {
	if v == nil {
		return
	}
	c.count++
}

func (c *CountAggregator) Merge(other AggregatorFunction) {
	c.count += other.(*CountAggregator).count
}

func (c *CountAggregator) Result() interface{} {
	return c.count
}

// AvgAggregator keeps a (sum, count) pair so partial states merge without
// precision loss.
type AvgAggregator struct {
	sum   float64
	count int64
}

func (a *AvgAggregator) New() AggregatorFunction { return &AvgAggregator{} }

func (a *AvgAggregator) Add(v interface{}) {
	if v == nil {
		return
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		a.sum += f
		a.count++
	}
}

func (a *AvgAggregator) Merge(other AggregatorFunction) {
	o := other.(*AvgAggregator)
	a.sum += o.sum
	a.count += o.count
}

func (a *AvgAggregator) Result() interface{} {
	if a.count == 0 {
		return nil
	}
	return a.sum / float64(a.count)
}

// MinAggregator tracks the smallest numeric value seen.
type MinAggregator struct {
	value     float64
	hasValues bool
}

func (m *MinAggregator) New() AggregatorFunction { return &MinAggregator{} }

func (m *MinAggregator) Add(v interface{}) {
	if v == nil {
		return
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return
	}
	if !m.hasValues || f < m.value {
		m.value = f
	}
	m.hasValues = true
}

func (m *MinAggregator) Merge(other AggregatorFunction) {
	o := other.(*MinAggregator)
	if o.hasValues {
		m.Add(o.value)
	}
}

func (m *MinAggregator) Result() interface{} {
	if !m.hasValues {
		return nil
	}
	return m.value
}

// MaxAggregator tracks the largest numeric value seen.
type MaxAggregator struct {
	value     float64
	hasValues bool
}

func (m *MaxAggregator) New() AggregatorFunction { return &MaxAggregator{} }

func (m *MaxAggregator) Add(v interface{}) {
	if v == nil {
		return
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return
	}
	if !m.hasValues || f > m.value {
		m.value = f
	}
	m.hasValues = true
}

func (m *MaxAggregator) Merge(other AggregatorFunction) {
	o := other.(*MaxAggregator)
	if o.hasValues {
		m.Add(o.value)
	}
}

func (m *MaxAggregator) Result() interface{} {
	if !m.hasValues {
		return nil
	}
	return m.value
}
