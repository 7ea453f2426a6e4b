package aggregator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rowforge/rowforge/functions"
	"github.com/rowforge/rowforge/table"
)

// AggregateSpec requests one aggregate output column: OutputName holds the
// result of applying Type to the non-null values of SourceColumn within
// each bucket.
type AggregateSpec struct {
	OutputName   string
	SourceColumn string
	Type         functions.AggregateType
}

// Option configures an aggregation.
type Option func(*options)

type options struct {
	sortColumn string
	sortDesc   bool
	sortSet    bool
	partitions int
}

// SortBy orders the output by one output column instead of the default
// ascending group-key order. Nulls sort last.
func SortBy(column string, desc bool) Option {
	return func(o *options) {
		o.sortColumn = column
		o.sortDesc = desc
		o.sortSet = true
	}
}

// Partitions splits the input into n partitions aggregated concurrently and
// merged by key. The merge is associative, so the result is identical to a
// single-pass aggregation.
func Partitions(n int) Option {
	return func(o *options) {
		o.partitions = n
	}
}

// group holds the per-bucket state: the key tuple and one aggregator
// instance per requested spec, in spec order.
type group struct {
	keyVals []interface{}
	aggs    []functions.AggregatorFunction
}

// Aggregate partitions rows by the tuple of groupColumns values and computes
// each spec over every bucket. Rows with a null key component form no
// bucket. Output columns are the group columns followed by the aggregate
// outputs; rows are ordered ascending by key tuple unless SortBy says
// otherwise, so equal inputs yield identical output whatever the row
// arrival order.
func Aggregate(t *table.Table, groupColumns []string, specs []AggregateSpec, opts ...Option) (*table.Table, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	keyIdx, srcIdx, err := validate(t, groupColumns, specs)
	if err != nil {
		return nil, err
	}

	var groups map[string]*group
	if o.partitions > 1 {
		groups = aggregateParallel(t, keyIdx, srcIdx, specs, o.partitions)
	} else {
		groups = aggregateRows(t, keyIdx, srcIdx, specs, 0, t.NumRows())
	}

	states := make([]*group, 0, len(groups))
	for _, g := range groups {
		states = append(states, g)
	}
	sort.SliceStable(states, func(i, j int) bool {
		return compareKeys(states[i].keyVals, states[j].keyVals) < 0
	})

	cols := make([]table.Column, 0, len(groupColumns)+len(specs))
	for _, idx := range keyIdx {
		cols = append(cols, t.Columns()[idx])
	}
	for _, spec := range specs {
		typ := table.TypeFloat
		if spec.Type == functions.Count {
			typ = table.TypeInt
		}
		cols = append(cols, table.Column{Name: spec.OutputName, Type: typ})
	}

	rows := make([][]interface{}, len(states))
	for i, g := range states {
		row := make([]interface{}, 0, len(cols))
		row = append(row, g.keyVals...)
		for _, agg := range g.aggs {
			row = append(row, agg.Result())
		}
		rows[i] = row
	}

	out, err := table.New(cols, rows)
	if err != nil {
		return nil, err
	}
	if o.sortSet {
		return out.SortBy(o.sortColumn, o.sortDesc)
	}
	return out, nil
}

// validate resolves all referenced columns up front so a bad request fails
// before any row is touched.
func validate(t *table.Table, groupColumns []string, specs []AggregateSpec) (keyIdx, srcIdx []int, err error) {
	if len(specs) == 0 {
		return nil, nil, &table.ConfigurationError{Op: "aggregate", Reason: "no aggregate specs"}
	}
	taken := make(map[string]bool)
	for _, name := range groupColumns {
		idx, ok := t.ColumnIndex(name)
		if !ok {
			return nil, nil, &table.ConfigurationError{Op: "aggregate", Column: name, Reason: "group column not found"}
		}
		keyIdx = append(keyIdx, idx)
		taken[name] = true
	}
	for _, spec := range specs {
		col, ok := t.Column(spec.SourceColumn)
		if !ok {
			return nil, nil, &table.ConfigurationError{Op: "aggregate", Column: spec.SourceColumn, Reason: "source column not found"}
		}
		if spec.Type.IsNumeric() && !col.Type.IsNumeric() {
			return nil, nil, &table.ConfigurationError{
				Op:     "aggregate",
				Column: spec.SourceColumn,
				Reason: fmt.Sprintf("%s requires a numeric column, got %s", spec.Type, col.Type),
			}
		}
		if taken[spec.OutputName] {
			return nil, nil, &table.ConfigurationError{Op: "aggregate", Column: spec.OutputName, Reason: "duplicate output column"}
		}
		taken[spec.OutputName] = true
		idx, _ := t.ColumnIndex(spec.SourceColumn)
		srcIdx = append(srcIdx, idx)
	}
	return keyIdx, srcIdx, nil
}

// aggregateRows folds rows [from, to) into per-bucket aggregator states.
func aggregateRows(t *table.Table, keyIdx, srcIdx []int, specs []AggregateSpec, from, to int) map[string]*group {
	groups := make(map[string]*group)
	for i := from; i < to; i++ {
		keyVals := make([]interface{}, len(keyIdx))
		null := false
		for k, idx := range keyIdx {
			v := t.Value(i, idx)
			if v == nil {
				null = true
				break
			}
			keyVals[k] = v
		}
		if null {
			continue
		}
		key := buildKey(keyVals)
		g, ok := groups[key]
		if !ok {
			g = &group{keyVals: keyVals, aggs: make([]functions.AggregatorFunction, len(specs))}
			for s, spec := range specs {
				agg, _ := functions.Create(spec.Type)
				g.aggs[s] = agg
			}
			groups[key] = g
		}
		for s := range specs {
			g.aggs[s].Add(t.Value(i, srcIdx[s]))
		}
	}
	return groups
}

// buildKey serializes a key tuple so structurally distinct tuples never
// share a map key. String components are quoted; a cell value containing
// the separator cannot collide with a component boundary.
func buildKey(keyVals []interface{}) string {
	var b strings.Builder
	for _, v := range keyVals {
		if s, ok := v.(string); ok {
			fmt.Fprintf(&b, "%q|", s)
		} else {
			fmt.Fprintf(&b, "%v|", v)
		}
	}
	return b.String()
}

func compareKeys(a, b []interface{}) int {
	for i := range a {
		if c := table.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
