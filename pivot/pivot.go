package pivot

import (
	"github.com/spf13/cast"

	"github.com/rowforge/rowforge/aggregator"
	"github.com/rowforge/rowforge/functions"
	"github.com/rowforge/rowforge/table"
)

// valueColumn names the aggregate output in the intermediate long-form
// table produced before reshaping.
const valueColumn = "pivot_value"

// Pivot reshapes an aggregation over (rowKey, colKey) into a wide table:
// one row per distinct rowKey (ascending), one column per value of
// colDomain, cells holding the aggregate of valueCol for that pair. The
// domain is caller-supplied and exhaustive, so columns with no backing data
// still appear, filled with nulls. Aggregation happens once, via the group
// aggregator; the reshape is a pure lookup.
func Pivot(t *table.Table, rowKey, colKey, valueCol string, aggType functions.AggregateType, colDomain []interface{}) (*table.Table, error) {
	long, err := aggregator.Aggregate(t, []string{rowKey, colKey}, []aggregator.AggregateSpec{
		{OutputName: valueColumn, SourceColumn: valueCol, Type: aggType},
	})
	if err != nil {
		return nil, err
	}

	// Long form is ordered by (rowKey, colKey) ascending, so distinct row
	// keys come out already sorted.
	cells := make(map[interface{}]map[interface{}]interface{})
	var rowKeys []interface{}
	for i := 0; i < long.NumRows(); i++ {
		rk := long.Value(i, 0)
		ck := long.Value(i, 1)
		byCol, ok := cells[rk]
		if !ok {
			byCol = make(map[interface{}]interface{})
			cells[rk] = byCol
			rowKeys = append(rowKeys, rk)
		}
		byCol[ck] = long.Value(i, 2)
	}

	// Domain values arrive as whatever the caller wrote (often plain ints);
	// align them with the typed cells before lookup.
	colKeyCol, _ := t.Column(colKey)
	domain := make([]interface{}, len(colDomain))
	for i, v := range colDomain {
		domain[i] = normalizeKey(v, colKeyCol.Type)
	}

	rowKeyCol, _ := t.Column(rowKey)
	cellType := table.TypeFloat
	if aggType == functions.Count {
		cellType = table.TypeInt
	}
	cols := make([]table.Column, 0, len(colDomain)+1)
	cols = append(cols, rowKeyCol)
	for _, v := range domain {
		cols = append(cols, table.Column{Name: cast.ToString(v), Type: cellType})
	}

	rows := make([][]interface{}, len(rowKeys))
	for i, rk := range rowKeys {
		row := make([]interface{}, len(cols))
		row[0] = rk
		for j, ck := range domain {
			row[j+1] = cells[rk][ck]
		}
		rows[i] = row
	}
	return table.New(cols, rows)
}

func normalizeKey(v interface{}, typ table.Type) interface{} {
	switch typ {
	case table.TypeInt:
		return cast.ToInt64(v)
	case table.TypeFloat:
		return cast.ToFloat64(v)
	case table.TypeString:
		return cast.ToString(v)
	default:
		return v
	}
}

// MaxCell answers which (rowKey, colKey) pair has the highest aggregate of
// valueCol: the long-form grouping sorted descending, first row only. It is
// deliberately independent of Pivot and shares its aggregation path.
func MaxCell(t *table.Table, rowKey, colKey, valueCol string, aggType functions.AggregateType) (*table.Table, error) {
	long, err := aggregator.Aggregate(t, []string{rowKey, colKey}, []aggregator.AggregateSpec{
		{OutputName: valueColumn, SourceColumn: valueCol, Type: aggType},
	}, aggregator.SortBy(valueColumn, true))
	if err != nil {
		return nil, err
	}
	return long.Head(1), nil
}
