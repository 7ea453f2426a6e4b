package table

import (
	"time"

	"github.com/rowforge/rowforge/timex"
)

// ParseTimestamp returns a new Table in which the named string column is
// re-typed as timestamp, parsed against a yyyy-MM-dd HH:mm:ss style
// pattern. Cells that fail the pattern become null; a bad row never aborts
// the run.
func (t *Table) ParseTimestamp(column, pattern string) (*Table, error) {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return nil, &ConfigurationError{Op: "parse_timestamp", Column: column, Reason: "column not found"}
	}
	switch t.cols[idx].Type {
	case TypeString:
	case TypeTimestamp:
		return t, nil
	default:
		return nil, &ConfigurationError{Op: "parse_timestamp", Column: column, Reason: "column is not a string column"}
	}

	layout := timex.ToGoLayout(pattern)
	cols := t.Columns()
	cols[idx].Type = TypeTimestamp
	rows := make([][]interface{}, len(t.rows))
	for i, r := range t.rows {
		row := make([]interface{}, len(r))
		copy(row, r)
		if raw, ok := r[idx].(string); ok {
			if ts, err := time.Parse(layout, raw); err == nil {
				row[idx] = ts
			} else {
				row[idx] = nil
			}
		} else {
			row[idx] = nil
		}
		rows[i] = row
	}
	return &Table{cols: cols, rows: rows}, nil
}

// ExtractHour appends an integer column holding the hour of day (0-23) of
// a timestamp column. Null timestamps yield null hours.
func (t *Table) ExtractHour(tsColumn, outColumn string) (*Table, error) {
	idx, ok := t.ColumnIndex(tsColumn)
	if !ok {
		return nil, &ConfigurationError{Op: "extract_hour", Column: tsColumn, Reason: "column not found"}
	}
	if t.cols[idx].Type != TypeTimestamp {
		return nil, &ConfigurationError{Op: "extract_hour", Column: tsColumn, Reason: "column is not a timestamp column"}
	}
	vals := make([]interface{}, len(t.rows))
	for i, r := range t.rows {
		if ts, ok := r[idx].(time.Time); ok {
			vals[i] = int64(ts.Hour())
		}
	}
	return t.AppendColumn(Column{Name: outColumn, Type: TypeInt}, vals)
}
