package table

import (
	"math"
	"sort"
	"time"
)

// Type identifies the declared type of a column.
type Type int

const (
	TypeInt Type = iota
	TypeFloat
	TypeString
	TypeTimestamp
	TypeBool
)

// String returns string representation of a column type
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeTimestamp:
		return "timestamp"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether values of this type can feed a numeric aggregate.
func (t Type) IsNumeric() bool {
	return t == TypeInt || t == TypeFloat
}

// Column describes one column of a Table: a name unique within the table
// and a declared type. Cell values are either nil (null) or the Go value
// matching the type: int64, float64, string, time.Time, bool.
type Column struct {
	Name string
	Type Type
}

// Table is an immutable, ordered collection of typed rows. Every
// transformation returns a new Table; the receiver is never modified.
type Table struct {
	cols []Column
	rows [][]interface{}
}

// New builds a Table from column definitions and row values.
// Every row must have exactly one value per column.
func New(cols []Column, rows [][]interface{}) (*Table, error) {
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c.Name] {
			return nil, &SchemaError{Column: c.Name, Reason: "duplicate column name"}
		}
		seen[c.Name] = true
	}
	for i, r := range rows {
		if len(r) != len(cols) {
			return nil, &SchemaError{Reason: "row arity mismatch", Row: i}
		}
	}
	return &Table{cols: cols, rows: rows}, nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumCols returns the column count.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// Columns returns a copy of the column definitions.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// ColumnIndex returns the position of a column by name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.cols {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Column returns the definition of a column by name.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.ColumnIndex(name)
	if !ok {
		return Column{}, false
	}
	return t.cols[i], true
}

// Value returns the cell at (row, column index). Nil means null.
func (t *Table) Value(row, col int) interface{} {
	return t.rows[row][col]
}

// Row returns a copy of one row.
func (t *Table) Row(i int) []interface{} {
	out := make([]interface{}, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

// Env returns one row as a name→value map, suitable as an expression
// evaluation environment.
func (t *Table) Env(row int) map[string]interface{} {
	env := make(map[string]interface{}, len(t.cols))
	for i, c := range t.cols {
		env[c.Name] = t.rows[row][i]
	}
	return env
}

// AppendColumn returns a new Table with one additional column whose values
// are taken from vals (len(vals) must equal NumRows).
func (t *Table) AppendColumn(col Column, vals []interface{}) (*Table, error) {
	if _, exists := t.ColumnIndex(col.Name); exists {
		return nil, &ConfigurationError{Op: "append", Column: col.Name, Reason: "column already exists"}
	}
	if len(vals) != len(t.rows) {
		return nil, &SchemaError{Column: col.Name, Reason: "value count does not match row count"}
	}
	cols := make([]Column, len(t.cols)+1)
	copy(cols, t.cols)
	cols[len(t.cols)] = col

	rows := make([][]interface{}, len(t.rows))
	for i, r := range t.rows {
		row := make([]interface{}, len(r)+1)
		copy(row, r)
		row[len(r)] = vals[i]
		rows[i] = row
	}
	return &Table{cols: cols, rows: rows}, nil
}

// Head returns a new Table holding the first n rows (all rows if n exceeds
// the row count).
func (t *Table) Head(n int) *Table {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	if n < 0 {
		n = 0
	}
	rows := make([][]interface{}, n)
	copy(rows, t.rows[:n])
	return &Table{cols: t.Columns(), rows: rows}
}

// Distinct returns a one-column Table of the distinct non-null values of
// the named column, in ascending order.
func (t *Table) Distinct(column string) (*Table, error) {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return nil, &ConfigurationError{Op: "distinct", Column: column, Reason: "column not found"}
	}
	seen := make(map[interface{}]bool)
	var vals []interface{}
	for _, r := range t.rows {
		v := r[idx]
		if v == nil || seen[v] {
			continue
		}
		seen[v] = true
		vals = append(vals, v)
	}
	sort.SliceStable(vals, func(i, j int) bool {
		return Compare(vals[i], vals[j]) < 0
	})
	rows := make([][]interface{}, len(vals))
	for i, v := range vals {
		rows[i] = []interface{}{v}
	}
	return &Table{cols: []Column{t.cols[idx]}, rows: rows}, nil
}

// SortBy returns a new Table with rows stably sorted by the named column.
// Null values sort last regardless of direction.
func (t *Table) SortBy(column string, desc bool) (*Table, error) {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return nil, &ConfigurationError{Op: "sort", Column: column, Reason: "column not found"}
	}
	rows := make([][]interface{}, len(t.rows))
	copy(rows, t.rows)
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][idx], rows[j][idx]
		if a == nil || b == nil {
			// nulls always last
			return b == nil && a != nil
		}
		if desc {
			return Compare(a, b) > 0
		}
		return Compare(a, b) < 0
	})
	return &Table{cols: t.Columns(), rows: rows}, nil
}

// Compare orders two non-nil cell values of the same column type.
// Returns -1, 0 or 1.
func Compare(a, b interface{}) int {
	switch av := a.(type) {
	case int64:
		bv := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case float64:
		bv := b.(float64)
		// NaN compares false against everything; order it after any real
		// value so sorting stays deterministic in directly built tables.
		switch {
		case math.IsNaN(av):
			if math.IsNaN(bv) {
				return 0
			}
			return 1
		case math.IsNaN(bv):
			return -1
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case string:
		bv := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case time.Time:
		bv := b.(time.Time)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	case bool:
		bv := b.(bool)
		switch {
		case !av && bv:
			return -1
		case av && !bv:
			return 1
		}
		return 0
	default:
		return 0
	}
}
