package window

import (
	"github.com/rowforge/rowforge/table"
)

// OrderSpec names the column a window is ordered by and the direction.
type OrderSpec struct {
	Column string
	Desc   bool
}

// Rank sorts the table by the order column (nulls last) and appends an
// integer rank column with competition-ranking semantics: tied rows share a
// rank and the next distinct value takes its 1-based position in the sorted
// sequence, so a two-way tie at the top yields ranks 1, 1, 3.
func Rank(t *table.Table, spec OrderSpec, outColumn string) (*table.Table, error) {
	idx, ok := t.ColumnIndex(spec.Column)
	if !ok {
		return nil, &table.ConfigurationError{Op: "rank", Column: spec.Column, Reason: "column not found"}
	}

	sorted, err := t.SortBy(spec.Column, spec.Desc)
	if err != nil {
		return nil, err
	}

	ranks := make([]interface{}, sorted.NumRows())
	rank := int64(1)
	for i := 0; i < sorted.NumRows(); i++ {
		if i > 0 && !equalCell(sorted.Value(i, idx), sorted.Value(i-1, idx)) {
			rank = int64(i + 1)
		}
		ranks[i] = rank
	}
	return sorted.AppendColumn(table.Column{Name: outColumn, Type: table.TypeInt}, ranks)
}

// Top returns the first n rows; rank then take-n gives a "top n" query.
func Top(t *table.Table, n int) *table.Table {
	return t.Head(n)
}

func equalCell(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return table.Compare(a, b) == 0
}
