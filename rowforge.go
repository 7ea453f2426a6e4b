/*
 * Copyright 2025 The RowForge Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rowforge

import (
	"github.com/rowforge/rowforge/aggregator"
	"github.com/rowforge/rowforge/condition"
	"github.com/rowforge/rowforge/csvio"
	"github.com/rowforge/rowforge/functions"
	"github.com/rowforge/rowforge/logger"
	"github.com/rowforge/rowforge/pivot"
	"github.com/rowforge/rowforge/table"
	"github.com/rowforge/rowforge/utils/tableprint"
	"github.com/rowforge/rowforge/window"
)

// Frame is the chainable facade over an immutable Table. Every method
// returns a new Frame; errors surface on the method that caused them.
//
// Usage:
//
//	frame, err := rowforge.FromCSV("sensor_data.csv")
//	hourly, err := frame.
//		ParseTimestamp("timestamp", "yyyy-MM-dd HH:mm:ss").
//		ExtractHour("timestamp", "hour_of_day").
//		Aggregate([]string{"hour_of_day"}, []aggregator.AggregateSpec{
//			{OutputName: "avg_temp", SourceColumn: "temperature", Type: functions.Avg},
//		})
type Frame struct {
	t   *table.Table
	err error
}

// New wraps a Table in a Frame. Options apply engine-wide settings.
func New(t *table.Table, options ...Option) *Frame {
	for _, option := range options {
		option()
	}
	return &Frame{t: t}
}

// FromCSV loads a delimited file with a header row, infers the schema and
// wraps the result.
func FromCSV(path string, options ...Option) (*Frame, error) {
	for _, option := range options {
		option()
	}
	t, err := csvio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded %s: %d rows, %d columns", path, t.NumRows(), t.NumCols())
	return &Frame{t: t}, nil
}

// Table returns the underlying table and the first error of the chain.
func (f *Frame) Table() (*table.Table, error) {
	return f.t, f.err
}

// Err returns the first error of the chain, if any.
func (f *Frame) Err() error {
	return f.err
}

// NumRows returns the row count (0 after a failed chain step).
func (f *Frame) NumRows() int {
	if f.t == nil {
		return 0
	}
	return f.t.NumRows()
}

func (f *Frame) step(t *table.Table, err error) *Frame {
	if f.err != nil {
		return f
	}
	if err != nil {
		return &Frame{err: err}
	}
	return &Frame{t: t}
}

// LabelRange appends a label column classifying each row by whether the
// named numeric column lies inside the closed interval [low, high].
func (f *Frame) LabelRange(column string, low, high float64, trueLabel, falseLabel, outColumn string) *Frame {
	if f.err != nil {
		return f
	}
	cond, err := condition.Between(column, low, high)
	if err != nil {
		return &Frame{err: err}
	}
	return f.step(condition.Label(f.t, cond, trueLabel, falseLabel, outColumn))
}

// Label appends a label column driven by an arbitrary compiled predicate.
func (f *Frame) Label(cond condition.Condition, trueLabel, falseLabel, outColumn string) *Frame {
	if f.err != nil {
		return f
	}
	return f.step(condition.Label(f.t, cond, trueLabel, falseLabel, outColumn))
}

// ParseTimestamp converts a string column to timestamps using a
// yyyy-MM-dd HH:mm:ss style pattern. Unparseable cells become null.
func (f *Frame) ParseTimestamp(column, pattern string) *Frame {
	if f.err != nil {
		return f
	}
	return f.step(f.t.ParseTimestamp(column, pattern))
}

// ExtractHour appends an hour-of-day column derived from a timestamp column.
func (f *Frame) ExtractHour(tsColumn, outColumn string) *Frame {
	if f.err != nil {
		return f
	}
	return f.step(f.t.ExtractHour(tsColumn, outColumn))
}

// Aggregate groups rows by the given columns and computes the requested
// aggregates per bucket.
func (f *Frame) Aggregate(groupColumns []string, specs []aggregator.AggregateSpec, opts ...aggregator.Option) *Frame {
	if f.err != nil {
		return f
	}
	return f.step(aggregator.Aggregate(f.t, groupColumns, specs, opts...))
}

// Rank sorts by the order column and appends a competition-rank column.
func (f *Frame) Rank(spec window.OrderSpec, outColumn string) *Frame {
	if f.err != nil {
		return f
	}
	return f.step(window.Rank(f.t, spec, outColumn))
}

// Pivot reshapes a (rowKey, colKey, value) aggregation into a wide table
// with one column per domain value.
func (f *Frame) Pivot(rowKey, colKey, valueCol string, aggType functions.AggregateType, colDomain []interface{}) *Frame {
	if f.err != nil {
		return f
	}
	return f.step(pivot.Pivot(f.t, rowKey, colKey, valueCol, aggType, colDomain))
}

// MaxCell reduces to the single (rowKey, colKey) row with the highest
// aggregate of valueCol.
func (f *Frame) MaxCell(rowKey, colKey, valueCol string, aggType functions.AggregateType) *Frame {
	if f.err != nil {
		return f
	}
	return f.step(pivot.MaxCell(f.t, rowKey, colKey, valueCol, aggType))
}

// SortBy orders rows by one column, nulls last.
func (f *Frame) SortBy(column string, desc bool) *Frame {
	if f.err != nil {
		return f
	}
	return f.step(f.t.SortBy(column, desc))
}

// Head keeps the first n rows.
func (f *Frame) Head(n int) *Frame {
	if f.err != nil {
		return f
	}
	return &Frame{t: f.t.Head(n)}
}

// Distinct reduces to the distinct non-null values of one column.
func (f *Frame) Distinct(column string) *Frame {
	if f.err != nil {
		return f
	}
	return f.step(f.t.Distinct(column))
}

// Show prints the first n rows as an aligned preview table.
func (f *Frame) Show(n int) *Frame {
	if f.err != nil {
		return f
	}
	tableprint.Print(f.t.Head(n))
	return f
}

// WriteCSV writes the current table to path, replacing any existing file.
func (f *Frame) WriteCSV(path string) error {
	if f.err != nil {
		return f.err
	}
	if err := csvio.WriteFile(path, f.t); err != nil {
		return err
	}
	logger.Debug("wrote %s: %d rows", path, f.t.NumRows())
	return nil
}
