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

// Package tableprint renders tables as aligned ASCII previews.
package tableprint

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rowforge/rowforge/table"
)

const minColWidth = 4

// Format renders the table as an aligned ASCII grid with a header row.
// Null cells render as NULL.
func Format(t *table.Table) string {
	cols := t.Columns()
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c.Name)
		if widths[i] < minColWidth {
			widths[i] = minColWidth
		}
	}
	cells := make([][]string, t.NumRows())
	for r := 0; r < t.NumRows(); r++ {
		row := make([]string, len(cols))
		for c := range cols {
			row[c] = FormatCell(t.Value(r, c))
			if len(row[c]) > widths[c] {
				widths[c] = len(row[c])
			}
		}
		cells[r] = row
	}

	var b strings.Builder
	writeBorder(&b, widths)
	b.WriteString("|")
	for i, c := range cols {
		fmt.Fprintf(&b, " %-*s |", widths[i], c.Name)
	}
	b.WriteString("\n")
	writeBorder(&b, widths)
	for _, row := range cells {
		b.WriteString("|")
		for i, cell := range row {
			fmt.Fprintf(&b, " %-*s |", widths[i], cell)
		}
		b.WriteString("\n")
	}
	writeBorder(&b, widths)
	return b.String()
}

// Fprint writes the rendered table to w.
func Fprint(w io.Writer, t *table.Table) {
	fmt.Fprint(w, Format(t))
}

// Print writes the rendered table to stdout.
func Print(t *table.Table) {
	Fprint(os.Stdout, t)
}

// FormatCell renders one typed cell value as text.
func FormatCell(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func writeBorder(b *strings.Builder, widths []int) {
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
}
