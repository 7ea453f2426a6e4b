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

// Package csvio moves tables in and out of delimited files. It is the only
// place the engine touches the filesystem; each call holds a single file
// handle for its duration and releases it on every exit path.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rowforge/rowforge/table"
	"github.com/rowforge/rowforge/utils/tableprint"
)

// Read loads a delimited table with a header line and infers column types.
func Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return table.Infer(header, records)
}

// ReadFile loads a delimited file.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write emits the table with a header row. Null cells become empty fields.
func Write(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	cols := t.Columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(cols))
	for r := 0; r < t.NumRows(); r++ {
		for c := range cols {
			v := t.Value(r, c)
			if v == nil {
				record[c] = ""
			} else {
				record[c] = tableprint.FormatCell(v)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path, replacing any existing file.
func WriteFile(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
