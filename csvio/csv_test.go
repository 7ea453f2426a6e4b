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

package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowforge/rowforge/table"
)

const sample = `sensor_id,location,temperature,humidity
S1,L1,20.5,60
S2,L2,,55
`

func TestRead(t *testing.T) {
	tbl, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	require.Equal(t, 2, tbl.NumRows())
	cols := tbl.Columns()
	assert.Equal(t, table.TypeString, cols[0].Type)
	assert.Equal(t, table.TypeFloat, cols[2].Type)
	assert.Equal(t, table.TypeInt, cols[3].Type)
	assert.Nil(t, tbl.Value(1, 2))
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.Error(t, err)
}

func TestRead_HeaderOnly(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n"))
	var se *table.SchemaError
	require.ErrorAs(t, err, &se)
}

func TestWrite_NullAsEmptyCell(t *testing.T) {
	tbl, err := table.New(
		[]table.Column{
			{Name: "location", Type: table.TypeString},
			{Name: "avg_temp", Type: table.TypeFloat},
		},
		[][]interface{}{
			{"L1", 30.0},
			{"L2", nil},
		},
	)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Write(&b, tbl))
	assert.Equal(t, "location,avg_temp\nL1,30\nL2,\n", b.String())
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	in, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, in))

	out, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, in.NumRows(), out.NumRows())
	for i := 0; i < in.NumRows(); i++ {
		assert.Equal(t, in.Row(i), out.Row(i))
	}

	// Writing again replaces the file instead of appending.
	require.NoError(t, WriteFile(path, in.Head(1)))
	again, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, again.NumRows())
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	assert.True(t, os.IsNotExist(err))
}
