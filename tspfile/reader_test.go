// Package tspfile_test covers the record reader.
package tspfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/tsp"
	"github.com/katalvlaran/annealtsp/tspfile"
)

const tsplibSample = `NAME : sample4
COMMENT : four cities
TYPE : TSP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 3.5 0
  3 3.5 4e1
4 -1 2
EOF
`

func TestRead_TSPLIB(t *testing.T) {
	pts, err := tspfile.Read(strings.NewReader(tsplibSample))
	require.NoError(t, err)

	assert.Equal(t, []tsp.Point{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 3.5, Y: 0},
		{ID: 2, X: 3.5, Y: 40},
		{ID: 3, X: -1, Y: 2},
	}, pts)
}

func TestRead_SkipsNonRecords(t *testing.T) {
	in := "\n# comment\n-1 2 3\nx 1 2\n7 1 1 extra fields\r\n"
	pts, err := tspfile.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []tsp.Point{{ID: 6, X: 1, Y: 1}}, pts)
}

func TestRead_Empty(t *testing.T) {
	pts, err := tspfile.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, pts)
	assert.Empty(t, pts)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
		line string
	}{
		{"too few fields", "HEADER\n1 2\n", tspfile.ErrMalformedLine, "line 2"},
		{"bad id", "1.5 2 3\n", tspfile.ErrMalformedLine, "line 1"},
		{"bad x", "1 a 3\n", tspfile.ErrMalformedLine, "line 1"},
		{"bad y", "1 2 b\n", tspfile.ErrMalformedLine, "line 1"},
		{"zero id", "1 0 0\n0 1 1\n", tspfile.ErrBadID, "line 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tspfile.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.tsp")
	require.NoError(t, os.WriteFile(path, []byte(tsplibSample), 0o600))

	pts, err := tspfile.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, pts, 4)

	_, err = tspfile.ReadFile(filepath.Join(t.TempDir(), "missing.tsp"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
