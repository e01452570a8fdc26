package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homkit/format"
)

func TestParseGraphCSV_CommaDelimited(t *testing.T) {
	edges, err := format.ParseGraphCSV(strings.NewReader("u,v\n0,1\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, edges)
}

func TestParseGraphCSV_MixedDelimiters(t *testing.T) {
	edges, err := format.ParseGraphCSV(strings.NewReader("0;1\n1|2\n2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, edges)
}

func TestParseGraphCSV_NoHeader(t *testing.T) {
	edges, err := format.ParseGraphCSV(strings.NewReader("0,1\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, edges)
}

func TestParseGraphCSV_MalformedRow(t *testing.T) {
	_, err := format.ParseGraphCSV(strings.NewReader("u,v\n0,1\nnope\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrMalformedCSV)
}

func TestWriteResults_EmitsHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	records := []format.ResultRecord{
		{Tree: "0,0,0", Found: true, Backtracks: 3, AC3Time: 0.1, MAC3Time: 0.2, TotalTime: 0.3},
		{Tree: "0,0,1", Found: false, Backtracks: 0, AC3Time: 0.05, MAC3Time: 0, TotalTime: 0.05},
	}
	require.NoError(t, format.WriteResults(&buf, records))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "tree,found,backtracks,ac3_time,mac3_time,total_time", lines[0])
	assert.Contains(t, lines[1], "0,0,0")
	assert.Contains(t, lines[1], "true")
	assert.Contains(t, lines[2], "false")
}
