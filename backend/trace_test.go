package backend

import (
	"strings"
	"testing"

	"git.sr.ht/~whereswaldon/linegraph/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrace(t *testing.T) {
	const trace = `x, Net Sales, Profit
0, 0, 0
1, 43, 2
2, 64,
3, , 6
`
	series, err := ParseTrace(strings.NewReader(trace))
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "Net Sales", series[0].Label)
	assert.True(t, series[0].Labeled)
	assert.Equal(t, 0, series[0].ColorIndex)
	assert.Equal(t, []chart.Point{{X: 0, Y: 0}, {X: 1, Y: 43}, {X: 2, Y: 64}}, series[0].Points)

	assert.Equal(t, "Profit", series[1].Label)
	assert.Equal(t, 1, series[1].ColorIndex)
	assert.Equal(t, []chart.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 6}}, series[1].Points)
}

func TestParseTraceBlankHeading(t *testing.T) {
	series, err := ParseTrace(strings.NewReader("x,,Sales\n1,2,3\n"))
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.False(t, series[0].Labeled)
	assert.Empty(t, series[0].Label)
	assert.True(t, series[1].Labeled)
}

func TestParseTraceShortRows(t *testing.T) {
	series, err := ParseTrace(strings.NewReader("x,a,b\n1,5\n2\n"))
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, []chart.Point{{X: 1, Y: 5}}, series[0].Points)
	assert.Empty(t, series[1].Points)
}

func TestParseTraceErrors(t *testing.T) {
	type testcase struct {
		name  string
		input string
		line  string
	}
	for _, tc := range []testcase{
		{name: "empty", input: ""},
		{name: "bad x", input: "x,a\n1,2\nten,3\n", line: "line 3"},
		{name: "bad y", input: "x,a\n1,2\n2,lots\n", line: "line 3"},
		{name: "missing x", input: "x,a\n,2\n", line: "line 2"},
		{name: "too many values", input: "x,a\n1,2,3\n", line: "line 2"},
		{name: "not finite", input: "x,a\n1,NaN\n", line: "line 2"},
		{name: "bare quote", input: "x,a\n1,\"2\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTrace(strings.NewReader(tc.input))
			require.ErrorIs(t, err, ErrMalformedTrace)
			if tc.line != "" {
				assert.Contains(t, err.Error(), tc.line)
			}
		})
	}
}

func TestParseTraceFeedsChart(t *testing.T) {
	series, err := ParseTrace(strings.NewReader("x,a,b\n0,0,0\n8,8000,12\n"))
	require.NoError(t, err)
	c := chart.New()
	require.NoError(t, c.ReplaceAll(series))
	maxX, maxY := chart.Bounds(c.Series())
	assert.Equal(t, 8.0, maxX)
	assert.Equal(t, 8000.0, maxY)
}

func TestDemoSeries(t *testing.T) {
	series := DemoSeries()
	require.Len(t, series, 3)
	for i, s := range series {
		assert.Equal(t, i, s.ColorIndex)
		assert.True(t, s.Labeled)
	}
	assert.Len(t, series[2].Points, 31)
	maxX, maxY := chart.Bounds(series)
	assert.Equal(t, 30.0, maxX)
	assert.Equal(t, 8000.0, maxY)
}
