package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNiceBound(t *testing.T) {
	for _, tc := range []struct {
		in, out float64
	}{
		{0, 0},
		{4, 0},
		{5, 10},
		{54, 50},
		{57, 60},
		{100, 100},
		{150, 200},
		{199, 200},
		{8000, 8000},
		{8499, 8000},
		{15_000, 20_000},
		{640_000, 600_000},
		{1_000_000, 1_000_000},
		{1_234_567, 1_234_567},
	} {
		assert.Equal(t, tc.out, NiceBound(tc.in), "NiceBound(%v)", tc.in)
	}
}

func TestMaxYIdempotent(t *testing.T) {
	points := []Point{Pt(0, 12), Pt(1, 87), Pt(2, 43)}
	first := MaxY(points)
	assert.Equal(t, 90.0, first)
	assert.Equal(t, first, MaxY(points))
	assert.Equal(t, first, NiceBound(first))
}

func TestBounds(t *testing.T) {
	a := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	b := []float64{0, 43, 64, 57, 86, 43, 199, 34, 8000}
	c := []float64{0, 2, 4, 8, 16, 32, 64, 128, 256}

	sales, err := NewSeries(a, b, "Net Sales")
	assert.NoError(t, err)
	profit, err := NewSeries(a, c, "Profit")
	assert.NoError(t, err)

	maxX, maxY := Bounds([]Series{sales})
	assert.Equal(t, 8.0, maxX)
	assert.Equal(t, 8000.0, maxY)

	maxX, maxY = Bounds([]Series{profit})
	assert.Equal(t, 8.0, maxX)
	assert.Equal(t, 300.0, maxY)

	maxX, maxY = Bounds([]Series{profit, sales})
	assert.Equal(t, 8.0, maxX)
	assert.Equal(t, 8000.0, maxY)
}

func TestBoundsDegenerate(t *testing.T) {
	maxX, maxY := Bounds(nil)
	assert.Zero(t, maxX)
	assert.Zero(t, maxY)

	maxX, maxY = Bounds([]Series{SeriesOf(Pt(-4, -10), Pt(-1, -3))})
	assert.Zero(t, maxX)
	assert.Zero(t, maxY)
}
