package chart

import (
	"math"

	"golang.org/x/exp/constraints"
)

// niceSteps maps an upper magnitude to the step its values are rounded to.
// Values above the last limit are left as they are.
var niceSteps = []struct {
	limit, step float64
}{
	{100, 10},
	{1_000, 100},
	{10_000, 1_000},
	{100_000, 10_000},
	{1_000_000, 100_000},
}

// MaxX returns the largest x of points. The result is never below zero.
func MaxX(points []Point) float64 {
	var m float64
	for _, p := range points {
		m = max(m, p.X)
	}
	return m
}

// MaxY returns the largest y of points rounded with NiceBound. The result is
// never below zero.
func MaxY(points []Point) float64 {
	var m float64
	for _, p := range points {
		m = max(m, p.Y)
	}
	return NiceBound(m)
}

// NiceBound rounds v half-up to a step that depends on its magnitude: tens
// up to 100, hundreds up to 1000 and so on up to 1e6. Larger values are
// returned unchanged.
//
// Rounding may go down: NiceBound(54) is 50, so the largest point of a
// series can sit above the top gridline.
func NiceBound(v float64) float64 {
	for _, s := range niceSteps {
		if v <= s.limit {
			return roundHalfUp(v/s.step) * s.step
		}
	}
	return v
}

// Bounds returns the chart-wide axis maxima: the largest MaxX and MaxY over
// all series. Every series shares this one scale.
func Bounds(series []Series) (maxX, maxY float64) {
	for _, s := range series {
		maxX = max(maxX, MaxX(s.Points))
		maxY = max(maxY, MaxY(s.Points))
	}
	return maxX, maxY
}

func roundHalfUp[T constraints.Float](v T) T {
	return T(math.Floor(float64(v) + 0.5))
}
