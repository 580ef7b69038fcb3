package chart

import (
	"fmt"
	"slices"
)

// Series represents one line on the chart.
type Series struct {
	Points []Point
	// Label is only shown in the legend when Labeled is set.
	Label   string
	Labeled bool
	// ColorIndex selects the series color from the style's palette. It is
	// assigned by the Chart when the series is stored.
	ColorIndex int
}

// NewSeries zips xs and ys into a labeled series. It fails if the two
// slices differ in length or hold a non-finite value.
func NewSeries(xs, ys []float64, label string) (Series, error) {
	if len(xs) != len(ys) {
		return Series{}, fmt.Errorf("%w: %d x values but %d y values", ErrInvalidInput, len(xs), len(ys))
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Pt(xs[i], ys[i])
	}
	s := Series{
		Points:  points,
		Label:   label,
		Labeled: true,
	}
	return s, s.validate()
}

// SeriesOf returns an unlabeled series holding a copy of points.
func SeriesOf(points ...Point) Series {
	return Series{Points: slices.Clone(points)}
}

// Sorted returns a copy of the points ordered by ascending x. Points
// sharing an x keep their insertion order.
func (s Series) Sorted() []Point {
	sorted := slices.Clone(s.Points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

func (s Series) clone() Series {
	s.Points = slices.Clone(s.Points)
	return s
}

func (s Series) validate() error {
	for i, p := range s.Points {
		if !p.finite() {
			return fmt.Errorf("%w: point %d (%v, %v) is not finite", ErrInvalidInput, i, p.X, p.Y)
		}
	}
	return nil
}
