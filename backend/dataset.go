package backend

import (
	"fmt"
	"math"

	"git.sr.ht/~whereswaldon/linegraph/chart"
)

// Dataset accumulates trace rows into one point list per heading.
type Dataset struct {
	Headings []string
	points   [][]chart.Point
}

// SetHeadings registers one series per heading. It must be invoked prior to
// the first call to [Dataset.Insert], and it discards any points already
// inserted.
func (d *Dataset) SetHeadings(headings []string) {
	d.Headings = headings
	d.points = make([][]chart.Point, len(headings))
}

// Initialized reports whether headings have been registered.
func (d *Dataset) Initialized() bool {
	return d.points != nil
}

// Insert records one y value per series at x. A nil entry in ys is a
// missing cell and is skipped. Extra values beyond the registered headings
// are an error.
func (d *Dataset) Insert(x float64, ys []*float64) error {
	if len(ys) > len(d.points) {
		return fmt.Errorf("row has %d values for %d series: %w", len(ys), len(d.points), ErrMalformedTrace)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("x value %v: %w", x, ErrMalformedTrace)
	}
	for i, y := range ys {
		if y == nil {
			continue
		}
		if math.IsNaN(*y) || math.IsInf(*y, 0) {
			return fmt.Errorf("value %v for %q: %w", *y, d.Headings[i], ErrMalformedTrace)
		}
		d.points[i] = append(d.points[i], chart.Pt(x, *y))
	}
	return nil
}

// Series converts the dataset to chart series in heading order. A blank
// heading yields an unlabeled series.
func (d *Dataset) Series() []chart.Series {
	out := make([]chart.Series, 0, len(d.points))
	for i, pts := range d.points {
		s := chart.SeriesOf(pts...)
		s.Label = d.Headings[i]
		s.Labeled = s.Label != ""
		s.ColorIndex = i % chart.PaletteSize
		out = append(out, s)
	}
	return out
}
