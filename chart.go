package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"git.sr.ht/~whereswaldon/linegraph/chart"
	"git.sr.ht/~whereswaldon/linegraph/giosurface"
	"git.sr.ht/~whereswaldon/linegraph/raster"
)

var defaultPadding = chart.Insets{Top: 16, Bottom: 8, Start: 16, End: 16}

// ChartView displays a chart in the window and remembers the size it was
// last laid out at, so that exports match what is on screen.
type ChartView struct {
	*chart.Chart
	Padding    chart.Insets
	Background color.NRGBA
	size       image.Point
}

func NewChartView(c *chart.Chart) *ChartView {
	return &ChartView{
		Chart:      c,
		Padding:    defaultPadding,
		Background: raster.Background,
	}
}

func (c *ChartView) Layout(gtx C, th *material.Theme) D {
	c.size = gtx.Constraints.Max
	paint.FillShape(gtx.Ops, c.Background, clip.Rect{Max: gtx.Constraints.Max}.Op())
	return giosurface.Layout(gtx, th, c.Padding, c.Chart)
}

// Size returns the most recent layout size. It must be called from the
// UI goroutine.
func (c *ChartView) Size() image.Point {
	return c.size
}

// Export renders the chart at size and writes it to w as a PNG. It
// closes w.
func (c *ChartView) Export(w io.WriteCloser, size image.Point) error {
	canvas, err := raster.Render(size.X, size.Y, c.Padding, c.Chart)
	if err != nil {
		return errors.Join(fmt.Errorf("failed rendering chart: %w", err), w.Close())
	}
	return errors.Join(canvas.EncodePNG(w), w.Close())
}
