// Package giosurface paints chart commands with Gio operations.
package giosurface

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"git.sr.ht/~whereswaldon/linegraph/chart"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Surface adapts one frame's layout context to chart.Surface. Coordinates
// are in pixels, relative to the current Gio transform. A Surface must not
// be kept across frames.
type Surface struct {
	gtx     C
	th      *material.Theme
	padding chart.Insets
}

var _ chart.Surface = (*Surface)(nil)

// New returns a surface covering the maximum constraints of gtx.
func New(gtx C, th *material.Theme, padding chart.Insets) *Surface {
	return &Surface{
		gtx:     gtx,
		th:      th,
		padding: padding,
	}
}

func (s *Surface) Geometry() chart.Geometry {
	return chart.Geometry{
		Width:   float64(s.gtx.Constraints.Max.X),
		Height:  float64(s.gtx.Constraints.Max.Y),
		Padding: s.padding,
	}
}

func (s *Surface) DrawLine(p0, p1 chart.Point, c color.NRGBA, width float64) {
	var p clip.Path
	p.Begin(s.gtx.Ops)
	p.MoveTo(pt(p0))
	p.LineTo(pt(p1))
	paint.FillShape(s.gtx.Ops, c, clip.Stroke{
		Path:  p.End(),
		Width: float32(width),
	}.Op())
}

func (s *Surface) DrawCircle(center chart.Point, radius float64, c color.NRGBA) {
	r := image.Rectangle{
		Min: image.Pt(round(center.X-radius), round(center.Y-radius)),
		Max: image.Pt(round(center.X+radius), round(center.Y+radius)),
	}
	paint.FillShape(s.gtx.Ops, c, clip.Ellipse(r).Op(s.gtx.Ops))
}

// DrawText lays out a single line label whose baseline passes through pos.
func (s *Surface) DrawText(str string, pos chart.Point, c color.NRGBA, size float64, align chart.Alignment) {
	gtx := s.gtx
	gtx.Constraints.Min = image.Point{}
	l := material.Label(s.th, gtx.Metric.PxToSp(round(size)), str)
	l.Color = c
	l.MaxLines = 1

	macro := op.Record(gtx.Ops)
	dims := l.Layout(gtx)
	call := macro.Stop()

	x := pos.X
	switch align {
	case chart.AlignCenter:
		x -= float64(dims.Size.X) / 2
	case chart.AlignEnd:
		x -= float64(dims.Size.X)
	}
	y := pos.Y - float64(dims.Size.Y-dims.Baseline)
	defer op.Offset(image.Pt(round(x), round(y))).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

// Layout renders d into the whole space of gtx.
func Layout(gtx C, th *material.Theme, padding chart.Insets, d chart.Drawable) D {
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	d.Render(New(gtx, th, padding))
	return D{Size: gtx.Constraints.Max}
}

func pt(p chart.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

func round(v float64) int {
	return int(math.Round(v))
}
