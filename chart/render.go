package chart

// Layout offsets of the draw pass, in pixels.
const (
	legendTop       = 1.5
	legendTextGap   = 50
	legendTextDrop  = 5
	gridLabelDrop   = 15
	zeroLabelIndent = 10
)

// Plan computes the draw commands for series on a canvas of the given
// geometry. It is pure: the same inputs always yield the same commands, and
// series is not modified.
func Plan(series []Series, geo Geometry, style Style) []Command {
	var (
		m     = NewMapper(geo, series)
		start = geo.Padding.Start + insetStart
		end   = geo.Width - geo.Padding.End - insetStart
		axisY = geo.Height - geo.Padding.Bottom - geo.Padding.Top - insetBottom
		p     = planner{style: style}
	)
	p.legend(series, start, geo.Padding.Top+legendTop)
	p.axis(start, end, axisY)
	p.grid(start, end, axisY, m.MaxY)
	for i, s := range series {
		p.series(i, s, m)
	}
	return p.cmds
}

type planner struct {
	style Style
	cmds  []Command
}

func (p *planner) line(layer Layer, series int, from, to Point, c Command) {
	c.Kind = KindLine
	c.Layer = layer
	c.Series = series
	c.From = from
	c.To = to
	p.cmds = append(p.cmds, c)
}

func (p *planner) circle(layer Layer, series int, center Point, c Command) {
	c.Kind = KindCircle
	c.Layer = layer
	c.Series = series
	c.From = center
	c.Radius = p.style.MarkerRadius
	p.cmds = append(p.cmds, c)
}

func (p *planner) text(layer Layer, series int, s string, at Point) {
	p.cmds = append(p.cmds, Command{
		Kind:   KindText,
		Layer:  layer,
		Series: series,
		From:   at,
		Text:   s,
		Color:  p.style.TextColor,
		Size:   p.style.TextSize,
		Align:  AlignCenter,
	})
}

// legend draws one entry per labeled series, advancing a fixed column width
// per entry. Entries past the canvas edge are not wrapped.
func (p *planner) legend(series []Series, x, y float64) {
	var (
		w     = p.style.LegendSample
		entry int
	)
	for i, s := range series {
		if !s.Labeled {
			continue
		}
		var (
			left  = x + float64(entry)*p.style.LegendColumn
			right = left + w
			col   = p.style.SeriesColor(s)
		)
		p.line(LayerLegend, i, Pt(left, y), Pt(right, y), Command{Color: col, Width: p.style.LineWidth})
		p.circle(LayerLegend, i, Pt(left, y), Command{Color: col})
		p.circle(LayerLegend, i, Pt(right, y), Command{Color: col})
		p.text(LayerLegend, i, s.Label, Pt(right+legendTextGap, y+legendTextDrop))
		entry++
	}
}

func (p *planner) axis(start, end, y float64) {
	p.line(LayerAxis, -1, Pt(start, y), Pt(end, y), Command{
		Color: p.style.AxisColor,
		Width: p.style.AxisWidth,
	})
}

// grid draws the labeled gridlines evenly spaced above the axis. It stops
// at the first line that would sit above the top of the canvas.
func (p *planner) grid(start, end, axisY, maxY float64) {
	p.text(LayerGrid, -1, p.style.FormatValue(0), Pt(start-zeroLabelIndent, axisY+gridLabelDrop))
	n := p.style.Gridlines
	if n <= 0 {
		return
	}
	var (
		interval = (axisY - labelBand) / float64(n)
		step     = maxY / float64(n)
	)
	for i := 1; i <= n; i++ {
		y := axisY - float64(i)*interval
		if y < 0 {
			break
		}
		p.text(LayerGrid, -1, p.style.FormatValue(float64(i)*step), Pt(start, y+gridLabelDrop))
		p.line(LayerGrid, -1, Pt(start, y), Pt(end, y), Command{
			Color: p.style.GridColor,
			Width: p.style.GridWidth,
		})
	}
}

// series draws the polyline of s left to right, then its markers on top.
func (p *planner) series(index int, s Series, m Mapper) {
	var (
		col    = p.style.SeriesColor(s)
		points = m.MapAll(s.Sorted())
	)
	for i := 1; i < len(points); i++ {
		p.line(LayerSeries, index, points[i-1], points[i], Command{Color: col, Width: p.style.LineWidth})
	}
	for _, pt := range points {
		p.circle(LayerSeries, index, pt, Command{Color: col})
	}
}
