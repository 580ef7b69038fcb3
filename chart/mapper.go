package chart

// Fixed insets of the plot area inside the padded canvas, in pixels.
const (
	insetStart  = 10
	insetEdge   = 20
	insetBottom = 10
	labelBand   = 50
)

// Insets are the host's padding around the canvas content.
type Insets struct {
	Top, Bottom, Start, End float64
}

// Geometry describes the canvas a chart is rendered onto.
type Geometry struct {
	Width, Height float64
	Padding       Insets
}

// DrawableWidth is the canvas width minus the horizontal padding.
func (g Geometry) DrawableWidth() float64 {
	return g.Width - g.Padding.Start - g.Padding.End
}

// DrawableHeight is the canvas height minus the vertical padding.
func (g Geometry) DrawableHeight() float64 {
	return g.Height - g.Padding.Top - g.Padding.Bottom
}

// Mapper converts data-space points into pixel space for one canvas and one
// pair of axis maxima. The zero value of MaxX or MaxY collapses that axis
// onto its origin instead of dividing by zero.
type Mapper struct {
	Geometry
	MaxX, MaxY float64
}

// NewMapper returns the mapper for the chart-wide bounds of series.
func NewMapper(geo Geometry, series []Series) Mapper {
	maxX, maxY := Bounds(series)
	return Mapper{
		Geometry: geo,
		MaxX:     maxX,
		MaxY:     maxY,
	}
}

// OriginX is the pixel x of data x = 0.
func (m Mapper) OriginX() float64 {
	return m.Padding.Start + insetStart
}

// OriginY is the pixel y of data y = 0.
func (m Mapper) OriginY() float64 {
	return m.Height - insetBottom - m.Padding.Bottom - insetEdge
}

// X maps a data x to a pixel x.
func (m Mapper) X(x float64) float64 {
	if m.MaxX == 0 {
		return m.OriginX()
	}
	interval := (m.DrawableWidth() - insetEdge) / m.MaxX
	return m.OriginX() + x*interval
}

// Y maps a data y to a pixel y. Pixel y grows downward, so larger values
// land higher on the canvas.
func (m Mapper) Y(y float64) float64 {
	if m.MaxY == 0 {
		return m.OriginY()
	}
	interval := (m.Height - insetEdge - labelBand - m.Padding.Top - m.Padding.Bottom) / m.MaxY
	return m.OriginY() - y*interval
}

// Map maps a data-space point to pixel space.
func (m Mapper) Map(p Point) Point {
	return Pt(m.X(p.X), m.Y(p.Y))
}

// MapAll maps every point, preserving order.
func (m Mapper) MapAll(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = m.Map(p)
	}
	return out
}
