package chart

import "image/color"

// Kind is the drawing primitive of a Command.
type Kind uint8

const (
	KindLine Kind = iota
	KindCircle
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Layer identifies the step of the draw pass that produced a Command.
// Commands are always emitted in Layer order.
type Layer uint8

const (
	LayerLegend Layer = iota
	LayerAxis
	LayerGrid
	LayerSeries
)

func (l Layer) String() string {
	switch l {
	case LayerLegend:
		return "legend"
	case LayerAxis:
		return "axis"
	case LayerGrid:
		return "grid"
	case LayerSeries:
		return "series"
	default:
		return "unknown"
	}
}

// Alignment positions text horizontally relative to its anchor point.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignStart
	AlignEnd
)

// Command is one drawing instruction in pixel space. Only the fields
// relevant to Kind are set:
//
//   - KindLine: From, To, Color, Width
//   - KindCircle: From (the center), Radius, Color
//   - KindText: From (the baseline anchor), Text, Color, Size, Align
type Command struct {
	Kind   Kind
	Layer  Layer
	From   Point
	To     Point
	Radius float64
	Width  float64
	Size   float64
	Color  color.NRGBA
	Text   string
	Align  Alignment
	// Series is the index of the series a legend or series command
	// belongs to, or -1.
	Series int
}

// Painter is the set of drawing primitives a host provides.
type Painter interface {
	DrawLine(p0, p1 Point, c color.NRGBA, width float64)
	DrawCircle(center Point, radius float64, c color.NRGBA)
	DrawText(s string, pos Point, c color.NRGBA, size float64, align Alignment)
}

// Surface is a Painter that knows the size and padding of its canvas.
type Surface interface {
	Painter
	Geometry() Geometry
}

// Drawable is implemented by anything that can paint itself onto a
// Surface.
type Drawable interface {
	Render(Surface)
}

// Execute replays cmds onto p in order.
func Execute(cmds []Command, p Painter) {
	for _, c := range cmds {
		switch c.Kind {
		case KindLine:
			p.DrawLine(c.From, c.To, c.Color, c.Width)
		case KindCircle:
			p.DrawCircle(c.From, c.Radius, c.Color)
		case KindText:
			p.DrawText(c.Text, c.From, c.Color, c.Size, c.Align)
		}
	}
}
