// Package chart lays out multi-series line charts. It turns a list of
// series and a canvas geometry into an ordered list of draw commands that a
// host replays onto its own drawing surface.
package chart

import (
	"fmt"
	"sync"
)

// Chart holds the series shown by one chart component. It is append-only
// apart from ReplaceAll, and asks its host to redraw after every change.
type Chart struct {
	lock       sync.RWMutex
	series     []Series
	style      Style
	invalidate func()
}

var _ Drawable = (*Chart)(nil)

// Option configures a Chart.
type Option func(*Chart)

// WithInvalidator sets the function called after every mutation to request
// a redraw from the host.
func WithInvalidator(f func()) Option {
	return func(c *Chart) {
		c.invalidate = f
	}
}

// WithStyle replaces DefaultStyle.
func WithStyle(s Style) Option {
	return func(c *Chart) {
		c.style = s
	}
}

func New(opts ...Option) *Chart {
	c := &Chart{style: DefaultStyle()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends a labeled series built from xs and ys. Mismatched lengths and
// non-finite values are rejected with an error wrapping ErrInvalidInput and
// leave the chart unchanged.
func (c *Chart) Add(xs, ys []float64, label string) error {
	s, err := NewSeries(xs, ys, label)
	if err != nil {
		return fmt.Errorf("adding series %q: %w", label, err)
	}
	c.push(s)
	return nil
}

// AddPoints appends an unlabeled series. It is drawn like any other series
// but has no legend entry.
func (c *Chart) AddPoints(points []Point) error {
	s := SeriesOf(points...)
	if err := s.validate(); err != nil {
		return fmt.Errorf("adding series: %w", err)
	}
	c.push(s)
	return nil
}

func (c *Chart) push(s Series) {
	c.lock.Lock()
	s.ColorIndex = len(c.series) % PaletteSize
	c.series = append(c.series, s)
	c.lock.Unlock()
	c.redraw()
}

// ReplaceAll discards the current series and stores a copy of series in
// their place. Colors are reassigned by position in the new list.
func (c *Chart) ReplaceAll(series []Series) error {
	next := make([]Series, len(series))
	for i, s := range series {
		if err := s.validate(); err != nil {
			return fmt.Errorf("replacing series %d: %w", i, err)
		}
		next[i] = s.clone()
		next[i].ColorIndex = i % PaletteSize
	}
	c.lock.Lock()
	c.series = next
	c.lock.Unlock()
	c.redraw()
	return nil
}

// Series returns a copy of the stored series in insertion order.
func (c *Chart) Series() []Series {
	c.lock.RLock()
	defer c.lock.RUnlock()
	out := make([]Series, len(c.series))
	for i, s := range c.series {
		out[i] = s.clone()
	}
	return out
}

func (c *Chart) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.series)
}

func (c *Chart) Style() Style {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.style
}

// SetStyle changes the paint settings and requests a redraw.
func (c *Chart) SetStyle(s Style) {
	c.lock.Lock()
	c.style = s
	c.lock.Unlock()
	c.redraw()
}

// Plan returns the draw commands for the current series on geo.
func (c *Chart) Plan(geo Geometry) []Command {
	c.lock.RLock()
	series, style := c.series, c.style
	c.lock.RUnlock()
	// Stored series are never mutated in place, so planning outside the
	// lock is safe.
	return Plan(series, geo, style)
}

// Render paints the chart onto s.
func (c *Chart) Render(s Surface) {
	Execute(c.Plan(s.Geometry()), s)
}

func (c *Chart) redraw() {
	if c.invalidate != nil {
		c.invalidate()
	}
}
