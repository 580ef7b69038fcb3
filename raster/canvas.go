// Package raster paints chart commands into an in-memory RGBA image, for
// headless export to PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"math"
	"sync"

	"git.sr.ht/~whereswaldon/linegraph/chart"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Background is the fill used for a fresh canvas.
var Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Canvas is a chart.Surface backed by an *image.RGBA.
type Canvas struct {
	img     *image.RGBA
	gc      *draw2dimg.GraphicContext
	padding chart.Insets
	faces   map[float64]font.Face
}

var _ chart.Surface = (*Canvas)(nil)

// New allocates a width by height canvas filled with Background.
func New(width, height int, padding chart.Insets) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d: %w", width, height, chart.ErrInvalidInput)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return &Canvas{
		img:     img,
		gc:      draw2dimg.NewGraphicContext(img),
		padding: padding,
		faces:   make(map[float64]font.Face),
	}, nil
}

func (c *Canvas) Geometry() chart.Geometry {
	b := c.img.Bounds()
	return chart.Geometry{
		Width:   float64(b.Dx()),
		Height:  float64(b.Dy()),
		Padding: c.padding,
	}
}

func (c *Canvas) DrawLine(p0, p1 chart.Point, col color.NRGBA, width float64) {
	c.gc.SetStrokeColor(col)
	c.gc.SetLineWidth(width)
	c.gc.BeginPath()
	c.gc.MoveTo(p0.X, p0.Y)
	c.gc.LineTo(p1.X, p1.Y)
	c.gc.Stroke()
}

func (c *Canvas) DrawCircle(center chart.Point, radius float64, col color.NRGBA) {
	c.gc.SetFillColor(col)
	c.gc.BeginPath()
	draw2dkit.Circle(c.gc, center.X, center.Y, radius)
	c.gc.Fill()
}

// DrawText draws s with its baseline at pos.Y.
func (c *Canvas) DrawText(s string, pos chart.Point, col color.NRGBA, size float64, align chart.Alignment) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face(size),
	}
	x := pos.X
	width := float64(d.MeasureString(s)) / 64
	switch align {
	case chart.AlignCenter:
		x -= width / 2
	case chart.AlignEnd:
		x -= width
	}
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * 64)),
		Y: fixed.Int26_6(math.Round(pos.Y * 64)),
	}
	d.DrawString(s)
}

// Image returns the backing image. It is shared with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the canvas contents to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("failed encoding png: %w", err)
	}
	return nil
}

// Render plans d onto a new canvas of the given size.
func Render(width, height int, padding chart.Insets, d chart.Drawable) (*Canvas, error) {
	c, err := New(width, height, padding)
	if err != nil {
		return nil, err
	}
	d.Render(c)
	return c, nil
}

func (c *Canvas) face(size float64) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := newFace(size)
	c.faces[size] = f
	return f
}

var (
	regularOnce sync.Once
	regular     *opentype.Font
)

func newFace(size float64) font.Face {
	regularOnce.Do(func() {
		var err error
		regular, err = opentype.Parse(goregular.TTF)
		if err != nil {
			log.Printf("failed parsing go regular font, falling back to bitmap font: %v", err)
		}
	})
	if regular == nil {
		return basicfont.Face7x13
	}
	f, err := opentype.NewFace(regular, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("failed building %.1fpt face, falling back to bitmap font: %v", size, err)
		return basicfont.Face7x13
	}
	return f
}
