package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"git.sr.ht/~whereswaldon/linegraph/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyCanvas(t *testing.T) {
	_, err := New(0, 10, chart.Insets{})
	assert.ErrorIs(t, err, chart.ErrInvalidInput)
	_, err = New(10, -1, chart.Insets{})
	assert.ErrorIs(t, err, chart.ErrInvalidInput)
}

func TestBlankCanvas(t *testing.T) {
	c, err := New(40, 30, chart.Insets{Top: 2})
	require.NoError(t, err)
	assert.Equal(t, chart.Geometry{Width: 40, Height: 30, Padding: chart.Insets{Top: 2}}, c.Geometry())
	assert.Equal(t, color.RGBAModel.Convert(Background), c.Image().At(20, 15))
}

func TestMarkersArePainted(t *testing.T) {
	c := chart.New()
	require.NoError(t, c.Add([]float64{0, 4, 8}, []float64{0, 4000, 8000}, "Net Sales"))
	canvas, err := Render(800, 600, chart.Insets{}, c)
	require.NoError(t, err)

	m := chart.NewMapper(canvas.Geometry(), c.Series())
	want := chart.Palette.At(0)
	for _, p := range m.MapAll(c.Series()[0].Points) {
		got := color.NRGBAModel.Convert(canvas.Image().At(int(p.X), int(p.Y))).(color.NRGBA)
		assert.InDelta(t, want.B, got.B, 16, "blue channel at %v", p)
		assert.InDelta(t, want.R, got.R, 16, "red channel at %v", p)
	}
}

func TestDrawText(t *testing.T) {
	c, err := New(200, 60, chart.Insets{})
	require.NoError(t, err)
	c.DrawText("8000", chart.Pt(100, 40), color.NRGBA{A: 0xff}, 20, chart.AlignCenter)

	inked := 0
	bounds := c.Image().Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, _, _, _ := c.Image().At(x, y).RGBA(); r < 0x8000 {
				inked++
				assert.Less(t, y, 41, "glyph ink below the baseline at (%d,%d)", x, y)
			}
		}
	}
	assert.Positive(t, inked)
}

func TestEncodePNG(t *testing.T) {
	c, err := Render(64, 48, chart.Insets{}, chart.New())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
}
