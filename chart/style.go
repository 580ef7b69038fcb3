package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Style holds the paint settings of a draw pass.
type Style struct {
	// Palette overrides the series colors. A nil Palette uses the package
	// Palette.
	Palette Colors

	AxisColor    color.NRGBA
	AxisWidth    float64
	GridColor    color.NRGBA
	GridWidth    float64
	TextColor    color.NRGBA
	TextSize     float64
	LineWidth    float64
	MarkerRadius float64

	// Gridlines is the number of labeled horizontal lines above the axis.
	Gridlines int
	// LegendColumn is the horizontal advance of each legend entry.
	LegendColumn float64
	// LegendSample is the length of the line drawn in each legend entry.
	LegendSample float64

	// Language selects digit grouping for gridline labels.
	Language language.Tag
}

var lightGray = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// DefaultStyle returns the reference chart look.
func DefaultStyle() Style {
	return Style{
		AxisColor:    color.NRGBA{A: 0xff},
		AxisWidth:    3.5,
		GridColor:    lightGray,
		GridWidth:    1.5,
		TextColor:    lightGray,
		TextSize:     20,
		LineWidth:    3.5,
		MarkerRadius: 3.5,
		Gridlines:    5,
		LegendColumn: 150,
		LegendSample: 10,
		Language:     language.English,
	}
}

func (s Style) colors() Colors {
	if len(s.Palette) == 0 {
		return Palette
	}
	return s.Palette
}

// SeriesColor returns the color series is drawn in with this style.
func (s Style) SeriesColor(series Series) color.NRGBA {
	return s.colors().At(series.ColorIndex)
}

// FormatValue renders v rounded half away from zero to an integer, with
// thousands separators. Values beyond the int64 range are printed in full.
func (s Style) FormatValue(v float64) string {
	tag := s.Language
	if tag == language.Und {
		tag = language.English
	}
	// Adding zero turns a rounded -0 into 0.
	return message.NewPrinter(tag).Sprintf("%.0f", math.Round(v)+0)
}

type styleFile struct {
	Palette      []string `yaml:"palette"`
	AxisColor    string   `yaml:"axis_color"`
	AxisWidth    *float64 `yaml:"axis_width"`
	GridColor    string   `yaml:"grid_color"`
	GridWidth    *float64 `yaml:"grid_width"`
	TextColor    string   `yaml:"text_color"`
	TextSize     *float64 `yaml:"text_size"`
	LineWidth    *float64 `yaml:"line_width"`
	MarkerRadius *float64 `yaml:"marker_radius"`
	Gridlines    *int     `yaml:"gridlines"`
	LegendColumn *float64 `yaml:"legend_column"`
	LegendSample *float64 `yaml:"legend_sample"`
	Language     string   `yaml:"language"`
}

// LoadStyle reads a YAML style document. Keys that are absent keep their
// DefaultStyle value.
func LoadStyle(r io.Reader) (Style, error) {
	var f styleFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return Style{}, fmt.Errorf("decoding style: %w", err)
	}
	return f.apply(DefaultStyle())
}

func (f styleFile) apply(s Style) (Style, error) {
	var err error
	if len(f.Palette) > 0 {
		s.Palette = make(Colors, len(f.Palette))
		for i, h := range f.Palette {
			if s.Palette[i], err = ParseColor(h); err != nil {
				return Style{}, fmt.Errorf("palette entry %d: %w", i, err)
			}
		}
	}
	for _, c := range []struct {
		hex string
		dst *color.NRGBA
	}{
		{f.AxisColor, &s.AxisColor},
		{f.GridColor, &s.GridColor},
		{f.TextColor, &s.TextColor},
	} {
		if c.hex == "" {
			continue
		}
		if *c.dst, err = ParseColor(c.hex); err != nil {
			return Style{}, err
		}
	}
	setFloat(&s.AxisWidth, f.AxisWidth)
	setFloat(&s.GridWidth, f.GridWidth)
	setFloat(&s.TextSize, f.TextSize)
	setFloat(&s.LineWidth, f.LineWidth)
	setFloat(&s.MarkerRadius, f.MarkerRadius)
	setFloat(&s.LegendColumn, f.LegendColumn)
	setFloat(&s.LegendSample, f.LegendSample)
	if f.Gridlines != nil {
		if *f.Gridlines < 0 {
			return Style{}, fmt.Errorf("%w: negative gridline count %d", ErrInvalidInput, *f.Gridlines)
		}
		s.Gridlines = *f.Gridlines
	}
	if f.Language != "" {
		if s.Language, err = language.Parse(f.Language); err != nil {
			return Style{}, fmt.Errorf("%w: language %q: %v", ErrInvalidInput, f.Language, err)
		}
	}
	return s, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
