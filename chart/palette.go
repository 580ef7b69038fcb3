package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// PaletteSize is the number of distinct series colors. Series beyond this
// count reuse colors from the start of the palette.
const PaletteSize = 10

// Colors is an ordered list of colors indexed by series.
type Colors []color.NRGBA

// Palette holds the series colors, shared read-only by every chart.
var Palette = mustParseColors(
	"#0000FF", "#FF0000", "#00FF00", "#800080", "#80604D",
	"#F05E23", "#FFFF00", "#00FFFF", "#FF00FF", "#FFCBA4",
)

// At returns the color for index i, wrapping around the end of the list.
func (c Colors) At(i int) color.NRGBA {
	if len(c) == 0 {
		return color.NRGBA{A: 0xff}
	}
	i %= len(c)
	if i < 0 {
		i += len(c)
	}
	return c[i]
}

// ParseColor parses #RRGGBB or #RRGGBBAA.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: color %q is not #RRGGBB or #RRGGBBAA", ErrInvalidInput, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalidInput, s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func mustParseColors(hex ...string) Colors {
	out := make(Colors, 0, len(hex))
	for _, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}
