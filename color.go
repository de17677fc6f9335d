package gioplot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with 8-bit channels and a floating-point alpha in [0,1].
type Color struct {
	R, G, B uint8
	A       float64
}

// Common colors.
var (
	Transparent = Color{0, 0, 0, 0.0}
	Black       = Color{0, 0, 0, 1.0}
	White       = Color{255, 255, 255, 1.0}
	Red         = Color{255, 0, 0, 1.0}
	Green       = Color{0, 255, 0, 1.0}
	Blue        = Color{0, 0, 255, 1.0}
	Cyan        = Color{0, 255, 255, 1.0}
	Magenta     = Color{255, 0, 255, 1.0}
	Yellow      = Color{255, 255, 0, 1.0}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 1.0}
}

// RGBA returns a color with alpha a, clamped to [0,1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{r, g, b, clampAlpha(a)}
}

// Hex parses a CSS hexadecimal color such as #ff0000, F00 or #ff000080. Malformed colors are
// black.
func Hex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	h := make([]uint8, len(s))
	for i, c := range []byte(s) {
		switch {
		case '0' <= c && c <= '9':
			h[i] = c - '0'
		case 'a' <= c && c <= 'f':
			h[i] = 10 + c - 'a'
		case 'A' <= c && c <= 'F':
			h[i] = 10 + c - 'A'
		default:
			return Black
		}
	}
	switch len(h) {
	case 3, 4:
		col := Color{h[0] * 17, h[1] * 17, h[2] * 17, 1.0}
		if len(h) == 4 {
			col.A = float64(h[3]*17) / 255.0
		}
		return col
	case 6, 8:
		col := Color{h[0]*16 + h[1], h[2]*16 + h[3], h[4]*16 + h[5], 1.0}
		if len(h) == 8 {
			col.A = float64(h[6]*16+h[7]) / 255.0
		}
		return col
	}
	return Black
}

// Mix returns the color with alpha replaced.
func (c Color) Mix(a float64) Color {
	c.A = clampAlpha(a)
	return c
}

// NRGBA converts to Gio's non-premultiplied sRGB color. No gamma conversion is done.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(math.Round(clampAlpha(c.A) * 255.0))}
}

// FromNRGBA is the inverse of Color.NRGBA.
func FromNRGBA(col color.NRGBA) Color {
	return Color{col.R, col.G, col.B, float64(col.A) / 255.0}
}

// FromColor converts any image/color value.
func FromColor(col color.Color) Color {
	if col == nil {
		return Black
	}
	return FromNRGBA(color.NRGBAModel.Convert(col).(color.NRGBA))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// HSL returns the hue in degrees, and the saturation and lightness in [0,1].
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// HSL returns an opaque color from hue in degrees, and saturation and lightness in [0,1].
func HSL(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(h, s, l), 1.0)
}

// HSLA is like HSL with an alpha channel.
func HSLA(h, s, l, a float64) Color {
	return fromColorful(colorful.Hsl(h, s, l), a)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

func fromColorful(col colorful.Color, a float64) Color {
	r, g, b := col.Clamped().RGB255()
	return Color{r, g, b, clampAlpha(a)}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.A)
}

func clampAlpha(a float64) float64 {
	if math.IsNaN(a) || a < 0.0 {
		return 0.0
	} else if 1.0 < a {
		return 1.0
	}
	return a
}

var palette9 = [9]Color{
	{230, 25, 75, 1.0},
	{60, 180, 75, 1.0},
	{255, 225, 25, 1.0},
	{0, 130, 200, 1.0},
	{245, 130, 48, 1.0},
	{145, 30, 180, 1.0},
	{70, 240, 240, 1.0},
	{240, 50, 230, 1.0},
	{210, 245, 60, 1.0},
}

// Palette returns a color for series i. The first nine are fixed, further colors step the
// hue by the golden angle.
func Palette(i int) Color {
	if i < 0 {
		i = -i
	}
	if i < len(palette9) {
		return palette9[i]
	}
	const goldenAngle = 137.50776405003785
	h := math.Mod(float64(i-len(palette9))*goldenAngle, 360.0)
	return HSL(h, 0.65, 0.5)
}
