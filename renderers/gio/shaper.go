package gio

import (
	"errors"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/text"
	"github.com/tdewolff/gioplot/scene"
	"golang.org/x/image/math/fixed"
)

// text is laid out on a single line no wider than this
const maxTextWidth = 1 << 24

var errNoShaper = errors.New("no text shaper")

// NewShaper returns a text shaper with the Go font collection and without system fonts, so
// that text measures the same on every platform.
func NewShaper() *text.Shaper {
	return text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
}

func toGioFont(f scene.Font) font.Font {
	gf := font.Font{Typeface: font.Typeface(f.Family)}
	if f.Bold {
		gf.Weight = font.Bold
	}
	if f.Italic {
		gf.Style = font.Italic
	}
	return gf
}

// font sizes are whole pixels, as for widget.Label
func pxPerEm(size float32) int {
	return int(math.Round(float64(size)))
}

// Measure returns the width and height of the bounding box of a single line of text.
func Measure(shaper *text.Shaper, txt string, f scene.Font) (f32.Point, error) {
	if shaper == nil {
		return f32.Point{}, errNoShaper
	} else if txt == "" || pxPerEm(f.Size) <= 0 {
		return f32.Point{}, nil
	}

	shaper.LayoutString(text.Parameters{
		Font:     toGioFont(f),
		PxPerEm:  fixed.I(pxPerEm(f.Size)),
		MaxLines: 1,
		MaxWidth: maxTextWidth,
	}, txt)

	n := 0
	var left, right, top, bottom fixed.Int26_6
	for g, ok := shaper.NextGlyph(); ok; g, ok = shaper.NextGlyph() {
		y := fixed.I(int(g.Y))
		if n == 0 {
			left, right = g.X, g.X+g.Advance
			top, bottom = y-g.Ascent, y+g.Descent
		} else {
			left = min(left, g.X)
			right = max(right, g.X+g.Advance)
			top = min(top, y-g.Ascent)
			bottom = max(bottom, y+g.Descent)
		}
		n++
	}
	if n == 0 {
		return f32.Point{}, errors.New("no glyphs shaped")
	}
	return f32.Point{
		X: float32(right-left) / 64.0,
		Y: float32(bottom-top) / 64.0,
	}, nil
}
