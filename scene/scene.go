// Package scene contains the primitives that the Gio backend emits to a paint sink, and a
// Recorder sink that keeps them for inspection.
package scene

import (
	"image"

	"gioui.org/f32"
	"github.com/tdewolff/gioplot"
)

// Primitive is one of Rect, Ellipse, FillPath, StrokePath, Text or Image. Coordinates are in
// device-independent pixels. Colors keep their floating-point alpha, sinks quantize it to
// whatever their target supports.
type Primitive interface {
	primitive()
}

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	Min, Max f32.Point
	Color    gioplot.Color
}

// Ellipse is a filled ellipse inscribed in the rectangle Min-Max.
type Ellipse struct {
	Min, Max f32.Point
	Color    gioplot.Color
}

// FillPath is a filled polygon, implicitly closed, using the non-zero winding rule.
type FillPath struct {
	Points []f32.Point
	Color  gioplot.Color
}

// StrokePath is a solid butt-capped stroked polyline.
type StrokePath struct {
	Points []f32.Point
	Closed bool
	Width  float32
	Color  gioplot.Color
}

// Font selects a face from the toolkit's text system. Size is in pixels.
type Font struct {
	Family string
	Size   float32
	Bold   bool
	Italic bool
}

// Text is a single line of text. Origin is the top-left of the unrotated text box of the
// given Size, and the box is rotated by Rotation radians clockwise around Pivot.
type Text struct {
	Text     string
	Font     Font
	Color    gioplot.Color
	Origin   f32.Point
	Size     f32.Point
	Pivot    f32.Point
	Rotation float32
}

// Image is a raster image drawn unscaled with its top-left at Min.
type Image struct {
	Min f32.Point
	Src image.Image
}

func (Rect) primitive()       {}
func (Ellipse) primitive()    {}
func (FillPath) primitive()   {}
func (StrokePath) primitive() {}
func (Text) primitive()       {}
func (Image) primitive()      {}

// Center returns the center of the unrotated text box.
func (t Text) Center() f32.Point {
	return t.Origin.Add(t.Size.Mul(0.5))
}

// Area returns the area of the rectangle.
func (r Rect) Area() float32 {
	return (r.Max.X - r.Min.X) * (r.Max.Y - r.Min.Y)
}
