package gioplot

import (
	"fmt"
	"image"
)

// Point is a pixel coordinate, the top-left corner of a logical 1×1 pixel. The origin is at
// the top-left and y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{x, y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a pixel rectangle spanning [Min,Max).
type Rect struct {
	Min, Max Point
}

// Dx returns the width.
func (r Rect) Dx() int {
	return r.Max.X - r.Min.X
}

// Dy returns the height.
func (r Rect) Dy() int {
	return r.Max.Y - r.Min.Y
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Dx() <= 0 || r.Dy() <= 0
}

// Canon returns the rectangle with Min and Max swapped where needed.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// DrawingBackend is the set of drawing primitives that plotting code issues. Coordinates are
// integer pixels relative to the top-left of the backend's area. Every primitive returns nil
// or a *BackendError. Coordinates outside of the area are never an error.
type DrawingBackend interface {
	// Size returns the width and height in pixels that plotting code draws into.
	Size() (int, int)

	// EnsurePrepared is called before drawing starts.
	EnsurePrepared() error

	// Present is called when drawing is done.
	Present() error

	DrawPixel(p Point, col Color) error
	DrawLine(p0, p1 Point, style StrokeStyle) error
	DrawRect(p0, p1 Point, style ShapeStyle) error
	DrawPath(points []Point, style StrokeStyle) error
	FillPolygon(points []Point, col Color) error
	DrawCircle(center Point, radius float64, style ShapeStyle) error
	DrawText(text string, style TextStyle, p Point) error

	// EstimateTextSize returns the size of the text's bounding box in pixels.
	EstimateTextSize(text string, style TextStyle) (int, int, error)

	// BlitBitmap draws img unscaled with its top-left at p.
	BlitBitmap(p Point, img image.Image) error
}
