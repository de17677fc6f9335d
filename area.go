package gioplot

import (
	"image"
	"math"
)

// DrawingArea is a rectangular region of a backend. Coordinates passed to its methods are
// relative to the area's top-left corner. Primitives are not clipped to the area.
type DrawingArea struct {
	backend DrawingBackend
	rect    Rect
}

// NewDrawingArea returns the root area that covers the whole backend.
func NewDrawingArea(b DrawingBackend) *DrawingArea {
	w, h := b.Size()
	return &DrawingArea{
		backend: b,
		rect:    Rect{Point{0, 0}, Point{w, h}},
	}
}

// Backend returns the underlying drawing backend.
func (a *DrawingArea) Backend() DrawingBackend {
	return a.backend
}

// Bounds returns the area in backend pixels.
func (a *DrawingArea) Bounds() Rect {
	return a.rect
}

// Size returns the width and height of the area.
func (a *DrawingArea) Size() (int, int) {
	return a.rect.Dx(), a.rect.Dy()
}

func (a *DrawingArea) abs(p Point) Point {
	return p.Add(a.rect.Min)
}

func (a *DrawingArea) absAll(points []Point) []Point {
	abs := make([]Point, len(points))
	for i, p := range points {
		abs[i] = a.abs(p)
	}
	return abs
}

// Fill fills the whole area with a color.
func (a *DrawingArea) Fill(col Color) error {
	if a.rect.Empty() {
		return nil
	}
	return a.backend.DrawRect(a.rect.Min, a.rect.Max, Filled(col))
}

// Present flushes the backend.
func (a *DrawingArea) Present() error {
	return a.backend.Present()
}

// DrawPixel draws a single pixel.
func (a *DrawingArea) DrawPixel(p Point, col Color) error {
	return a.backend.DrawPixel(a.abs(p), col)
}

// DrawLine draws a line between two points.
func (a *DrawingArea) DrawLine(p0, p1 Point, style StrokeStyle) error {
	return a.backend.DrawLine(a.abs(p0), a.abs(p1), style)
}

// DrawRect draws an axis-aligned rectangle with opposite corners p0 and p1.
func (a *DrawingArea) DrawRect(p0, p1 Point, style ShapeStyle) error {
	return a.backend.DrawRect(a.abs(p0), a.abs(p1), style)
}

// DrawPath draws a polyline.
func (a *DrawingArea) DrawPath(points []Point, style StrokeStyle) error {
	return a.backend.DrawPath(a.absAll(points), style)
}

// FillPolygon fills a polygon, closing it from the last to the first point.
func (a *DrawingArea) FillPolygon(points []Point, col Color) error {
	return a.backend.FillPolygon(a.absAll(points), col)
}

// DrawCircle draws a circle.
func (a *DrawingArea) DrawCircle(center Point, radius float64, style ShapeStyle) error {
	return a.backend.DrawCircle(a.abs(center), radius, style)
}

// DrawText draws text anchored at p.
func (a *DrawingArea) DrawText(text string, style TextStyle, p Point) error {
	return a.backend.DrawText(text, style, a.abs(p))
}

// EstimateTextSize returns the size of the text's bounding box.
func (a *DrawingArea) EstimateTextSize(text string, style TextStyle) (int, int, error) {
	return a.backend.EstimateTextSize(text, style)
}

// BlitBitmap draws an image unscaled with its top-left at p.
func (a *DrawingArea) BlitBitmap(p Point, img image.Image) error {
	return a.backend.BlitBitmap(a.abs(p), img)
}

// sub returns the part of the area within r, inverted edges collapse to an empty area
func (a *DrawingArea) sub(r Rect) *DrawingArea {
	r.Min.X = min(max(r.Min.X, a.rect.Min.X), a.rect.Max.X)
	r.Min.Y = min(max(r.Min.Y, a.rect.Min.Y), a.rect.Max.Y)
	r.Max.X = min(max(r.Max.X, r.Min.X), a.rect.Max.X)
	r.Max.Y = min(max(r.Max.Y, r.Min.Y), a.rect.Max.Y)
	return &DrawingArea{backend: a.backend, rect: r}
}

// Margin returns the area shrunk by the given margins.
func (a *DrawingArea) Margin(top, bottom, left, right int) *DrawingArea {
	return a.sub(Rect{
		Point{a.rect.Min.X + left, a.rect.Min.Y + top},
		Point{a.rect.Max.X - right, a.rect.Max.Y - bottom},
	})
}

// SplitVertically splits the area at y into an upper and a lower part.
func (a *DrawingArea) SplitVertically(y int) (*DrawingArea, *DrawingArea) {
	y = a.rect.Min.Y + y
	upper := a.sub(Rect{a.rect.Min, Point{a.rect.Max.X, y}})
	lower := a.sub(Rect{Point{a.rect.Min.X, y}, a.rect.Max})
	return upper, lower
}

// SplitHorizontally splits the area at x into a left and a right part.
func (a *DrawingArea) SplitHorizontally(x int) (*DrawingArea, *DrawingArea) {
	x = a.rect.Min.X + x
	left := a.sub(Rect{a.rect.Min, Point{x, a.rect.Max.Y}})
	right := a.sub(Rect{Point{x, a.rect.Min.Y}, a.rect.Max})
	return left, right
}

// SplitEvenly splits the area into a grid of rows×cols areas in row-major order. Rounding
// remainders go to the last row and column.
func (a *DrawingArea) SplitEvenly(rows, cols int) []*DrawingArea {
	if rows < 1 || cols < 1 {
		return nil
	}
	w, h := a.Size()
	areas := make([]*DrawingArea, 0, rows*cols)
	for j := 0; j < rows; j++ {
		y0 := a.rect.Min.Y + j*h/rows
		y1 := a.rect.Min.Y + (j+1)*h/rows
		for i := 0; i < cols; i++ {
			x0 := a.rect.Min.X + i*w/cols
			x1 := a.rect.Min.X + (i+1)*w/cols
			areas = append(areas, a.sub(Rect{Point{x0, y0}, Point{x1, y1}}))
		}
	}
	return areas
}

// Titled draws a title centered at the top of the area and returns the area below it.
func (a *DrawingArea) Titled(title string, style TextStyle) (*DrawingArea, error) {
	_, h, err := a.EstimateTextSize(title, style)
	if err != nil {
		return nil, err
	}
	w, _ := a.Size()
	style.Anchor = Anchor{HMiddle, VTop}
	style.Rotation = 0.0
	if err := a.DrawText(title, style, Point{int(math.Round(float64(w) / 2.0)), 0}); err != nil {
		return nil, err
	}
	_, lower := a.SplitVertically(h)
	return lower, nil
}
