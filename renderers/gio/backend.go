package gio

import (
	"image"
	"math"

	"gioui.org/f32"
	"github.com/tdewolff/gioplot"
	"github.com/tdewolff/gioplot/scene"
)

// Bounds is the pixel rectangle of a chart in device-independent pixels.
type Bounds struct {
	Origin f32.Point
	Size   f32.Point
}

// Backend is a gioplot.DrawingBackend that turns drawing primitives into scene primitives for
// a Sink. It is created for a single paint and must not be kept afterwards: once the paint
// returns every primitive fails.
//
// Strokes are drawn by Gio's stroker, which has butt caps and solid lines. Dashes are drawn as
// separate strokes, round caps as discs at the open ends and square caps by lengthening the
// open ends. Joins are whatever Gio produces.
type Backend struct {
	sink   Sink
	bounds Bounds
}

var _ gioplot.DrawingBackend = (*Backend)(nil)

// NewBackend returns a backend drawing into sink at bounds.
func NewBackend(sink Sink, bounds Bounds) *Backend {
	return &Backend{
		sink:   sink,
		bounds: bounds,
	}
}

func (b *Backend) release() {
	b.sink = nil
}

// Size returns the bounds' size rounded to whole pixels.
func (b *Backend) Size() (int, int) {
	return int(math.Round(float64(b.bounds.Size.X))), int(math.Round(float64(b.bounds.Size.Y)))
}

// EnsurePrepared does nothing, the backend is always ready.
func (b *Backend) EnsurePrepared() error {
	return nil
}

// Present does nothing, Gio presents the frame.
func (b *Backend) Present() error {
	return nil
}

func (b *Backend) point(p gioplot.Point) f32.Point {
	return f32.Point{
		X: b.bounds.Origin.X + float32(p.X),
		Y: b.bounds.Origin.Y + float32(p.Y),
	}
}

func (b *Backend) points(ps []gioplot.Point) []f32.Point {
	points := make([]f32.Point, len(ps))
	for i, p := range ps {
		points[i] = b.point(p)
	}
	return points
}

func (b *Backend) emit(p scene.Primitive) error {
	if b.sink == nil {
		return gioplot.NewBackendError("backend used outside of paint", nil)
	}
	if err := b.sink.Emit(p); err != nil {
		return gioplot.NewBackendError("sink refused primitive", err)
	}
	return nil
}

// DrawPixel draws a 1×1 rectangle.
func (b *Backend) DrawPixel(p gioplot.Point, col gioplot.Color) error {
	if w, h := b.Size(); w == 0 || h == 0 {
		return nil
	}
	q := b.point(p)
	return b.emit(scene.Rect{
		Min:   q,
		Max:   q.Add(f32.Point{X: 1.0, Y: 1.0}),
		Color: col,
	})
}

// DrawLine draws a line, or a pixel if both ends coincide.
func (b *Backend) DrawLine(p0, p1 gioplot.Point, style gioplot.StrokeStyle) error {
	if p0 == p1 {
		return b.DrawPixel(p0, style.Color)
	}
	return b.stroke([]f32.Point{b.point(p0), b.point(p1)}, false, style)
}

// DrawRect draws a filled or outlined axis-aligned rectangle with opposite corners p0 and p1.
func (b *Backend) DrawRect(p0, p1 gioplot.Point, style gioplot.ShapeStyle) error {
	r := gioplot.Rect{Min: p0, Max: p1}.Canon()
	q0, q1 := b.point(r.Min), b.point(r.Max)
	if style.Filled {
		return b.emit(scene.Rect{
			Min:   q0,
			Max:   q1,
			Color: style.Color,
		})
	}
	corners := []f32.Point{q0, {X: q1.X, Y: q0.Y}, q1, {X: q0.X, Y: q1.Y}}
	return b.stroke(corners, true, style.Stroke())
}

// DrawPath draws a polyline. A single point draws a pixel.
func (b *Backend) DrawPath(points []gioplot.Point, style gioplot.StrokeStyle) error {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return b.DrawPixel(points[0], style.Color)
	}
	return b.stroke(b.points(points), false, style)
}

// FillPolygon fills a polygon using the non-zero winding rule.
func (b *Backend) FillPolygon(points []gioplot.Point, col gioplot.Color) error {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return b.DrawPixel(points[0], col)
	}
	return b.emit(scene.FillPath{
		Points: b.points(points),
		Color:  col,
	})
}

// DrawCircle draws a filled circle as an ellipse and an outlined circle as a regular polygon.
func (b *Backend) DrawCircle(center gioplot.Point, radius float64, style gioplot.ShapeStyle) error {
	c := b.point(center)
	if style.Filled {
		if radius <= 0.0 {
			return b.DrawPixel(center, style.Color)
		}
		r := float32(radius)
		return b.emit(scene.Ellipse{
			Min:   c.Sub(f32.Point{X: r, Y: r}),
			Max:   c.Add(f32.Point{X: r, Y: r}),
			Color: style.Color,
		})
	} else if radius <= 0.0 {
		return nil
	}
	return b.stroke(regularPolygon(c, float32(radius), circleSides(radius)), true, style.Stroke())
}

func (b *Backend) font(style gioplot.TextStyle) scene.Font {
	return scene.Font{
		Family: style.Family,
		Size:   float32(style.Size),
		Bold:   style.Weight == gioplot.FontBold,
		Italic: style.Slant != gioplot.FontUpright,
	}
}

func (b *Backend) measure(text string, font scene.Font) (f32.Point, error) {
	if b.sink == nil {
		return f32.Point{}, gioplot.NewBackendError("backend used outside of paint", nil)
	}
	size, err := b.sink.MeasureText(text, font)
	if err != nil {
		return f32.Point{}, gioplot.NewBackendError("text shaping failed", err)
	}
	return size, nil
}

// DrawText draws a line of text. The text is measured and shifted so that its anchor lands on
// p, and then rotated around p.
func (b *Backend) DrawText(text string, style gioplot.TextStyle, p gioplot.Point) error {
	if text == "" {
		return nil
	}
	font := b.font(style)
	size, err := b.measure(text, font)
	if err != nil {
		return err
	}

	dx, dy := style.Anchor.Offset(float64(size.X), float64(size.Y))
	pivot := b.point(p)
	return b.emit(scene.Text{
		Text:     text,
		Font:     font,
		Color:    style.Color,
		Origin:   pivot.Add(f32.Point{X: float32(dx), Y: float32(dy)}),
		Size:     size,
		Pivot:    pivot,
		Rotation: float32(style.Rotation * math.Pi / 180.0),
	})
}

// EstimateTextSize returns the text's bounding box rounded up to whole pixels.
func (b *Backend) EstimateTextSize(text string, style gioplot.TextStyle) (int, int, error) {
	if text == "" {
		return 0, 0, nil
	}
	size, err := b.measure(text, b.font(style))
	if err != nil {
		return 0, 0, err
	}
	return int(math.Ceil(float64(size.X))), int(math.Ceil(float64(size.Y))), nil
}

// BlitBitmap draws an image unscaled.
func (b *Backend) BlitBitmap(p gioplot.Point, img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	return b.emit(scene.Image{
		Min: b.point(p),
		Src: img,
	})
}

func (b *Backend) stroke(points []f32.Point, closed bool, style gioplot.StrokeStyle) error {
	if style.Width <= 0.0 {
		return nil
	}
	width := float32(style.Width)
	col := style.Color

	parts := [][]f32.Point{points}
	if style.IsDashed() {
		dashes := make([]float32, len(style.Dashes))
		for i, d := range style.Dashes {
			dashes[i] = float32(d)
		}
		parts = dashPolyline(points, closed, dashes, float32(style.DashOffset))
		closed = false
	}

	for _, part := range parts {
		if !closed && style.Cap == gioplot.SquareCap {
			part = extendEnds(part, width/2.0)
		}
		if err := b.emit(scene.StrokePath{
			Points: part,
			Closed: closed,
			Width:  width,
			Color:  col,
		}); err != nil {
			return err
		}
		if !closed && style.Cap == gioplot.RoundCap {
			r := f32.Point{X: width / 2.0, Y: width / 2.0}
			for _, end := range []f32.Point{part[0], part[len(part)-1]} {
				if err := b.emit(scene.Ellipse{Min: end.Sub(r), Max: end.Add(r), Color: col}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
