package gioplot

import (
	"image"
	"unicode/utf8"
)

type drawCall struct {
	Op     string
	Points []Point
	Color  Color
	Text   string
	Style  TextStyle
	Stroke StrokeStyle
	Shape  ShapeStyle
	Radius float64
	Image  image.Image
}

// testBackend records every primitive. Text is 6px per rune wide and 10px high.
type testBackend struct {
	w, h  int
	calls []drawCall
	err   error
}

func (b *testBackend) record(c drawCall) error {
	b.calls = append(b.calls, c)
	return b.err
}

func (b *testBackend) ops(op string) []drawCall {
	calls := []drawCall{}
	for _, c := range b.calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}

func (b *testBackend) Size() (int, int)      { return b.w, b.h }
func (b *testBackend) EnsurePrepared() error { return nil }
func (b *testBackend) Present() error        { return b.record(drawCall{Op: "Present"}) }

func (b *testBackend) DrawPixel(p Point, col Color) error {
	return b.record(drawCall{Op: "DrawPixel", Points: []Point{p}, Color: col})
}

func (b *testBackend) DrawLine(p0, p1 Point, style StrokeStyle) error {
	return b.record(drawCall{Op: "DrawLine", Points: []Point{p0, p1}, Color: style.Color, Stroke: style})
}

func (b *testBackend) DrawRect(p0, p1 Point, style ShapeStyle) error {
	return b.record(drawCall{Op: "DrawRect", Points: []Point{p0, p1}, Color: style.Color, Shape: style})
}

func (b *testBackend) DrawPath(points []Point, style StrokeStyle) error {
	return b.record(drawCall{Op: "DrawPath", Points: points, Color: style.Color, Stroke: style})
}

func (b *testBackend) FillPolygon(points []Point, col Color) error {
	return b.record(drawCall{Op: "FillPolygon", Points: points, Color: col})
}

func (b *testBackend) DrawCircle(center Point, radius float64, style ShapeStyle) error {
	return b.record(drawCall{Op: "DrawCircle", Points: []Point{center}, Color: style.Color, Shape: style, Radius: radius})
}

func (b *testBackend) DrawText(text string, style TextStyle, p Point) error {
	return b.record(drawCall{Op: "DrawText", Points: []Point{p}, Color: style.Color, Text: text, Style: style})
}

func (b *testBackend) EstimateTextSize(text string, style TextStyle) (int, int, error) {
	return 6 * utf8.RuneCountInString(text), 10, nil
}

func (b *testBackend) BlitBitmap(p Point, img image.Image) error {
	return b.record(drawCall{Op: "BlitBitmap", Points: []Point{p}, Image: img})
}
