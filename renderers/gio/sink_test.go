package gio

import (
	"image"
	"testing"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"github.com/tdewolff/gioplot"
	"github.com/tdewolff/gioplot/scene"
	"github.com/tdewolff/test"
)

func newTestContext() layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(200, 100)),
	}
}

func TestSinkEmit(t *testing.T) {
	col := gioplot.RGBA(10, 20, 30, 0.3)
	var tts = []struct {
		name string
		p    scene.Primitive
	}{
		{"rect", scene.Rect{Min: f32.Pt(1, 1), Max: f32.Pt(10, 10), Color: col}},
		{"ellipse", scene.Ellipse{Min: f32.Pt(1, 1), Max: f32.Pt(21, 11), Color: col}},
		{"fill", scene.FillPath{Points: []f32.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}, Color: col}},
		{"fill point", scene.FillPath{Points: []f32.Point{{X: 0, Y: 0}}, Color: col}},
		{"stroke", scene.StrokePath{Points: []f32.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, Width: 2.0, Color: col}},
		{"stroke closed", scene.StrokePath{Points: []f32.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}, Closed: true, Width: 1.0, Color: col}},
		{"stroke zero width", scene.StrokePath{Points: []f32.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, Color: col}},
		{"text", scene.Text{Text: "Hi", Font: scene.Font{Size: 12.0}, Color: col, Origin: f32.Pt(5, 5), Pivot: f32.Pt(5, 5), Rotation: 0.5}},
		{"empty text", scene.Text{Font: scene.Font{Size: 12.0}, Color: col}},
		{"image", scene.Image{Min: f32.Pt(3, 4), Src: image.NewRGBA(image.Rect(0, 0, 4, 4))}},
		{"empty image", scene.Image{Src: image.NewRGBA(image.Rectangle{})}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			sink := NewSink(newTestContext(), testShaper)
			test.Error(t, sink.Emit(tt.p))
		})
	}
}

func TestSinkErrors(t *testing.T) {
	sink := NewSink(newTestContext(), testShaper)
	test.That(t, sink.Emit(nil) != nil, "unsupported primitive accepted")

	size, err := sink.MeasureText("Hi", scene.Font{Size: 12.0})
	test.Error(t, err)
	test.That(t, 0.0 < size.X)

	sink = NewSink(newTestContext(), nil)
	test.T(t, sink.Emit(scene.Text{Text: "Hi", Font: scene.Font{Size: 12.0}}), errNoShaper)
	_, err = sink.MeasureText("Hi", scene.Font{Size: 12.0})
	test.T(t, err, errNoShaper)
}
