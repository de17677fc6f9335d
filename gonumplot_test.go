package gioplot

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func TestGonumPlotSize(t *testing.T) {
	c := NewGonumPlot(NewDrawingArea(&testBackend{w: 96, h: 48}))
	w, h := c.Size()
	test.Float(t, float64(w), 72.0)
	test.Float(t, float64(h), 36.0)
}

func TestGonumPlotStroke(t *testing.T) {
	b := &testBackend{w: 96, h: 48}
	c := NewGonumPlot(NewDrawingArea(b))

	p := vg.Path{}
	p.Move(vg.Point{X: 0, Y: 0})
	p.Line(vg.Point{X: 72, Y: 36})
	c.Stroke(p)

	c.Push()
	c.Translate(vg.Point{X: 3, Y: 3})
	c.SetColor(color.NRGBA{255, 0, 0, 255})
	c.SetLineWidth(3)
	c.SetLineDash([]vg.Length{6, 3}, 0)
	c.Stroke(p)
	c.Pop()
	c.Stroke(p)

	c.SetLineWidth(0)
	c.Stroke(p)
	test.Error(t, c.Err())

	calls := b.ops("DrawPath")
	test.T(t, len(calls), 3)
	test.T(t, calls[0].Points, []Point{{0, 48}, {96, 0}})
	test.T(t, calls[0].Color, Black)
	test.Float(t, calls[0].Stroke.Width, 4.0/3.0)

	test.T(t, calls[1].Points, []Point{{4, 44}, {100, -4}})
	test.T(t, calls[1].Color, Red)
	test.Float(t, calls[1].Stroke.Width, 4.0)
	test.T(t, calls[1].Stroke.Dashes, []float64{8.0, 4.0})

	test.T(t, calls[2], calls[0])
}

func TestGonumPlotFill(t *testing.T) {
	b := &testBackend{w: 96, h: 48}
	c := NewGonumPlot(NewDrawingArea(b))

	p := vg.Path{}
	p.Move(vg.Point{X: 0, Y: 0})
	p.Line(vg.Point{X: 36, Y: 0})
	p.Line(vg.Point{X: 36, Y: 18})
	p.Line(vg.Point{X: 0, Y: 18})
	p.Close()
	c.SetColor(nil)
	c.Fill(p)

	c.Scale(2, 2)
	p = vg.Path{}
	p.Arc(vg.Point{X: 18, Y: 9}, 6, 0, 2*math.Pi)
	c.Fill(p)
	test.Error(t, c.Err())

	calls := b.ops("FillPolygon")
	test.T(t, len(calls), 2)
	test.T(t, calls[0].Points, []Point{{0, 48}, {48, 48}, {48, 24}, {0, 24}})
	test.T(t, calls[0].Color, Black)

	// a circle of radius 16px around (48,24)
	test.That(t, 8 < len(calls[1].Points))
	for _, pt := range calls[1].Points {
		r := math.Hypot(float64(pt.X-48), float64(pt.Y-24))
		test.That(t, math.Abs(r-16.0) < 1.0, "point off the circle", pt)
	}
}

func TestGonumPlotFillString(t *testing.T) {
	b := &testBackend{w: 96, h: 48}
	c := NewGonumPlot(NewDrawingArea(b))
	face := font.DefaultCache.Lookup(plot.DefaultFont, 12)

	c.FillString(face, vg.Point{X: 0, Y: 0}, "plain")
	c.Push()
	c.Scale(2, 2)
	c.FillString(face, vg.Point{X: 0, Y: 0}, "scaled")
	c.Rotate(math.Pi / 2.0)
	c.FillString(face, vg.Point{X: 0, Y: 0}, "rotated")
	c.Pop()
	c.FillString(face, vg.Point{X: 0, Y: 0}, "")
	test.Error(t, c.Err())

	calls := b.ops("DrawText")
	test.T(t, len(calls), 3)
	for i, size := range []float64{16.0, 32.0, 32.0} {
		test.That(t, math.Abs(calls[i].Style.Size-size) < 1e-9, calls[i].Text, calls[i].Style.Size)
	}
	test.That(t, math.Abs(calls[2].Style.Rotation+90.0) < 1e-9, calls[2].Style.Rotation)

	// the top of the text box sits an ascent above the baseline
	ascent := float64(face.Extents().Ascent) * pxPerPt
	test.T(t, calls[0].Points, []Point{{0, int(math.Round(48.0 - ascent))}})
	test.T(t, calls[1].Points, []Point{{0, int(math.Round(48.0 - 2.0*ascent))}})
}

func TestGonumPlotImage(t *testing.T) {
	b := &testBackend{w: 96, h: 48}
	c := NewGonumPlot(NewDrawingArea(b))

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	c.DrawImage(vg.Rectangle{Min: vg.Point{X: 0, Y: 0}, Max: vg.Point{X: 12, Y: 6}}, img)
	test.Error(t, c.Err())

	calls := b.ops("BlitBitmap")
	test.T(t, len(calls), 1)
	test.T(t, calls[0].Points, []Point{{0, 40}})
	test.T(t, calls[0].Image.Bounds(), image.Rect(0, 0, 16, 8))
}

func TestGonumChart(t *testing.T) {
	p := plot.New()
	p.Title.Text = "Squares"
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}, {X: 3, Y: 9}})
	test.Error(t, err)
	p.Add(line)

	b := &testBackend{w: 300, h: 200}
	test.Error(t, GonumChart(p).Plot(NewDrawingArea(b)))
	test.That(t, 0 < len(b.ops("DrawPath")))

	title := false
	for _, call := range b.ops("DrawText") {
		if call.Text == "Squares" {
			title = true
			test.That(t, call.Points[0].Y < 20, "title not at the top", call.Points[0])
		}
	}
	test.That(t, title, "title not drawn")
}
