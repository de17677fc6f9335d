package gio

import (
	"fmt"
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/tdewolff/gioplot/scene"
)

// Sink receives scene primitives for the current frame and measures text. It is only valid
// during the paint call that provided it.
type Sink interface {
	Emit(p scene.Primitive) error
	MeasureText(text string, font scene.Font) (f32.Point, error)
}

// OpsSink is a Sink that adds primitives as Gio operations to a frame's op.Ops.
type OpsSink struct {
	gtx    layout.Context
	shaper *text.Shaper
}

// NewSink returns a sink that draws into gtx.Ops and shapes text with shaper.
func NewSink(gtx layout.Context, shaper *text.Shaper) *OpsSink {
	return &OpsSink{
		gtx:    gtx,
		shaper: shaper,
	}
}

// MeasureText measures a single line of text.
func (s *OpsSink) MeasureText(txt string, f scene.Font) (f32.Point, error) {
	return Measure(s.shaper, txt, f)
}

// Emit adds the operations for p.
func (s *OpsSink) Emit(p scene.Primitive) error {
	ops := s.gtx.Ops
	switch p := p.(type) {
	case scene.Rect:
		corners := []f32.Point{p.Min, {X: p.Max.X, Y: p.Min.Y}, p.Max, {X: p.Min.X, Y: p.Max.Y}}
		paint.FillShape(ops, p.Color.NRGBA(), clip.Outline{Path: polyline(ops, corners, true)}.Op())
	case scene.Ellipse:
		paint.FillShape(ops, p.Color.NRGBA(), clip.Outline{Path: ellipse(ops, p.Min, p.Max)}.Op())
	case scene.FillPath:
		if len(p.Points) < 2 {
			return nil
		}
		paint.FillShape(ops, p.Color.NRGBA(), clip.Outline{Path: polyline(ops, p.Points, true)}.Op())
	case scene.StrokePath:
		if len(p.Points) < 2 || p.Width <= 0.0 {
			return nil
		}
		paint.FillShape(ops, p.Color.NRGBA(), clip.Stroke{Path: polyline(ops, p.Points, p.Closed), Width: p.Width}.Op())
	case scene.Text:
		return s.text(p)
	case scene.Image:
		size := p.Src.Bounds().Size()
		if size.X <= 0 || size.Y <= 0 {
			return nil
		}
		defer op.Affine(f32.Affine2D{}.Offset(p.Min)).Push(ops).Pop()
		defer clip.Rect{Max: size}.Push(ops).Pop()
		img := paint.NewImageOp(p.Src)
		img.Filter = paint.FilterNearest
		img.Add(ops)
		paint.PaintOp{}.Add(ops)
	default:
		return fmt.Errorf("unsupported primitive %T", p)
	}
	return nil
}

func (s *OpsSink) text(t scene.Text) error {
	if s.shaper == nil {
		return errNoShaper
	}
	size := pxPerEm(t.Font.Size)
	if t.Text == "" || size <= 0 {
		return nil
	}

	gtx := s.gtx
	gtx.Constraints = layout.Constraints{Max: image.Point{maxTextWidth, maxTextWidth}}
	defer op.Affine(f32.Affine2D{}.Offset(t.Origin).Rotate(t.Pivot, t.Rotation)).Push(gtx.Ops).Pop()

	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: t.Color.NRGBA()}.Add(gtx.Ops)
	material := m.Stop()

	sp := unit.Sp(float32(size) / nonZero(gtx.Metric.PxPerSp))
	widget.Label{MaxLines: 1}.Layout(gtx, s.shaper, toGioFont(t.Font), sp, t.Text, material)
	return nil
}

func nonZero(v float32) float32 {
	if v == 0.0 {
		return 1.0
	}
	return v
}

func polyline(ops *op.Ops, points []f32.Point, closed bool) clip.PathSpec {
	p := clip.Path{}
	p.Begin(ops)
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	if closed {
		p.Close()
	}
	return p.End()
}

// ellipse approximates the ellipse inscribed in p0-p1 by four cubic Béziers
func ellipse(ops *op.Ops, p0, p1 f32.Point) clip.PathSpec {
	const kappa = 4.0 * (math.Sqrt2 - 1.0) / 3.0
	c := p0.Add(p1).Mul(0.5)
	rx, ry := (p1.X-p0.X)/2.0, (p1.Y-p0.Y)/2.0
	kx, ky := float32(kappa)*rx, float32(kappa)*ry

	p := clip.Path{}
	p.Begin(ops)
	p.MoveTo(f32.Pt(c.X+rx, c.Y))
	p.CubeTo(f32.Pt(c.X+rx, c.Y+ky), f32.Pt(c.X+kx, c.Y+ry), f32.Pt(c.X, c.Y+ry))
	p.CubeTo(f32.Pt(c.X-kx, c.Y+ry), f32.Pt(c.X-rx, c.Y+ky), f32.Pt(c.X-rx, c.Y))
	p.CubeTo(f32.Pt(c.X-rx, c.Y-ky), f32.Pt(c.X-kx, c.Y-ry), f32.Pt(c.X, c.Y-ry))
	p.CubeTo(f32.Pt(c.X+kx, c.Y-ry), f32.Pt(c.X+rx, c.Y-ky), f32.Pt(c.X+rx, c.Y))
	p.Close()
	return p.End()
}
