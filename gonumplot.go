package gioplot

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
)

const pxPerPt = 96.0 / 72.0

type gonumState struct {
	m          matrix
	color      Color
	width      vg.Length
	dashes     []vg.Length
	dashOffset vg.Length
}

// GonumPlot is a gonum.org/v1/plot/vg canvas that draws into a DrawingArea. One point is
// 96/72 pixels. The vg methods cannot return errors, the first one is kept and returned by Err.
type GonumPlot struct {
	area   *DrawingArea
	height float64
	state  gonumState
	stack  []gonumState
	err    error
}

var _ vg.CanvasSizer = (*GonumPlot)(nil)

// NewGonumPlot returns a gonum.org/v1/plot/vg canvas for the area.
func NewGonumPlot(area *DrawingArea) *GonumPlot {
	_, h := area.Size()
	return &GonumPlot{
		area:   area,
		height: float64(h),
		state: gonumState{
			m:     identity,
			color: Black,
			width: 1.0,
		},
	}
}

// GonumChart returns a chart that draws p over the whole root area.
func GonumChart(p *plot.Plot) Chart {
	return ChartFunc(func(root *DrawingArea) error {
		c := NewGonumPlot(root)
		p.Draw(vgdraw.New(c))
		return c.Err()
	})
}

// Err returns the first drawing error.
func (r *GonumPlot) Err() error {
	return r.err
}

func (r *GonumPlot) keep(err error) {
	if r.err == nil {
		r.err = err
	}
}

// px transforms a point from user space to pixels.
func (r *GonumPlot) px(x, y vg.Length) vec {
	X, Y := r.state.m.dot(float64(x), float64(y))
	return vec{X * pxPerPt, r.height - Y*pxPerPt}
}

// Size returns the width and height of the area in points.
func (r *GonumPlot) Size() (vg.Length, vg.Length) {
	w, h := r.area.Size()
	return vg.Length(float64(w) / pxPerPt), vg.Length(float64(h) / pxPerPt)
}

// SetLineWidth sets the width of stroked paths. If the width is not positive then stroked
// lines are not drawn.
func (r *GonumPlot) SetLineWidth(length vg.Length) {
	r.state.width = length
}

// SetLineDash sets the dash pattern for lines.
func (r *GonumPlot) SetLineDash(pattern []vg.Length, offset vg.Length) {
	r.state.dashes = append([]vg.Length{}, pattern...)
	r.state.dashOffset = offset
}

// SetColor sets the fill and stroke color, nil is black.
func (r *GonumPlot) SetColor(col color.Color) {
	r.state.color = FromColor(col)
}

// Rotate applies a rotation in radians.
func (r *GonumPlot) Rotate(rad float64) {
	r.state.m = r.state.m.rotate(rad)
}

// Translate applies a translation.
func (r *GonumPlot) Translate(pt vg.Point) {
	r.state.m = r.state.m.translate(float64(pt.X), float64(pt.Y))
}

// Scale applies a scaling.
func (r *GonumPlot) Scale(x, y float64) {
	r.state.m = r.state.m.scale(x, y)
}

// Push saves the line width, dash pattern, transformation and color.
func (r *GonumPlot) Push() {
	state := r.state
	state.dashes = append([]vg.Length{}, state.dashes...)
	r.stack = append(r.stack, state)
}

// Pop restores the state saved by the corresponding Push.
func (r *GonumPlot) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *GonumPlot) path(p vg.Path) *path {
	pp := &path{}
	for _, comp := range p {
		switch comp.Type {
		case vg.MoveComp:
			pp.moveTo(r.px(comp.Pos.X, comp.Pos.Y))
		case vg.LineComp:
			pp.lineTo(r.px(comp.Pos.X, comp.Pos.Y))
		case vg.ArcComp:
			f := func(v vec) vec {
				return r.px(vg.Length(v.x), vg.Length(v.y))
			}
			center := vec{float64(comp.Pos.X), float64(comp.Pos.Y)}
			radius := float64(comp.Radius)
			if pp.empty() {
				sin, cos := math.Sincos(comp.Start)
				pp.moveTo(f(vec{center.x + radius*cos, center.y + radius*sin}))
			}
			pp.arc(f, center, radius, radius, comp.Start, comp.Angle)
		case vg.CurveComp:
			switch len(comp.Control) {
			case 1:
				pp.quadTo(r.px(comp.Control[0].X, comp.Control[0].Y), r.px(comp.Pos.X, comp.Pos.Y))
			case 2:
				pp.cubeTo(r.px(comp.Control[0].X, comp.Control[0].Y), r.px(comp.Control[1].X, comp.Control[1].Y), r.px(comp.Pos.X, comp.Pos.Y))
			default:
				pp.lineTo(r.px(comp.Pos.X, comp.Pos.Y))
			}
		case vg.CloseComp:
			pp.close()
		}
	}
	return pp
}

// Stroke strokes the given path.
func (r *GonumPlot) Stroke(p vg.Path) {
	if r.state.width <= 0.0 {
		return
	}
	style := StrokeStyle{
		Color:      r.state.color,
		Width:      float64(r.state.width) * pxPerPt,
		DashOffset: float64(r.state.dashOffset) * pxPerPt,
	}
	for _, d := range r.state.dashes {
		style.Dashes = append(style.Dashes, float64(d)*pxPerPt)
	}
	r.keep(r.path(p).stroke(r.area, style))
}

// Fill fills the given path.
func (r *GonumPlot) Fill(p vg.Path) {
	r.keep(r.path(p).fill(r.area, r.state.color))
}

// FillString fills in text with its baseline starting at pt. The font size is scaled along
// with the transformation. If the font size is zero, the text is not drawn.
func (r *GonumPlot) FillString(f font.Face, pt vg.Point, text string) {
	if f.Font.Size == 0 || text == "" {
		return
	}

	style := TextStyle{
		Family:   string(f.Font.Typeface),
		Size:     float64(f.Font.Size) * r.state.m.xscale() * pxPerPt,
		Color:    r.state.color,
		Rotation: -r.state.m.theta() * 180.0 / math.Pi,
	}
	if xfont.WeightSemiBold <= f.Font.Weight {
		style.Weight = FontBold
	}
	switch f.Font.Style {
	case xfont.StyleItalic:
		style.Slant = FontItalic
	case xfont.StyleOblique:
		style.Slant = FontOblique
	}

	// the backend anchors text at the top of its box
	top := r.px(pt.X, pt.Y+f.Extents().Ascent)
	r.keep(r.area.DrawText(text, style, top.point()))
}

// DrawImage draws the image scaled to fit the destination rectangle.
func (r *GonumPlot) DrawImage(rect vg.Rectangle, img image.Image) {
	if img.Bounds().Empty() {
		return
	}
	p0 := r.px(rect.Min.X, rect.Min.Y).point()
	p1 := r.px(rect.Max.X, rect.Max.Y).point()
	dst := Rect{p0, p1}.Canon()
	if dst.Empty() {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dst.Dx(), dst.Dy()))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	r.keep(r.area.BlitBitmap(dst.Min, scaled))
}
