package gioplot

import (
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	xfont "golang.org/x/image/font"
)

// Renderable is a go-chart chart, such as chart.Chart, chart.BarChart or chart.PieChart.
type Renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// GoChart returns a chart that renders c over the whole root area.
func GoChart(c Renderable) Chart {
	return ChartFunc(func(root *DrawingArea) error {
		return c.Render(NewGoChart(root), io.Discard)
	})
}

type goChartCircle struct {
	x, y   int
	radius float64
}

// GoChartRenderer is a github.com/wcharczuk/go-chart renderer that draws into a DrawingArea.
// The renderer methods cannot return errors, the first one is returned by Save.
type GoChartRenderer struct {
	area    *DrawingArea
	sx, sy  float64
	dpi     float64
	path    path
	circles []goChartCircle

	strokeColor Color
	fillColor   Color
	strokeWidth float64
	dashes      []float64

	font         *truetype.Font
	fontFamily   string
	fontSize     float64
	fontColor    Color
	face         xfont.Face
	textRotation float64

	err error
}

// NewGoChart returns a github.com/wcharczuk/go-chart renderer provider for the area. The
// chart's requested size is scaled to the size of the area.
func NewGoChart(area *DrawingArea) chart.RendererProvider {
	return func(w, h int) (chart.Renderer, error) {
		aw, ah := area.Size()
		r := &GoChartRenderer{
			area:     area,
			sx:       1.0,
			sy:       1.0,
			dpi:      chart.DefaultDPI,
			fontSize: 12.0, // default of github.com/golang/freetype/truetype
		}
		if 0 < w {
			r.sx = float64(aw) / float64(w)
		}
		if 0 < h {
			r.sy = float64(ah) / float64(h)
		}
		r.ResetStyle()

		f, err := chart.GetDefaultFont()
		if err != nil {
			return nil, err
		}
		r.SetFont(f)
		return r, nil
	}
}

func (r *GoChartRenderer) keep(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *GoChartRenderer) px(x, y float64) vec {
	return vec{x * r.sx, y * r.sy}
}

func (r *GoChartRenderer) scale() float64 {
	return math.Min(r.sx, r.sy)
}

func fromDrawingColor(col drawing.Color) Color {
	return Color{col.R, col.G, col.B, float64(col.A) / 255.0}
}

// ResetStyle resets any style related settings of the renderer.
func (r *GoChartRenderer) ResetStyle() {
	r.strokeColor = Transparent
	r.fillColor = Transparent
	r.strokeWidth = chart.DefaultStrokeWidth
	r.dashes = nil
	r.fontColor = Transparent
	r.textRotation = 0.0
}

// GetDPI gets the DPI for the renderer.
func (r *GoChartRenderer) GetDPI() float64 {
	return r.dpi
}

// SetDPI sets the DPI for the renderer.
func (r *GoChartRenderer) SetDPI(dpi float64) {
	r.dpi = dpi
	r.face = nil
}

// SetClassName is ignored, there are no classes on a backend.
func (r *GoChartRenderer) SetClassName(name string) {
}

// SetStrokeColor sets the current stroke color.
func (r *GoChartRenderer) SetStrokeColor(col drawing.Color) {
	r.strokeColor = fromDrawingColor(col)
}

// SetFillColor sets the current fill color.
func (r *GoChartRenderer) SetFillColor(col drawing.Color) {
	r.fillColor = fromDrawingColor(col)
}

// SetStrokeWidth sets the stroke width.
func (r *GoChartRenderer) SetStrokeWidth(width float64) {
	r.strokeWidth = width
}

// SetStrokeDashArray sets the stroke dash array.
func (r *GoChartRenderer) SetStrokeDashArray(dashArray []float64) {
	r.dashes = append(r.dashes[:0], dashArray...)
}

// MoveTo moves the cursor to a given point.
func (r *GoChartRenderer) MoveTo(x, y int) {
	r.path.moveTo(r.px(float64(x), float64(y)))
}

// LineTo both starts a shape and draws a line to a given point from the previous point.
func (r *GoChartRenderer) LineTo(x, y int) {
	r.path.lineTo(r.px(float64(x), float64(y)))
}

// QuadCurveTo draws a quad curve. cx and cy represent the Bézier control points.
func (r *GoChartRenderer) QuadCurveTo(cx, cy, x, y int) {
	r.path.quadTo(r.px(float64(cx), float64(cy)), r.px(float64(x), float64(y)))
}

// ArcTo draws an arc with a given center (cx,cy) a given set of radii (rx,ry), a startAngle
// and delta (in radians).
func (r *GoChartRenderer) ArcTo(cx, cy int, rx, ry, startAngle, delta float64) {
	f := func(v vec) vec {
		return r.px(v.x, v.y)
	}
	r.path.arc(f, vec{float64(cx), float64(cy)}, rx, ry, startAngle, delta)
}

// Close finalizes a shape as drawn by LineTo.
func (r *GoChartRenderer) Close() {
	r.path.close()
}

func (r *GoChartRenderer) strokeStyle() StrokeStyle {
	style := StrokeStyle{
		Color: r.strokeColor,
		Width: r.strokeWidth * r.scale(),
	}
	for _, d := range r.dashes {
		style.Dashes = append(style.Dashes, d*r.scale())
	}
	return style
}

func (r *GoChartRenderer) fill() {
	if r.fillColor.A == 0.0 {
		return
	}
	r.keep(r.path.fill(r.area, r.fillColor))
	for _, c := range r.circles {
		p := r.px(float64(c.x), float64(c.y)).point()
		r.keep(r.area.DrawCircle(p, c.radius*r.scale(), Filled(r.fillColor)))
	}
}

func (r *GoChartRenderer) stroke() {
	if r.strokeColor.A == 0.0 || r.strokeWidth <= 0.0 {
		return
	}
	style := r.strokeStyle()
	r.keep(r.path.stroke(r.area, style))
	for _, c := range r.circles {
		p := r.px(float64(c.x), float64(c.y)).point()
		r.keep(r.area.DrawCircle(p, c.radius*r.scale(), ShapeStyle{Color: style.Color, StrokeWidth: style.Width}))
	}
}

func (r *GoChartRenderer) reset() {
	r.path.reset()
	r.circles = r.circles[:0]
}

// Stroke strokes the path.
func (r *GoChartRenderer) Stroke() {
	r.stroke()
	r.reset()
}

// Fill fills the path, but does not stroke.
func (r *GoChartRenderer) Fill() {
	r.fill()
	r.reset()
}

// FillStroke fills and strokes a path.
func (r *GoChartRenderer) FillStroke() {
	r.fill()
	r.stroke()
	r.reset()
}

// Circle adds a circle at the given coords with a given radius, it is drawn by the next
// Stroke, Fill or FillStroke.
func (r *GoChartRenderer) Circle(radius float64, x, y int) {
	r.circles = append(r.circles, goChartCircle{x, y, radius})
}

// SetFont sets a font for a text field.
func (r *GoChartRenderer) SetFont(f *truetype.Font) {
	r.font = f
	r.fontFamily = ""
	r.face = nil
	if f != nil {
		r.fontFamily = f.Name(truetype.NameIDFontFamily)
	}
}

// SetFontColor sets a font's color.
func (r *GoChartRenderer) SetFontColor(col drawing.Color) {
	r.fontColor = fromDrawingColor(col)
}

// SetFontSize sets the font size for a text field.
func (r *GoChartRenderer) SetFontSize(size float64) {
	r.fontSize = size
	r.face = nil
}

func (r *GoChartRenderer) fontFace() xfont.Face {
	if r.face == nil && r.font != nil {
		r.face = truetype.NewFace(r.font, &truetype.Options{
			Size: r.fontSize,
			DPI:  r.dpi,
		})
	}
	return r.face
}

// Text draws a text blob with its baseline starting at (x,y).
func (r *GoChartRenderer) Text(body string, x, y int) {
	face := r.fontFace()
	if face == nil || body == "" {
		return
	}

	// the backend anchors text at the top of its box, rotated around that point
	ascent := float64(face.Metrics().Ascent) / 64.0 * r.scale()
	sin, cos := math.Sincos(r.textRotation)
	origin := r.px(float64(x), float64(y))
	top := vec{origin.x + ascent*sin, origin.y - ascent*cos}

	style := TextStyle{
		Family:   r.fontFamily,
		Size:     r.fontSize * r.dpi / 72.0 * r.scale(),
		Color:    r.fontColor,
		Rotation: r.textRotation * 180.0 / math.Pi,
	}
	r.keep(r.area.DrawText(body, style, top.point()))
}

// MeasureText measures text in the chart's units.
func (r *GoChartRenderer) MeasureText(body string) chart.Box {
	face := r.fontFace()
	if face == nil {
		return chart.Box{}
	}
	width := xfont.MeasureString(face, body)
	return chart.Box{
		Right:  width.Ceil(),
		Bottom: int(math.Ceil(r.fontSize * r.dpi / 72.0)),
	}
}

// SetTextRotation sets a rotation for drawing elements.
func (r *GoChartRenderer) SetTextRotation(radian float64) {
	r.textRotation = radian
}

// ClearTextRotation clears rotation.
func (r *GoChartRenderer) ClearTextRotation() {
	r.textRotation = 0.0
}

// Save presents the area, nothing is written to w. It returns the first drawing error.
func (r *GoChartRenderer) Save(w io.Writer) error {
	r.keep(r.area.Present())
	return r.err
}
