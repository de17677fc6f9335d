package gioplot

// LineCap is the shape at the open ends of a stroke.
type LineCap int

// LineCap values.
const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

func (c LineCap) String() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return "butt"
}

// StrokeStyle is the style of lines and outlines. Width is in pixels, a width that is not
// positive draws nothing. Dashes alternate dash and gap lengths in pixels.
type StrokeStyle struct {
	Color      Color
	Width      float64
	Cap        LineCap
	Dashes     []float64
	DashOffset float64
}

// Stroke returns a solid butt-capped stroke style.
func Stroke(col Color, width float64) StrokeStyle {
	return StrokeStyle{Color: col, Width: width}
}

// IsDashed returns true if the dash pattern has a positive total length.
func (s StrokeStyle) IsDashed() bool {
	total := 0.0
	for _, d := range s.Dashes {
		if d < 0.0 {
			return false
		}
		total += d
	}
	return 0.0 < total
}

// ShapeStyle is the style of closed shapes, either filled or stroked.
type ShapeStyle struct {
	Color       Color
	Filled      bool
	StrokeWidth float64
}

// Filled returns a filled shape style.
func Filled(col Color) ShapeStyle {
	return ShapeStyle{Color: col, Filled: true}
}

// Outlined returns a stroked shape style.
func Outlined(col Color, width float64) ShapeStyle {
	return ShapeStyle{Color: col, StrokeWidth: width}
}

// Stroke returns the stroke style for outlined shapes.
func (s ShapeStyle) Stroke() StrokeStyle {
	return StrokeStyle{Color: s.Color, Width: s.StrokeWidth}
}

// HPos is the horizontal text anchor.
type HPos int

// HPos values.
const (
	HStart HPos = iota
	HMiddle
	HEnd
)

// VPos is the vertical text anchor.
type VPos int

// VPos values.
const (
	VTop VPos = iota
	VMiddle
	VBottom
)

// Anchor is the point within the text's bounding box that aligns with the draw coordinate.
type Anchor struct {
	H HPos
	V VPos
}

// Offset returns the shift of the top-left corner of a w×h box so that the anchor lands on
// the origin.
func (a Anchor) Offset(w, h float64) (float64, float64) {
	dx, dy := 0.0, 0.0
	switch a.H {
	case HMiddle:
		dx = -w / 2.0
	case HEnd:
		dx = -w
	}
	switch a.V {
	case VMiddle:
		dy = -h / 2.0
	case VBottom:
		dy = -h
	}
	return dx, dy
}

// FontWeight is the boldness of a font.
type FontWeight int

// FontWeight values.
const (
	FontNormal FontWeight = iota
	FontBold
)

// FontSlant is the style of a font.
type FontSlant int

// FontSlant values.
const (
	FontUpright FontSlant = iota
	FontItalic
	FontOblique
)

// TextStyle is the style of text. Size is in pixels and Rotation is in degrees clockwise
// around the anchored point.
type TextStyle struct {
	Family   string
	Size     float64
	Weight   FontWeight
	Slant    FontSlant
	Color    Color
	Anchor   Anchor
	Rotation float64
}

// Text returns a black text style of the given family and size, anchored at its top-left.
func Text(family string, size float64) TextStyle {
	return TextStyle{Family: family, Size: size, Color: Black}
}

// WithAnchor returns the style with another anchor.
func (s TextStyle) WithAnchor(h HPos, v VPos) TextStyle {
	s.Anchor = Anchor{h, v}
	return s
}

// WithColor returns the style with another color.
func (s TextStyle) WithColor(col Color) TextStyle {
	s.Color = col
	return s
}

// WithRotation returns the style rotated by deg degrees clockwise.
func (s TextStyle) WithRotation(deg float64) TextStyle {
	s.Rotation = deg
	return s
}
