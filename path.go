package gioplot

import "math"

// flattening tolerance in pixels
const tolerance = 0.25

type vec struct {
	x, y float64
}

func (v vec) point() Point {
	return Point{int(math.Round(v.x)), int(math.Round(v.y))}
}

// path collects subpaths of straight segments in pixel coordinates, flattening curves and
// arcs as they are added.
type path struct {
	subpaths [][]vec
	closed   []bool
}

func (p *path) empty() bool {
	return len(p.subpaths) == 0
}

func (p *path) reset() {
	p.subpaths = p.subpaths[:0]
	p.closed = p.closed[:0]
}

func (p *path) current() (vec, bool) {
	if len(p.subpaths) == 0 {
		return vec{}, false
	}
	n := len(p.subpaths) - 1
	if p.closed[n] {
		return p.subpaths[n][0], true
	}
	return p.subpaths[n][len(p.subpaths[n])-1], true
}

func (p *path) moveTo(v vec) {
	p.subpaths = append(p.subpaths, []vec{v})
	p.closed = append(p.closed, false)
}

// lineTo adds a line to v. After a close the new subpath starts where the closed one started.
func (p *path) lineTo(v vec) {
	n := len(p.subpaths) - 1
	if n < 0 {
		p.moveTo(v)
		return
	} else if p.closed[n] {
		p.moveTo(p.subpaths[n][0])
		n++
	}
	p.subpaths[n] = append(p.subpaths[n], v)
}

func (p *path) close() {
	if n := len(p.subpaths) - 1; 0 <= n {
		p.closed[n] = true
	}
}

func segments(length float64) int {
	return max(1, min(1024, int(math.Ceil(math.Sqrt(length/tolerance)))))
}

func (p *path) quadTo(c, end vec) {
	start, ok := p.current()
	if !ok {
		p.moveTo(end)
		return
	}
	n := segments(math.Hypot(c.x-start.x, c.y-start.y) + math.Hypot(end.x-c.x, end.y-c.y))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1.0 - t
		p.lineTo(vec{
			u*u*start.x + 2.0*u*t*c.x + t*t*end.x,
			u*u*start.y + 2.0*u*t*c.y + t*t*end.y,
		})
	}
}

func (p *path) cubeTo(c1, c2, end vec) {
	start, ok := p.current()
	if !ok {
		p.moveTo(end)
		return
	}
	n := segments(math.Hypot(c1.x-start.x, c1.y-start.y) + math.Hypot(c2.x-c1.x, c2.y-c1.y) + math.Hypot(end.x-c2.x, end.y-c2.y))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1.0 - t
		p.lineTo(vec{
			u*u*u*start.x + 3.0*u*u*t*c1.x + 3.0*u*t*t*c2.x + t*t*t*end.x,
			u*u*u*start.y + 3.0*u*u*t*c1.y + 3.0*u*t*t*c2.y + t*t*t*end.y,
		})
	}
}

// arc adds an elliptical arc around a center, starting at angle theta0 and sweeping dtheta
// radians, where positive angles run from the x-axis towards the y-axis. It connects to the
// current point with a straight line.
func (p *path) arc(f func(vec) vec, center vec, rx, ry, theta0, dtheta float64) {
	at := func(theta float64) vec {
		sin, cos := math.Sincos(theta)
		return f(vec{center.x + rx*cos, center.y + ry*sin})
	}
	r0, r1 := at(theta0), at(theta0+math.Copysign(math.Pi/2.0, dtheta))
	n := segments(math.Abs(dtheta) * math.Hypot(r1.x-r0.x, r1.y-r0.y) / math.Sqrt2)
	p.lineTo(r0)
	for i := 1; i <= n; i++ {
		p.lineTo(at(theta0 + dtheta*float64(i)/float64(n)))
	}
}

func points(sub []vec) []Point {
	points := make([]Point, 0, len(sub))
	for _, v := range sub {
		q := v.point()
		if len(points) == 0 || points[len(points)-1] != q {
			points = append(points, q)
		}
	}
	return points
}

// stroke draws every subpath as a polyline, closed subpaths return to their start.
func (p *path) stroke(a *DrawingArea, style StrokeStyle) error {
	for i, sub := range p.subpaths {
		pts := points(sub)
		if p.closed[i] && 2 < len(pts) && pts[0] != pts[len(pts)-1] {
			pts = append(pts, pts[0])
		}
		if err := a.DrawPath(pts, style); err != nil {
			return err
		}
	}
	return nil
}

// fill fills every subpath with more than two points.
func (p *path) fill(a *DrawingArea, col Color) error {
	for _, sub := range p.subpaths {
		if pts := points(sub); 2 < len(pts) {
			if err := a.FillPolygon(pts, col); err != nil {
				return err
			}
		}
	}
	return nil
}
