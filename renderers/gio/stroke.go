package gio

import (
	"math"

	"gioui.org/f32"
)

func length(p f32.Point) float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

func lerp(a, b f32.Point, t float32) f32.Point {
	return a.Add(b.Sub(a).Mul(t))
}

// dashPolyline splits a polyline into the dashes of the pattern. Odd patterns are repeated
// once, as in SVG. The pattern must have a positive total length.
func dashPolyline(points []f32.Point, closed bool, dashes []float32, offset float32) [][]f32.Point {
	if len(points) < 2 {
		return nil
	}
	if closed {
		points = append(points[:len(points):len(points)], points[0])
	}
	if len(dashes)%2 == 1 {
		dashes = append(dashes[:len(dashes):len(dashes)], dashes...)
	}

	total := float32(0.0)
	for _, d := range dashes {
		total += d
	}
	pos := float32(math.Mod(float64(offset), float64(total)))
	if pos < 0.0 {
		pos += total
	}
	i := 0
	for k := 0; k < len(dashes) && dashes[i] <= pos; k++ {
		pos -= dashes[i]
		i = (i + 1) % len(dashes)
	}
	remaining := dashes[i] - pos
	on := i%2 == 0

	var dashed [][]f32.Point
	var cur []f32.Point
	if on {
		cur = []f32.Point{points[0]}
	}
	for k := 1; k < len(points); k++ {
		a, b := points[k-1], points[k]
		l := length(b.Sub(a))
		t := float32(0.0)
		for remaining < l-t {
			t += remaining
			p := lerp(a, b, t/l)
			if on {
				dashed = append(dashed, append(cur, p))
				cur = nil
			} else {
				cur = []f32.Point{p}
			}
			on = !on
			i = (i + 1) % len(dashes)
			remaining = dashes[i]
		}
		remaining -= l - t
		if on {
			cur = append(cur, b)
		}
	}
	if on && 1 < len(cur) {
		dashed = append(dashed, cur)
	}
	return dashed
}

// direction returns the unit vector leaving the polyline at its start, walking past
// coincident points
func direction(points []f32.Point) (f32.Point, bool) {
	for _, p := range points[1:] {
		if d := p.Sub(points[0]); d != (f32.Point{}) {
			return d.Mul(1.0 / length(d)), true
		}
	}
	return f32.Point{}, false
}

// extendEnds lengthens both open ends of a polyline by d, which is how a square cap is drawn
// with a butt-capped stroker.
func extendEnds(points []f32.Point, d float32) []f32.Point {
	extended := append([]f32.Point{}, points...)
	if dir, ok := direction(points); ok {
		extended[0] = extended[0].Sub(dir.Mul(d))
	}
	reversed := make([]f32.Point, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	if dir, ok := direction(reversed); ok {
		n := len(extended) - 1
		extended[n] = extended[n].Sub(dir.Mul(d))
	}
	return extended
}

// regularPolygon returns the vertices of a polygon with n sides inscribed in the circle.
func regularPolygon(center f32.Point, radius float32, n int) []f32.Point {
	points := make([]f32.Point, n)
	for i := range points {
		sin, cos := math.Sincos(2.0 * math.Pi * float64(i) / float64(n))
		points[i] = f32.Point{
			X: center.X + radius*float32(cos),
			Y: center.Y + radius*float32(sin),
		}
	}
	return points
}

// circleSides is the number of polygon sides used for a stroked circle.
func circleSides(radius float64) int {
	return max(8, int(math.Round(radius*2.0*math.Pi/2.0)))
}
