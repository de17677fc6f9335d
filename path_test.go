package gioplot

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestMatrix(t *testing.T) {
	x, y := identity.translate(2.0, 3.0).dot(1.0, 1.0)
	test.Float(t, x, 3.0)
	test.Float(t, y, 4.0)

	// translation is applied first, then the rotation
	m := identity.rotate(math.Pi/2.0).translate(1.0, 0.0)
	x, y = m.dot(0.0, 0.0)
	test.That(t, math.Abs(x) < 1e-12 && math.Abs(y-1.0) < 1e-12, x, y)
	test.Float(t, m.theta(), math.Pi/2.0)

	x, y = identity.scale(2.0, -1.0).dot(3.0, 3.0)
	test.Float(t, x, 6.0)
	test.Float(t, y, -3.0)
	test.Float(t, identity.theta(), 0.0)
}

func TestPathFlatten(t *testing.T) {
	p := &path{}
	p.quadTo(vec{1.0, 1.0}, vec{2.0, 2.0})
	test.T(t, len(p.subpaths), 1)
	test.T(t, p.subpaths[0], []vec{{2.0, 2.0}})

	p.reset()
	p.moveTo(vec{0.0, 0.0})
	p.quadTo(vec{50.0, 100.0}, vec{100.0, 0.0})
	sub := p.subpaths[0]
	test.That(t, 2 < len(sub), "curve not flattened")
	test.T(t, sub[len(sub)-1], vec{100.0, 0.0})
	test.T(t, sub[len(sub)/2].point(), Pt(50, 50))

	p.reset()
	p.moveTo(vec{0.0, 0.0})
	p.cubeTo(vec{0.0, 100.0}, vec{100.0, 100.0}, vec{100.0, 0.0})
	sub = p.subpaths[0]
	test.T(t, sub[len(sub)-1], vec{100.0, 0.0})
	for _, v := range sub {
		test.That(t, 0.0 <= v.y && v.y <= 75.0+1e-9, "cubic leaves its hull", v)
	}

	p.reset()
	id := func(v vec) vec { return v }
	p.arc(id, vec{10.0, 10.0}, 10.0, 5.0, 0.0, math.Pi)
	sub = p.subpaths[0]
	test.T(t, sub[0].point(), Pt(20, 10))
	test.T(t, sub[len(sub)-1].point(), Pt(0, 10))
	for _, v := range sub {
		dx, dy := (v.x-10.0)/10.0, (v.y-10.0)/5.0
		test.Float(t, math.Round(1e9*(dx*dx+dy*dy))/1e9, 1.0)
	}
}

func TestPathDraw(t *testing.T) {
	b := &testBackend{w: 100, h: 100}
	area := NewDrawingArea(b)

	p := &path{}
	p.moveTo(vec{0.0, 0.0})
	p.lineTo(vec{0.2, 0.2})
	p.lineTo(vec{10.0, 0.0})
	p.lineTo(vec{10.0, 10.0})
	p.close()
	p.lineTo(vec{50.0, 50.0})
	p.lineTo(vec{60.0, 50.0})
	test.T(t, len(p.subpaths), 2)

	test.Error(t, p.stroke(area, Stroke(Black, 1.0)))
	calls := b.ops("DrawPath")
	test.T(t, calls[0].Points, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 0}})
	test.T(t, calls[1].Points, []Point{{0, 0}, {50, 50}, {60, 50}})

	test.Error(t, p.fill(area, Red))
	calls = b.ops("FillPolygon")
	test.T(t, len(calls), 2)
	test.T(t, calls[0].Points, []Point{{0, 0}, {10, 0}, {10, 10}})
	test.T(t, calls[1].Points, []Point{{0, 0}, {50, 50}, {60, 50}})
}

func TestPathAfterClose(t *testing.T) {
	p := &path{}
	p.moveTo(vec{0.0, 0.0})
	p.lineTo(vec{10.0, 0.0})
	p.lineTo(vec{10.0, 10.0})
	p.close()
	p.lineTo(vec{0.0, 10.0})
	test.T(t, p.subpaths, [][]vec{{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}}, {{0.0, 0.0}, {0.0, 10.0}}})
	test.T(t, p.closed, []bool{true, false})

	// curves after a close start at the closed subpath's start
	p.reset()
	p.moveTo(vec{5.0, 5.0})
	p.lineTo(vec{10.0, 5.0})
	p.close()
	cur, ok := p.current()
	test.That(t, ok)
	test.T(t, cur, vec{5.0, 5.0})
	p.quadTo(vec{5.0, 10.0}, vec{0.0, 5.0})
	test.T(t, len(p.subpaths), 2)
	test.T(t, p.subpaths[1][0], vec{5.0, 5.0})
	test.T(t, p.subpaths[1][len(p.subpaths[1])-1], vec{0.0, 5.0})
}
