package gioplot

import "math"

// matrix is an affine transformation. Concatenated transformations are evaluated
// right-to-left, so identity.rotate(θ).translate(x, y) translates first.
type matrix [2][3]float64

var identity = matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

func (m matrix) mul(q matrix) matrix {
	return matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

func (m matrix) dot(x, y float64) (float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2], m[1][0]*x + m[1][1]*y + m[1][2]
}

func (m matrix) translate(x, y float64) matrix {
	return m.mul(matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// rotate rotates counter clockwise by rad radians
func (m matrix) rotate(rad float64) matrix {
	sin, cos := math.Sincos(rad)
	return m.mul(matrix{
		{cos, -sin, 0.0},
		{sin, cos, 0.0},
	})
}

func (m matrix) scale(x, y float64) matrix {
	return m.mul(matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

// theta returns the counter clockwise angle of the transformed x-axis
func (m matrix) theta() float64 {
	return math.Atan2(m[1][0], m[0][0])
}

// xscale returns the length of the transformed unit x-vector
func (m matrix) xscale() float64 {
	return math.Hypot(m[0][0], m[1][0])
}
