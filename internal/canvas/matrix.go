package canvas

import "math"

// matrix is a 2D affine transform laid out as
//
//	| a c e |
//	| b d f |
type matrix struct {
	a, b, c, d, e, f float64
}

func identity() matrix {
	return matrix{a: 1, d: 1}
}

func (m matrix) apply(x, y float64) Point {
	return Point{
		X: m.a*x + m.c*y + m.e,
		Y: m.b*x + m.d*y + m.f,
	}
}

func (m matrix) translate(x, y float64) matrix {
	m.e += m.a*x + m.c*y
	m.f += m.b*x + m.d*y
	return m
}

func (m matrix) rotate(angle float64) matrix {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return matrix{
		a: m.a*cos + m.c*sin,
		b: m.b*cos + m.d*sin,
		c: m.c*cos - m.a*sin,
		d: m.d*cos - m.b*sin,
		e: m.e,
		f: m.f,
	}
}

// scale is the uniform scale factor of the transform.
func (m matrix) scale() float64 {
	return math.Sqrt(math.Abs(m.a*m.d - m.b*m.c))
}
