package bramble

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v with both components multiplied by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Affine matrices are stored as [a, b, c, d, tx, ty], the six live entries of
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// which is all the camera math needs.

var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine returns outer * inner: the composed matrix applies inner
// first.
func multiplyAffine(outer, inner [6]float64) [6]float64 {
	var out [6]float64
	out[0] = outer[0]*inner[0] + outer[2]*inner[1]
	out[1] = outer[1]*inner[0] + outer[3]*inner[1]
	out[2] = outer[0]*inner[2] + outer[2]*inner[3]
	out[3] = outer[1]*inner[2] + outer[3]*inner[3]
	out[4] = outer[0]*inner[4] + outer[2]*inner[5] + outer[4]
	out[5] = outer[1]*inner[4] + outer[3]*inner[5] + outer[5]
	return out
}

// invertAffine returns the inverse of m. A degenerate matrix (zero
// determinant, within epsilon) inverts to the identity rather than NaNs, so a
// camera briefly configured with Zoom 0 degrades instead of corrupting events.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-12 {
		return identityTransform
	}
	a := m[3] / det
	b := -m[1] / det
	c := -m[2] / det
	d := m[0] / det
	return [6]float64{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}

// transformPoint maps (x, y) through m.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
