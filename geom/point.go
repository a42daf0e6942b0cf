package geom

import "math"

// Point is an immutable 2D position in world units
// Equality is componentwise, so Point is usable with == and as a map key
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p shifted by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the vector from o to p
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Offset returns p shifted by (dx, dy)
func (p Point) Offset(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// MirrorX returns p reflected across the vertical axis
func (p Point) MirrorX() Point {
	return Point{X: -p.X, Y: p.Y}
}

// Round returns p with both coordinates rounded half away from zero
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// Lerp interpolates between p and o, t in [0,1]
func (p Point) Lerp(o Point, t float64) Point {
	return Point{X: p.X + (o.X-p.X)*t, Y: p.Y + (o.Y-p.Y)*t}
}

// Distance returns the Euclidean distance between p and o
func (p Point) Distance(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}
