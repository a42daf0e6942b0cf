package curve

import "github.com/lixenwraith/starlane/geom"

// SplineOrder is the B-spline order (degree 2) used for authored curves
const SplineOrder = 3

// Spline samples a clamped uniform quadratic B-spline through the template's
// control points at steps+1 evenly spaced parameters, rounding each position.
// Scheduled actions are spliced in afterwards; the result has
// steps+1+len(t.Actions) entries and starts/ends on the first/last control point.
//
// Templates with fewer than SplineOrder points reduce the order to the point count:
// two points yield a straight line, one point a stationary path.
// Panics if steps <= 0 or the template is empty.
func Spline(t Template, steps int) Path {
	if steps <= 0 {
		panic("curve: spline steps must be positive")
	}
	n := len(t.Points)
	if n == 0 {
		panic("curve: spline template has no control points")
	}

	order := min(SplineOrder, n)
	knots := clampedKnots(n, order)
	domain := knots[len(knots)-1]
	scratch := make([]geom.Point, order)

	moves := make([]Entry, steps+1)
	for step := 0; step <= steps; step++ {
		u := float64(step) / float64(steps) * domain
		moves[step] = MoveTo(deBoor(t.Points, knots, order, u, scratch).Round())
	}
	return spliceActions(moves, steps, t.Actions)
}

// clampedKnots builds the open uniform knot vector: order zeros, 1..n-order,
// then order copies of n-order+1
func clampedKnots(n, order int) []float64 {
	knots := make([]float64, 0, n+order)
	for i := 0; i < order; i++ {
		knots = append(knots, 0)
	}
	for i := 1; i <= n-order; i++ {
		knots = append(knots, float64(i))
	}
	last := float64(n - order + 1)
	for i := 0; i < order; i++ {
		knots = append(knots, last)
	}
	return knots
}

// deBoor evaluates the spline at u; scratch must hold order points
func deBoor(points []geom.Point, knots []float64, order int, u float64, scratch []geom.Point) geom.Point {
	p := order - 1
	n := len(points)

	// Knot span: knots[s] <= u < knots[s+1], the last span also owns u == domain end
	s := p
	for s < n-1 && knots[s+1] <= u {
		s++
	}

	d := scratch[:order]
	for j := 0; j <= p; j++ {
		d[j] = points[j+s-p]
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			i := j + s - p
			denom := knots[i+p+1-r] - knots[i]
			alpha := 0.0
			if denom != 0 {
				alpha = (u - knots[i]) / denom
			}
			d[j] = d[j-1].Lerp(d[j], alpha)
		}
	}
	return d[p]
}
