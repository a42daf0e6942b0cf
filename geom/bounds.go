package geom

// Bounds is an axis-aligned hitbox rectangle
// Fields are relative to the owning body's origin until translated
// Top <= Bottom and Left <= Right are expected but not enforced
type Bounds struct {
	Top, Bottom, Left, Right float64
}

// Box builds bounds centered on the origin with the given half extents
func Box(halfWidth, halfHeight float64) Bounds {
	return Bounds{Top: -halfHeight, Bottom: halfHeight, Left: -halfWidth, Right: halfWidth}
}

// Translate returns b shifted by p: Left/Right by p.X, Top/Bottom by p.Y
func (b Bounds) Translate(p Point) Bounds {
	return Bounds{
		Top:    b.Top + p.Y,
		Bottom: b.Bottom + p.Y,
		Left:   b.Left + p.X,
		Right:  b.Right + p.X,
	}
}

// Intersects reports closed-interval overlap; touching edges count
func (b Bounds) Intersects(o Bounds) bool {
	return !(b.Right < o.Left || b.Left > o.Right || b.Bottom < o.Top || b.Top > o.Bottom)
}

// Contains reports whether p lies inside b, edges inclusive
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Width returns Right - Left
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns Bottom - Top
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// TranslateAll returns a fresh slice with every rectangle shifted by p
func TranslateAll(boxes []Bounds, p Point) []Bounds {
	out := make([]Bounds, len(boxes))
	for i, b := range boxes {
		out[i] = b.Translate(p)
	}
	return out
}
