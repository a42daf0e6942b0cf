package curve

// Mirror reflects every Move entry across the vertical axis (x negated, y kept)
// Signal entries are copied unchanged. Returns a fresh path
func Mirror(p Path) Path {
	out := make(Path, len(p))
	for i, e := range p {
		if e.Action == ActionMove {
			e.Point = e.Point.MirrorX()
		}
		out[i] = e
	}
	return out
}

// Translate shifts every Move entry by (dx, dy), signal entries pass through
// Returns a fresh path; the source is typically a shared cached template
func Translate(p Path, dx, dy float64) Path {
	out := make(Path, len(p))
	for i, e := range p {
		if e.Action == ActionMove {
			e.Point = e.Point.Offset(dx, dy)
		}
		out[i] = e
	}
	return out
}
