package geom

// Quad is a quadratic bezier segment: start anchor, handle, end anchor.
type Quad [3]Point

// At evaluates q at parameter t.
func (q Quad) At(t float64) Point {
	a := q[0].Lerp(q[1], t)
	b := q[1].Lerp(q[2], t)
	return a.Lerp(b, t)
}

// Split cuts q at t into two segments that together trace q.
func (q Quad) Split(t float64) (Quad, Quad) {
	a := q[0].Lerp(q[1], t)
	b := q[1].Lerp(q[2], t)
	m := a.Lerp(b, t)
	return Quad{q[0], a, m}, Quad{m, b, q[2]}
}

// Trim returns the part of q between parameters t0 and t1.
// Trim(0, 1) returns q unchanged and Trim(t, t) collapses to a point.
func (q Quad) Trim(t0, t1 float64) Quad {
	if t0 == 0 && t1 == 1 {
		return q
	}
	if t1 == t0 {
		p := q.At(t0)
		return Quad{p, p, p}
	}
	left, _ := q.Split(t1)
	if t0 == 0 {
		return left
	}
	_, mid := left.Split(t0 / t1)
	return mid
}

// Chord returns the straight-line distance between the two anchors.
func (q Quad) Chord() float64 {
	return q[0].Dist(q[2])
}

// Degenerate reports whether the handle equals the start anchor.
// Outline buffers use this to encode subpath boundaries.
func (q Quad) Degenerate() bool {
	return q[1] == q[0]
}
