package vpath

import "github.com/coreman2200/arcanim/internal/geom"

// Subpaths splits o at every handle that equals the anchor before it.
// The returned subpaths are copies, each with an odd number of points.
// An empty outline yields one single-point subpath at the origin.
func Subpaths(o Outline) [][]geom.Point {
	if len(o) == 0 {
		return [][]geom.Point{{{}}}
	}
	o.Validate()
	var out [][]geom.Point
	start := 0
	for i := 1; i < len(o); i += 2 {
		if o[i] == o[i-1] {
			out = append(out, clonePoints(o[start:i]))
			start = i + 1
		}
	}
	return append(out, clonePoints(o[start:]))
}

// Join flattens subpaths back into one outline. Consecutive subpaths are
// joined by a handle equal to the last anchor of the previous one.
func Join(subpaths [][]geom.Point) Outline {
	n := 0
	for _, sp := range subpaths {
		n += len(sp) + 1
	}
	out := make(Outline, 0, n)
	for i, sp := range subpaths {
		if i > 0 {
			out = append(out, out[len(out)-1])
		}
		out = append(out, sp...)
	}
	return out
}

// IsClosed reports whether the subpath ends where it started.
func IsClosed(sp []geom.Point) bool {
	return len(sp) > 0 && sp[0] == sp[len(sp)-1]
}

// CloseSubpath returns a closed copy of sp. An open subpath gets its own
// reverse appended, without repeating the shared endpoint, which doubles the
// number of segments and brings the path back to its first anchor.
func CloseSubpath(sp []geom.Point) []geom.Point {
	if IsClosed(sp) {
		return clonePoints(sp)
	}
	out := make([]geom.Point, 0, 2*len(sp)-1)
	out = append(out, sp...)
	for i := len(sp) - 2; i >= 0; i-- {
		out = append(out, sp[i])
	}
	return out
}

// Centroid returns the mean of the subpath's anchors. The closing anchor of
// a closed subpath is counted once.
func Centroid(sp []geom.Point) geom.Point {
	n := len(sp)
	if n == 0 {
		return geom.Point{}
	}
	if n > 1 && IsClosed(sp) {
		n--
	}
	var sum geom.Point
	k := 0
	for i := 0; i < n; i += 2 {
		sum = sum.Add(sp[i])
		k++
	}
	return sum.Mul(1 / float64(k))
}

func clonePoints(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	copy(out, pts)
	return out
}
