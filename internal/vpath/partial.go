package vpath

import (
	"fmt"
	"math"

	"github.com/coreman2200/arcanim/internal/geom"
)

// Partial returns the part of o between progress start and end. Progress is
// measured over segment indices, not arc length. Values outside [0,1] are
// clamped; start must not exceed end.
//
// When both ends land in the same segment the result is that single trimmed
// segment, which for start == end is a zero-length segment.
func Partial(o Outline, start, end float64) Outline {
	o.Validate()
	start, end = geom.Clamp01(start), geom.Clamp01(end)
	if start > end {
		panic(fmt.Sprintf("vpath: partial range %v..%v is reversed", start, end))
	}
	m := o.SegmentCount()
	if m == 0 {
		return o.Clone()
	}

	si, sr := resolve(m, start)
	ei, er := resolve(m, end)
	if si == ei {
		q := o.Segment(si).Trim(sr, er)
		return Outline{q[0], q[1], q[2]}
	}

	out := make(Outline, 0, 2*(ei-si+1)+1)
	head := o.Segment(si).Trim(sr, 1)
	out = append(out, head[0], head[1], head[2])
	out = append(out, o[2*si+3:2*ei+1]...)
	if er != 0 {
		tail := o.Segment(ei).Trim(0, er)
		out = append(out, tail[1], tail[2])
	}
	return out
}

// resolve maps progress a onto a segment index and the residue inside it.
// a == 1 lands at the end of the last segment.
func resolve(m int, a float64) (int, float64) {
	v := a * float64(m)
	i := math.Floor(v)
	if int(i) >= m {
		return m - 1, 1
	}
	return int(i), v - i
}
