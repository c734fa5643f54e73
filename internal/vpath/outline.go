/*
Package vpath implements the flat piecewise-quadratic outline buffer used by
every drawable object, together with the two structural algorithms built on
it: alignment of two outlines into isomorphic point sequences, and partial
extraction for reveal animations.

An Outline is a flat list of points. Even indices are anchors, odd indices are
handles, and every window [anchor, handle, anchor] starting at an even index is
one quadratic segment. A handle equal to the anchor before it marks the end of a
subpath; the next anchor starts a new one.
*/
package vpath

import (
	"fmt"
	"math"

	"github.com/coreman2200/arcanim/internal/geom"
)

// Outline is a flat buffer of anchors and handles. Its length is always odd.
type Outline []geom.Point

// Validate panics if o breaks the odd point-count invariant.
func (o Outline) Validate() {
	if len(o)%2 == 0 {
		panic(fmt.Sprintf("vpath: outline has %d points, want an odd count", len(o)))
	}
}

// Clone returns a copy of o that shares no memory with it.
func (o Outline) Clone() Outline {
	if o == nil {
		return nil
	}
	out := make(Outline, len(o))
	copy(out, o)
	return out
}

// SegmentCount returns the number of quadratic segments in o.
func (o Outline) SegmentCount() int {
	return len(o) / 2
}

// Segment returns the i-th quadratic segment.
func (o Outline) Segment(i int) geom.Quad {
	if i < 0 || i >= o.SegmentCount() {
		panic(fmt.Sprintf("vpath: segment %d out of range [0,%d)", i, o.SegmentCount()))
	}
	return geom.Quad{o[2*i], o[2*i+1], o[2*i+2]}
}

// Anchors returns the on-curve points of o.
func (o Outline) Anchors() []geom.Point {
	out := make([]geom.Point, 0, len(o)/2+1)
	for i := 0; i < len(o); i += 2 {
		out = append(out, o[i])
	}
	return out
}

// Bounds returns the axis-aligned box containing every point of o,
// handles included.
func (o Outline) Bounds() geom.Rectangle {
	if len(o) == 0 {
		return geom.Rectangle{}
	}
	r := geom.Rectangle{Min: o[0], Max: o[0]}
	for _, p := range o[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Lerp interpolates a and b point by point. Both outlines must have the
// same length; align them first.
func Lerp(a, b Outline, t float64) Outline {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vpath: cannot interpolate outlines of %d and %d points", len(a), len(b)))
	}
	out := make(Outline, len(a))
	for i := range a {
		out[i] = a[i].Lerp(b[i], t)
	}
	return out
}
