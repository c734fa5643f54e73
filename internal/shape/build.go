package shape

import (
	"fmt"
	"math"

	"github.com/coreman2200/arcanim/internal/geom"
	"github.com/coreman2200/arcanim/internal/vpath"
)

// Polyline returns an open outline of straight segments through pts.
func Polyline(pts ...geom.Point) vpath.Outline {
	if len(pts) == 0 {
		return vpath.Outline{{}}
	}
	out := make(vpath.Outline, 1, 2*len(pts)-1)
	out[0] = pts[0]
	for i := 1; i < len(pts); i++ {
		out = append(out, pts[i-1].Lerp(pts[i], 0.5), pts[i])
	}
	return out
}

// Polygon returns a closed outline through pts.
func Polygon(pts ...geom.Point) vpath.Outline {
	if len(pts) == 0 {
		return vpath.Outline{{}}
	}
	closed := append(append([]geom.Point(nil), pts...), pts[0])
	return Polyline(closed...)
}

// RectangleOutline returns a closed axis-aligned rectangle of width w and
// height h, starting at the bottom left corner and running counterclockwise.
func RectangleOutline(center geom.Point, w, h float64) vpath.Outline {
	hw, hh := w/2, h/2
	return Polygon(
		center.Add(geom.Pt(-hw, -hh)),
		center.Add(geom.Pt(hw, -hh)),
		center.Add(geom.Pt(hw, hh)),
		center.Add(geom.Pt(-hw, hh)),
	)
}

// Square returns a closed square outline.
func Square(center geom.Point, side float64) vpath.Outline {
	return RectangleOutline(center, side, side)
}

// Circle approximates a circle with segments quadratic arcs. Each handle
// sits where the tangents at its two anchors meet.
func Circle(center geom.Point, r float64, segments int) vpath.Outline {
	if segments < 3 {
		panic(fmt.Sprintf("shape: circle needs at least 3 segments, got %d", segments))
	}
	step := 2 * math.Pi / float64(segments)
	hr := r / math.Cos(step/2)
	at := func(radius, theta float64) geom.Point {
		return center.Add(geom.Pt(radius*math.Cos(theta), radius*math.Sin(theta)))
	}
	out := make(vpath.Outline, 0, 2*segments+1)
	start := at(r, 0)
	out = append(out, start)
	for i := 0; i < segments; i++ {
		theta := float64(i) * step
		out = append(out, at(hr, theta+step/2))
		if i == segments-1 {
			out = append(out, start)
		} else {
			out = append(out, at(r, theta+step))
		}
	}
	return out
}
