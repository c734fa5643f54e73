/*
Package shape holds the concrete objects recorded on timelines.

VItem is a styled outline and is what the renderer draws. Rect is a
parametric rectangle that animates its size directly and is converted to a
VItem through a type change when an outline animation is needed.
*/
package shape

import (
	"github.com/coreman2200/arcanim/internal/geom"
	"github.com/coreman2200/arcanim/internal/vpath"
)

// VItem is a filled and stroked outline.
type VItem struct {
	Points      vpath.Outline
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	Opacity     float64
}

// New returns a white filled, fully opaque item. It panics if pts is not a
// valid outline.
func New(pts vpath.Outline) VItem {
	pts.Validate()
	return VItem{Points: pts, Fill: White, Stroke: White, StrokeWidth: 0.02, Opacity: 1}
}

// WithFill returns v filled with c.
func (v VItem) WithFill(c Color) VItem {
	v.Fill = c
	return v
}

// WithStroke returns v stroked with c at width w.
func (v VItem) WithStroke(c Color, w float64) VItem {
	v.Stroke, v.StrokeWidth = c, w
	return v
}

// Clone returns a deep copy of v.
func (v VItem) Clone() VItem {
	v.Points = v.Points.Clone()
	return v
}

// Interpolate blends v towards o. Both outlines must have the same point count.
func (v VItem) Interpolate(o VItem, t float64) VItem {
	return VItem{
		Points:      vpath.Lerp(v.Points, o.Points, t),
		Fill:        v.Fill.Lerp(o.Fill, t),
		Stroke:      v.Stroke.Lerp(o.Stroke, t),
		StrokeWidth: geom.Lerp(v.StrokeWidth, o.StrokeWidth, t),
		Opacity:     geom.Lerp(v.Opacity, o.Opacity, t),
	}
}

// Partial returns the part of v between progress start and end.
func (v VItem) Partial(start, end float64) VItem {
	v.Points = vpath.Partial(v.Points, start, end)
	return v
}

// Empty returns v collapsed to a zero-length segment at its first anchor.
func (v VItem) Empty() VItem {
	return v.Partial(0, 0)
}

// IsAligned reports whether v and o can be interpolated directly.
func (v VItem) IsAligned(o VItem) bool {
	return vpath.IsAligned(v.Points, o.Points)
}

// Aligned returns copies of v and o with compatible outlines.
func (v VItem) Aligned(o VItem) (VItem, VItem) {
	v.Points, o.Points = vpath.Align(v.Points, o.Points)
	return v, o
}

// Faded returns v with its opacity scaled by f.
func (v VItem) Faded(f float64) VItem {
	v.Opacity *= f
	return v
}

// Drawing returns v itself.
func (v VItem) Drawing() VItem { return v }
