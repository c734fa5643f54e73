package shape

import "github.com/coreman2200/arcanim/internal/geom"

// Rect is a parametric filled rectangle. Unlike a VItem it interpolates its
// center and size directly, so any two rects are compatible.
type Rect struct {
	Center  geom.Point
	W, H    float64
	Fill    Color
	Opacity float64
}

// NewRect returns an opaque white rectangle.
func NewRect(center geom.Point, w, h float64) Rect {
	return Rect{Center: center, W: w, H: h, Fill: White, Opacity: 1}
}

// Clone returns r.
func (r Rect) Clone() Rect { return r }

// Interpolate blends r towards o.
func (r Rect) Interpolate(o Rect, t float64) Rect {
	return Rect{
		Center:  r.Center.Lerp(o.Center, t),
		W:       geom.Lerp(r.W, o.W, t),
		H:       geom.Lerp(r.H, o.H, t),
		Fill:    r.Fill.Lerp(o.Fill, t),
		Opacity: geom.Lerp(r.Opacity, o.Opacity, t),
	}
}

// Faded returns r with its opacity scaled by f.
func (r Rect) Faded(f float64) Rect {
	r.Opacity *= f
	return r
}

// VItem converts r to an outline item.
func (r Rect) VItem() VItem {
	v := New(RectangleOutline(r.Center, r.W, r.H)).WithFill(r.Fill)
	v.Stroke = r.Fill
	v.Opacity = r.Opacity
	return v
}

// Drawing returns r as an outline item.
func (r Rect) Drawing() VItem { return r.VItem() }
