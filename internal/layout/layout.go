package layout

import (
	"image"
	"math"

	"github.com/coreman2200/arcanim/internal/geom"
)

// Viewport maps scene units onto a pixel grid. The scene origin sits at the
// center of the frame and scene Y points up.
type Viewport struct {
	Width, Height int
	PixelsPerUnit float64
}

// Index maps pixel x,y to a row-major offset (0..N-1).
func (v Viewport) Index(x, y int) int {
	return y*v.Width + x
}

// Count returns the number of pixels.
func (v Viewport) Count() int {
	return v.Width * v.Height
}

// Bounds returns the pixel rectangle of a frame.
func (v Viewport) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.Width, v.Height)
}

// ToPixel maps a scene point to pixel coordinates.
func (v Viewport) ToPixel(p geom.Point) (x, y float32) {
	x = float32(float64(v.Width)/2 + p.X*v.PixelsPerUnit)
	y = float32(float64(v.Height)/2 - p.Y*v.PixelsPerUnit)
	return x, y
}

// PixelBounds returns the smallest pixel rectangle covering scene rect r,
// clipped to the frame.
func (v Viewport) PixelBounds(r geom.Rectangle) image.Rectangle {
	x0, y1 := v.ToPixel(r.Min)
	x1, y0 := v.ToPixel(r.Max)
	pr := image.Rect(
		int(math.Floor(float64(x0))), int(math.Floor(float64(y0))),
		int(math.Ceil(float64(x1))), int(math.Ceil(float64(y1))),
	)
	return pr.Intersect(v.Bounds())
}

// SceneBounds returns the visible region in scene units.
func (v Viewport) SceneBounds() geom.Rectangle {
	hw := float64(v.Width) / 2 / v.PixelsPerUnit
	hh := float64(v.Height) / 2 / v.PixelsPerUnit
	return geom.Rectangle{Min: geom.Pt(-hw, -hh), Max: geom.Pt(hw, hh)}
}
