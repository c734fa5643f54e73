package render

import (
	"image"

	"github.com/coreman2200/arcanim/internal/shape"
)

// Driver receives finished frames (PNG directory, preview socket, etc.).
type Driver interface {
	Write(frame int, img *image.RGBA) error
}

// Drawable is implemented by every timeline value the engine can draw.
type Drawable interface {
	Drawing() shape.VItem
}
