package shape

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/coreman2200/arcanim/internal/geom"
)

// Color is a straight-alpha RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// Some colors used by the built-in scenes.
var (
	Transparent = Color{}
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Teal        = Color{0.2, 0.75, 0.7, 1}
	Gold        = Color{0.95, 0.75, 0.25, 1}
	Coral       = Color{0.95, 0.45, 0.4, 1}
	Blue        = Color{0.3, 0.5, 0.95, 1}
)

// Lerp blends c towards d.
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		R: geom.Lerp(c.R, d.R, t),
		G: geom.Lerp(c.G, d.G, t),
		B: geom.Lerp(c.B, d.B, t),
		A: geom.Lerp(c.A, d.A, t),
	}
}

// NRGBA converts c to 8-bit non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	to8 := func(v float64) uint8 { return uint8(geom.Clamp01(v)*255 + 0.5) }
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("shape: color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("shape: color %q: %w", s, err)
	}
	comp := func(shift uint) float64 { return float64((v>>shift)&0xff) / 255 }
	return Color{R: comp(24), G: comp(16), B: comp(8), A: comp(0)}, nil
}

func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
