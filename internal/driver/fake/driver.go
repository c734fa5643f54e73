package fake

import (
	"image"
	"image/color"
	"sync"

	"github.com/rs/zerolog/log"
)

// Driver keeps a summary of every frame it receives, useful for headless
// runs and tests. It is safe for concurrent use.
type Driver struct {
	mu     sync.Mutex
	Count  int
	Frames map[int]Summary
	// Keep retains a copy of the last frame when set.
	Keep bool
	Last *image.RGBA
}

// Summary is the average color and the center pixel of a frame.
type Summary struct {
	Avg    color.RGBA
	Center color.RGBA
}

func (d *Driver) Write(frame int, img *image.RGBA) error {
	b := img.Bounds()
	var r, g, bl, a, n uint64
	for i := 0; i+3 < len(img.Pix); i += 4 {
		r += uint64(img.Pix[i])
		g += uint64(img.Pix[i+1])
		bl += uint64(img.Pix[i+2])
		a += uint64(img.Pix[i+3])
		n++
	}
	if n == 0 {
		n = 1
	}
	s := Summary{
		Avg:    color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: uint8(a / n)},
		Center: img.RGBAAt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.Count++
	if d.Frames == nil {
		d.Frames = map[int]Summary{}
	}
	d.Frames[frame] = s
	if d.Keep {
		d.Last = image.NewRGBA(b)
		copy(d.Last.Pix, img.Pix)
	}
	log.Debug().Int("frame", frame).
		Uints8("avg", []uint8{s.Avg.R, s.Avg.G, s.Avg.B}).
		Uints8("center", []uint8{s.Center.R, s.Center.G, s.Center.B}).
		Msg("fake frame")
	return nil
}

// Summary returns the recorded summary of frame.
func (d *Driver) Summary(frame int) (Summary, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.Frames[frame]
	return s, ok
}
