package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/vector"

	"github.com/coreman2200/arcanim/internal/layout"
	"github.com/coreman2200/arcanim/internal/shape"
	"github.com/coreman2200/arcanim/internal/timeline"
	"github.com/coreman2200/arcanim/internal/vpath"
)

// mask is the coverage of one item, in frame coordinates.
type mask struct {
	key    timeline.CacheKey
	bounds image.Rectangle
	alpha  *image.Alpha
}

// Engine rasterizes scene snapshots into RGBA frames and hands them to the
// driver. An Engine is not safe for concurrent use; parallel renderers each
// own one.
type Engine struct {
	View       layout.Viewport
	Background shape.Color
	Drv        Driver

	frame *image.RGBA
	vr    *vector.Rasterizer
	masks map[timeline.ID]mask

	// metrics of the last RenderAt
	Last struct {
		RasterMS    float64
		TotalMS     float64
		Items       int
		CacheHits   int
		CacheMisses int
	}
}

// NewEngine allocates the frame buffer for view.
func NewEngine(view layout.Viewport, bg shape.Color, drv Driver) (*Engine, error) {
	if view.Count() <= 0 {
		return nil, errors.New("invalid viewport dimensions")
	}
	if view.PixelsPerUnit <= 0 {
		return nil, fmt.Errorf("invalid pixels per unit %v", view.PixelsPerUnit)
	}
	return &Engine{
		View:       view,
		Background: bg,
		Drv:        drv,
		frame:      image.NewRGBA(view.Bounds()),
		vr:         vector.NewRasterizer(view.Width, view.Height),
		masks:      map[timeline.ID]mask{},
	}, nil
}

// Frame returns the frame buffer of the last render. It is overwritten by
// the next call to RenderAt.
func (e *Engine) Frame() *image.RGBA { return e.frame }

// RenderAt draws every object visible at time t and writes the result to
// the driver as frame number frame.
func (e *Engine) RenderAt(sc *timeline.Scene, t float64, frame int) error {
	start := time.Now()
	e.Last.Items, e.Last.CacheHits, e.Last.CacheMisses = 0, 0, 0

	draw.Draw(e.frame, e.frame.Bounds(), image.NewUniform(e.Background.NRGBA()), image.Point{}, draw.Src)

	items := sc.Snapshot(t)
	seen := make(map[timeline.ID]bool, len(items))
	for _, it := range items {
		d, ok := it.Result.Value.(Drawable)
		if !ok {
			log.Debug().Str("object", it.Name).Str("type", fmt.Sprintf("%T", it.Result.Value)).Msg("not drawable")
			continue
		}
		seen[it.ID] = true
		v := d.Drawing()
		fill := v.Fill
		fill.A *= v.Opacity
		if fill.A <= 0 {
			continue
		}
		m := e.coverage(it, v.Points)
		if m.bounds.Empty() {
			continue
		}
		e.Last.Items++
		draw.DrawMask(e.frame, m.bounds, image.NewUniform(fill.NRGBA()), image.Point{}, m.alpha, m.bounds.Min, draw.Over)
	}
	for id := range e.masks {
		if !seen[id] {
			delete(e.masks, id)
		}
	}
	e.Last.RasterMS = float64(time.Since(start).Microseconds()) / 1000.0

	if e.Drv != nil {
		if err := e.Drv.Write(frame, e.frame); err != nil {
			return fmt.Errorf("write frame %d: %w", frame, err)
		}
	}
	e.Last.TotalMS = float64(time.Since(start).Microseconds()) / 1000.0
	return nil
}

// coverage returns the mask for it, reusing the cached one when the value
// comes from the same static span as last time.
func (e *Engine) coverage(it timeline.Item, pts vpath.Outline) mask {
	if m, ok := e.masks[it.ID]; ok && it.Result.Static && m.key == it.Result.Key {
		e.Last.CacheHits++
		return m
	}
	e.Last.CacheMisses++
	m := e.rasterize(pts)
	m.key = it.Result.Key
	if it.Result.Static {
		e.masks[it.ID] = m
	} else {
		delete(e.masks, it.ID)
	}
	return m
}

func (e *Engine) rasterize(pts vpath.Outline) mask {
	b := e.View.PixelBounds(pts.Bounds())
	if b.Empty() {
		return mask{bounds: b}
	}
	e.vr.Reset(b.Dx(), b.Dy())
	e.vr.DrawOp = draw.Src
	ox, oy := float32(b.Min.X), float32(b.Min.Y)
	for _, sp := range vpath.Subpaths(pts) {
		if len(sp) < 3 {
			continue
		}
		x, y := e.View.ToPixel(sp[0])
		e.vr.MoveTo(x-ox, y-oy)
		for i := 1; i+1 < len(sp); i += 2 {
			hx, hy := e.View.ToPixel(sp[i])
			ax, ay := e.View.ToPixel(sp[i+1])
			e.vr.QuadTo(hx-ox, hy-oy, ax-ox, ay-oy)
		}
		e.vr.ClosePath()
	}
	alpha := image.NewAlpha(b)
	e.vr.Draw(alpha, b, image.Opaque, image.Point{})
	return mask{bounds: b, alpha: alpha}
}
