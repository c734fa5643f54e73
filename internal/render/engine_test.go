package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/arcanim/internal/anim"
	"github.com/coreman2200/arcanim/internal/geom"
	"github.com/coreman2200/arcanim/internal/layout"
	"github.com/coreman2200/arcanim/internal/shape"
	"github.com/coreman2200/arcanim/internal/timeline"
)

// fakeDriver captures the last frame written.
type fakeDriver struct {
	frames []int
	last   *image.RGBA
	err    error
}

func (d *fakeDriver) Write(frame int, img *image.RGBA) error {
	if d.err != nil {
		return d.err
	}
	d.frames = append(d.frames, frame)
	d.last = image.NewRGBA(img.Bounds())
	copy(d.last.Pix, img.Pix)
	return nil
}

// label is a timeline value the engine cannot draw.
type label string

func (l label) Clone() label { return l }

var view = layout.Viewport{Width: 40, Height: 40, PixelsPerUnit: 10}

func squareScene() *timeline.Scene {
	sc := timeline.NewScene()
	_, lt := timeline.Insert(sc, "label", label("hi"))
	lt.Show()
	sq := shape.New(shape.Square(geom.Pt(0, 0), 2)).WithFill(shape.Teal)
	_, tl := timeline.Insert(sc, "square", sq)
	tl.Show().Forward(2)
	tl.Play(anim.FadeOut(sq))
	sc.SyncAll()
	sc.SealAll()
	return sc
}

func TestNewEngineValidates(t *testing.T) {
	_, err := NewEngine(layout.Viewport{}, shape.Black, nil)
	assert.Error(t, err)
	_, err = NewEngine(layout.Viewport{Width: 4, Height: 4}, shape.Black, nil)
	assert.Error(t, err)
}

func TestRenderFillsShape(t *testing.T) {
	drv := &fakeDriver{}
	e, err := NewEngine(view, shape.Black, drv)
	require.NoError(t, err)
	sc := squareScene()

	require.NoError(t, e.RenderAt(sc, 0.5, 7))
	assert.Equal(t, []int{7}, drv.frames)
	assert.Equal(t, 1, e.Last.Items, "the label is skipped")

	teal := shape.Teal.NRGBA()
	assert.Equal(t, color.RGBA{R: teal.R, G: teal.G, B: teal.B, A: 255}, drv.last.RGBAAt(20, 20))
	assert.Equal(t, color.RGBA{A: 255}, drv.last.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{A: 255}, drv.last.RGBAAt(5, 20), "outside the square")

	// fully faded at the end
	require.NoError(t, e.RenderAt(sc, 3, 8))
	assert.Equal(t, color.RGBA{A: 255}, drv.last.RGBAAt(20, 20))
}

func TestStaticMasksAreCached(t *testing.T) {
	e, err := NewEngine(view, shape.Black, nil)
	require.NoError(t, err)
	sc := squareScene()

	require.NoError(t, e.RenderAt(sc, 0.5, 0))
	assert.Equal(t, 0, e.Last.CacheHits)
	assert.Equal(t, 1, e.Last.CacheMisses)

	require.NoError(t, e.RenderAt(sc, 1.5, 1))
	assert.Equal(t, 1, e.Last.CacheHits)
	assert.Equal(t, 0, e.Last.CacheMisses)

	// the fade is dynamic
	require.NoError(t, e.RenderAt(sc, 2.5, 2))
	require.NoError(t, e.RenderAt(sc, 2.6, 3))
	assert.Equal(t, 0, e.Last.CacheHits)
	assert.Equal(t, 1, e.Last.CacheMisses)
}

func TestDriverErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	e, err := NewEngine(view, shape.Black, &fakeDriver{err: boom})
	require.NoError(t, err)
	err = e.RenderAt(squareScene(), 0, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
