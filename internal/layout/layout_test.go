package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/arcanim/internal/geom"
)

func TestViewport(t *testing.T) {
	v := Viewport{Width: 100, Height: 50, PixelsPerUnit: 10}
	assert.Equal(t, 5000, v.Count())
	assert.Equal(t, 101, v.Index(1, 1))

	x, y := v.ToPixel(geom.Pt(0, 0))
	assert.Equal(t, float32(50), x)
	assert.Equal(t, float32(25), y)
	x, y = v.ToPixel(geom.Pt(1, 1))
	assert.Equal(t, float32(60), x)
	assert.Equal(t, float32(15), y, "scene Y points up")

	r := v.PixelBounds(geom.Rectangle{Min: geom.Pt(-1, -1), Max: geom.Pt(1.05, 1)})
	assert.Equal(t, image.Rect(40, 15, 61, 35), r)
	assert.Equal(t, v.Bounds(), v.PixelBounds(geom.Rectangle{Min: geom.Pt(-100, -100), Max: geom.Pt(100, 100)}))

	sb := v.SceneBounds()
	assert.Equal(t, geom.Pt(-5, -2.5), sb.Min)
	assert.Equal(t, geom.Pt(5, 2.5), sb.Max)
}
