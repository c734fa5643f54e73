package scenes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/arcanim/internal/render"
	"github.com/coreman2200/arcanim/internal/timeline"
)

func TestRegistry(t *testing.T) {
	reg := Default()
	assert.Equal(t, []string{"fade", "morph", "reveal", "typechange"}, reg.List())

	_, err := reg.Build("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScene))

	reg.Register(Def{Name: "broken"})
	_, ok := reg.Get("broken")
	assert.False(t, ok, "definitions without a builder are ignored")

	reg.Register(Def{Name: "empty", Build: func(*timeline.Scene) {}})
	sc, err := reg.Build("empty")
	require.NoError(t, err)
	assert.Equal(t, 0, sc.Len())
}

func TestBuiltinsEvaluateEverywhere(t *testing.T) {
	reg := Default()
	for _, name := range reg.List() {
		sc, err := reg.Build(name)
		require.NoError(t, err, name)
		end := sc.MaxEndTime()
		require.Greater(t, end, 0.0, name)

		for i := 0; i <= 100; i++ {
			at := end * float64(i) / 100
			for _, it := range sc.Snapshot(at) {
				d, ok := it.Result.Value.(render.Drawable)
				require.True(t, ok, "%s: %s is not drawable", name, it.Name)
				v := d.Drawing()
				require.Equal(t, 1, len(v.Points)%2, "%s at %v", name, at)
				for _, p := range v.Points {
					require.False(t, p.IsNaN(), "%s at %v", name, at)
				}
			}
		}
	}
}

func TestTypeChangeSpans(t *testing.T) {
	sc, err := Default().Build("typechange")
	require.NoError(t, err)
	spans := sc.ListSpans(0)
	require.Len(t, spans, 4)
	assert.Equal(t, "shape.Rect", spans[0].Type)
	assert.Equal(t, "shape.VItem", spans[1].Type)
	assert.Equal(t, timeline.TimeRange{Start: 1.5, End: 1.75}, spans[1].Range)
	assert.True(t, spans[1].Static)
	assert.InDelta(t, 3.75, sc.MaxEndTime(), 1e-12)
}
