package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/arcanim/internal/anim"
	"github.com/coreman2200/arcanim/internal/geom"
	"github.com/coreman2200/arcanim/internal/shape"
	"github.com/coreman2200/arcanim/internal/timeline"
)

func testScene() *timeline.Scene {
	sc := timeline.NewScene()
	r := shape.NewRect(geom.Pt(0, 0), 1, 1)
	_, tl := timeline.Insert(sc, "r", r)
	tl.Show().Play(anim.Lerp(r, shape.NewRect(geom.Pt(0, 0), 3, 1)).WithDuration(2))
	sc.SealAll()
	return sc
}

func TestLoadRejectsEmptyScene(t *testing.T) {
	p := NewPlayer(Hooks{})
	assert.ErrorIs(t, p.Load(timeline.NewScene()), ErrEmptyScene)
	assert.ErrorIs(t, p.Load(nil), ErrEmptyScene)
	p.Start()
	assert.Equal(t, Idle, p.State)
}

func TestPlaybackToEnd(t *testing.T) {
	var times []float64
	done := 0
	p := NewPlayer(Hooks{
		Frame: func(at float64, items []timeline.Item) {
			times = append(times, at)
			require.Len(t, items, 1)
		},
		Done: func() { done++ },
	})
	require.NoError(t, p.Load(testScene()))
	assert.Equal(t, 2.0, p.Duration())

	p.Start()
	p.Tick(0.5)
	p.Pause()
	p.Tick(0.5)
	p.Resume()
	p.Tick(1)
	p.Tick(1)
	assert.Equal(t, []float64{0, 0.5, 1.5, 2}, times)
	assert.Equal(t, Idle, p.State)
	assert.Equal(t, 1, done)

	p.Tick(1)
	assert.Len(t, times, 4, "idle players do not tick")
}

func TestLoopAndSeek(t *testing.T) {
	var last float64
	p := NewPlayer(Hooks{Frame: func(at float64, _ []timeline.Item) { last = at }})
	require.NoError(t, p.Load(testScene()))
	p.Loop = true
	p.Start()
	p.Tick(2.5)
	assert.InDelta(t, 0.5, last, 1e-12)
	assert.Equal(t, Running, p.State)

	p.Seek(10)
	assert.Equal(t, 2.0, last)
	p.Seek(-1)
	assert.Equal(t, 0.0, last)

	p.Stop()
	assert.Equal(t, Idle, p.State)
	assert.Equal(t, 0.0, p.Now())
}

func TestSafePlayer(t *testing.T) {
	sp := NewSafePlayer(Hooks{})
	sp.With(func(p *Player) {
		require.NoError(t, p.Load(testScene()))
		p.Start()
		p.Tick(1)
		assert.Equal(t, 1.0, p.Now())
	})
}
