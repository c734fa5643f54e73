package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/arcanim/internal/config"
	"github.com/coreman2200/arcanim/internal/driver/fake"
	"github.com/coreman2200/arcanim/internal/scenes"
)

func smallConfig(scene string) config.Config {
	return config.Config{Scene: scene, Width: 64, Height: 36, FPS: 10, PixelsPerUnit: 8, Workers: 1}
}

func TestInitCore(t *testing.T) {
	c, err := InitCore(smallConfig("morph"), nil)
	require.NoError(t, err)
	assert.InDelta(t, 3, c.Duration(), 1e-12)
	assert.Equal(t, 31, c.FrameCount())
	assert.Equal(t, 0.0, c.FrameTime(0))
	assert.InDelta(t, 3, c.FrameTime(30), 1e-12)
	assert.InDelta(t, 3, c.FrameTime(99), 1e-12, "clamped to the end")
	assert.Equal(t, "#101418", c.Cfg.Background, "defaults are merged")
}

func TestInitCoreErrors(t *testing.T) {
	_, err := InitCore(smallConfig("nope"), nil)
	assert.True(t, errors.Is(err, scenes.ErrUnknownScene))

	cfg := smallConfig("morph")
	cfg.Background = "teal"
	_, err = InitCore(cfg, nil)
	assert.ErrorContains(t, err, "background")
}

func TestRenderFramesIsDeterministic(t *testing.T) {
	c, err := InitCore(smallConfig("fade"), nil)
	require.NoError(t, err)

	serial := &fake.Driver{}
	st, err := RenderFrames(context.Background(), c, serial, 1)
	require.NoError(t, err)
	assert.Equal(t, c.FrameCount(), st.Frames)
	assert.Equal(t, c.FrameCount(), serial.Count)
	assert.Positive(t, st.CacheHits)

	parallel := &fake.Driver{}
	_, err = RenderFrames(context.Background(), c, parallel, 4)
	require.NoError(t, err)
	assert.Equal(t, serial.Frames, parallel.Frames)
}

func TestRenderFramesCanceled(t *testing.T) {
	c, err := InitCore(smallConfig("morph"), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	drv := &fake.Driver{}
	_, err = RenderFrames(ctx, c, drv, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, drv.Count)
}
