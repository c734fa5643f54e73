package app

import (
	"fmt"
	"math"

	"github.com/coreman2200/arcanim/internal/config"
	"github.com/coreman2200/arcanim/internal/layout"
	"github.com/coreman2200/arcanim/internal/render"
	"github.com/coreman2200/arcanim/internal/scenes"
	"github.com/coreman2200/arcanim/internal/shape"
	"github.com/coreman2200/arcanim/internal/timeline"
)

// Core is a built, sealed scene plus everything needed to draw it.
type Core struct {
	Cfg   config.Config
	Reg   *scenes.Registry
	Scene *timeline.Scene
	View  layout.Viewport
	Bg    shape.Color
	Eng   *render.Engine
}

// InitCore builds cfg.Scene from the default registry and an engine
// writing to drv. Zero fields of cfg fall back to config.Default.
func InitCore(cfg config.Config, drv render.Driver) (*Core, error) {
	cfg = cfg.Merge(config.Default())
	reg := scenes.Default()

	sc, err := reg.Build(cfg.Scene)
	if err != nil {
		return nil, err
	}
	bg, err := shape.ParseHex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	view := layout.Viewport{Width: cfg.Width, Height: cfg.Height, PixelsPerUnit: cfg.PixelsPerUnit}
	eng, err := render.NewEngine(view, bg, drv)
	if err != nil {
		return nil, err
	}
	return &Core{Cfg: cfg, Reg: reg, Scene: sc, View: view, Bg: bg, Eng: eng}, nil
}

// Duration returns the scene length in seconds.
func (c *Core) Duration() float64 { return c.Scene.MaxEndTime() }

// FrameCount returns the number of frames covering [0, Duration] at cfg.FPS,
// both ends included.
func (c *Core) FrameCount() int {
	return int(math.Ceil(c.Duration()*float64(c.Cfg.FPS))) + 1
}

// FrameTime returns the scene time of frame i.
func (c *Core) FrameTime(i int) float64 {
	return math.Min(float64(i)/float64(c.Cfg.FPS), c.Duration())
}
