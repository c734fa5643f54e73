package sequence

import (
	"errors"

	"github.com/coreman2200/arcanim/internal/timeline"
)

// ErrEmptyScene is returned when loading a scene with nothing to play.
var ErrEmptyScene = errors.New("scene has no recorded time")

// PlayerState enumerates playback states.
type PlayerState string

const (
	Idle    PlayerState = "idle"
	Running PlayerState = "running"
	Paused  PlayerState = "paused"
)

// Hooks are dependency-injected callbacks into the renderer or inspector.
type Hooks struct {
	// Frame receives every visible object at scene time t.
	Frame func(t float64, items []timeline.Item)
	// Done fires when a non-looping playback reaches the end.
	Done func()
}

// Player plays a sealed scene in real time.
type Player struct {
	State PlayerState
	Loop  bool

	scene *timeline.Scene
	nowS  float64 // position within the scene
	endS  float64

	hooks Hooks
}
