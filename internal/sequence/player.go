package sequence

import (
	"math"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/arcanim/internal/timeline"
)

// NewPlayer constructs a Player with provided hooks.
func NewPlayer(h Hooks) *Player {
	return &Player{State: Idle, hooks: h}
}

// Load replaces the current scene. Resets time and state to Idle. The scene
// must already be sealed.
func (p *Player) Load(sc *timeline.Scene) error {
	if sc == nil || sc.MaxEndTime() <= 0 {
		return ErrEmptyScene
	}
	p.scene = sc
	p.endS = sc.MaxEndTime()
	p.nowS = 0
	p.State = Idle
	return nil
}

// Now returns the playback position in seconds.
func (p *Player) Now() float64 { return p.nowS }

// Duration returns the length of the loaded scene.
func (p *Player) Duration() float64 { return p.endS }

// Start moves to Running and emits the current frame.
func (p *Player) Start() {
	if p.State == Running || p.scene == nil {
		return
	}
	p.State = Running
	p.emit()
}

// Pause pauses playback.
func (p *Player) Pause() {
	if p.State == Running {
		p.State = Paused
	}
}

// Resume resumes playback.
func (p *Player) Resume() {
	if p.State == Paused {
		p.State = Running
	}
}

// Stop stops and resets to start.
func (p *Player) Stop() {
	p.State = Idle
	p.nowS = 0
}

// Seek jumps to absolute scene time t, clamped into [0, duration], and
// emits that frame whatever the state.
func (p *Player) Seek(t float64) {
	if p.scene == nil {
		return
	}
	p.nowS = math.Min(math.Max(t, 0), p.endS)
	p.emit()
}

// Tick advances playback by dt seconds and emits the new frame.
func (p *Player) Tick(dt float64) {
	if p.State != Running || p.scene == nil || dt <= 0 {
		return
	}
	p.nowS += dt
	if p.nowS >= p.endS {
		if p.Loop {
			p.nowS = math.Mod(p.nowS, p.endS)
			log.Debug().Float64("t", p.nowS).Msg("playback looped")
		} else {
			p.nowS = p.endS
			p.emit()
			p.State = Idle
			if p.hooks.Done != nil {
				p.hooks.Done()
			}
			return
		}
	}
	p.emit()
}

func (p *Player) emit() {
	if p.hooks.Frame != nil {
		p.hooks.Frame(p.nowS, p.scene.Snapshot(p.nowS))
	}
}

// --- Lightweight synchronization helpers ---

// SafePlayer serializes access to a Player shared between a ticker
// goroutine and control handlers.
type SafePlayer struct {
	mu sync.Mutex
	P  *Player
}

func NewSafePlayer(h Hooks) *SafePlayer {
	return &SafePlayer{P: NewPlayer(h)}
}

func (s *SafePlayer) With(f func(p *Player)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.P)
}
