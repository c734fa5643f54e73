package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	diag "github.com/coreman2200/arcanim/internal/diagnostics"
	"github.com/coreman2200/arcanim/internal/render"
	"github.com/coreman2200/arcanim/internal/sequence"
	"github.com/coreman2200/arcanim/internal/timeline"
)

// State serves one sealed scene to inspector clients: span listings, a
// live snapshot stream driven by a Player, and a control socket.
type State struct {
	mu        sync.RWMutex
	SceneName string
	FPS       int

	scene  *timeline.Scene
	player *sequence.SafePlayer

	frameID     uint64
	lastT       float64
	startTime   time.Time
	clients     map[*websocket.Conn]bool
	diagClients map[*websocket.Conn]bool
}

// NewState loads sc into a fresh player.
func NewState(name string, sc *timeline.Scene, fps int, loop bool) (*State, error) {
	s := &State{
		SceneName:   name,
		FPS:         fps,
		scene:       sc,
		startTime:   time.Now(),
		clients:     map[*websocket.Conn]bool{},
		diagClients: map[*websocket.Conn]bool{},
	}
	s.player = sequence.NewSafePlayer(sequence.Hooks{
		Frame: s.broadcastFrame,
		Done: func() {
			s.pushDiag(diag.New(diag.Info, diag.CodePlaybackDone, "Playback reached the end"))
		},
	})
	var err error
	s.player.With(func(p *sequence.Player) {
		p.Loop = loop
		err = p.Load(sc)
	})
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	return s, nil
}

// Player returns the playback controller.
func (s *State) Player() *sequence.SafePlayer { return s.player }

// Routes registers every handler on mux.
func (s *State) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/spans", s.HandleSpans)
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/frames", s.HandleFramesWS)
	mux.HandleFunc("/control", s.HandleControlWS)
	mux.HandleFunc("/diag", s.HandleDiagWS)
}

// RunPlayback ticks the player at FPS until ctx is done.
func (s *State) RunPlayback(ctx context.Context) {
	fps := max(1, s.FPS)
	dt := time.Second / time.Duration(fps)
	ticker := time.NewTicker(dt)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			s.player.With(func(p *sequence.Player) { p.Tick(dt.Seconds()) })
			if took := time.Since(start); took > dt {
				d := diag.New(diag.Warn, diag.CodeFrameSlow, "Frame took longer than the tick interval")
				d.Evidence = map[string]any{"took_ms": took.Milliseconds(), "budget_ms": dt.Milliseconds()}
				s.pushDiag(d)
			}
		}
	}
}

type sequenceSpans struct {
	ID    timeline.ID         `json:"id"`
	Name  string              `json:"name"`
	Spans []timeline.SpanInfo `json:"spans"`
}

// HandleSpans lists the committed spans of every sequence.
func (s *State) HandleSpans(w http.ResponseWriter, r *http.Request) {
	out := make([]sequenceSpans, 0, s.scene.Len())
	for _, id := range s.scene.IDs() {
		out = append(out, sequenceSpans{
			ID:    id,
			Name:  s.scene.Sequence(id).Name(),
			Spans: s.scene.ListSpans(id),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (s *State) HandleHealth(w http.ResponseWriter, r *http.Request) {
	var state sequence.PlayerState
	var now, dur float64
	s.player.With(func(p *sequence.Player) {
		state, now, dur = p.State, p.Now(), p.Duration()
	})
	s.mu.RLock()
	resp := map[string]any{
		"frame_id":   s.frameID,
		"uptime_s":   time.Since(s.startTime).Seconds(),
		"scene":      s.SceneName,
		"objects":    s.scene.Len(),
		"fps":        s.FPS,
		"state":      state,
		"t":          now,
		"duration_s": dur,
		"clients":    len(s.clients),
		"diag":       len(s.diagClients),
	}
	s.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (s *State) HandleFramesWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.watch(conn, s.clients)
}

func (s *State) HandleDiagWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.diagClients[conn] = true
	s.mu.Unlock()
	s.watch(conn, s.diagClients)
}

// watch drains conn until it closes, then forgets it.
func (s *State) watch(conn *websocket.Conn, set map[*websocket.Conn]bool) {
	go func() {
		defer func() {
			s.mu.Lock()
			delete(set, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Control is a message on the control socket.
type Control struct {
	Cmd  string  `json:"cmd"` // start | stop | pause | resume | seek | loop
	T    float64 `json:"t,omitempty"`
	Loop bool    `json:"loop,omitempty"`
}

// Status is the reply to every control message.
type Status struct {
	State    sequence.PlayerState `json:"state"`
	T        float64              `json:"t"`
	Duration float64              `json:"duration_s"`
	Loop     bool                 `json:"loop"`
	Error    string               `json:"error,omitempty"`
}

func (s *State) HandleControlWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Control
		var st Status
		if err := json.Unmarshal(data, &msg); err != nil {
			d := diag.New(diag.Warn, diag.CodeControlInvalid, "Control message is not valid JSON")
			d.Detail = err.Error()
			s.pushDiag(d)
			st = s.status()
			st.Error = "invalid message"
		} else {
			st = s.applyControl(msg)
		}
		b, _ := json.Marshal(st)
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			return
		}
	}
}

func (s *State) applyControl(msg Control) Status {
	known := true
	s.player.With(func(p *sequence.Player) {
		switch msg.Cmd {
		case "start":
			p.Start()
		case "stop":
			p.Stop()
		case "pause":
			p.Pause()
		case "resume":
			p.Resume()
		case "seek":
			p.Seek(msg.T)
		case "loop":
			p.Loop = msg.Loop
		default:
			known = false
		}
	})
	st := s.status()
	switch {
	case !known:
		d := diag.New(diag.Warn, diag.CodeControlUnknown, "Unknown control command")
		d.Evidence = map[string]any{"cmd": msg.Cmd}
		s.pushDiag(d)
		st.Error = "unknown command"
	case msg.Cmd == "start":
		d := diag.New(diag.Info, diag.CodePlaybackStarted, "Playback started")
		d.SceneTime = st.T
		s.pushDiag(d)
	}
	log.Debug().Str("cmd", msg.Cmd).Float64("t", st.T).Str("state", string(st.State)).Msg("control")
	return st
}

func (s *State) status() Status {
	var st Status
	s.player.With(func(p *sequence.Player) {
		st = Status{State: p.State, T: p.Now(), Duration: p.Duration(), Loop: p.Loop}
	})
	return st
}

// Object is one visible object in a streamed frame.
type Object struct {
	ID      timeline.ID `json:"id"`
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Key     string      `json:"key"`
	Static  bool        `json:"static"`
	Bounds  [4]float64  `json:"bounds"`
	Fill    string      `json:"fill,omitempty"`
	Opacity float64     `json:"opacity"`
	Points  int         `json:"points"`
}

// Frame is the message streamed on /frames.
type Frame struct {
	T       int64    `json:"t"`
	FrameID uint64   `json:"frame_id"`
	SceneT  float64  `json:"scene_t"`
	Objects []Object `json:"objects"`
}

func objects(items []timeline.Item) []Object {
	out := make([]Object, 0, len(items))
	for _, it := range items {
		o := Object{
			ID:     it.ID,
			Name:   it.Name,
			Type:   fmt.Sprintf("%T", it.Result.Value),
			Key:    it.Result.Key.String(),
			Static: it.Result.Static,
		}
		if d, ok := it.Result.Value.(render.Drawable); ok {
			v := d.Drawing()
			b := v.Points.Bounds()
			o.Bounds = [4]float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y}
			o.Fill = v.Fill.String()
			o.Opacity = v.Opacity
			o.Points = len(v.Points)
		}
		out = append(out, o)
	}
	return out
}

func (s *State) broadcastFrame(t float64, items []timeline.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frameID++
	s.lastT = t
	b, _ := json.Marshal(Frame{T: time.Now().UnixNano(), FrameID: s.frameID, SceneT: t, Objects: objects(items)})
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			log.Debug().Err(err).Msg("write frame")
		}
	}
}

func (s *State) pushDiag(d diag.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.SceneTime == 0 {
		d.SceneTime = s.lastT
	}
	b, _ := json.Marshal(d)
	for c := range s.diagClients {
		c.SetWriteDeadline(time.Now().Add(200 * time.Millisecond))
		_ = c.WriteMessage(websocket.TextMessage, b)
	}
}
