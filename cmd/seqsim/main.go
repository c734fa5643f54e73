package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/arcanim/internal/app"
	"github.com/coreman2200/arcanim/internal/config"
	"github.com/coreman2200/arcanim/internal/driver/fake"
	"github.com/coreman2200/arcanim/internal/sequence"
	"github.com/coreman2200/arcanim/internal/timeline"
)

// seqsim plays a scene in real time against the summarizing driver and
// prints what each frame contains.
func main() {
	var (
		scene = flag.String("scene", "morph", "scene to play")
		fps   = flag.Int("fps", 30, "simulation frames per second")
		speed = flag.Float64("speed", 1, "playback speed multiplier")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	drv := &fake.Driver{}
	core, err := app.InitCore(config.Config{Scene: *scene, FPS: *fps, Width: 160, Height: 90, PixelsPerUnit: 20}, drv)
	if err != nil {
		log.Fatal().Err(err).Msg("init")
	}

	frame := 0
	h := sequence.Hooks{
		Frame: func(t float64, items []timeline.Item) {
			if err := core.Eng.RenderAt(core.Scene, t, frame); err != nil {
				log.Error().Err(err).Msg("render")
				return
			}
			s, _ := drv.Summary(frame)
			fmt.Printf("[%04d] t=%.3f items=%d hits=%d center=#%02x%02x%02x\n",
				frame, t, len(items), core.Eng.Last.CacheHits, s.Center.R, s.Center.G, s.Center.B)
			frame++
		},
		Done: func() { fmt.Println("[Done]") },
	}
	player := sequence.NewPlayer(h)
	if err := player.Load(core.Scene); err != nil {
		log.Fatal().Err(err).Msg("load")
	}
	player.Start()

	dt := time.Second / time.Duration(max(1, *fps))
	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	start := time.Now()
	for range ticker.C {
		player.Tick(dt.Seconds() * *speed)
		// End when player returns to Idle (no loop)
		if player.State == sequence.Idle {
			fmt.Printf("Done at t=%.3f (wall %.3fs, %d frames)\n", player.Now(), time.Since(start).Seconds(), frame)
			return
		}
	}
}
