package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/arcanim/internal/app"
	"github.com/coreman2200/arcanim/internal/config"
	"github.com/coreman2200/arcanim/internal/driver/pngdir"
	"github.com/coreman2200/arcanim/internal/scenes"
	"github.com/coreman2200/arcanim/internal/ws"
)

func main() {
	// ---- Flags (a -config file overrides the fields it sets) ----
	def := config.Default()
	var (
		configPath = flag.String("config", "", "path to config.yaml (optional)")
		scene      = flag.String("scene", def.Scene, "scene to build")
		outDir     = flag.String("out", def.OutDir, "directory for rendered PNG frames")
		fps        = flag.Int("fps", def.FPS, "frames per second")
		width      = flag.Int("width", def.Width, "frame width in pixels")
		height     = flag.Int("height", def.Height, "frame height in pixels")
		ppu        = flag.Float64("ppu", def.PixelsPerUnit, "pixels per scene unit")
		workers    = flag.Int("workers", def.Workers, "parallel frame renderers")
		serve      = flag.Bool("serve", false, "serve the scene inspector instead of rendering")
		addr       = flag.String("addr", def.Addr, "HTTP listen address for -serve")
		loop       = flag.Bool("loop", false, "loop playback when serving")
		list       = flag.Bool("list", false, "list the built-in scenes and exit")
		logLevel   = flag.String("log-level", def.LogLevel, "debug | info | warn | error")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if *list {
		reg := scenes.Default()
		for _, name := range reg.List() {
			d, _ := reg.Get(name)
			fmt.Printf("%-12s %s\n", name, d.Summary)
		}
		return
	}

	flags := config.Config{
		Scene: *scene, OutDir: *outDir, FPS: *fps, Width: *width, Height: *height,
		PixelsPerUnit: *ppu, Workers: *workers, Addr: *addr, Loop: *loop, LogLevel: *logLevel,
	}
	cfg := flags
	if *configPath != "" {
		if c, err := config.Load(*configPath); err != nil {
			log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
		} else {
			cfg = c.Merge(flags)
		}
	}
	cfg = cfg.Merge(def)

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level; using info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	if *serve {
		err = runServer(ctx, cfg)
	} else {
		err = runRender(ctx, cfg)
	}
	if err != nil {
		log.Error().Err(err).Msg("arcanim failed")
		stop()
		os.Exit(1)
	}
}

func runRender(ctx context.Context, cfg config.Config) error {
	drv, err := pngdir.New(cfg.OutDir)
	if err != nil {
		return err
	}
	core, err := app.InitCore(cfg, drv)
	if err != nil {
		return err
	}
	log.Info().Str("scene", cfg.Scene).Float64("duration_s", core.Duration()).
		Int("frames", core.FrameCount()).Str("out", cfg.OutDir).Msg("rendering")
	_, err = app.RenderFrames(ctx, core, drv, cfg.Workers)
	return err
}

func runServer(ctx context.Context, cfg config.Config) error {
	core, err := app.InitCore(cfg, nil)
	if err != nil {
		return err
	}
	state, err := ws.NewState(cfg.Scene, core.Scene, cfg.FPS, cfg.Loop)
	if err != nil {
		return err
	}

	// ---- HTTP routes ----
	mux := http.NewServeMux()
	state.Routes(mux)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      withCORS(mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ---- Run playback & server ----
	go state.RunPlayback(ctx)
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("scene", cfg.Scene).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// ---- Graceful shutdown ----
	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h.ServeHTTP(w, r)
	})
}
