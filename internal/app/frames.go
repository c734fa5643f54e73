package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/coreman2200/arcanim/internal/render"
)

// Stats summarizes an offline render.
type Stats struct {
	Frames      int
	CacheHits   int64
	CacheMisses int64
	Elapsed     time.Duration
}

// RenderFrames renders every frame of c to drv using up to workers
// goroutines, each drawing with its own engine. It stops at the first error.
func RenderFrames(ctx context.Context, c *Core, drv render.Driver, workers int) (Stats, error) {
	if workers <= 0 {
		workers = 1
	}
	start := time.Now()
	n := c.FrameCount()

	engines := make(chan *render.Engine, workers)
	for i := 0; i < workers; i++ {
		eng, err := render.NewEngine(c.View, c.Bg, drv)
		if err != nil {
			return Stats{}, err
		}
		engines <- eng
	}

	var hits, misses atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			eng := <-engines
			defer func() { engines <- eng }()
			t := c.FrameTime(i)
			if err := eng.RenderAt(c.Scene, t, i); err != nil {
				return err
			}
			hits.Add(int64(eng.Last.CacheHits))
			misses.Add(int64(eng.Last.CacheMisses))
			log.Debug().Int("frame", i).Float64("t", t).
				Int("items", eng.Last.Items).Float64("ms", eng.Last.TotalMS).Msg("rendered")
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	st := Stats{Frames: n, CacheHits: hits.Load(), CacheMisses: misses.Load(), Elapsed: time.Since(start)}
	if err != nil {
		return st, err
	}
	log.Info().Int("frames", n).Int("workers", workers).
		Int64("cache_hits", st.CacheHits).Dur("elapsed", st.Elapsed).Msg("render complete")
	return st, nil
}
