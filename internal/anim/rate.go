// Package anim provides rate curves and the built-in animation constructors.
package anim

import (
	"sort"

	"github.com/tanema/gween/ease"

	"github.com/coreman2200/arcanim/internal/timeline"
)

// Linear returns progress unchanged.
func Linear(t float64) float64 { return t }

// Smooth is smoothstep, 3t^2 - 2t^3.
func Smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Smoother is smootherstep, 6t^5 - 15t^4 + 10t^3.
func Smoother(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Ease adapts a gween easing function to a rate curve. The endpoints are
// pinned so float32 rounding never leaves a span short of its final value.
func Ease(fn ease.TweenFunc) timeline.Rate {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var rates = map[string]timeline.Rate{
	"linear":       Linear,
	"smooth":       Smooth,
	"smoother":     Smoother,
	"in_quad":      Ease(ease.InQuad),
	"out_quad":     Ease(ease.OutQuad),
	"in_out_quad":  Ease(ease.InOutQuad),
	"in_cubic":     Ease(ease.InCubic),
	"out_cubic":    Ease(ease.OutCubic),
	"in_out_cubic": Ease(ease.InOutCubic),
	"in_sine":      Ease(ease.InSine),
	"out_sine":     Ease(ease.OutSine),
	"in_out_sine":  Ease(ease.InOutSine),
	"in_circ":      Ease(ease.InCirc),
	"out_circ":     Ease(ease.OutCirc),
	"in_out_circ":  Ease(ease.InOutCirc),
	"in_expo":      Ease(ease.InExpo),
	"out_expo":     Ease(ease.OutExpo),
	"in_out_expo":  Ease(ease.InOutExpo),
	"out_bounce":   Ease(ease.OutBounce),
}

// RateByName looks up a rate curve. The empty name is linear.
func RateByName(name string) (timeline.Rate, bool) {
	if name == "" {
		return Linear, true
	}
	r, ok := rates[name]
	return r, ok
}

// RateNames lists every name RateByName accepts, sorted.
func RateNames() []string {
	names := make([]string, 0, len(rates))
	for n := range rates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
