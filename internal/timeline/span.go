/*
Package timeline records per-object animation history and answers, for any
point in time, what every recorded object looks like.

Recording happens in an authoring phase through Timeline (one object, one
type) and Sequence (one object whose type may change). A Scene holds every
Sequence in an arena addressed by ID. Once authoring has finished and the
scene is sealed it is read-only and may be queried from any goroutine.
*/
package timeline

import (
	"fmt"

	"github.com/coreman2200/arcanim/internal/geom"
)

// Value is the capability a timeline needs from the objects it records:
// a deep copy, so a committed static span keeps the state it was given even
// when the live state is mutated afterwards.
type Value[T any] interface {
	Clone() T
}

// Rate reparametrizes progress before evaluation. It must map [0,1] into [0,1].
type Rate func(alpha float64) float64

// Evaluator produces an object state from progress in [0,1]. It is either
// dynamic, running a function of progress, or static, always returning one
// shared value. Values returned by a static evaluator must not be mutated.
type Evaluator[T any] struct {
	fn     func(alpha float64) T
	static *T
}

// Dynamic returns an evaluator running fn.
func Dynamic[T any](fn func(alpha float64) T) Evaluator[T] {
	return Evaluator[T]{fn: fn}
}

// Static returns an evaluator that always yields v.
func Static[T any](v T) Evaluator[T] {
	return Evaluator[T]{static: &v}
}

// IsStatic reports whether e always returns the same value.
func (e Evaluator[T]) IsStatic() bool {
	return e.static != nil
}

// Eval evaluates e at alpha, clamped to [0,1].
func (e Evaluator[T]) Eval(alpha float64) T {
	if e.static != nil {
		return *e.static
	}
	if e.fn == nil {
		panic("timeline: evaluation of a zero Evaluator")
	}
	return e.fn(geom.Clamp01(alpha))
}

// Span is one authored animation: an evaluator played over Duration
// seconds with a rate curve. Padding is display-only and carries no
// evaluation semantics.
type Span[T any] struct {
	Evaluator Evaluator[T]
	Duration  float64
	Rate      Rate
	Padding   [2]float64
}

// NewSpan returns a linear span of the given duration.
func NewSpan[T any](ev Evaluator[T], duration float64) Span[T] {
	return Span[T]{Evaluator: ev, Duration: duration}
}

// WithDuration returns a copy of s lasting d seconds.
func (s Span[T]) WithDuration(d float64) Span[T] {
	s.Duration = d
	return s
}

// WithRate returns a copy of s using rate r.
func (s Span[T]) WithRate(r Rate) Span[T] {
	s.Rate = r
	return s
}

// WithPadding returns a copy of s with display padding before and after.
func (s Span[T]) WithPadding(before, after float64) Span[T] {
	s.Padding = [2]float64{before, after}
	return s
}

// EvalAlpha evaluates s at local progress alpha.
func (s Span[T]) EvalAlpha(alpha float64) T {
	alpha = geom.Clamp01(alpha)
	if s.Rate != nil {
		alpha = geom.Clamp01(s.Rate(alpha))
	}
	return s.Evaluator.Eval(alpha)
}

func (s Span[T]) validate() {
	if !(s.Duration > 0) {
		panic(fmt.Sprintf("timeline: span duration %v must be positive", s.Duration))
	}
}

// TimeRange is a half-open interval of absolute scene time in seconds.
type TimeRange struct {
	Start, End float64
}

// Duration returns the length of r.
func (r TimeRange) Duration() float64 {
	return r.End - r.Start
}

// Contains reports whether t is in [Start, End).
func (r TimeRange) Contains(t float64) bool {
	return t >= r.Start && t < r.End
}

// SpanInfo describes one committed span for timeline visualization.
type SpanInfo struct {
	Type   string    `json:"type"`
	Range  TimeRange `json:"range"`
	Static bool      `json:"static"`
}
