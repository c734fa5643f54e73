package anim

import "github.com/coreman2200/arcanim/internal/timeline"

// DefaultDuration is the length in seconds of every constructed span.
const DefaultDuration = 1.0

// Interpolatable values blend towards another value of the same type.
type Interpolatable[T any] interface {
	Interpolate(other T, alpha float64) T
}

// Partialer values can be cut down to a progress range of themselves.
type Partialer[T any] interface {
	Partial(start, end float64) T
}

// Emptier values have an invisible counterpart.
type Emptier[T any] interface {
	Empty() T
}

// Aligner values can be made structurally compatible with another value.
type Aligner[T any] interface {
	IsAligned(other T) bool
	Aligned(other T) (T, T)
}

// Fader values can be drawn at a fraction of their opacity.
type Fader[T any] interface {
	Faded(factor float64) T
}

// Creatable is what Create and Uncreate need.
type Creatable[T any] interface {
	Partialer[T]
	Emptier[T]
}

// Transformable is what Transform needs.
type Transformable[T any] interface {
	Interpolatable[T]
	Aligner[T]
}

func span[T any](fn func(alpha float64) T) timeline.Span[T] {
	return timeline.NewSpan(timeline.Dynamic(fn), DefaultDuration).WithRate(Smooth)
}

// Create reveals v from nothing by extending it from its start.
func Create[T Creatable[T]](v T) timeline.Span[T] {
	return span(func(alpha float64) T {
		if alpha == 0 {
			return v.Empty()
		}
		return v.Partial(0, alpha)
	})
}

// Uncreate conceals v by retracting it towards its start.
func Uncreate[T Creatable[T]](v T) timeline.Span[T] {
	return span(func(alpha float64) T {
		if alpha == 1 {
			return v.Empty()
		}
		return v.Partial(0, 1-alpha)
	})
}

// Transform morphs from into to. Both are aligned once, when the span is
// built, and then interpolated point by point.
func Transform[T Transformable[T]](from, to T) timeline.Span[T] {
	a, b := from, to
	if !from.IsAligned(to) {
		a, b = from.Aligned(to)
	}
	return span(func(alpha float64) T {
		return a.Interpolate(b, alpha)
	})
}

// Lerp interpolates between two values that need no alignment.
func Lerp[T Interpolatable[T]](from, to T) timeline.Span[T] {
	return span(func(alpha float64) T {
		return from.Interpolate(to, alpha)
	})
}

// FadeIn raises v from transparent to its own opacity.
func FadeIn[T Fader[T]](v T) timeline.Span[T] {
	return span(func(alpha float64) T { return v.Faded(alpha) })
}

// FadeOut lowers v from its own opacity to transparent.
func FadeOut[T Fader[T]](v T) timeline.Span[T] {
	return span(func(alpha float64) T { return v.Faded(1 - alpha) })
}
