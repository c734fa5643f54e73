package timeline

import (
	"fmt"
	"math"
	"sort"
)

type entry[T any] struct {
	span Span[T]
	rng  TimeRange
}

// Timeline is the animation history of one object of type T.
//
// Spans are only committed at boundaries: Play, Hide, Update and Seal.
// Forward only moves the cursor, so any number of Forward calls while the
// object is visible and unchanged collapse into one static span.
type Timeline[T Value[T]] struct {
	entries []entry[T]
	cursor  float64
	state   T

	visible      bool
	visibleSince float64
}

// NewTimeline returns an empty, hidden timeline starting at t=0.
func NewTimeline[T Value[T]](initial T) *Timeline[T] {
	return newTimelineAt(initial, 0)
}

func newTimelineAt[T Value[T]](initial T, at float64) *Timeline[T] {
	return &Timeline[T]{cursor: at, state: initial}
}

// Cursor returns the authoring time in seconds.
func (tl *Timeline[T]) Cursor() float64 { return tl.cursor }

// State returns the live state, the value the next static span will hold.
func (tl *Timeline[T]) State() T { return tl.state }

// IsVisible reports whether the object is currently shown.
func (tl *Timeline[T]) IsVisible() bool { return tl.visible }

// Len returns the number of committed spans.
func (tl *Timeline[T]) Len() int { return len(tl.entries) }

// Show marks the object visible from the cursor on. It is a no-op when the
// object is already visible.
func (tl *Timeline[T]) Show() *Timeline[T] {
	if !tl.visible {
		tl.visible = true
		tl.visibleSince = tl.cursor
	}
	return tl
}

// Hide commits the pending static span, if any, and hides the object.
func (tl *Timeline[T]) Hide() *Timeline[T] {
	tl.commitStatic()
	tl.visible = false
	return tl
}

// Forward advances the cursor by secs.
func (tl *Timeline[T]) Forward(secs float64) *Timeline[T] {
	if secs < 0 || math.IsNaN(secs) {
		panic(fmt.Sprintf("timeline: cannot forward by %v seconds", secs))
	}
	tl.cursor += secs
	return tl
}

// ForwardTo advances the cursor to absolute time t. Earlier times are ignored.
func (tl *Timeline[T]) ForwardTo(t float64) *Timeline[T] {
	if t > tl.cursor {
		tl.cursor = t
	}
	return tl
}

// Play appends s at the cursor and advances past it. The live state becomes
// the span's final value and the object stays visible afterwards.
func (tl *Timeline[T]) Play(s Span[T]) *Timeline[T] {
	s.validate()
	tl.commitStatic()
	tl.push(s, TimeRange{Start: tl.cursor, End: tl.cursor + s.Duration})
	tl.cursor += s.Duration
	tl.state = s.EvalAlpha(1).Clone()
	tl.visible = true
	tl.visibleSince = tl.cursor
	return tl
}

// Update replaces the live state.
func (tl *Timeline[T]) Update(v T) *Timeline[T] {
	return tl.UpdateWith(func(s *T) { *s = v })
}

// UpdateWith mutates the live state in place. The time the object spent
// visible with the old state is committed first.
func (tl *Timeline[T]) UpdateWith(fn func(*T)) *Timeline[T] {
	tl.commitStatic()
	fn(&tl.state)
	return tl
}

// Seal commits the pending static span. Calling it again changes nothing.
func (tl *Timeline[T]) Seal() *Timeline[T] {
	tl.commitStatic()
	return tl
}

func (tl *Timeline[T]) commitStatic() {
	if !tl.visible {
		return
	}
	since := tl.visibleSince
	tl.visibleSince = tl.cursor
	if tl.cursor <= since {
		return
	}
	s := NewSpan(Static(tl.state.Clone()), tl.cursor-since)
	tl.push(s, TimeRange{Start: since, End: tl.cursor})
}

func (tl *Timeline[T]) push(s Span[T], rng TimeRange) {
	if n := len(tl.entries); n > 0 && rng.Start < tl.entries[n-1].rng.End {
		panic(fmt.Sprintf("timeline: span %d at %v overlaps span %d ending at %v",
			n, rng.Start, n-1, tl.entries[n-1].rng.End))
	}
	tl.entries = append(tl.entries, entry[T]{span: s, rng: rng})
}

// Start returns the start of the first committed span.
func (tl *Timeline[T]) Start() (float64, bool) {
	if len(tl.entries) == 0 {
		return 0, false
	}
	return tl.entries[0].rng.Start, true
}

// End returns the end of the last committed span.
func (tl *Timeline[T]) End() (float64, bool) {
	if len(tl.entries) == 0 {
		return 0, false
	}
	return tl.entries[len(tl.entries)-1].rng.End, true
}

// EvalAt evaluates the timeline at absolute time t and returns the index of
// the span that answered. It reports false when t is outside the recorded
// range, is NaN, falls in a hidden interval, or nothing has been committed.
// The last span also answers at its own end time.
func (tl *Timeline[T]) EvalAt(t float64) (T, int, bool) {
	v, idx, _, ok := tl.evalAt(t)
	return v, idx, ok
}

// IsStaticSpan reports whether span i holds a static evaluator.
func (tl *Timeline[T]) IsStaticSpan(i int) bool {
	return tl.entries[i].span.Evaluator.IsStatic()
}

func (tl *Timeline[T]) evalAt(t float64) (v T, idx int, static, ok bool) {
	n := len(tl.entries)
	if n == 0 || math.IsNaN(t) || t < tl.entries[0].rng.Start || t > tl.entries[n-1].rng.End {
		return v, -1, false, false
	}
	idx = sort.Search(n, func(i int) bool { return tl.entries[i].rng.End > t })
	if idx == n {
		idx = n - 1
	}
	e := tl.entries[idx]
	if t < e.rng.Start {
		return v, -1, false, false
	}
	alpha := (t - e.rng.Start) / e.rng.Duration()
	return e.span.EvalAlpha(alpha), idx, e.span.Evaluator.IsStatic(), true
}

// Spans describes every committed span in order.
func (tl *Timeline[T]) Spans() []SpanInfo {
	name := fmt.Sprintf("%T", tl.state)
	out := make([]SpanInfo, len(tl.entries))
	for i, e := range tl.entries {
		out[i] = SpanInfo{Type: name, Range: e.rng, Static: e.span.Evaluator.IsStatic()}
	}
	return out
}

// segment methods let a Sequence drive timelines of any T.

func (tl *Timeline[T]) segStart() (float64, bool) { return tl.Start() }
func (tl *Timeline[T]) segEnd() (float64, bool)   { return tl.End() }
func (tl *Timeline[T]) segCursor() float64        { return tl.cursor }
func (tl *Timeline[T]) segVisible() bool          { return tl.visible }
func (tl *Timeline[T]) segShow()                  { tl.Show() }
func (tl *Timeline[T]) segHide()                  { tl.Hide() }
func (tl *Timeline[T]) segForward(secs float64)   { tl.Forward(secs) }
func (tl *Timeline[T]) segForwardTo(t float64)    { tl.ForwardTo(t) }
func (tl *Timeline[T]) segSeal()                  { tl.Seal() }
func (tl *Timeline[T]) segSpans() []SpanInfo      { return tl.Spans() }
func (tl *Timeline[T]) segType() string           { return fmt.Sprintf("%T", tl.state) }

func (tl *Timeline[T]) segEval(t float64) (any, int, bool, bool) {
	v, idx, static, ok := tl.evalAt(t)
	if !ok {
		return nil, idx, false, false
	}
	return v, idx, static, true
}
