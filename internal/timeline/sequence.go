package timeline

import (
	"fmt"
	"math"
)

// segment is a Timeline with its type parameter erased.
type segment interface {
	segStart() (float64, bool)
	segEnd() (float64, bool)
	segCursor() float64
	segVisible() bool
	segShow()
	segHide()
	segForward(secs float64)
	segForwardTo(t float64)
	segSeal()
	segSpans() []SpanInfo
	segType() string
	segEval(t float64) (any, int, bool, bool)
}

// CacheKey identifies the span that produced a value: the segment index in
// the high 32 bits and the span index in the low 32 bits. Renderers use it
// to reuse work for values coming from the same static span.
type CacheKey uint64

func makeKey(seg, span int) CacheKey {
	return CacheKey(uint64(uint32(seg))<<32 | uint64(uint32(span)))
}

// Segment returns the segment index encoded in k.
func (k CacheKey) Segment() int { return int(uint64(k) >> 32) }

// Span returns the span index encoded in k.
func (k CacheKey) Span() int { return int(uint32(k)) }

func (k CacheKey) String() string {
	return fmt.Sprintf("%d/%d", k.Segment(), k.Span())
}

// Result is the outcome of evaluating a Sequence at a point in time.
type Result struct {
	Value  any
	Key    CacheKey
	Static bool
}

// Sequence is the history of one object whose concrete type may change over
// time. Each type change opens a new segment, a Timeline of the new type
// starting where the previous one stopped.
type Sequence struct {
	name   string
	origin float64
	segs   []segment
}

// NewSequence returns an empty sequence whose first segment will start at origin.
func NewSequence(name string, origin float64) *Sequence {
	return &Sequence{name: name, origin: origin}
}

// Name returns the label given at creation.
func (s *Sequence) Name() string { return s.name }

// Segments returns the number of segments.
func (s *Sequence) Segments() int { return len(s.segs) }

// Type returns the type name of the current segment, or "" when empty.
func (s *Sequence) Type() string {
	if len(s.segs) == 0 {
		return ""
	}
	return s.last().segType()
}

func (s *Sequence) last() segment {
	if len(s.segs) == 0 {
		panic(fmt.Sprintf("timeline: sequence %q has no segment", s.name))
	}
	return s.segs[len(s.segs)-1]
}

// Cursor returns the authoring time of the current segment.
func (s *Sequence) Cursor() float64 {
	if len(s.segs) == 0 {
		return s.origin
	}
	return s.last().segCursor()
}

// IsVisible reports whether the current segment is shown.
func (s *Sequence) IsVisible() bool {
	return len(s.segs) > 0 && s.last().segVisible()
}

// Show shows the current segment.
func (s *Sequence) Show() { s.last().segShow() }

// Hide hides the current segment.
func (s *Sequence) Hide() { s.last().segHide() }

// Forward advances the cursor by secs.
func (s *Sequence) Forward(secs float64) {
	if len(s.segs) == 0 {
		if secs < 0 {
			panic(fmt.Sprintf("timeline: cannot forward by %v seconds", secs))
		}
		s.origin += secs
		return
	}
	s.last().segForward(secs)
}

// ForwardTo advances the cursor to absolute time t.
func (s *Sequence) ForwardTo(t float64) {
	if len(s.segs) == 0 {
		s.origin = max(s.origin, t)
		return
	}
	s.last().segForwardTo(t)
}

// Seal commits pending static time of the current segment.
func (s *Sequence) Seal() {
	if len(s.segs) > 0 {
		s.last().segSeal()
	}
}

// Start returns the start of the earliest committed span.
func (s *Sequence) Start() (float64, bool) {
	for _, seg := range s.segs {
		if st, ok := seg.segStart(); ok {
			return st, true
		}
	}
	return 0, false
}

// End returns the end of the latest committed span.
func (s *Sequence) End() (float64, bool) {
	for i := len(s.segs) - 1; i >= 0; i-- {
		if en, ok := s.segs[i].segEnd(); ok {
			return en, true
		}
	}
	return 0, false
}

// EvalAt evaluates the sequence at absolute time t. Segment ranges are
// half-open except for the last segment holding spans, which also answers
// at its own end.
func (s *Sequence) EvalAt(t float64) (Result, bool) {
	if math.IsNaN(t) {
		return Result{}, false
	}
	lastWithSpans := -1
	for i := len(s.segs) - 1; i >= 0; i-- {
		if _, ok := s.segs[i].segEnd(); ok {
			lastWithSpans = i
			break
		}
	}
	for i := 0; i <= lastWithSpans; i++ {
		seg := s.segs[i]
		st, ok := seg.segStart()
		if !ok || t < st {
			continue
		}
		en, _ := seg.segEnd()
		if t > en || (t == en && i != lastWithSpans) {
			continue
		}
		v, idx, static, ok := seg.segEval(t)
		if !ok {
			return Result{}, false
		}
		return Result{Value: v, Key: makeKey(i, idx), Static: static}, true
	}
	return Result{}, false
}

// Spans lists every committed span of every segment in time order.
func (s *Sequence) Spans() []SpanInfo {
	var out []SpanInfo
	for _, seg := range s.segs {
		out = append(out, seg.segSpans()...)
	}
	return out
}

// Push opens a new segment of type T at the sequence cursor.
func Push[T Value[T]](s *Sequence, initial T) *Timeline[T] {
	tl := newTimelineAt(initial, s.Cursor())
	s.segs = append(s.segs, tl)
	return tl
}

// Current returns the current segment as a Timeline of T. It panics when the
// segment holds another type.
func Current[T Value[T]](s *Sequence) *Timeline[T] {
	seg := s.last()
	tl, ok := seg.(*Timeline[T])
	if !ok {
		var zero T
		panic(fmt.Sprintf("timeline: sequence %q segment %d holds %s, not %T",
			s.name, len(s.segs)-1, seg.segType(), zero))
	}
	return tl
}

// ChangeType seals the current segment of type From and continues the
// object as type To, converted by fn from the last From state. The new
// segment starts at the same cursor and inherits visibility.
func ChangeType[From Value[From], To Value[To]](s *Sequence, fn func(From) To) *Timeline[To] {
	cur := Current[From](s)
	visible := cur.IsVisible()
	cur.Hide()
	next := Push(s, fn(cur.State().Clone()))
	if visible {
		next.Show()
	}
	return next
}

// EvalAs evaluates s at t and asserts the value to T. It reports false when
// nothing is visible at t or the value has another type.
func EvalAs[T any](s *Sequence, t float64) (T, bool) {
	r, ok := s.EvalAt(t)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := r.Value.(T)
	return v, ok
}
