package timeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type num float64

func (n num) Clone() num { return n }

type pts []float64

func (p pts) Clone() pts { return append(pts(nil), p...) }

func ramp(from, to num) Span[num] {
	return NewSpan(Dynamic(func(a float64) num { return from + (to-from)*num(a) }), 1)
}

func TestEvaluatorClampsProgress(t *testing.T) {
	ev := Dynamic(func(a float64) float64 { return a })
	assert.Equal(t, 0.0, ev.Eval(-2))
	assert.Equal(t, 1.0, ev.Eval(3))
	assert.False(t, ev.IsStatic())

	st := Static(num(4))
	assert.True(t, st.IsStatic())
	assert.Equal(t, num(4), st.Eval(0.3))
	assert.Panics(t, func() { Evaluator[num]{}.Eval(0) })
}

func TestSpanRate(t *testing.T) {
	s := ramp(0, 10).WithRate(func(a float64) float64 { return a * a })
	assert.InDelta(t, 2.5, float64(s.EvalAlpha(0.5)), 1e-12)
	assert.Equal(t, num(0), s.EvalAlpha(-1))
	assert.Equal(t, num(10), s.EvalAlpha(2))

	// rate curves that overshoot are clamped
	over := ramp(0, 10).WithRate(func(a float64) float64 { return 2 * a })
	assert.Equal(t, num(10), over.EvalAlpha(0.75))

	p := ramp(0, 1).WithPadding(0.5, 0.25)
	assert.Equal(t, [2]float64{0.5, 0.25}, p.Padding)
}

func TestShowPlayHide(t *testing.T) {
	tl := NewTimeline(num(0))
	tl.Show()
	tl.Play(ramp(0, 10).WithDuration(1))
	tl.Hide()
	tl.Forward(1)

	v, idx, ok := tl.EvalAt(0)
	require.True(t, ok)
	assert.Equal(t, num(0), v)
	assert.Equal(t, 0, idx)

	v, _, ok = tl.EvalAt(1)
	require.True(t, ok, "the last span answers at its end")
	assert.Equal(t, num(10), v)

	_, _, ok = tl.EvalAt(1.5)
	assert.False(t, ok)
	_, _, ok = tl.EvalAt(-0.1)
	assert.False(t, ok)

	assert.Equal(t, 1, tl.Len(), "a zero-length static span is not committed")
	assert.Equal(t, 2.0, tl.Cursor())
	assert.False(t, tl.IsVisible())
}

func TestEvalAtNaNHasNoValue(t *testing.T) {
	tl := NewTimeline(num(0)).Show()
	tl.Play(ramp(0, 10))
	_, idx, ok := tl.EvalAt(math.NaN())
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	seq := NewSequence("obj", 0)
	Push(seq, num(1)).Show().Forward(1)
	seq.Seal()
	_, ok = seq.EvalAt(math.NaN())
	assert.False(t, ok)
	_, ok = seq.EvalAt(0.5)
	assert.True(t, ok)
}

func TestForwardCollapsesIntoOneStatic(t *testing.T) {
	tl := NewTimeline(num(3)).Show()
	tl.Forward(0.5).Forward(0.5).Forward(1)
	tl.Seal()
	require.Equal(t, 1, tl.Len())
	assert.True(t, tl.IsStaticSpan(0))
	assert.Equal(t, []SpanInfo{{Type: "timeline.num", Range: TimeRange{0, 2}, Static: true}}, tl.Spans())

	v, _, ok := tl.EvalAt(1.3)
	require.True(t, ok)
	assert.Equal(t, num(3), v)
}

func TestSealIsIdempotent(t *testing.T) {
	tl := NewTimeline(num(1)).Show()
	tl.Forward(1)
	tl.Seal()
	first := tl.Spans()
	tl.Seal()
	tl.Seal()
	assert.Equal(t, first, tl.Spans())
}

func TestHiddenIntervalLeavesGap(t *testing.T) {
	tl := NewTimeline(num(1)).Show()
	tl.Forward(1).Hide()
	tl.Forward(1).Show()
	tl.Forward(1).Seal()

	require.Equal(t, 2, tl.Len())
	_, _, ok := tl.EvalAt(1.5)
	assert.False(t, ok)
	_, idx, ok := tl.EvalAt(1)
	assert.False(t, ok, "end of a non-final span is exclusive, idx %d", idx)
	_, idx, ok = tl.EvalAt(2)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestUpdateCommitsOldState(t *testing.T) {
	tl := NewTimeline(pts{1, 2}).Show()
	tl.Forward(1)
	tl.UpdateWith(func(p *pts) { (*p)[0] = 9 })
	tl.Forward(1)
	tl.Seal()

	require.Equal(t, 2, tl.Len())
	v, _, ok := tl.EvalAt(0.5)
	require.True(t, ok)
	assert.Equal(t, pts{1, 2}, v, "committed state is a deep copy")
	v, _, _ = tl.EvalAt(1.5)
	assert.Equal(t, pts{9, 2}, v)
	assert.True(t, tl.IsVisible())

	hidden := NewTimeline(num(0))
	hidden.Forward(1).Update(5).Forward(1).Seal()
	assert.Equal(t, 0, hidden.Len())
	assert.False(t, hidden.IsVisible())
}

func TestPlayCommitsPendingAndShows(t *testing.T) {
	tl := NewTimeline(num(0)).Show()
	tl.Forward(2)
	tl.Play(ramp(0, 4).WithDuration(2))
	tl.Forward(1).Seal()

	spans := tl.Spans()
	require.Len(t, spans, 3)
	assert.Equal(t, TimeRange{0, 2}, spans[0].Range)
	assert.Equal(t, TimeRange{2, 4}, spans[1].Range)
	assert.False(t, spans[1].Static)
	assert.Equal(t, TimeRange{4, 5}, spans[2].Range)
	assert.Equal(t, num(4), tl.State())

	v, _, _ := tl.EvalAt(3)
	assert.Equal(t, num(2), v)
	v, _, _ = tl.EvalAt(4.5)
	assert.Equal(t, num(4), v)

	start, _ := tl.Start()
	end, _ := tl.End()
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 5.0, end)
}

func TestInvalidAuthoringPanics(t *testing.T) {
	tl := NewTimeline(num(0))
	assert.Panics(t, func() { tl.Forward(-1) })
	assert.Panics(t, func() { tl.Play(ramp(0, 1).WithDuration(0)) })
	assert.Panics(t, func() { tl.Play(ramp(0, 1).WithDuration(-1)) })

	tl.ForwardTo(3)
	tl.ForwardTo(1)
	assert.Equal(t, 3.0, tl.Cursor())
}

func TestEmptyTimeline(t *testing.T) {
	tl := NewTimeline(num(0))
	_, _, ok := tl.EvalAt(0)
	assert.False(t, ok)
	_, ok = tl.Start()
	assert.False(t, ok)
	_, ok = tl.End()
	assert.False(t, ok)
}

func TestSpansOrderedAndDisjoint(t *testing.T) {
	tl := NewTimeline(num(0))
	tl.Show().Forward(0.3)
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			tl.Hide().Forward(0.2).Show()
		}
		tl.Play(ramp(0, 1).WithDuration(0.1 + float64(i)*0.05))
		tl.Forward(0.1)
		tl.Update(num(i))
	}
	tl.Seal()

	spans := tl.Spans()
	for i := 1; i < len(spans); i++ {
		assert.LessOrEqual(t, spans[i-1].Range.End, spans[i].Range.Start)
		assert.Less(t, spans[i].Range.Start, spans[i].Range.End)
	}
	end, _ := tl.End()
	_, _, ok := tl.EvalAt(end)
	assert.True(t, ok)
	_, _, ok = tl.EvalAt(end + 1e-9)
	assert.False(t, ok)
}
