package timeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func (l label) Clone() label { return l }

func TestCacheKey(t *testing.T) {
	k := makeKey(3, 17)
	assert.Equal(t, CacheKey(3<<32|17), k)
	assert.Equal(t, 3, k.Segment())
	assert.Equal(t, 17, k.Span())
	assert.Equal(t, "3/17", k.String())
}

func TestChangeTypeContinuesObject(t *testing.T) {
	seq := NewSequence("obj", 0)
	tl := Push(seq, num(2))
	tl.Show().Forward(1)

	next := ChangeType(seq, func(n num) label { return label(fmt.Sprint(float64(n))) })
	assert.True(t, next.IsVisible(), "visibility carries over")
	assert.Equal(t, 1.0, next.Cursor())
	assert.Equal(t, label("2"), next.State())
	next.Forward(1)
	seq.Seal()

	require.Equal(t, 2, seq.Segments())
	assert.Equal(t, "timeline.label", seq.Type())

	r, ok := seq.EvalAt(0.5)
	require.True(t, ok)
	assert.Equal(t, num(2), r.Value)
	assert.Equal(t, 0, r.Key.Segment())
	assert.True(t, r.Static)

	r, ok = seq.EvalAt(1)
	require.True(t, ok, "segment boundary belongs to the later segment")
	assert.Equal(t, label("2"), r.Value)
	assert.Equal(t, 1, r.Key.Segment())

	l, ok := EvalAs[label](seq, 2)
	require.True(t, ok)
	assert.Equal(t, label("2"), l)
	_, ok = EvalAs[num](seq, 2)
	assert.False(t, ok)

	spans := seq.Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, "timeline.num", spans[0].Type)
	assert.Equal(t, "timeline.label", spans[1].Type)
}

func TestChangeTypeWhileHidden(t *testing.T) {
	seq := NewSequence("obj", 0)
	Push(seq, num(1)).Forward(1)
	next := ChangeType(seq, func(n num) label { return "x" })
	assert.False(t, next.IsVisible())
	assert.Equal(t, 1.0, next.Cursor())
}

func TestCurrentTypeMismatchPanics(t *testing.T) {
	seq := NewSequence("obj", 0)
	Push(seq, num(1))
	assert.NotPanics(t, func() { Current[num](seq) })
	assert.Panics(t, func() { Current[label](seq) })
	assert.Panics(t, func() { ChangeType(seq, func(l label) num { return 0 }) })
	assert.Panics(t, func() { NewSequence("empty", 0).Show() })
}

func TestSceneAggregates(t *testing.T) {
	sc := NewScene()
	a, ta := Insert(sc, "a", num(0))
	b, tb := Insert(sc, "b", num(0))
	assert.Equal(t, []ID{0, 1}, sc.IDs())

	ta.Show().Play(ramp(0, 1).WithDuration(2))
	tb.Show()
	assert.Equal(t, 2.0, sc.MaxEndTime())

	sc.SyncAll()
	assert.Equal(t, 2.0, tb.Cursor())
	sc.ForwardAll(1)
	assert.Equal(t, 3.0, ta.Cursor())
	assert.Equal(t, 3.0, tb.Cursor())
	sc.SealAll()

	require.Len(t, sc.ListSpans(a), 2)
	require.Len(t, sc.ListSpans(b), 1)
	assert.Equal(t, TimeRange{0, 3}, sc.ListSpans(b)[0].Range)

	r, ok := sc.EvalAt(a, 1)
	require.True(t, ok)
	assert.Equal(t, num(0.5), r.Value)
	assert.False(t, r.Static)

	items := sc.Snapshot(2.5)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, b, items[1].ID)

	// a late insert starts at the scene's end
	_, tc := Insert(sc, "c", num(0))
	assert.Equal(t, 3.0, tc.Cursor())
	assert.Len(t, sc.Snapshot(1), 2)

	assert.Panics(t, func() { sc.Sequence(ID(9)) })
}

func TestEmptySequence(t *testing.T) {
	seq := NewSequence("empty", 1)
	seq.Forward(2)
	seq.ForwardTo(1)
	assert.Equal(t, 3.0, seq.Cursor())
	seq.Seal()
	_, ok := seq.EvalAt(3)
	assert.False(t, ok)
	assert.Equal(t, "", seq.Type())
	assert.Equal(t, 3.0, Push(seq, num(0)).Cursor())
}
