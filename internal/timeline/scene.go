package timeline

import "fmt"

// ID addresses a Sequence inside a Scene.
type ID int

// Scene is an arena of sequences. IDs are indices and stay valid for the
// life of the scene.
type Scene struct {
	seqs []*Sequence
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Insert adds an object to the scene. Its sequence starts at the scene's
// current end time, hidden.
func Insert[T Value[T]](sc *Scene, name string, initial T) (ID, *Timeline[T]) {
	seq := NewSequence(name, sc.MaxEndTime())
	tl := Push(seq, initial)
	sc.seqs = append(sc.seqs, seq)
	return ID(len(sc.seqs) - 1), tl
}

// Len returns the number of sequences.
func (sc *Scene) Len() int { return len(sc.seqs) }

// IDs returns every ID in insertion order.
func (sc *Scene) IDs() []ID {
	ids := make([]ID, len(sc.seqs))
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Sequence returns the sequence for id.
func (sc *Scene) Sequence(id ID) *Sequence {
	if id < 0 || int(id) >= len(sc.seqs) {
		panic(fmt.Sprintf("timeline: unknown sequence id %d (scene holds %d)", id, len(sc.seqs)))
	}
	return sc.seqs[id]
}

// ForwardAll advances every sequence by secs.
func (sc *Scene) ForwardAll(secs float64) {
	for _, s := range sc.seqs {
		s.Forward(secs)
	}
}

// SyncAll advances every sequence to the latest cursor among them.
func (sc *Scene) SyncAll() {
	t := sc.MaxEndTime()
	for _, s := range sc.seqs {
		s.ForwardTo(t)
	}
}

// SealAll seals every sequence. The scene is read-only afterwards.
func (sc *Scene) SealAll() {
	for _, s := range sc.seqs {
		s.Seal()
	}
}

// MaxEndTime returns the latest cursor of any sequence, 0 for an empty scene.
func (sc *Scene) MaxEndTime() float64 {
	var t float64
	for _, s := range sc.seqs {
		t = max(t, s.Cursor())
	}
	return t
}

// EvalAt evaluates sequence id at time t.
func (sc *Scene) EvalAt(id ID, t float64) (Result, bool) {
	return sc.Sequence(id).EvalAt(t)
}

// ListSpans lists the committed spans of sequence id.
func (sc *Scene) ListSpans(id ID) []SpanInfo {
	return sc.Sequence(id).Spans()
}

// Item is one visible object in a Snapshot.
type Item struct {
	ID     ID
	Name   string
	Result Result
}

// Snapshot evaluates every sequence at t and returns the visible ones in
// insertion order.
func (sc *Scene) Snapshot(t float64) []Item {
	items := make([]Item, 0, len(sc.seqs))
	for i, s := range sc.seqs {
		if r, ok := s.EvalAt(t); ok {
			items = append(items, Item{ID: ID(i), Name: s.Name(), Result: r})
		}
	}
	return items
}
