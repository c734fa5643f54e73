package vpath

import "github.com/coreman2200/arcanim/internal/geom"

// IsAligned reports whether a and b can be interpolated point by point:
// both split into the same subpath slots, each closed. See MatchedSubpaths.
func IsAligned(a, b Outline) bool {
	_, _, ok := MatchedSubpaths(a, b)
	return ok
}

// MatchedSubpaths splits an aligned pair into its matched subpath slots.
// Slots end at handles that close a subpath in both outlines. A slot is
// either a closed subpath with no boundary of its own or a collapsed run of
// one repeated point. Collapsed runs come from the subpath count
// equalization: Subpaths reads such a run as many single-point subpaths,
// so an aligned pair can report different Subpaths counts. ok is false when
// a and b are not aligned.
func MatchedSubpaths(a, b Outline) (sa, sb [][]geom.Point, ok bool) {
	if len(a) == 0 || len(a) != len(b) || len(a)%2 == 0 {
		return nil, nil, false
	}
	start := 0
	for i := 1; i <= len(a); i += 2 {
		if i < len(a) && (a[i] != a[i-1] || b[i] != b[i-1]) {
			continue
		}
		pa, pb := a[start:i], b[start:i]
		if !isSlot(pa) || !isSlot(pb) {
			return nil, nil, false
		}
		sa = append(sa, clonePoints(pa))
		sb = append(sb, clonePoints(pb))
		start = i + 1
	}
	return sa, sb, true
}

func isSlot(sp []geom.Point) bool {
	if isCollapsed(sp) {
		return true
	}
	if !IsClosed(sp) {
		return false
	}
	for i := 1; i < len(sp); i += 2 {
		if sp[i] == sp[i-1] {
			return false
		}
	}
	return true
}

// isCollapsed reports whether every point of sp is the same.
func isCollapsed(sp []geom.Point) bool {
	if len(sp) == 0 {
		return false
	}
	for _, p := range sp[1:] {
		if p != sp[0] {
			return false
		}
	}
	return true
}

// Align returns copies of a and b with the same number of subpaths and,
// subpath for subpath, the same number of anchors. Already aligned inputs
// come back unchanged.
func Align(a, b Outline) (Outline, Outline) {
	if IsAligned(a, b) {
		return a.Clone(), b.Clone()
	}
	sa, sb := AlignSubpaths(a, b)
	return Join(sa), Join(sb)
}

// AlignSubpaths performs every alignment step except the final flattening
// and returns the matched subpath lists. For each index i the two results
// satisfy len(sa[i]) == len(sb[i]).
func AlignSubpaths(a, b Outline) (sa, sb [][]geom.Point) {
	sa = closeAll(Subpaths(a))
	sb = closeAll(Subpaths(b))

	n := max(len(sa), len(sb))
	sa = matchCount(sa, n)
	sb = matchCount(sb, n)

	for i := range sa {
		la, lb := len(sa[i]), len(sb[i])
		switch {
		case la < lb:
			sa[i] = ExtendSubpath(sa[i], (lb-la)/2)
		case lb < la:
			sb[i] = ExtendSubpath(sb[i], (la-lb)/2)
		}
	}
	return sa, sb
}

func closeAll(sps [][]geom.Point) [][]geom.Point {
	for i, sp := range sps {
		sps[i] = CloseSubpath(sp)
	}
	return sps
}

// matchCount grows sps to n subpaths while keeping their order. Slots that
// repeat the previous source subpath collapse onto its centroid so the copy
// is an invisible point instead of a second visible shape. A collapsed slot
// keeps the length of its source and holds only the centroid.
func matchCount(sps [][]geom.Point, n int) [][]geom.Point {
	if len(sps) >= n {
		return sps
	}
	idx, repeated := ResizePreservingOrder(len(sps), n)
	out := make([][]geom.Point, n)
	for i, src := range idx {
		sp := sps[src]
		if !repeated[i] {
			out[i] = clonePoints(sp)
			continue
		}
		c := Centroid(sp)
		collapsed := make([]geom.Point, len(sp))
		for j := range collapsed {
			collapsed[j] = c
		}
		out[i] = collapsed
	}
	return out
}

// ResizePreservingOrder maps n output slots onto length source items in
// order. repeated[i] is set when slot i reuses the same source as slot i-1.
func ResizePreservingOrder(length, n int) (idx []int, repeated []bool) {
	idx = make([]int, n)
	repeated = make([]bool, n)
	for i := range idx {
		idx[i] = i * length / n
		repeated[i] = i > 0 && idx[i] == idx[i-1]
	}
	return idx, repeated
}

// ExtendSubpath adds k anchors to sp. Each new anchor goes to the segment
// with the largest remaining effective chord length, lowest index first on
// ties. A segment cut into n pieces has effective length chord/n. The chosen
// segments are then divided at equal parameter steps with exact trimming.
// A collapsed subpath stays collapsed.
func ExtendSubpath(sp []geom.Point, k int) []geom.Point {
	if k <= 0 {
		return clonePoints(sp)
	}
	segs := (len(sp) - 1) / 2
	if segs == 0 || isCollapsed(sp) {
		out := make([]geom.Point, len(sp)+2*k)
		for i := range out {
			out[i] = sp[0]
		}
		return out
	}

	total := len(sp) + 2*k
	quads := make([]geom.Quad, segs)
	eff := make([]float64, segs)
	pieces := make([]int, segs)
	for i := range quads {
		quads[i] = geom.Quad{sp[2*i], sp[2*i+1], sp[2*i+2]}
		eff[i] = quads[i].Chord()
		pieces[i] = 1
	}
	for ; k > 0; k-- {
		best := 0
		for i := 1; i < segs; i++ {
			if eff[i] > eff[best] {
				best = i
			}
		}
		n := float64(pieces[best])
		eff[best] *= n / (n + 1)
		pieces[best]++
	}

	out := make([]geom.Point, 1, total)
	out[0] = sp[0]
	for i, q := range quads {
		n := pieces[i]
		for j := 0; j < n; j++ {
			part := q.Trim(float64(j)/float64(n), float64(j+1)/float64(n))
			out = append(out, part[1], part[2])
		}
	}
	return out
}
