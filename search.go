package tg

// pairSearch implements the LineSearch and RingSearch methods. It visits
// every pair of segments, one from a and one from b, whose bounding
// rectangles overlap. a and b may be the same curve.
//
// With both curves indexed, the search descends both hierarchies together
// and only follows pairs of rectangles that overlap. Otherwise it falls back
// to comparing all pairs of segments. Both paths report the same pairs,
// though not in the same order.
func pairSearch(a, b *series, v SearchVisitor) {
	if len(a.segs) == 0 || len(b.segs) == 0 {
		return
	}
	if a.ix == nil || b.ix == nil {
		pairScan(a, b, v)
		return
	}
	ps := pairSearcher{a: a, b: b, v: v}
	ps.descend(a.root(), b.root())
}

func pairScan(a, b *series, v SearchVisitor) {
	brects := make([]Rect, len(b.segs))
	for j, seg := range b.segs {
		brects[j] = seg.Rect()
	}
	for i, sa := range a.segs {
		ra := sa.Rect()
		for j, sb := range b.segs {
			if !ra.IntersectsRect(brects[j]) {
				continue
			}
			if !v.Visit(sa, i, sb, j) {
				return
			}
		}
	}
}

// searchNode is either an index rectangle or, with level -1, a segment.
type searchNode struct {
	level int
	index int
	rect  Rect
}

func (s *series) root() searchNode {
	top := s.ix.top()
	return searchNode{level: top, index: 0, rect: s.ix.levels[top][0]}
}

// child returns the j-th child of n, where j is in the range returned by
// index.children.
func (s *series) child(n searchNode, j int) searchNode {
	if n.level == 0 {
		i := s.ix.segment(j)
		return searchNode{level: -1, index: i, rect: s.segs[i].Rect()}
	}
	return searchNode{level: n.level - 1, index: j, rect: s.ix.levels[n.level-1][j]}
}

type pairSearcher struct {
	a, b *series
	v    SearchVisitor
}

// descend reports false once the visitor has asked to stop.
func (ps *pairSearcher) descend(na, nb searchNode) bool {
	if !na.rect.IntersectsRect(nb.rect) {
		return true
	}
	if na.level < 0 && nb.level < 0 {
		return ps.v.Visit(ps.a.segs[na.index], na.index, ps.b.segs[nb.index], nb.index)
	}
	// Expand the side that is further from its segments. A side that has
	// reached its segments always has the lower level.
	if na.level >= nb.level {
		lo, hi := ps.a.ix.children(na.level, na.index, len(ps.a.segs))
		for j := lo; j < hi; j++ {
			if !ps.descend(ps.a.child(na, j), nb) {
				return false
			}
		}
	} else {
		lo, hi := ps.b.ix.children(nb.level, nb.index, len(ps.b.segs))
		for j := lo; j < hi; j++ {
			if !ps.descend(na, ps.b.child(nb, j)) {
				return false
			}
		}
	}
	return true
}
