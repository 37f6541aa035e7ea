package tg

import (
	"cmp"
	"container/heap"
	"math"
	"slices"
)

// nearestSegment implements Line.NearestSegment and Ring.NearestSegment.
//
// The search is best-first over a single frontier holding both rectangles,
// keyed by their lower bound, and segments, keyed by their exact distance.
// A segment reaches the front only once every rectangle still in the
// frontier has a bound at least as large as its distance, so segments are
// visited in non-decreasing order of distance as long as the rectangle
// bounds really are lower bounds.
func nearestSegment(s *series, v NearestSegmentVisitor) {
	if len(s.segs) == 0 {
		return
	}
	if s.ix == nil {
		nearestScan(s, v)
		return
	}

	ns := nearestSearch{s: s, v: v}
	ns.pushRect(s.ix.top(), 0)
	for len(ns.q) > 0 {
		it := ns.q[0]
		if it.kind == itemSegment && it.held && ns.nrects > 0 {
			// The segment's distance can't be trusted to order it
			// against unexpanded rectangles, so expand all of them first.
			ns.flush()
			continue
		}
		heap.Pop(&ns.q)
		switch it.kind {
		case itemRect:
			ns.nrects--
			ns.expand(it.level, it.index)
		case itemSegment:
			if !v.Visit(s.segs[it.index], it.dist, it.index) {
				return
			}
		}
	}
}

// nearestScan is used for curves without an index. It scores every segment
// and visits them sorted by distance.
func nearestScan(s *series, v NearestSegmentVisitor) {
	items := make([]frontierItem, len(s.segs))
	for i, seg := range s.segs {
		dist, _ := v.SegmentDistance(seg)
		items[i] = frontierItem{kind: itemSegment, key: sortKey(dist), dist: dist, index: i}
	}
	slices.SortStableFunc(items, compareItems)
	for _, it := range items {
		if !v.Visit(s.segs[it.index], it.dist, it.index) {
			return
		}
	}
}

type itemKind uint8

const (
	// Segments sort before rectangles with the same key.
	itemSegment itemKind = iota
	itemRect
)

type frontierItem struct {
	key  float64
	dist float64
	kind itemKind

	// held is set for segments whose distance came with suppressPruning.
	held bool

	level int
	// index is the segment index for segments and the rectangle's index
	// within its level for rectangles.
	index int
}

func compareItems(a, b frontierItem) int {
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.level, b.level); c != 0 {
		return c
	}
	return cmp.Compare(a.index, b.index)
}

// sortKey maps NaN distances to +Inf so that they sort last.
func sortKey(dist float64) float64 {
	if math.IsNaN(dist) {
		return math.Inf(1)
	}
	return dist
}

type frontier []frontierItem

func (q frontier) Len() int           { return len(q) }
func (q frontier) Less(i, j int) bool { return compareItems(q[i], q[j]) < 0 }
func (q frontier) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *frontier) Push(x any)        { *q = append(*q, x.(frontierItem)) }
func (q *frontier) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}

type nearestSearch struct {
	s      *series
	v      NearestSegmentVisitor
	q      frontier
	nrects int
}

func (ns *nearestSearch) pushRect(level, i int) {
	dist, suppress := ns.v.RectDistance(ns.s.ix.levels[level][i])
	key := dist
	if suppress || math.IsNaN(dist) {
		// Without a usable bound the rectangle can't be deferred.
		key = math.Inf(-1)
	}
	heap.Push(&ns.q, frontierItem{kind: itemRect, key: key, dist: dist, level: level, index: i})
	ns.nrects++
}

func (ns *nearestSearch) pushSegment(i int) {
	dist, suppress := ns.v.SegmentDistance(ns.s.segs[i])
	heap.Push(&ns.q, frontierItem{kind: itemSegment, key: sortKey(dist), dist: dist, held: suppress, index: i})
}

// expand replaces a rectangle by its children.
func (ns *nearestSearch) expand(level, i int) {
	ix := ns.s.ix
	lo, hi := ix.children(level, i, len(ns.s.segs))
	for j := lo; j < hi; j++ {
		if level == 0 {
			ns.pushSegment(ix.segment(j))
		} else {
			ns.pushRect(level-1, j)
		}
	}
}

// flush expands every rectangle in the frontier down to its segments.
func (ns *nearestSearch) flush() {
	var rects []frontierItem
	kept := ns.q[:0]
	for _, it := range ns.q {
		if it.kind == itemRect {
			rects = append(rects, it)
		} else {
			kept = append(kept, it)
		}
	}
	ns.q = kept
	heap.Init(&ns.q)
	ns.nrects = 0

	for len(rects) > 0 {
		it := rects[len(rects)-1]
		rects = rects[:len(rects)-1]
		lo, hi := ns.s.ix.children(it.level, it.index, len(ns.s.segs))
		for j := lo; j < hi; j++ {
			if it.level == 0 {
				ns.pushSegment(ns.s.ix.segment(j))
			} else {
				rects = append(rects, frontierItem{kind: itemRect, level: it.level - 1, index: j})
			}
		}
	}
}
