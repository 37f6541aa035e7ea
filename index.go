package tg

import (
	"cmp"
	"math"
	"slices"
)

// index is a packed hierarchy of bounding rectangles over a curve's
// segments.
//
// levels[0] holds one rectangle per group of up to spread leaf slots. Each
// following level groups the rectangles of the level below in the same way,
// and the last level holds a single rectangle covering the whole curve.
// Children of levels[k][i] are levels[k-1][i*spread:(i+1)*spread], and
// children of levels[0][i] are the leaf slots i*spread to (i+1)*spread.
type index struct {
	spread int

	// order maps leaf slots to segment indices. It is nil for the identity
	// mapping used by Natural.
	order  []int
	levels [][]Rect
}

// buildIndex builds the index of segs. It returns nil if policy is None or
// if there are fewer than two segments, in which case an index cannot
// narrow anything down.
func buildIndex(segs []Segment, spread int, policy IndexType) *index {
	if policy == None || len(segs) < 2 {
		return nil
	}
	spread = clampSpread(spread)
	ix := &index{spread: spread}

	rects := make([]Rect, len(segs))
	switch policy {
	case Natural:
		for i, seg := range segs {
			rects[i] = seg.Rect()
		}
	case YStripes:
		ix.order = stripeOrder(segs, spread)
		for slot, i := range ix.order {
			rects[slot] = segs[i].Rect()
		}
	default:
		panic("unreachable")
	}

	for {
		level := groupRects(rects, spread)
		ix.levels = append(ix.levels, level)
		if len(level) == 1 {
			break
		}
		rects = level
	}
	return ix
}

// groupRects returns the bounding rectangles of consecutive groups of up to
// spread rects. The last group may be shorter.
func groupRects(rects []Rect, spread int) []Rect {
	out := make([]Rect, 0, (len(rects)+spread-1)/spread)
	for lo := 0; lo < len(rects); lo += spread {
		hi := min(lo+spread, len(rects))
		out = append(out, boundingRect(rects[lo:hi]))
	}
	return out
}

// stripeOrder orders segments into horizontal stripes, bottom to top, and
// orders each stripe by x. A stripe holds as many leaves as there are
// stripes, so that the leaf groups end up roughly square.
//
// Both sorts are stable and break ties on the segment index, so the result
// only depends on the input.
func stripeOrder(segs []Segment, spread int) []int {
	n := len(segs)
	centers := make([]Point, n)
	for i, seg := range segs {
		centers[i] = seg.Rect().Center()
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	byY := func(a, b int) int {
		if c := cmp.Compare(centers[a].Y, centers[b].Y); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}
	byX := func(a, b int) int {
		if c := cmp.Compare(centers[a].X, centers[b].X); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}

	slices.SortStableFunc(order, byY)
	leaves := (n + spread - 1) / spread
	stripes := int(math.Ceil(math.Sqrt(float64(leaves))))
	stripeLen := stripes * spread
	for lo := 0; lo < n; lo += stripeLen {
		hi := min(lo+stripeLen, n)
		slices.SortStableFunc(order[lo:hi], byX)
	}
	return order
}

func (ix *index) numLevels() int {
	if ix == nil {
		return 0
	}
	return len(ix.levels)
}

func (ix *index) levelNumRects(level int) int {
	if level < 0 || level >= ix.numLevels() {
		return 0
	}
	return len(ix.levels[level])
}

func (ix *index) levelRect(level, i int) (Rect, bool) {
	if i < 0 || i >= ix.levelNumRects(level) {
		return Rect{}, false
	}
	return ix.levels[level][i], true
}

// top returns the level of the single root rectangle.
func (ix *index) top() int {
	return len(ix.levels) - 1
}

// children returns the half-open range of children of levels[level][i].
// For level 0 the range is in leaf slots; n is the number of leaf slots.
func (ix *index) children(level, i, n int) (lo, hi int) {
	lo = i * ix.spread
	hi = lo + ix.spread
	if level == 0 {
		return lo, min(hi, n)
	}
	return lo, min(hi, len(ix.levels[level-1]))
}

// segment returns the segment index stored in a leaf slot.
func (ix *index) segment(slot int) int {
	if ix.order == nil {
		return slot
	}
	return ix.order[slot]
}
