package tg

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func segmentsOf(pts []Point) []Segment {
	var segs []Segment
	for i := 1; i < len(pts); i++ {
		segs = append(segs, Seg(pts[i-1], pts[i]))
	}
	return segs
}

func randomPoints(rng *rand.Rand, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(rng.Float64()*1000, rng.Float64()*100)
	}
	return pts
}

func TestBuildIndexLevels(t *testing.T) {
	f := func(nsegs, spread int, want []int) {
		t.Helper()
		segs := segmentsOf(zigzag(nsegs + 1))
		ix := buildIndex(segs, spread, Natural)
		var got []int
		for level := range ix.numLevels() {
			got = append(got, ix.levelNumRects(level))
		}
		diff(t, want, got)
	}
	f(0, 4, nil)
	f(1, 4, nil)
	f(2, 4, []int{1})
	f(4, 4, []int{1})
	f(5, 4, []int{2, 1})
	f(16, 4, []int{4, 1})
	f(17, 4, []int{5, 2, 1})
	f(100, 16, []int{7, 1})
	f(7, 2, []int{4, 2, 1})
}

func TestBuildIndexNone(t *testing.T) {
	segs := segmentsOf(zigzag(100))
	if ix := buildIndex(segs, 16, None); ix != nil {
		t.Errorf("got index with %d levels, want none", ix.numLevels())
	}
}

func TestBuildIndexNaturalRects(t *testing.T) {
	segs := segmentsOf(zigzag(11))
	ix := buildIndex(segs, 4, Natural)
	want := [][]Rect{
		{
			{Pt(0, 0), Pt(4, 1)},
			{Pt(4, 0), Pt(8, 1)},
			{Pt(8, 0), Pt(10, 1)},
		},
		{
			{Pt(0, 0), Pt(10, 1)},
		},
	}
	diff(t, want, ix.levels)
}

// checkIndex verifies that every segment appears in exactly one leaf slot and
// that every rectangle is the tight bound of its children.
func checkIndex(t *testing.T, segs []Segment, ix *index) {
	t.Helper()
	seen := make([]int, len(segs))
	for slot := range segs {
		seen[ix.segment(slot)]++
	}
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("segment %d appears in %d leaf slots, want 1", i, n)
		}
	}

	for level := range ix.numLevels() {
		for i, r := range ix.levels[level] {
			lo, hi := ix.children(level, i, len(segs))
			var children []Rect
			for j := lo; j < hi; j++ {
				if level == 0 {
					children = append(children, segs[ix.segment(j)].Rect())
				} else {
					children = append(children, ix.levels[level-1][j])
				}
			}
			if want := boundingRect(children); r != want {
				t.Fatalf("level %d rect %d: got %v, want %v", level, i, r, want)
			}
		}
	}
	if n := ix.levelNumRects(ix.top()); n != 1 {
		t.Fatalf("top level has %d rects, want 1", n)
	}
}

func TestBuildIndexTight(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, policy := range []IndexType{Natural, YStripes} {
		for _, n := range []int{2, 3, 15, 16, 17, 255, 1000} {
			for _, spread := range []int{2, 3, 16} {
				segs := segmentsOf(randomPoints(rng, n+1))
				checkIndex(t, segs, buildIndex(segs, spread, policy))
			}
		}
	}
}

func TestStripeOrderDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	segs := segmentsOf(randomPoints(rng, 500))
	a := buildIndex(segs, 8, YStripes)
	b := buildIndex(slices.Clone(segs), 8, YStripes)
	diff(t, a.order, b.order)
	diff(t, a.levels, b.levels)
}

func TestStripeOrder(t *testing.T) {
	centers := []Point{
		Pt(3, 0), Pt(0, 5), Pt(1, 0), Pt(2, 1),
		Pt(0, 0), Pt(5, 6), Pt(4, 5), Pt(1, 7),
	}
	var segs []Segment
	for _, c := range centers {
		segs = append(segs, Seg(c.Translate(Vec(-0.25, 0)), c.Translate(Vec(0.25, 0))))
	}
	// 4 leaves of 2 make 2 stripes of 4 segments each: the bottom stripe
	// holds the four lowest segments, sorted by x, then the top stripe.
	diff(t, []int{4, 2, 3, 0, 1, 7, 6, 5}, stripeOrder(segs, 2))
}

func TestBuildIndexClampsSpread(t *testing.T) {
	segs := segmentsOf(zigzag(10))
	for _, spread := range []int{-5, 0, 1} {
		ix := buildIndex(segs, spread, Natural)
		if ix.spread != 2 {
			t.Errorf("spread %d: got %d, want 2", spread, ix.spread)
		}
		checkIndex(t, segs, ix)
	}
	if ix := buildIndex(segs, 1<<20, Natural); ix.spread != 4096 {
		t.Errorf("got spread %d, want 4096", ix.spread)
	}
}

func TestIndexBoundsSafety(t *testing.T) {
	var nilIndex *index
	if n := nilIndex.numLevels(); n != 0 {
		t.Errorf("got %d levels, want 0", n)
	}
	if n := nilIndex.levelNumRects(0); n != 0 {
		t.Errorf("got %d rects, want 0", n)
	}
	if _, ok := nilIndex.levelRect(0, 0); ok {
		t.Error("got rect from nil index")
	}

	ix := buildIndex(segmentsOf(zigzag(40)), 4, Natural)
	for level := -1; level <= ix.numLevels(); level++ {
		for i := -1; i <= ix.levelNumRects(level)+1; i++ {
			_, ok := ix.levelRect(level, i)
			want := level >= 0 && level < ix.numLevels() && i >= 0 && i < ix.levelNumRects(level)
			if ok != want {
				t.Errorf("level %d rect %d: got ok=%t, want %t", level, i, ok, want)
			}
		}
	}
}
