package tg

import (
	"math/rand/v2"
	"sync"
	"testing"
)

func TestConcurrentQueries(t *testing.T) {
	withDefaults(t)
	SetIndexSpread(4)
	rng := rand.New(rand.NewPCG(21, 22))
	pa := randomPoints(rng, 300)
	pb := randomPoints(rng, 150)
	queries := make([]Point, 16)
	for i := range queries {
		queries[i] = Pt(rng.Float64()*1000, rng.Float64()*100)
	}

	for _, ix := range []IndexType{Natural, YStripes} {
		a := NewLineIndexed(pa, ix)
		b := NewLineIndexed(pb, ix)
		r := NewRingIndexed(pb, ix)

		wantNearest := make([][]visited, len(queries))
		for i, q := range queries {
			wantNearest[i] = nearestAll(a, q)
		}
		wantLines := collectPairs(func(v SearchVisitor) { a.LineSearch(b, v) })
		wantRing := collectPairs(func(v SearchVisitor) { a.RingSearch(r, v) })

		const workers = 8
		gotNearest := make([][][]visited, workers)
		gotLines := make([][]pair, workers)
		gotRing := make([][]pair, workers)
		var wg sync.WaitGroup
		for w := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				gotNearest[w] = make([][]visited, len(queries))
				for i := range queries {
					// Start at a different query in each worker so that
					// searches on the same curve overlap in time.
					j := (i + w) % len(queries)
					gotNearest[w][j] = nearestAll(a, queries[j])
				}
				gotLines[w] = collectPairs(func(v SearchVisitor) { a.LineSearch(b, v) })
				gotRing[w] = collectPairs(func(v SearchVisitor) { a.RingSearch(r, v) })
			}()
		}
		wg.Wait()

		for w := range workers {
			diff(t, wantNearest, gotNearest[w])
			diff(t, wantLines, gotLines[w], sortPairs)
			diff(t, wantRing, gotRing[w], sortPairs)
		}
	}
}
