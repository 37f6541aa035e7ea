package tg

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// withDefaults restores the package defaults when the test ends.
func withDefaults(t *testing.T) {
	t.Helper()
	ix, spread := DefaultIndex(), IndexSpread()
	t.Cleanup(func() {
		SetDefaultIndex(ix)
		SetIndexSpread(spread)
	})
}

// zigzag returns n points along a horizontal zigzag, which gives lines with
// many segments and a predictable layout.
func zigzag(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		y := 0.0
		if i%2 == 1 {
			y = 1
		}
		pts[i] = Pt(float64(i), y)
	}
	return pts
}

// circle returns n points on a circle of radius r around (cx, cy).
func circle(cx, cy, r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Pt(cx+r*math.Cos(th), cy+r*math.Sin(th))
	}
	return pts
}
