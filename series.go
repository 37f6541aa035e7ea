package tg

import (
	"iter"
	"slices"
)

// series is the storage shared by lines and rings: the vertices, the
// segments derived from them, and the optional index over those segments.
// It is never modified after newSeries returns.
type series struct {
	points []Point
	segs   []Segment
	rect   Rect
	ixType IndexType
	ix     *index
}

func newSeries(points []Point, closed bool, ixType IndexType) *series {
	ixType = resolveIndex(ixType)
	s := &series{
		points: slices.Clone(points),
		ixType: ixType,
	}
	n := len(s.points)
	if n == 0 {
		return s
	}

	nsegs := n - 1
	if closed && s.points[0] != s.points[n-1] {
		// Close the ring with an implicit segment back to the first point.
		nsegs = n
	}
	s.segs = make([]Segment, nsegs)
	for i := range s.segs {
		s.segs[i] = Segment{A: s.points[i], B: s.points[(i+1)%n]}
	}

	s.rect = s.points[0].Rect()
	for _, pt := range s.points[1:] {
		s.rect = s.rect.ExpandPoint(pt)
	}
	s.ix = buildIndex(s.segs, IndexSpread(), ixType)
	return s
}

func (s *series) pointAt(i int) (Point, bool) {
	if i < 0 || i >= len(s.points) {
		return Point{}, false
	}
	return s.points[i], true
}

func (s *series) segmentAt(i int) (Segment, bool) {
	if i < 0 || i >= len(s.segs) {
		return Segment{}, false
	}
	return s.segs[i], true
}

func (s *series) segments() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i, seg := range s.segs {
			if !yield(i, seg) {
				return
			}
		}
	}
}

func (s *series) length() float64 {
	var l float64
	for _, seg := range s.segs {
		l += seg.Length()
	}
	return l
}

// signedArea returns the shoelace area of the closed polygon through the
// points. It is positive for counter-clockwise winding in a y-up space.
func (s *series) signedArea() float64 {
	var a float64
	n := len(s.points)
	for i, p := range s.points {
		q := s.points[(i+1)%n]
		a += Vec2(p).Cross(Vec2(q))
	}
	return a * 0.5
}

func (s *series) indexSpread() int {
	if s.ix == nil {
		return 0
	}
	return s.ix.spread
}
