package tg

import (
	"iter"
	"math"
)

// Ring is a closed polyline. If the last point differs from the first, the
// ring has an additional segment from the last point back to the first. A
// ring whose last point repeats the first is already closed and gets no
// extra segment.
//
// A Ring is immutable and safe for concurrent use.
type Ring struct {
	s *series
}

// NewRing returns a ring through points, indexed with [Default].
func NewRing(points []Point) *Ring {
	return NewRingIndexed(points, Default)
}

// NewRingIndexed returns a ring through points using the given index type.
// The points are copied.
//
// It panics if ix is not a known index type.
func NewRingIndexed(points []Point, ix IndexType) *Ring {
	return &Ring{s: newSeries(points, true, ix)}
}

func (r *Ring) NumPoints() int   { return len(r.s.points) }
func (r *Ring) NumSegments() int { return len(r.s.segs) }

// Points returns a copy of the ring's points, exactly as they were passed to
// the constructor.
func (r *Ring) Points() []Point {
	return append([]Point(nil), r.s.points...)
}

func (r *Ring) PointAt(i int) (Point, bool)       { return r.s.pointAt(i) }
func (r *Ring) SegmentAt(i int) (Segment, bool)   { return r.s.segmentAt(i) }
func (r *Ring) Segments() iter.Seq2[int, Segment] { return r.s.segments() }
func (r *Ring) Rect() Rect                        { return r.s.rect }
func (r *Ring) IndexType() IndexType              { return r.s.ixType }

// Area returns the unsigned area enclosed by the ring.
func (r *Ring) Area() float64 {
	return math.Abs(r.s.signedArea())
}

// Perimeter returns the length of the ring's outline, including the closing
// segment.
func (r *Ring) Perimeter() float64 {
	return r.s.length()
}

// Clockwise reports whether the ring winds clockwise in a y-up coordinate
// system.
func (r *Ring) Clockwise() bool {
	return r.s.signedArea() < 0
}

// Convex reports whether the ring is convex. Collinear and repeated points
// are allowed. Rings with fewer than three distinct edges are not convex.
func (r *Ring) Convex() bool {
	var edges []Vec2
	for _, seg := range r.s.segs {
		if seg.A != seg.B {
			edges = append(edges, seg.B.Sub(seg.A))
		}
	}
	if len(edges) < 3 {
		return false
	}
	var sign float64
	for i, e := range edges {
		c := e.Cross(edges[(i+1)%len(edges)])
		if c == 0 {
			continue
		}
		if sign == 0 {
			sign = math.Copysign(1, c)
		} else if math.Copysign(1, c) != sign {
			return false
		}
	}
	return sign != 0
}

func (r *Ring) IndexSpread() int                         { return r.s.indexSpread() }
func (r *Ring) IndexNumLevels() int                      { return r.s.ix.numLevels() }
func (r *Ring) IndexLevelNumRects(level int) int         { return r.s.ix.levelNumRects(level) }
func (r *Ring) IndexLevelRect(level, i int) (Rect, bool) { return r.s.ix.levelRect(level, i) }

// NearestSegment visits the ring's segments in order of increasing distance,
// as defined by v. See [NearestSegmentVisitor].
func (r *Ring) NearestSegment(v NearestSegmentVisitor) { nearestSegment(r.s, v) }

// RingSearch visits pairs of segments of r and o whose bounding rectangles
// overlap. o may be r itself.
func (r *Ring) RingSearch(o *Ring, v SearchVisitor) { pairSearch(r.s, o.s, v) }

// LineSearch visits pairs of segments of r and o whose bounding rectangles
// overlap.
func (r *Ring) LineSearch(o *Line, v SearchVisitor) { pairSearch(r.s, o.s, v) }
