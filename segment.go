package tg

import (
	"fmt"
	"math"
)

// Segment is a directed line segment from A to B.
//
// Segments compare with ==, which is direction-sensitive: a segment and its
// reversal are not equal unless A == B. Use [Segment.EqualUndirected] to
// ignore direction.
type Segment struct {
	// The segment's start point.
	A Point
	// The segment's end point.
	B Point
}

// Seg returns the segment from a to b.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v→%v", s.A, s.B)
}

// Rect returns the bounding rectangle of the segment.
func (s Segment) Rect() Rect {
	return NewRect(s.A, s.B)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Hypot()
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// EqualUndirected reports whether s and o cover the same two endpoints,
// regardless of direction.
func (s Segment) EqualUndirected(o Segment) bool {
	return s == o || s == o.Reverse()
}

// Eval returns the point at parameter t ∈ [0, 1] along the segment.
func (s Segment) Eval(t float64) Point {
	return s.A.Lerp(s.B, t)
}

// Nearest returns the squared distance from pt to the closest point on the
// segment, and the parameter of that point.
func (s Segment) Nearest(pt Point) (distSq, t float64) {
	d := s.B.Sub(s.A)
	dotp := d.Dot(pt.Sub(s.A))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(s.A).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(s.B).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(s.Eval(t)).Hypot2()
		return dist, t
	}
}

// Distance returns the euclidean distance from pt to the closest point on the
// segment.
func (s Segment) Distance(pt Point) float64 {
	distSq, _ := s.Nearest(pt)
	return math.Sqrt(distSq)
}

// IntersectsSegment reports whether the closed segments s and o share at
// least one point. Proper crossings, touching endpoints and collinear overlap
// all count as intersecting.
func (s Segment) IntersectsSegment(o Segment) bool {
	if !s.Rect().IntersectsRect(o.Rect()) {
		return false
	}
	d1 := orient(o.A, o.B, s.A)
	d2 := orient(o.A, o.B, s.B)
	d3 := orient(s.A, s.B, o.A)
	d4 := orient(s.A, s.B, o.B)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	// Collinear or touching. The rects overlap, so a zero orientation means
	// the point lies on the other segment.
	switch {
	case d1 == 0 && o.Rect().IntersectsPoint(s.A):
		return true
	case d2 == 0 && o.Rect().IntersectsPoint(s.B):
		return true
	case d3 == 0 && s.Rect().IntersectsPoint(o.A):
		return true
	case d4 == 0 && s.Rect().IntersectsPoint(o.B):
		return true
	}
	return false
}

// orient returns the sign of the turn a→b→c: positive for counter-clockwise,
// negative for clockwise and zero for collinear points.
func orient(a, b, c Point) float64 {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
