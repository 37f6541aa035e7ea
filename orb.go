package tg

import "github.com/paulmach/orb"

// Conversions to and from the planar types of github.com/paulmach/orb.

// Orb returns pt as an orb.Point.
func (pt Point) Orb() orb.Point {
	return orb.Point{pt.X, pt.Y}
}

// PointFromOrb converts an orb.Point.
func PointFromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// Bound returns r as an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{Min: r.Min.Orb(), Max: r.Max.Orb()}
}

// RectFromBound converts an orb.Bound.
func RectFromBound(b orb.Bound) Rect {
	return NewRect(PointFromOrb(b.Min), PointFromOrb(b.Max))
}

func pointsFromOrb(ps []orb.Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = PointFromOrb(p)
	}
	return out
}

func pointsToOrb(ps []Point) []orb.Point {
	out := make([]orb.Point, len(ps))
	for i, p := range ps {
		out[i] = p.Orb()
	}
	return out
}

// NewLineFromOrb returns a line through the points of ls.
func NewLineFromOrb(ls orb.LineString, ix IndexType) *Line {
	return NewLineIndexed(pointsFromOrb(ls), ix)
}

// LineString returns the line's points as an orb.LineString.
func (l *Line) LineString() orb.LineString {
	return orb.LineString(pointsToOrb(l.s.points))
}

// NewRingFromOrb returns a ring through the points of r. orb rings repeat
// their first point at the end, which the resulting ring keeps as is.
func NewRingFromOrb(r orb.Ring, ix IndexType) *Ring {
	return NewRingIndexed(pointsFromOrb(r), ix)
}

// OrbRing returns the ring's points as an orb.Ring, closing it by repeating
// the first point if necessary.
func (r *Ring) OrbRing() orb.Ring {
	ps := pointsToOrb(r.s.points)
	if n := len(ps); n > 0 && ps[0] != ps[n-1] {
		ps = append(ps, ps[0])
	}
	return orb.Ring(ps)
}
