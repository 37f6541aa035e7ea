package tg

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle described by its minimum and maximum
// corners.
//
// Most methods assume Min.X <= Max.X and Min.Y <= Max.Y. All constructors in
// this package uphold that.
type Rect struct {
	Min Point
	Max Point
}

// NewRect returns the smallest rectangle containing p0 and p1.
func NewRect(p0, p1 Point) Rect {
	return Rect{
		Min: minPoint(p0, p1),
		Max: maxPoint(p0, p1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.Min.X + r.Max.X),
		Y: 0.5 * (r.Min.Y + r.Max.Y),
	}
}

// Expand returns the smallest rectangle enclosing r and o.
func (r Rect) Expand(o Rect) Rect {
	return Rect{
		Min: minPoint(r.Min, o.Min),
		Max: maxPoint(r.Max, o.Max),
	}
}

// ExpandPoint returns the smallest rectangle enclosing r and pt.
//
// This includes the perimeter of zero-area rectangles. Thus, a succession of
// ExpandPoint operations on a series of points yields their enclosing
// rectangle.
func (r Rect) ExpandPoint(pt Point) Rect {
	return Rect{
		Min: minPoint(r.Min, pt),
		Max: maxPoint(r.Max, pt),
	}
}

// IntersectsRect reports whether the closed rectangles r and o share at least
// one point.
func (r Rect) IntersectsRect(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X &&
		r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

// IntersectsPoint reports whether pt lies inside the closed rectangle r,
// including its edges.
func (r Rect) IntersectsPoint(pt Point) bool {
	return pt.X >= r.Min.X && pt.X <= r.Max.X &&
		pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// Distance returns the euclidean distance from pt to the closest point of r.
// It is zero for points inside r.
//
// This is a valid lower bound for the distance from pt to anything contained
// in r, which makes it suitable as [NearestSegmentVisitor.RectDistance].
func (r Rect) Distance(pt Point) float64 {
	dx := max(r.Min.X-pt.X, 0, pt.X-r.Max.X)
	dy := max(r.Min.Y-pt.Y, 0, pt.Y-r.Max.Y)
	return math.Hypot(dx, dy)
}

// boundingRect returns the tight rectangle enclosing all rects. It returns the
// zero Rect for an empty slice.
func boundingRect(rects []Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	r := rects[0]
	for _, o := range rects[1:] {
		r = r.Expand(o)
	}
	return r
}
