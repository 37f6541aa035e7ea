package tg

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Rect returns the zero-area rectangle covering only pt.
func (pt Point) Rect() Rect {
	return Rect{Min: pt, Max: pt}
}

// IntersectsRect reports whether pt lies inside the closed rectangle r.
func (pt Point) IntersectsRect(r Rect) bool {
	return r.IntersectsPoint(pt)
}

func minPoint(a, b Point) Point {
	return Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
}

func maxPoint(a, b Point) Point {
	return Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}
