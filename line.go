package tg

import "iter"

// Line is an open polyline. Its segments connect consecutive points; a line
// of n points has n−1 segments.
//
// A Line is immutable and safe for concurrent use.
type Line struct {
	s *series
}

// NewLine returns a line through points, indexed with [Default].
func NewLine(points []Point) *Line {
	return NewLineIndexed(points, Default)
}

// NewLineIndexed returns a line through points using the given index type.
// The points are copied.
//
// It panics if ix is not a known index type.
func NewLineIndexed(points []Point, ix IndexType) *Line {
	return &Line{s: newSeries(points, false, ix)}
}

func (l *Line) NumPoints() int   { return len(l.s.points) }
func (l *Line) NumSegments() int { return len(l.s.segs) }

// Points returns a copy of the line's points.
func (l *Line) Points() []Point {
	return append([]Point(nil), l.s.points...)
}

// PointAt returns the point at index i, or false if i is out of range.
func (l *Line) PointAt(i int) (Point, bool) { return l.s.pointAt(i) }

// SegmentAt returns the segment at index i, or false if i is out of range.
func (l *Line) SegmentAt(i int) (Segment, bool) { return l.s.segmentAt(i) }

// Segments iterates over the line's segments and their indices.
func (l *Line) Segments() iter.Seq2[int, Segment] { return l.s.segments() }

// Rect returns the bounding rectangle of the line.
func (l *Line) Rect() Rect { return l.s.rect }

// Length returns the sum of the lengths of all segments.
func (l *Line) Length() float64 { return l.s.length() }

// Clockwise reports whether the points wind clockwise, in a y-up coordinate
// system, when the line is treated as closed.
func (l *Line) Clockwise() bool { return l.s.signedArea() < 0 }

// IndexType returns the index type the line was built with, with [Default]
// resolved.
func (l *Line) IndexType() IndexType { return l.s.ixType }

// IndexSpread returns the number of children per index rectangle, or 0 if the
// line has no index.
func (l *Line) IndexSpread() int { return l.s.indexSpread() }

// IndexNumLevels returns the number of index levels, or 0 if the line has no
// index.
func (l *Line) IndexNumLevels() int { return l.s.ix.numLevels() }

// IndexLevelNumRects returns the number of rectangles in an index level, or 0
// if the level doesn't exist. Level 0 is the level closest to the segments.
func (l *Line) IndexLevelNumRects(level int) int { return l.s.ix.levelNumRects(level) }

// IndexLevelRect returns a rectangle of an index level, or false if the level
// or rectangle doesn't exist.
func (l *Line) IndexLevelRect(level, i int) (Rect, bool) { return l.s.ix.levelRect(level, i) }

// NearestSegment visits the line's segments in order of increasing distance,
// as defined by v. See [NearestSegmentVisitor].
func (l *Line) NearestSegment(v NearestSegmentVisitor) { nearestSegment(l.s, v) }

// LineSearch visits pairs of segments of l and o whose bounding rectangles
// overlap. See [SearchVisitor].
func (l *Line) LineSearch(o *Line, v SearchVisitor) { pairSearch(l.s, o.s, v) }

// RingSearch visits pairs of segments of l and o whose bounding rectangles
// overlap. See [SearchVisitor].
func (l *Line) RingSearch(o *Ring, v SearchVisitor) { pairSearch(l.s, o.s, v) }
