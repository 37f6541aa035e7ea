// Package tg provides polylines and rings with a spatial index over their
// segments, and searches that use it.
//
// # Curves
//
// A [Line] is an open polyline and a [Ring] is a closed one. Both are built
// once from a list of points and never change afterwards, which makes them
// safe to query from multiple goroutines. Their segments are derived from
// consecutive points; rings additionally connect their last point back to the
// first.
//
// # Indexing
//
// Unless constructed with [None], a curve builds a hierarchy of bounding
// rectangles over its segments. Level 0 groups up to [IndexSpread] segments
// per rectangle, each following level groups the rectangles of the level
// below in the same way, and the last level consists of a single rectangle
// covering the whole curve. [Natural] groups segments in the order they
// appear in the curve. [YStripes] first sorts them into horizontal stripes,
// which helps for curves whose consecutive segments are far apart.
//
// The index only affects performance. Every search returns the same results
// with or without one.
//
// # Searching
//
// [Line.NearestSegment] and [Ring.NearestSegment] visit segments in order of
// increasing distance to a query held by a [NearestSegmentVisitor]. The
// visitor defines both the distance to a segment and a lower bound for the
// distance to a rectangle, which lets the search skip parts of the curve
// that are too far away. [PointDistance] provides such a visitor for the
// euclidean distance to a point.
//
// [Line.LineSearch], [Ring.RingSearch] and their variants visit candidate
// pairs of segments from two curves whose bounding rectangles overlap. They
// are typically followed by [Segment.IntersectsSegment] to find the actual
// intersections.
//
// Visitors stop either search by returning false.
//
// # Coordinate system
//
// Coordinates are in a y-up space: [Ring.Clockwise] uses the conventional
// mathematical orientation.
package tg
