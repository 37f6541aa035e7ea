package tg

// NearestSegmentVisitor drives [Line.NearestSegment] and [Ring.NearestSegment].
// The query itself, such as a target point, is held by the visitor.
//
// Both distance methods also return suppressPruning. Setting it tells the
// search not to rely on that distance for ordering decisions, which is
// needed for distance functions that are not proper lower bounds:
//
//   - For a rectangle, the search expands it right away instead of deferring
//     it until its bound is the smallest in the frontier.
//   - For a segment, the search holds it back until every remaining
//     rectangle has been expanded.
//
// A NaN rectangle bound is treated like suppressPruning. Segments with a NaN
// distance are visited after all others.
type NearestSegmentVisitor interface {
	// RectDistance returns a lower bound of the distance from the query to
	// anything inside r.
	RectDistance(r Rect) (dist float64, suppressPruning bool)
	// SegmentDistance returns the exact distance from the query to seg.
	SegmentDistance(seg Segment) (dist float64, suppressPruning bool)
	// Visit is called for each segment in order of increasing distance,
	// with the segment's index in the curve. Returning false stops the
	// search.
	Visit(seg Segment, dist float64, index int) bool
}

// NearestSegmentFuncs adapts three functions to [NearestSegmentVisitor].
type NearestSegmentFuncs struct {
	RectDistanceFunc    func(r Rect) (float64, bool)
	SegmentDistanceFunc func(seg Segment) (float64, bool)
	VisitFunc           func(seg Segment, dist float64, index int) bool
}

var _ NearestSegmentVisitor = NearestSegmentFuncs{}

func (f NearestSegmentFuncs) RectDistance(r Rect) (float64, bool) {
	return f.RectDistanceFunc(r)
}

func (f NearestSegmentFuncs) SegmentDistance(seg Segment) (float64, bool) {
	return f.SegmentDistanceFunc(seg)
}

func (f NearestSegmentFuncs) Visit(seg Segment, dist float64, index int) bool {
	return f.VisitFunc(seg, dist, index)
}

// PointDistance returns a [NearestSegmentFuncs] that orders segments by
// their euclidean distance to pt and calls visit for each.
func PointDistance(pt Point, visit func(seg Segment, dist float64, index int) bool) NearestSegmentFuncs {
	return NearestSegmentFuncs{
		RectDistanceFunc: func(r Rect) (float64, bool) {
			return r.Distance(pt), false
		},
		SegmentDistanceFunc: func(seg Segment) (float64, bool) {
			return seg.Distance(pt), false
		},
		VisitFunc: visit,
	}
}

// SearchVisitor receives candidate pairs from [Line.LineSearch],
// [Ring.RingSearch] and related methods. Each pair consists of one segment
// of either curve, together with its index. The bounding rectangles of the
// two segments overlap, but the segments themselves need not intersect; use
// [Segment.IntersectsSegment] to check.
//
// Returning false stops the search.
type SearchVisitor interface {
	Visit(a Segment, aIndex int, b Segment, bIndex int) bool
}

// SearchFunc adapts a function to [SearchVisitor].
type SearchFunc func(a Segment, aIndex int, b Segment, bIndex int) bool

var _ SearchVisitor = SearchFunc(nil)

func (fn SearchFunc) Visit(a Segment, aIndex int, b Segment, bIndex int) bool {
	return fn(a, aIndex, b, bIndex)
}
