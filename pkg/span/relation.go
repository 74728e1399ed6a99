package span

// Contains reports whether position lies within me. The end is exclusive:
// a position equal to End is not contained.
func Contains(me Range, position int64) bool {
	return me.Start() <= position && position < me.End()
}

// ContainsRange returns whether other is entirely covered by me.
func ContainsRange(me, other Range) bool {
	return other.Start() >= me.Start() && other.End() <= me.End()
}

// OverlapsWith returns whether me and other have positions in common.
// Spans that only touch at an endpoint do not overlap.
func OverlapsWith(me, other Range) bool {
	start, end := bounds(me, other)
	return start < end
}

// IntersectsWith returns whether me and other have positions in common or
// the end of one coincides with the start of the other.
func IntersectsWith(me, other Range) bool {
	return other.Start() <= me.End() && other.End() >= me.Start()
}

// IntersectsWithPosition returns whether position lies between the start
// and end of me, both inclusive.
func IntersectsWithPosition(me Range, position int64) bool {
	return me.Start() <= position && position <= me.End()
}

// Overlap returns the positions me and other have in common. The second
// return value is false when the spans do not overlap, including when they
// only touch.
func Overlap(me, other Range) (Span, bool) {
	start, end := bounds(me, other)
	if start >= end {
		return Span{}, false
	}
	return fromBounds(start, end)
}

// Intersection returns the intersection of me and other. Spans that touch
// intersect in the empty span at the touch point, e.g. [0..5) and [5..10)
// give [5..5). The second return value is false when the spans are apart.
func Intersection(me, other Range) (Span, bool) {
	start, end := bounds(me, other)
	if start > end {
		return Span{}, false
	}
	return fromBounds(start, end)
}

// bounds returns the larger start and the smaller end of me and other.
func bounds(me, other Range) (start, end int64) {
	return max(me.Start(), other.Start()), min(me.End(), other.End())
}

// fromBounds is FromBounds for computed bounds. Bounds taken from a Range
// with a negative start give no result.
func fromBounds(start, end int64) (Span, bool) {
	s, err := FromBounds(start, end)
	if err != nil {
		return Span{}, false
	}
	return s, true
}
