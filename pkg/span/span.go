// Package span implements an immutable half-open interval [Start, End) over
// int64 coordinates and the relations between such intervals.
package span

import (
	"fmt"
	"sort"

	"github.com/henderiw/span/pkg/hashcode"
)

// Span is the half-open interval [Start, Start+Length). The zero value is the
// empty span [0..0).
//
// Spans are values: they compare with == and can be used as map keys.
type Span struct {
	start  int64
	length int64
}

var _ Range = Span{}

// New returns the span starting at start with the given length. It fails
// when start is negative or when start+length lies before start, which
// covers both a negative length and an overflowing end.
func New(start, length int64) (Span, error) {
	if start < 0 {
		return Span{}, invalid("start", start, "must not be negative")
	}
	if start+length < start {
		return Span{}, invalid("length", length, fmt.Sprintf("end of span starting at %d must not precede its start", start))
	}
	return Span{start: start, length: length}, nil
}

// FromBounds returns the span [start, end).
func FromBounds(start, end int64) (Span, error) {
	if start < 0 {
		return Span{}, invalid("start", start, "must not be negative")
	}
	if end < start {
		return Span{}, invalid("end", end, fmt.Sprintf("must not precede start %d", start))
	}
	return New(start, end-start)
}

// MustNew is like New but panics on invalid arguments.
func MustNew(start, length int64) Span {
	s, err := New(start, length)
	if err != nil {
		panic(err)
	}
	return s
}

// MustFromBounds is like FromBounds but panics on invalid arguments.
func MustFromBounds(start, end int64) Span {
	s, err := FromBounds(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func (r Span) Start() int64  { return r.start }
func (r Span) Length() int64 { return r.length }
func (r Span) End() int64    { return r.start + r.length }
func (r Span) IsEmpty() bool { return r.length == 0 }

// String returns the span in interval notation, e.g. "[3..8)".
func (r Span) String() string {
	return fmt.Sprintf("[%d..%d)", r.start, r.End())
}

// Equal reports whether r and other have the same start and length.
func (r Span) Equal(other Span) bool {
	return r.start == other.start && r.length == other.length
}

// Compare returns -1 if r sorts before other, +1 if it sorts after and 0 if
// they are equal. Spans sort by start, then by length.
func (r Span) Compare(other Span) int {
	if r.start < other.start {
		return -1
	}
	if r.start > other.start {
		return 1
	}
	if r.length < other.length {
		return -1
	}
	if r.length > other.length {
		return 1
	}
	return 0
}

// Less reports whether r sorts before other.
func (r Span) Less(other Span) bool { return r.Compare(other) < 0 }

// Hash returns a hash of the span that is stable across processes. Start and
// length are truncated to 32 bits before mixing, so distinct large spans may
// collide; equal spans always hash equally.
func (r Span) Hash() int32 {
	return hashcode.Combine(int32(r.start), int32(r.length))
}

// Contains reports whether position lies within r.
func (r Span) Contains(position int64) bool { return Contains(r, position) }

// ContainsRange reports whether other lies entirely within r.
func (r Span) ContainsRange(other Range) bool { return ContainsRange(r, other) }

// OverlapsWith reports whether r and other share a non-empty interior.
func (r Span) OverlapsWith(other Range) bool { return OverlapsWith(r, other) }

// IntersectsWith reports whether r and other overlap or touch.
func (r Span) IntersectsWith(other Range) bool { return IntersectsWith(r, other) }

// IntersectsWithPosition reports whether position lies in [Start, End].
func (r Span) IntersectsWithPosition(position int64) bool {
	return IntersectsWithPosition(r, position)
}

// Overlap returns the overlap of r and other, see the package function.
func (r Span) Overlap(other Range) (Span, bool) { return Overlap(r, other) }

// Intersection returns the intersection of r and other, see the package
// function.
func (r Span) Intersection(other Range) (Span, bool) { return Intersection(r, other) }

// Sort sorts spans in place by start, then length.
func Sort(spans []Span) {
	sort.Slice(spans, func(i, j int) bool { return spans[i].Less(spans[j]) })
}
