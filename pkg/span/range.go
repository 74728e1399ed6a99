package span

// Range is implemented by any half-open interval [Start, End) over int64
// coordinates. The predicate functions in this package are written against
// Range so that they apply to every span-like type, not only Span.
type Range interface {
	// Start returns the inclusive start.
	Start() int64
	// Length returns End - Start.
	Length() int64
	// End returns the exclusive end.
	End() int64
	// IsEmpty reports whether Length is zero.
	IsEmpty() bool
}
