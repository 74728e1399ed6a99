package span

import (
	"fmt"
	"sort"

	"k8s.io/apimachinery/pkg/labels"
)

// Entry is a span annotated with labels. It implements Range, so entries
// take part in the same relations as plain spans.
type Entry struct {
	span   Span
	labels labels.Set
}

var _ Range = Entry{}

// NewEntry returns an entry for s. The labels are copied.
func NewEntry(s Span, l labels.Set) Entry {
	return Entry{
		span:   s,
		labels: labels.Merge(l, nil),
	}
}

func (r Entry) Span() Span { return r.span }

// Labels returns a copy of the entry labels.
func (r Entry) Labels() labels.Set { return labels.Merge(r.labels, nil) }

func (r Entry) Start() int64  { return r.span.Start() }
func (r Entry) Length() int64 { return r.span.Length() }
func (r Entry) End() int64    { return r.span.End() }
func (r Entry) IsEmpty() bool { return r.span.IsEmpty() }

func (r Entry) String() string {
	return fmt.Sprintf("span: %s, labels: %s", r.span, r.labels.String())
}

func (r Entry) Equal(e2 Entry) bool {
	return r.span.Equal(e2.span) && labels.Equals(r.labels, e2.labels)
}

type Entries []Entry

// Sort orders the entries by span; entries with equal spans are ordered by
// their label string.
func (r Entries) Sort() {
	sort.SliceStable(r, func(i, j int) bool {
		if cmp := r[i].span.Compare(r[j].span); cmp != 0 {
			return cmp < 0
		}
		return r[i].labels.String() < r[j].labels.String()
	})
}

// Select returns the entries whose labels match selector.
func (r Entries) Select(selector labels.Selector) Entries {
	var out Entries
	for _, e := range r {
		if selector.Matches(e.labels) {
			out = append(out, e)
		}
	}
	return out
}

// Spans returns the spans of the entries, in order.
func (r Entries) Spans() []Span {
	spans := make([]Span, 0, len(r))
	for _, e := range r {
		spans = append(spans, e.span)
	}
	return spans
}
