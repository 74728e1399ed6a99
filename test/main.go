package main

import (
	"fmt"

	"github.com/henderiw/span/pkg/ipspan"
	"github.com/henderiw/span/pkg/span"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

var values = []struct {
	start  int64
	end    int64
	labels map[string]string
}{
	{start: 10, end: 20, labels: map[string]string{"kind": "word"}},
	{start: 0, end: 4, labels: map[string]string{"kind": "word"}},
	{start: 4, end: 5, labels: map[string]string{"kind": "space"}},
	{start: 5, end: 10, labels: map[string]string{"kind": "word"}},
	{start: 5, end: 5},
}

func main() {
	var entries span.Entries
	for _, v := range values {
		s, err := span.FromBounds(v.start, v.end)
		if err != nil {
			fmt.Println("span", err)
			continue
		}
		entries = append(entries, span.NewEntry(s, v.labels))
	}
	entries.Sort()
	for _, e := range entries {
		fmt.Println("entry", e.String())
	}

	selector, err := labels.Parse("kind=word")
	if err != nil {
		panic(err)
	}
	words := entries.Select(selector)
	for i := 1; i < len(words); i++ {
		a, b := words[i-1], words[i]
		fmt.Printf("%s %s overlaps=%t intersects=%t\n", a.Span(), b.Span(), span.OverlapsWith(a, b), span.IntersectsWith(a, b))
		if s, ok := span.Intersection(a, b); ok {
			fmt.Println("  intersection", s)
		}
	}

	if _, err := span.New(-1, 3); err != nil {
		fmt.Println("span", err)
	}

	space, err := ipspan.New(netipx.MustParseIPRange("10.0.0.0-10.0.0.255"))
	if err != nil {
		panic(err)
	}
	a, err := space.Span(netipx.MustParseIPRange("10.0.0.10-10.0.0.15"))
	if err != nil {
		panic(err)
	}
	b, err := space.Span(netipx.MustParseIPRange("10.0.0.14-10.0.0.20"))
	if err != nil {
		panic(err)
	}
	if s, ok := span.Overlap(a, b); ok {
		r, err := space.IPRange(s)
		if err != nil {
			panic(err)
		}
		fmt.Println("ip overlap", s, r)
	}
}
