package ipspan

import (
	"net/netip"
	"testing"

	"github.com/henderiw/span/pkg/span"
	"github.com/tj/assert"
	"go4.org/netipx"
)

func TestNew(t *testing.T) {
	cases := map[string]struct {
		ipRange      string
		expectedSize int64
		expectedErr  bool
	}{
		"IPv4": {
			ipRange:      "10.0.0.10-10.0.0.20",
			expectedSize: 11,
		},
		"IPv4Single": {
			ipRange:      "10.0.0.10-10.0.0.10",
			expectedSize: 1,
		},
		"IPv4All": {
			ipRange:      "0.0.0.0-255.255.255.255",
			expectedSize: 1 << 32,
		},
		"IPv6": {
			ipRange:      "2001:db8::-2001:db8::ff",
			expectedSize: 256,
		},
		"IPv6TooLarge": {
			ipRange:     "2001:db8::-2001:db8:0:1::",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ipRange, err := netipx.ParseIPRange(tc.ipRange)
			assert.NoError(t, err)

			s, err := New(ipRange)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, span.MustNew(0, tc.expectedSize), s.Full())
			assert.Equal(t, ipRange, s.Base())
		})
	}

	_, err := New(netipx.IPRange{})
	assert.Error(t, err)
}

func TestSpan(t *testing.T) {
	cases := map[string]struct {
		ipRange     string
		expected    span.Span
		expectedErr bool
	}{
		"Inside": {
			ipRange:  "10.0.0.12-10.0.0.14",
			expected: span.MustFromBounds(2, 5),
		},
		"Full": {
			ipRange:  "10.0.0.10-10.0.0.20",
			expected: span.MustFromBounds(0, 11),
		},
		"Single": {
			ipRange:  "10.0.0.20-10.0.0.20",
			expected: span.MustFromBounds(10, 11),
		},
		"PastEnd": {
			ipRange:     "10.0.0.15-10.0.0.21",
			expectedErr: true,
		},
		"BeforeStart": {
			ipRange:     "10.0.0.9-10.0.0.12",
			expectedErr: true,
		},
		"OtherFamily": {
			ipRange:     "::1-::2",
			expectedErr: true,
		},
	}
	base, err := netipx.ParseIPRange("10.0.0.10-10.0.0.20")
	assert.NoError(t, err)
	space, err := New(base)
	assert.NoError(t, err)

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ipRange, err := netipx.ParseIPRange(tc.ipRange)
			assert.NoError(t, err)

			s, err := space.Span(ipRange)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, s)

			back, err := space.IPRange(s)
			assert.NoError(t, err)
			assert.Equal(t, ipRange, back)
		})
	}
}

func TestIPRange(t *testing.T) {
	base, err := netipx.ParseIPRange("2001:db8::-2001:db8::ff")
	assert.NoError(t, err)
	space, err := New(base)
	assert.NoError(t, err)

	r, err := space.IPRange(span.MustFromBounds(16, 32))
	assert.NoError(t, err)
	assert.Equal(t, "2001:db8::10-2001:db8::1f", r.String())

	_, err = space.IPRange(span.MustFromBounds(16, 16))
	assert.Error(t, err)

	_, err = space.IPRange(span.MustFromBounds(250, 257))
	assert.Error(t, err)
}

func TestRelations(t *testing.T) {
	base, err := netipx.ParseIPRange("10.0.0.0-10.0.0.255")
	assert.NoError(t, err)
	space, err := New(base)
	assert.NoError(t, err)

	a, err := space.Span(netipx.MustParseIPRange("10.0.0.10-10.0.0.15"))
	assert.NoError(t, err)
	b, err := space.Span(netipx.MustParseIPRange("10.0.0.14-10.0.0.20"))
	assert.NoError(t, err)
	c, err := space.Span(netipx.MustParseIPRange("10.0.0.16-10.0.0.20"))
	assert.NoError(t, err)

	overlap, ok := span.Overlap(a, b)
	assert.True(t, ok)
	r, err := space.IPRange(overlap)
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.14-10.0.0.15", r.String())

	// adjacent address ranges touch but do not overlap
	assert.False(t, span.OverlapsWith(a, c))
	assert.True(t, span.IntersectsWith(a, c))

	pos, err := space.Position(netip.MustParseAddr("10.0.0.15"))
	assert.NoError(t, err)
	assert.True(t, span.Contains(a, pos))
	assert.False(t, span.Contains(c, pos))

	_, err = space.Position(netip.MustParseAddr("10.0.1.0"))
	assert.Error(t, err)
}
