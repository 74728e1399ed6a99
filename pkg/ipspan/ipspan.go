// Package ipspan maps IP address ranges onto spans. Positions are offsets
// from the first address of a base range, so span relations can be applied
// to address ranges.
package ipspan

import (
	"errors"
	"fmt"
	"math/big"
	"net/netip"

	"github.com/henderiw/span/pkg/span"
	"go4.org/netipx"
)

type Space struct {
	base netipx.IPRange
	size int64
}

// New returns the space spanning base. The number of addresses in base must
// fit in an int64.
func New(base netipx.IPRange) (*Space, error) {
	if !base.IsValid() {
		return nil, fmt.Errorf("ip range %s is invalid", base.String())
	}
	var errm error
	if base.From().Zone() != "" {
		errm = errors.Join(errm, fmt.Errorf("ip range %s must not have a zone", base.String()))
	}
	size := numIPs(base.From(), base.To())
	if !size.IsInt64() {
		errm = errors.Join(errm, fmt.Errorf("ip range %s holds %s addresses, more than a span can address", base.String(), size.String()))
	}
	if errm != nil {
		return nil, errm
	}
	return &Space{
		base: base,
		size: size.Int64(),
	}, nil
}

// Base returns the address range of the space.
func (r *Space) Base() netipx.IPRange { return r.base }

// Full returns the span covering the whole space.
func (r *Space) Full() span.Span { return span.MustNew(0, r.size) }

// Position returns the offset of addr in the space.
func (r *Space) Position(addr netip.Addr) (int64, error) {
	if !r.base.Contains(addr) {
		return 0, fmt.Errorf("ip address %s, does not fit in the range from %s to %s", addr.String(), r.base.From().String(), r.base.To().String())
	}
	return calculateIndex(addr, r.base.From()), nil
}

// Span returns the span of the addresses in ipRange.
func (r *Space) Span(ipRange netipx.IPRange) (span.Span, error) {
	if !ipRange.IsValid() {
		return span.Span{}, fmt.Errorf("ip range %s is invalid", ipRange.String())
	}
	start, err := r.Position(ipRange.From())
	if err != nil {
		return span.Span{}, err
	}
	last, err := r.Position(ipRange.To())
	if err != nil {
		return span.Span{}, err
	}
	return span.FromBounds(start, last+1)
}

// IPRange returns the addresses covered by s. Address ranges are inclusive
// and cannot be empty, so an empty span is rejected.
func (r *Space) IPRange(s span.Range) (netipx.IPRange, error) {
	if s.IsEmpty() {
		return netipx.IPRange{}, fmt.Errorf("span %d-%d is empty, no ip range", s.Start(), s.End())
	}
	if !span.ContainsRange(r.Full(), s) {
		return netipx.IPRange{}, fmt.Errorf("span %d-%d does not fit in the range from %s to %s", s.Start(), s.End(), r.base.From().String(), r.base.To().String())
	}
	return netipx.IPRangeFrom(
		calculateIPFromIndex(r.base.From(), s.Start()),
		calculateIPFromIndex(r.base.From(), s.End()-1),
	), nil
}

func calculateIndex(ip, start netip.Addr) int64 {
	return new(big.Int).Sub(ipToInt(ip), ipToInt(start)).Int64()
}

func numIPs(startIP, endIP netip.Addr) *big.Int {
	diff := new(big.Int).Sub(ipToInt(endIP), ipToInt(startIP))
	return diff.Add(diff, big.NewInt(1))
}

func ipToInt(ip netip.Addr) *big.Int {
	bytes := ip.As16()
	return new(big.Int).SetBytes(bytes[:])
}

func calculateIPFromIndex(startIP netip.Addr, id int64) netip.Addr {
	ipInt := new(big.Int).Add(ipToInt(startIP), big.NewInt(id))

	var ip16 [16]byte
	ipInt.FillBytes(ip16[:])

	if startIP.Is4() {
		return netip.AddrFrom4(netip.AddrFrom16(ip16).As4())
	}
	return netip.AddrFrom16(ip16)
}
