// Package hashcode combines integer hash codes into a single value.
//
// The mixing function is fixed: values produced by Combine are stable across
// processes and releases and may be persisted or compared between
// implementations.
package hashcode

const (
	seed       = int32(5381<<16 + 5381)
	multiplier = int32(1566083941)
)

// Combine folds the values, in order, into a single hash. Values at even
// positions feed the first accumulator, values at odd positions the second.
// All arithmetic wraps at 32 bits.
func Combine(values ...int32) int32 {
	hash1 := seed
	hash2 := hash1

	for i, v := range values {
		if i%2 == 0 {
			hash1 = mix(hash1) ^ v
		} else {
			hash2 = mix(hash2) ^ v
		}
	}
	return hash1 + hash2*multiplier
}

// mix is (h << 5) + h + (h >> 27) with an arithmetic right shift.
func mix(h int32) int32 {
	return (h << 5) + h + (h >> 27)
}
