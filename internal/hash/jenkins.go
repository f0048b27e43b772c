package hash

// Jenkins - Jenkins one-at-a-time hash.
// Per code point the accumulator adds the code point, adds itself shifted left 10, and XOR:s
// itself shifted right 6. The final avalanche adds itself shifted left 3, XOR:s itself shifted
// right 11 and adds itself shifted left 15. All arithmetic is on an uint64 accumulator with
// wraparound, which is the fixed width this implementation commits to.
type Jenkins struct{}

// Sum64 - Returns the 64 bit Jenkins one-at-a-time digest of key
func (J Jenkins) Sum64(key string) uint64 {
	var h uint64
	for _, c := range key {
		h += uint64(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15

	return h
}
