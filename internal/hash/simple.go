package hash

// Simple - Digests a key by summing the code points of its characters.
// The distribution is poor (anagrams collide by construction) but the algorithm is kept for its
// value as a baseline when comparing bucket distributions. An empty key digests to 0 (zero).
type Simple struct{}

// Sum64 - Returns the sum of the key's code points, wrapping at 64 bits
func (S Simple) Sum64(key string) uint64 {
	var h uint64
	for _, c := range key {
		h += uint64(c)
	}

	return h
}
