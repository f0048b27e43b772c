package hash

// DJB2 - Bernstein hash. Starting from 5381 every code point updates the accumulator with
// h*33 + c, expressed as (h<<5 + h) + c, on an uint64 with wraparound.
type DJB2 struct{}

// Sum64 - Returns the 64 bit djb2 digest of key
func (D DJB2) Sum64(key string) uint64 {
	h := uint64(5381)
	for _, c := range key {
		h = h<<5 + h + uint64(c)
	}

	return h
}
