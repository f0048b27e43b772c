package hash

// 64 bit FNV-1a parameters
const (
	fnvOffsetBasis uint64 = 0xcbf29ce484222325
	fnvPrime       uint64 = 0x100000001b3
)

// FNV1a - 64 bit Fowler-Noll-Vo variant 1a.
// The accumulator starts at the FNV offset basis and for every code point in the key it is
// XOR:ed with the code point and then multiplied by the FNV prime, with ordinary uint64
// wraparound on the multiplication.
type FNV1a struct{}

// Sum64 - Returns the 64 bit FNV-1a digest of key
func (F FNV1a) Sum64(key string) uint64 {
	h := fnvOffsetBasis
	for _, c := range key {
		h ^= uint64(c)
		h *= fnvPrime
	}

	return h
}
