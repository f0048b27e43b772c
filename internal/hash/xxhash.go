package hash

import "github.com/cespare/xxhash/v2"

// XXHash - Digests a key using the 64 bit xxHash algorithm.
type XXHash struct{}

// Sum64 - Returns the 64 bit xxHash digest of key
func (X XXHash) Sum64(key string) uint64 {
	return xxhash.Sum64String(key)
}
