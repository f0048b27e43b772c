package hash

import (
	"crypto/sha256"
	"encoding/binary"
)

// SHA256 - Digests the UTF-8 encoding of a key with standard 256 bit SHA-256.
// The full digest read as a base 16 integer is reduced modulo 2^64, which equals interpreting
// the trailing 8 digest bytes big endian.
type SHA256 struct{}

// Sum64 - Returns the SHA-256 digest of key reduced to 64 bits
func (S SHA256) Sum64(key string) uint64 {
	sum := sha256.Sum256([]byte(key))
	return binary.BigEndian.Uint64(sum[24:])
}
