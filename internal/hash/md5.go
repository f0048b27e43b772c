package hash

import (
	"crypto/md5"
	"encoding/binary"
)

// MD5 - Digests the UTF-8 encoding of a key with standard 128 bit MD5.
// The full digest read as a base 16 integer is reduced modulo 2^64, which equals interpreting
// the trailing 8 digest bytes big endian.
type MD5 struct{}

// Sum64 - Returns the MD5 digest of key reduced to 64 bits
func (M MD5) Sum64(key string) uint64 {
	sum := md5.Sum([]byte(key))
	return binary.BigEndian.Uint64(sum[8:])
}
