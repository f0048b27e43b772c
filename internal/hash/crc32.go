package hash

import "hash/crc32"

// CRC32 - Digests a key using crc32.ChecksumIEEE, widened to 64 bits.
type CRC32 struct{}

// Sum64 - Returns the CRC-32 IEEE checksum of key as an uint64
func (C CRC32) Sum64(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}
