package hashfunc

import (
	"fmt"
	"github.com/gostonefire/chainmap/internal/hash"
	"strings"
)

// Algorithm - Interface that permits an implementation using the chain map to supply a custom digest
// algorithm suited for its particular distribution of keys.
type Algorithm interface {
	// Sum64 - Given key it generates a 64 bit digest.
	// The digest is reduced modulo the number of buckets by the caller, hence its magnitude is
	// unconstrained apart from fitting in an uint64. The function must be pure, i.e. the same key
	// always yields the same digest and no state outside the instance is touched.
	Sum64(key string) uint64
}

// Recognized algorithm selector names accepted by New
const (
	Simple  string = "simple"
	FNV1a   string = "fnv1a"
	Jenkins string = "jenkins"
	MD5     string = "md5"
	SHA256  string = "sha256"
	DJB2    string = "djb2"
	CRC32   string = "crc32"
	XXHash  string = "xxhash"
)

// Variants - Returns all recognized algorithm selector names
func Variants() []string {
	return []string{Simple, FNV1a, Jenkins, MD5, SHA256, DJB2, CRC32, XXHash}
}

// New - Returns the digest algorithm registered under the given selector name.
// An unrecognized name results in an error of type UnknownVariant which enumerates the
// valid selectors, it never falls back to a default algorithm.
func New(variant string) (algorithm Algorithm, err error) {
	switch variant {
	case Simple:
		algorithm = hash.Simple{}
	case FNV1a:
		algorithm = hash.FNV1a{}
	case Jenkins:
		algorithm = hash.Jenkins{}
	case MD5:
		algorithm = hash.MD5{}
	case SHA256:
		algorithm = hash.SHA256{}
	case DJB2:
		algorithm = hash.DJB2{}
	case CRC32:
		algorithm = hash.CRC32{}
	case XXHash:
		algorithm = hash.XXHash{}
	default:
		err = UnknownVariant{Variant: variant}
	}

	return
}

// UnknownVariant - Custom error to inform that a hash algorithm selector is not recognized
type UnknownVariant struct {
	Variant string
}

// Error - Used to notify that a hash algorithm selector is not recognized
func (E UnknownVariant) Error() string {
	return fmt.Sprintf("unknown hash algorithm %q, available algorithms: %s", E.Variant, strings.Join(Variants(), ", "))
}

// Is - Lets errors.Is match on the error type regardless of which selector was rejected
func (E UnknownVariant) Is(target error) bool {
	_, ok := target.(UnknownVariant)
	return ok
}
