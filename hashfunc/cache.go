package hashfunc

import "container/list"

// CachedAlgorithm - Decorates an Algorithm with a least recently used digest cache.
// Since digest algorithms are pure, memoizing per key is safe and pays off for workloads that
// hash the same keys over and over. The cache is scoped to the instance it decorates, there is
// no process wide state involved.
type CachedAlgorithm struct {
	algorithm Algorithm
	maxSize   int
	order     *list.List
	digests   map[string]*list.Element
}

type cachedDigest struct {
	key    string
	digest uint64
}

// NewCached - Returns a pointer to a new CachedAlgorithm instance wrapping the given algorithm.
//   - algorithm is the digest algorithm to memoize
//   - maxSize is the maximum number of key digests held, least recently used keys are evicted first
func NewCached(algorithm Algorithm, maxSize int) *CachedAlgorithm {
	return &CachedAlgorithm{
		algorithm: algorithm,
		maxSize:   maxSize,
		order:     list.New(),
		digests:   make(map[string]*list.Element),
	}
}

// Sum64 - Returns the digest of key from cache, or calculates and caches it on a miss
func (C *CachedAlgorithm) Sum64(key string) uint64 {
	if element, ok := C.digests[key]; ok {
		C.order.MoveToFront(element)
		return element.Value.(cachedDigest).digest
	}

	digest := C.algorithm.Sum64(key)
	C.digests[key] = C.order.PushFront(cachedDigest{key: key, digest: digest})

	if C.order.Len() > C.maxSize {
		element := C.order.Back()
		C.order.Remove(element)
		delete(C.digests, element.Value.(cachedDigest).key)
	}

	return digest
}

// Len - Returns the number of digests currently held in the cache
func (C *CachedAlgorithm) Len() int {
	return C.order.Len()
}

// Clear - Empties the cache but keeps the wrapped algorithm and the maximum size
func (C *CachedAlgorithm) Clear() {
	C.order.Init()
	C.digests = make(map[string]*list.Element)
}
