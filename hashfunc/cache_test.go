//go:build unit

package hashfunc

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

// countingAlgorithm - Test algorithm that counts how many times each key is digested
type countingAlgorithm struct {
	calls map[string]int
}

func newCountingAlgorithm() *countingAlgorithm {
	return &countingAlgorithm{calls: make(map[string]int)}
}

func (C *countingAlgorithm) Sum64(key string) uint64 {
	C.calls[key]++
	var h uint64
	for _, c := range key {
		h = h*31 + uint64(c)
	}
	return h
}

func TestCachedAlgorithm_Sum64(t *testing.T) {
	t.Run("memoizes digests per key", func(t *testing.T) {
		// Prepare
		inner := newCountingAlgorithm()
		cached := NewCached(inner, 10)

		// Execute
		d1 := cached.Sum64("puppy")
		d2 := cached.Sum64("puppy")

		// Check
		assert.Equal(t, d1, d2, "cached digest equals calculated digest")
		assert.Equal(t, inner.Sum64("puppy"), d1, "digest comes from the wrapped algorithm")
		assert.Equal(t, 2, inner.calls["puppy"], "wrapped algorithm was hit once by the cache and once directly")
		assert.Equal(t, 1, cached.Len(), "one digest held")
	})

	t.Run("evicts the least recently used key", func(t *testing.T) {
		// Prepare
		inner := newCountingAlgorithm()
		cached := NewCached(inner, 2)

		// Execute
		cached.Sum64("one")
		cached.Sum64("two")
		cached.Sum64("one") // refresh "one", making "two" the eviction candidate
		cached.Sum64("three")
		cached.Sum64("one")
		cached.Sum64("two")

		// Check
		assert.Equal(t, 2, cached.Len(), "cache never exceeds its maximum size")
		assert.Equal(t, 1, inner.calls["one"], "refreshed key stayed cached")
		assert.Equal(t, 2, inner.calls["two"], "evicted key was recalculated")
	})

	t.Run("clear empties the cache but keeps it usable", func(t *testing.T) {
		// Prepare
		inner := newCountingAlgorithm()
		cached := NewCached(inner, 10)
		digest := cached.Sum64("puppy")

		// Execute
		cached.Clear()

		// Check
		assert.Equal(t, 0, cached.Len(), "no digests held")
		assert.Equal(t, digest, cached.Sum64("puppy"), "digests are unchanged after clear")
		assert.Equal(t, 2, inner.calls["puppy"], "cleared key was recalculated")
	})
}
