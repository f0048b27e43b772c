//go:build unit

package chainmap

import (
	"errors"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("creates chain map", func(t *testing.T) {
		// Execute
		cm, err := New(32, hashfunc.FNV1a)

		// Check
		assert.NoError(t, err, "creates chain map")
		assert.Equal(t, 32, cm.Capacity(), "correct capacity")
		assert.Equal(t, 0, cm.Size(), "starts empty")
		assert.True(t, cm.IsEmpty(), "is empty")

		info := cm.Info()
		assert.Equal(t, 32, info.Capacity, "correct capacity in info")
		assert.Equal(t, hashfunc.FNV1a, info.HashVariant, "correct hash variant in info")
		assert.True(t, info.InternalAlgorithm, "has internal hash algorithm")
		assert.Equal(t, 0.7, info.LoadFactorThreshold, "default load factor threshold")
		assert.Equal(t, float64(1), info.GrowthMultiplier, "default growth multiplier")
	})

	t.Run("applies defaults for zero values", func(t *testing.T) {
		// Execute
		cm, err := New(0, "")

		// Check
		assert.NoError(t, err, "creates chain map")
		assert.Equal(t, 16, cm.Capacity(), "default capacity")
		assert.Equal(t, hashfunc.Jenkins, cm.Info().HashVariant, "default hash variant")
	})

	t.Run("error when hash variant is unrecognized", func(t *testing.T) {
		// Execute
		cm, err := New(16, "murmur")

		// Check
		assert.Error(t, err, "unknown hash variant is rejected")
		assert.True(t, errors.Is(err, hashfunc.UnknownVariant{}), "error is of type UnknownVariant")
		assert.Contains(t, err.Error(), hashfunc.Jenkins, "error enumerates valid selectors")
		assert.Nil(t, cm, "no chain map is returned")
	})
}

func TestNewWithConfig(t *testing.T) {
	t.Run("error when config values are out of range", func(t *testing.T) {
		// Prepare
		tests := []struct {
			name   string
			config Config
		}{
			{name: "negative capacity", config: Config{Capacity: -1}},
			{name: "negative load factor threshold", config: Config{LoadFactorThreshold: -0.1}},
			{name: "load factor threshold above one", config: Config{LoadFactorThreshold: 1.1}},
			{name: "negative growth multiplier", config: Config{GrowthMultiplier: -1}},
			{name: "negative digest cache size", config: Config{DigestCacheSize: -1}},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				// Execute
				cm, err := NewWithConfig(test.config)

				// Check
				assert.Error(t, err, "config is rejected")
				assert.Nil(t, cm, "no chain map is returned")
			})
		}
	})

	t.Run("custom hash algorithm takes precedence", func(t *testing.T) {
		// Prepare
		algorithm := constantAlgorithm{digest: 7}

		// Execute
		cm, err := NewWithConfig(Config{Capacity: 16, HashVariant: hashfunc.MD5, HashAlgorithm: algorithm})

		// Check
		assert.NoError(t, err, "creates chain map")
		assert.False(t, cm.Info().InternalAlgorithm, "has external hash algorithm")
		assert.Equal(t, "", cm.Info().HashVariant, "no variant name for external algorithm")
		assert.Equal(t, 7, cm.BucketNo("anything"), "keys route through the custom algorithm")
	})

	t.Run("digest cache does not change placement", func(t *testing.T) {
		// Prepare
		plain, err := NewWithConfig(Config{Capacity: 64, HashVariant: hashfunc.SHA256})
		assert.NoError(t, err, "creates plain chain map")

		cached, err := NewWithConfig(Config{Capacity: 64, HashVariant: hashfunc.SHA256, DigestCacheSize: 8})
		assert.NoError(t, err, "creates cached chain map")

		// Execute / Check
		for _, key := range []string{"puppy", "kitten", "cub", "foal", "calf", "chick", "joey", "fawn", "cygnet", "eaglet"} {
			assert.Equal(t, plain.BucketNo(key), cached.BucketNo(key), "same bucket with and without cache")
		}
	})
}
