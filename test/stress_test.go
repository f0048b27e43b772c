//go:build stress

package test

import (
	"fmt"
	"github.com/gostonefire/chainmap"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

const stressKeys int = 100000

func randomKey(rnd *rand.Rand) string {
	letters := []byte("abcdefghijklmnopqrstuvwxyz")
	key := make([]byte, 8+rnd.Intn(16))
	for i := range key {
		key[i] = letters[rnd.Intn(len(letters))]
	}
	return string(key)
}

func TestMapStress(t *testing.T) {
	for _, variant := range hashfunc.Variants() {
		t.Run(fmt.Sprintf("high volume with variant %s", variant), func(t *testing.T) {
			// Prepare
			rnd := rand.New(rand.NewSource(42))
			cm, err := chainmap.NewWithConfig(chainmap.Config{
				Capacity:        16,
				HashVariant:     variant,
				DigestCacheSize: 1024,
			})
			assert.NoError(t, err, "creates chain map")

			reference := make(map[string]string, stressKeys)
			for len(reference) < stressKeys {
				reference[randomKey(rnd)] = fmt.Sprintf("value-%d", len(reference))
			}

			// Execute
			for key, value := range reference {
				cm.Set(key, value)
			}

			// Check
			assert.Equal(t, len(reference), cm.Size(), "all distinct keys stored")

			for key, value := range reference {
				entry, err := cm.Get(key)
				assert.NoError(t, err, "key retrievable after growth")
				assert.Equal(t, value, entry.Value, "correct value after growth")
			}

			stat := cm.Stat(true)
			var total int
			for _, n := range stat.BucketDistribution {
				total += n
			}
			assert.Equal(t, cm.Size(), total, "chains hold exactly size entries")

			// Clean up
			cm.Clear()
			assert.True(t, cm.IsEmpty(), "cleared after stress run")
		})
	}
}
