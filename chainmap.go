package chainmap

import (
	"fmt"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/gostonefire/chainmap/internal/conf"
)

// Entry - One key/value pair as stored in a bucket chain
type Entry struct {
	Key   string
	Value string
}

// Config - Configuration for a new chain map.
// Zero values select documented defaults, only values that are actively wrong are rejected.
//   - Capacity is the initial number of buckets, defaults to 16
//   - HashVariant is one of the selector names recognized by hashfunc.New, defaults to "jenkins"
//   - HashAlgorithm is an optional custom digest algorithm, when non nil it takes precedence over HashVariant
//   - LoadFactorThreshold is the load factor above which the bucket array grows, in (0,1], defaults to 0.7
//   - GrowthMultiplier is the fraction of the current capacity added on growth, defaults to 1 (doubling)
//   - DigestCacheSize when above 0 wraps the digest algorithm in a least recently used cache of that many keys
type Config struct {
	Capacity            int
	HashVariant         string
	HashAlgorithm       hashfunc.Algorithm
	LoadFactorThreshold float64
	GrowthMultiplier    float64
	DigestCacheSize     int
}

// Info - Information structure describing how a chain map instance is configured
//   - Capacity is the current number of buckets
//   - HashVariant is the selector name of the digest algorithm, empty when a custom algorithm was supplied
//   - InternalAlgorithm is true when the digest algorithm came from the internal registry
//   - LoadFactorThreshold is the growth trigger ratio
//   - GrowthMultiplier is the resize aggressiveness
type Info struct {
	Capacity            int
	HashVariant         string
	InternalAlgorithm   bool
	LoadFactorThreshold float64
	GrowthMultiplier    float64
}

// Map - The main implementation struct.
// It is a separate chaining hash table from string keys to string values. Each bucket owns its
// chain of entries ordered by insertion recency, the most recently inserted key first. The
// bucket array grows automatically when the load factor passes the configured threshold and
// never shrinks.
//
// A Map instance is not safe for concurrent use, mutations assume exclusive access for the
// duration of the call (single writer, no simultaneous readers).
type Map struct {
	buckets             [][]Entry
	capacity            int
	size                int
	algorithm           hashfunc.Algorithm
	variant             string
	internalAlgorithm   bool
	loadFactorThreshold float64
	growthMultiplier    float64

	entriesProcessed int64
	entriesUpdated   int64
	keyUpdateFreq    map[string]int64
}

// New - Returns a new chain map with the given initial bucket count and digest algorithm.
//   - capacity is the initial number of buckets, 0 (zero) selects the default of 16
//   - hashVariant is one of the selector names recognized by hashfunc.New, empty selects "jenkins"
//
// It returns:
//   - chainMap is a pointer to a Map struct
//   - err is a normal Go error, of type hashfunc.UnknownVariant when the selector is not recognized
func New(capacity int, hashVariant string) (chainMap *Map, err error) {
	return NewWithConfig(Config{Capacity: capacity, HashVariant: hashVariant})
}

// NewWithConfig - Returns a new chain map configured from the given Config struct.
//
// It returns:
//   - chainMap is a pointer to a Map struct
//   - err is a normal Go error which should be nil if everything went ok
func NewWithConfig(config Config) (chainMap *Map, err error) {
	// Check if the capacity is valid
	if config.Capacity < 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}
	if config.Capacity == 0 {
		config.Capacity = conf.DefaultCapacity
	}

	// Check if the load factor threshold is valid
	if config.LoadFactorThreshold < 0 || config.LoadFactorThreshold > 1 {
		err = fmt.Errorf("load factor threshold must be a fraction in the range (0,1]")
		return
	}
	if config.LoadFactorThreshold == 0 {
		config.LoadFactorThreshold = conf.DefaultLoadFactorThreshold
	}

	// Check if the growth multiplier is valid
	if config.GrowthMultiplier < 0 {
		err = fmt.Errorf("growth multiplier must be a positive value higher than 0 (zero)")
		return
	}
	if config.GrowthMultiplier == 0 {
		config.GrowthMultiplier = conf.DefaultGrowthMultiplier
	}

	// Check if the digest cache size is valid
	if config.DigestCacheSize < 0 {
		err = fmt.Errorf("digest cache size must not be negative")
		return
	}

	// If no HashAlgorithm was given then use the named variant from the internal registry
	var internalAlg bool
	variant := config.HashVariant
	algorithm := config.HashAlgorithm
	if algorithm == nil {
		if variant == "" {
			variant = conf.DefaultHashVariant
		}
		algorithm, err = hashfunc.New(variant)
		if err != nil {
			return
		}
		internalAlg = true
	} else {
		variant = ""
	}

	if config.DigestCacheSize > 0 {
		algorithm = hashfunc.NewCached(algorithm, config.DigestCacheSize)
	}

	chainMap = &Map{
		buckets:             make([][]Entry, config.Capacity),
		capacity:            config.Capacity,
		algorithm:           algorithm,
		variant:             variant,
		internalAlgorithm:   internalAlg,
		loadFactorThreshold: config.LoadFactorThreshold,
		growthMultiplier:    config.GrowthMultiplier,
		keyUpdateFreq:       make(map[string]int64),
	}

	return
}

// Info - Returns an Info struct describing the current configuration of the chain map
func (M *Map) Info() Info {
	return Info{
		Capacity:            M.capacity,
		HashVariant:         M.variant,
		InternalAlgorithm:   M.internalAlgorithm,
		LoadFactorThreshold: M.loadFactorThreshold,
		GrowthMultiplier:    M.growthMultiplier,
	}
}
