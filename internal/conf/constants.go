package conf

// DefaultCapacity - Number of buckets used when no capacity is given
const DefaultCapacity int = 16

// DefaultLoadFactorThreshold - Load factor (size divided by capacity) above which the bucket array grows
const DefaultLoadFactorThreshold float64 = 0.7

// DefaultGrowthMultiplier - Fraction of the current capacity added when the bucket array grows,
// the default of 1 doubles the capacity
const DefaultGrowthMultiplier float64 = 1

// DefaultHashVariant - Digest algorithm selector used when none is given
const DefaultHashVariant string = "jenkins"
