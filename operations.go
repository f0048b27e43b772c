package chainmap

import "fmt"

// Set - Updates an existing entry with a new value or inserts a new entry if no existing is
// found with the same key. A new key is added to the head of its bucket chain, i.e. chains are
// ordered by insertion recency. After the mutation the load factor is checked and the bucket
// array grows if it passed the configured threshold.
//   - key is the identifier of an entry
//   - value is the value to store under key
func (M *Map) Set(key string, value string) {
	M.entriesProcessed++

	index := M.bucketIndex(key)
	bucket := M.buckets[index]

	// Try to find an existing entry with matching key to update in place
	updated := false
	for i := range bucket {
		if bucket[i].Key == key {
			bucket[i].Value = value
			M.entriesUpdated++
			M.keyUpdateFreq[key]++
			updated = true
			break
		}
	}

	if !updated {
		M.buckets[index] = append(bucket, Entry{Key: key, Value: value})
		M.size++
	}

	if float64(M.size)/float64(M.capacity) > M.loadFactorThreshold {
		M.resize()
	}
}

// Get - Gets the entry that corresponds to the given key.
//   - key is the identifier of an entry
//
// It returns:
//   - entry is the matching entry if found, if not found an error of type NotFound is also returned
//   - err is either of type NotFound or nil
func (M *Map) Get(key string) (entry Entry, err error) {
	bucket := M.buckets[M.bucketIndex(key)]
	for i := range bucket {
		if bucket[i].Key == key {
			entry = bucket[i]
			return
		}
	}

	err = NotFound{}

	return
}

// Clear - Detaches and discards every entry in every bucket chain. Capacity, configuration and
// the running counters are preserved, only the stored entries and the size go away.
// The number of entries visited while clearing is checked against the registered size, a
// mismatch means the chains and the size bookkeeping have diverged which is an internal defect,
// hence it panics rather than returns an error.
func (M *Map) Clear() {
	var visited int
	for i := range M.buckets {
		visited += len(M.buckets[i])
		M.buckets[i] = nil
	}

	if visited != M.size {
		panic(fmt.Sprintf("chainmap: clear visited %d entries but size is %d", visited, M.size))
	}

	M.size = 0
}

// Size - Returns the number of distinct keys currently stored
func (M *Map) Size() int {
	return M.size
}

// Capacity - Returns the current number of buckets
func (M *Map) Capacity() int {
	return M.capacity
}

// IsEmpty - Returns true when no entries are stored, i.e. every bucket chain is empty
func (M *Map) IsEmpty() bool {
	return M.size == 0
}

// BucketNo - Returns which bucket number the given key currently maps to.
// The number is only stable until the next resize.
//   - key is the identifier of an entry
func (M *Map) BucketNo(key string) (bucketNo int) {
	return M.bucketIndex(key)
}

// BucketEntries - Returns a copy of the entries in the given bucket in chain order, i.e. the
// most recently inserted key first. The live chain is never handed out, so the caller can do
// whatever it wants with the returned slice.
//   - index is the bucket number, in the range 0 to Capacity()-1
//
// It returns:
//   - entries is a copied slice of the entries in the bucket, empty if the bucket is empty
//   - err is of type IndexOutOfRange when index is outside the bucket array
func (M *Map) BucketEntries(index int) (entries []Entry, err error) {
	if index < 0 || index >= M.capacity {
		err = IndexOutOfRange{msg: fmt.Sprintf("bucket index %d is outside the range 0 to %d", index, M.capacity-1)}
		return
	}

	bucket := M.buckets[index]
	entries = make([]Entry, 0, len(bucket))
	for i := len(bucket) - 1; i >= 0; i-- {
		entries = append(entries, bucket[i])
	}

	return
}

// BucketReversed - Returns a copy of the entries in the given bucket in reverse chain order,
// i.e. the oldest key first. The reversal is done on the copy, the live chain is not touched
// and a subsequent call to BucketEntries is unaffected.
//   - index is the bucket number, in the range 0 to Capacity()-1
//
// It returns:
//   - entries is a copied slice of the entries in the bucket, empty if the bucket is empty
//   - err is of type IndexOutOfRange when index is outside the bucket array
func (M *Map) BucketReversed(index int) (entries []Entry, err error) {
	if index < 0 || index >= M.capacity {
		err = IndexOutOfRange{msg: fmt.Sprintf("bucket index %d is outside the range 0 to %d", index, M.capacity-1)}
		return
	}

	bucket := M.buckets[index]
	entries = make([]Entry, len(bucket))
	copy(entries, bucket)

	return
}

// Stat - Statistics on the overall usage and distribution over buckets
//   - Entries is the number of distinct keys currently stored
//   - EntriesProcessed is the total number of Set calls over the instance lifetime
//   - EntriesUpdated is the number of Set calls that updated an existing entry in place
//   - BucketDistribution is the number of entries stored in each bucket
//   - KeyUpdateFrequency is, per key, the number of times it was updated rather than inserted
type Stat struct {
	Entries            int
	EntriesProcessed   int64
	EntriesUpdated     int64
	BucketDistribution []int
	KeyUpdateFrequency map[string]int64
}

// Stat - Walks through the entire bucket array and produces a Stat struct with information.
// For a big map the BucketDistribution slice can be memory heavy (one element per bucket).
//   - includeDistribution set to true will include a slice of length Capacity() with the number of entries per bucket, false will set Stat.BucketDistribution to nil
func (M *Map) Stat(includeDistribution bool) (stat *Stat) {
	stat = &Stat{
		Entries:            M.size,
		EntriesProcessed:   M.entriesProcessed,
		EntriesUpdated:     M.entriesUpdated,
		KeyUpdateFrequency: make(map[string]int64, len(M.keyUpdateFreq)),
	}
	for key, frequency := range M.keyUpdateFreq {
		stat.KeyUpdateFrequency[key] = frequency
	}

	if includeDistribution {
		stat.BucketDistribution = make([]int, M.capacity)
		for i := range M.buckets {
			stat.BucketDistribution[i] = len(M.buckets[i])
		}
	}

	return
}

// Snapshot - A structured snapshot of the entire table meant for presentation layers.
// Buckets holds one slice per bucket with entries in chain order, copied from the live table.
type Snapshot struct {
	Size             int
	Capacity         int
	Empty            bool
	HashVariant      string
	EntriesProcessed int64
	EntriesUpdated   int64
	Buckets          [][]Entry
}

// Describe - Returns a Snapshot of the current table state. The snapshot shares no data with
// the live table, so a presentation layer can consume it at its own pace.
func (M *Map) Describe() (snapshot Snapshot) {
	snapshot = Snapshot{
		Size:             M.size,
		Capacity:         M.capacity,
		Empty:            M.size == 0,
		HashVariant:      M.variant,
		EntriesProcessed: M.entriesProcessed,
		EntriesUpdated:   M.entriesUpdated,
		Buckets:          make([][]Entry, M.capacity),
	}
	for i := range M.buckets {
		snapshot.Buckets[i], _ = M.BucketEntries(i)
	}

	return
}

// bucketIndex - Reduces the digest of key modulo the current capacity.
// The modulo operation on an uint64 digest cannot leave the bucket array, but the range check
// stays to catch a defect in hashing or resizing before it silently corrupts a chain.
func (M *Map) bucketIndex(key string) (index int) {
	index = int(M.algorithm.Sum64(key) % uint64(M.capacity))
	if index < 0 || index >= M.capacity {
		panic(fmt.Sprintf("chainmap: bucket index %d for key %q is outside the range 0 to %d", index, key, M.capacity-1))
	}

	return
}

// resize - Grows the bucket array to capacity + capacity*growthMultiplier buckets and relocates
// every entry into the bucket its digest selects under the new capacity. Payloads are moved as
// they are and the size does not change. The per key bucket placement invariant is broken while
// relocating and restored before returning.
func (M *Map) resize() {
	newCapacity := M.capacity + int(float64(M.capacity)*M.growthMultiplier)
	if newCapacity <= M.capacity {
		// A sub one multiplier on a tiny table can round growth away
		newCapacity = M.capacity + 1
	}

	newBuckets := make([][]Entry, newCapacity)
	for _, bucket := range M.buckets {
		for _, entry := range bucket {
			index := int(M.algorithm.Sum64(entry.Key) % uint64(newCapacity))
			newBuckets[index] = append(newBuckets[index], entry)
		}
	}

	M.buckets = newBuckets
	M.capacity = newCapacity
}
