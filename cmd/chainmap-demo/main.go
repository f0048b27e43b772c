// Command chainmap-demo exercises a chain map with generated fake data and prints what the
// table looks like from the outside, using only the read-only accessors.
package main

import (
	"fmt"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/gostonefire/chainmap"
	"github.com/gostonefire/chainmap/hashfunc"
	"github.com/olekukonko/tablewriter"
	"os"
	"strconv"
)

const (
	numDistinctKeys = 500
	numInserts      = 20000
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chainmap-demo: %s\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cm, err := chainmap.NewWithConfig(chainmap.Config{
		Capacity:        16,
		HashVariant:     hashfunc.SHA256,
		DigestCacheSize: 1024,
	})
	if err != nil {
		return
	}

	// Generate a fixed pool of fake words and sentences, then cycle it so most inserts
	// are in place updates and the duplicate counters have something to show
	faker := gofakeit.New(11)
	keys := make([]string, numDistinctKeys)
	values := make([]string, numDistinctKeys)
	for i := 0; i < numDistinctKeys; i++ {
		keys[i] = faker.Word()
		values[i] = faker.Sentence(6)
	}

	for i := 0; i < numInserts; i++ {
		cm.Set(keys[i%numDistinctKeys], values[(i*7)%numDistinctKeys])
	}

	printSummary(cm.Describe())
	printDistribution(cm.Stat(true))
	printBucketOf(cm, keys[0])

	return
}

// printSummary - Renders the snapshot header values as a two column table
func printSummary(snapshot chainmap.Snapshot) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Size", strconv.Itoa(snapshot.Size)})
	table.Append([]string{"Capacity", strconv.Itoa(snapshot.Capacity)})
	table.Append([]string{"Empty", strconv.FormatBool(snapshot.Empty)})
	table.Append([]string{"Hash variant", snapshot.HashVariant})
	table.Append([]string{"Entries processed", strconv.FormatInt(snapshot.EntriesProcessed, 10)})
	table.Append([]string{"Entries updated", strconv.FormatInt(snapshot.EntriesUpdated, 10)})
	table.Render()
}

// printDistribution - Renders the number of entries per bucket
func printDistribution(stat *chainmap.Stat) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Bucket", "Entries"})
	for bucket, entries := range stat.BucketDistribution {
		if entries > 0 {
			table.Append([]string{strconv.Itoa(bucket), strconv.Itoa(entries)})
		}
	}
	table.Render()
}

// printBucketOf - Prints the chain holding the given key, then the same chain reversed
func printBucketOf(cm *chainmap.Map, key string) {
	index := cm.BucketNo(key)

	entries, err := cm.BucketEntries(index)
	if err != nil {
		return
	}
	fmt.Printf("bucket %d, most recently inserted first:\n", index)
	printChain(entries)

	reversed, err := cm.BucketReversed(index)
	if err != nil {
		return
	}
	fmt.Printf("bucket %d, reversed:\n", index)
	printChain(reversed)
}

func printChain(entries []chainmap.Entry) {
	for depth, entry := range entries {
		for i := 0; i < depth; i++ {
			fmt.Print("│   ")
		}
		fmt.Printf("└─ %q: %q\n", entry.Key, entry.Value)
	}
}
