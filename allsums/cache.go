package allsums

import (
	"github.com/on-the-ground/allsums/partition"
	"github.com/on-the-ground/allsums/pure"
	"github.com/on-the-ground/allsums/store"
)

// Cache holds the memo tables of the two components, keyed by (n, step).
// Sets stored in a table are shared between callers and never mutated.
type Cache struct {
	Pairs      pure.Table[partition.Set]
	Partitions pure.Table[partition.Set]
}

// NewCache returns a Cache backed by in-process tries.
func NewCache() Cache {
	return Cache{
		Pairs:      pure.NewTrie[partition.Set](),
		Partitions: pure.NewTrie[partition.Set](),
	}
}

// NewMemDBCache returns a Cache backed by go-memdb tables.
func NewMemDBCache() (Cache, error) {
	pairs, err := store.NewMemDB[partition.Set]()
	if err != nil {
		return Cache{}, err
	}
	partitions, err := store.NewMemDB[partition.Set]()
	if err != nil {
		return Cache{}, err
	}
	return Cache{Pairs: pairs, Partitions: partitions}, nil
}

// NewTieredCache returns a Cache whose tables keep a ristretto hot tier of
// about hotEntries sets in front of go-memdb. Call the returned func to
// release the hot tiers.
func NewTieredCache(hotEntries int) (Cache, func(), error) {
	pairs, err := store.NewTiered[partition.Set](hotEntries)
	if err != nil {
		return Cache{}, nil, err
	}
	partitions, err := store.NewTiered[partition.Set](hotEntries)
	if err != nil {
		pairs.Close()
		return Cache{}, nil, err
	}
	return Cache{Pairs: pairs, Partitions: partitions}, func() {
		pairs.Close()
		partitions.Close()
	}, nil
}
