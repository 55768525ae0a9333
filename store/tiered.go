package store

import (
	"fmt"

	ristretto "github.com/dgraph-io/ristretto/v2"
	"github.com/on-the-ground/allsums/pure"
)

var _ pure.Table[int] = (*Tiered[int])(nil)

// Tiered is a pure.Table with a bounded ristretto hot tier over a MemDB.
//
// The hot tier may drop or refuse entries at will; the MemDB tier keeps every
// entry, so a value once stored is never lost.
type Tiered[O any] struct {
	hot  *ristretto.Cache[string, O]
	cold *MemDB[O]
}

// NewTiered returns a Tiered table whose hot tier holds roughly hotEntries values.
func NewTiered[O any](hotEntries int) (*Tiered[O], error) {
	if hotEntries <= 0 {
		hotEntries = 1
	}
	hot, err := ristretto.NewCache(&ristretto.Config[string, O]{
		NumCounters: int64(hotEntries) * 10, // keys to track frequency of.
		MaxCost:     int64(hotEntries),      // every entry costs 1.
		BufferItems: 64,                     // keys per Get buffer.
		// the declared cost is an entry count, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	cold, err := NewMemDB[O]()
	if err != nil {
		hot.Close()
		return nil, err
	}
	return &Tiered[O]{hot: hot, cold: cold}, nil
}

func (t *Tiered[O]) Load(keys []pure.ComparableOrString) (O, bool) {
	key := encodeKeys(keys)
	if v, ok := t.hot.Get(key); ok {
		return v, true
	}
	v, ok := t.cold.load(key)
	if ok {
		t.hot.Set(key, v, 1)
	}
	return v, ok
}

func (t *Tiered[O]) Store(keys []pure.ComparableOrString, value O) {
	key := encodeKeys(keys)
	t.cold.store(key, value)
	t.hot.Set(key, value, 1)
}

// Len returns the number of entries in the durable tier.
func (t *Tiered[O]) Len() int {
	return t.cold.Len()
}

// Close releases the hot tier's background goroutines.
func (t *Tiered[O]) Close() {
	t.hot.Close()
}
