package pure

import (
	"sync"
	"sync/atomic"
)

// Table is the store behind a tableized function. Implementations must be
// safe for concurrent use. A value stored under a key is never evicted, so
// a tableized function computes each key at most once per table unless two
// callers race on the same miss.
type Table[O any] interface {
	Load(keys []ComparableOrString) (O, bool)
	Store(keys []ComparableOrString, value O)
}

var _ Table[int] = (*Trie[int])(nil)

// Trie is an in-process Table: one sync.Map level per argument position.
type Trie[O any] struct {
	root *sync.Map
	size atomic.Uint32
}

func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	m, k := t.traverse(keys)
	v, ok := m.Load(k)
	if !ok {
		var zero O
		return zero, false
	}
	return v.(O), true
}

func (t *Trie[O]) traverse(keys []ComparableOrString) (*sync.Map, any) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	targetMap := t.root
	for _, k := range keys[:length-1] {
		v, _ := targetMap.LoadOrStore(k, &sync.Map{})
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

func (t *Trie[O]) Store(keys []ComparableOrString, value O) {
	m, k := t.traverse(keys)
	if _, loaded := m.Swap(k, value); !loaded {
		t.size.Add(1)
	}
}

// Len returns the number of stored entries.
func (t *Trie[O]) Len() int {
	return int(t.size.Load())
}

func NewTrie[O any]() *Trie[O] {
	return &Trie[O]{root: &sync.Map{}}
}
