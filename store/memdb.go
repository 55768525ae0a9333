// Package store provides pure.Table implementations backed by embedded
// databases, for memo tables that should live outside plain Go maps.
package store

import (
	"fmt"
	"strings"
	"sync/atomic"

	memdb "github.com/hashicorp/go-memdb"
	"github.com/on-the-ground/allsums/pure"
	"github.com/on-the-ground/allsums/shared/helper"
)

const (
	memoTable = "memo"
	memoIndex = "id"
)

// entry is the row shape stored in go-memdb.
type entry struct {
	Key   string
	Value any
}

func memoSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memoTable: {
				Name: memoTable,
				Indexes: map[string]*memdb.IndexSchema{
					memoIndex: {
						Name:    memoIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
}

// encodeKeys flattens a key path into a single string.
// The unit separator cannot appear in decimal or Stringer-rendered keys we use.
func encodeKeys(keys []pure.ComparableOrString) string {
	if len(keys) == 0 {
		panic("encodeKeys: empty keys")
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, "\x1f")
}

var _ pure.Table[int] = (*MemDB[int])(nil)

// MemDB is a pure.Table stored in a go-memdb radix tree.
// Reads are lock-free snapshots; writes are serialized by memdb.
type MemDB[O any] struct {
	db   *memdb.MemDB
	size atomic.Int64
}

func NewMemDB[O any]() (*MemDB[O], error) {
	db, err := memdb.NewMemDB(memoSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return &MemDB[O]{db: db}, nil
}

func (m *MemDB[O]) Load(keys []pure.ComparableOrString) (O, bool) {
	return m.load(encodeKeys(keys))
}

func (m *MemDB[O]) load(key string) (O, bool) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	row, ok := helper.GetTypedValueOf2[*entry](func() (any, bool) {
		raw, err := txn.First(memoTable, memoIndex, key)
		return raw, err == nil && raw != nil
	})
	if !ok {
		var zero O
		return zero, false
	}
	return helper.GetTypedValueOf2[O](func() (any, bool) {
		return row.Value, true
	})
}

// Store inserts or replaces the value under keys.
// It panics if memdb rejects the write, which only happens on a schema bug.
func (m *MemDB[O]) Store(keys []pure.ComparableOrString, value O) {
	m.store(encodeKeys(keys), value)
}

func (m *MemDB[O]) store(key string, value O) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	old, err := txn.First(memoTable, memoIndex, key)
	if err != nil {
		panic(fmt.Sprintf("fail to read memo entry %q: %v", key, err))
	}
	if err := txn.Insert(memoTable, &entry{Key: key, Value: value}); err != nil {
		panic(fmt.Sprintf("fail to store memo entry %q: %v", key, err))
	}
	txn.Commit()
	if old == nil {
		m.size.Add(1)
	}
}

// Len returns the number of stored entries.
func (m *MemDB[O]) Len() int {
	return int(m.size.Load())
}
