package partition

import (
	"maps"
	"slices"
	"strings"
)

// Set is a collection of partitions without duplicate multisets.
// Membership is decided on the canonical Key, so inserting a permutation of
// a member is a no-op.
//
// A Set is not safe for concurrent mutation. Sets handed out by memo tables
// are shared and must be treated as read-only; Clone before mutating.
type Set struct {
	items map[string]Partition
}

// NewSet returns a set holding the given partitions.
func NewSet(ps ...Partition) Set {
	s := Set{items: make(map[string]Partition, len(ps))}
	for _, p := range ps {
		s.items[p.key] = p
	}
	return s
}

// Add inserts p and reports whether it was not already present.
func (s *Set) Add(p Partition) bool {
	if s.items == nil {
		s.items = make(map[string]Partition)
	}
	if _, ok := s.items[p.key]; ok {
		return false
	}
	s.items[p.key] = p
	return true
}

// Contains reports whether a partition with the same multiset is present.
func (s Set) Contains(p Partition) bool {
	_, ok := s.items[p.key]
	return ok
}

// Len returns the number of partitions.
func (s Set) Len() int { return len(s.items) }

// Each calls fn for every member in unspecified order until fn returns false.
func (s Set) Each(fn func(Partition) bool) {
	for _, p := range s.items {
		if !fn(p) {
			return
		}
	}
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := Set{items: make(map[string]Partition, len(s.items))}
	maps.Copy(out.items, s.items)
	return out
}

// Equal reports whether both sets hold the same multisets.
func (s Set) Equal(other Set) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for k := range s.items {
		if _, ok := other.items[k]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the members ordered by Compare.
func (s Set) Sorted() []Partition {
	out := slices.Collect(maps.Values(s.items))
	slices.SortFunc(out, Compare)
	return out
}

// Digest is an order-independent fingerprint of the members.
// Equal sets always share a digest.
func (s Set) Digest() uint64 {
	var d uint64
	for _, p := range s.items {
		d ^= p.Hash()
	}
	return d
}

// String renders the members sorted, e.g. "{(1, 3), (2, 2)}".
func (s Set) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
