// Package partition holds the value types shared by the enumerator and its
// memo tables: a canonical, immutable Partition and a Set of them.
package partition

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Partition is a multiset of parts kept in canonical (ascending) order.
// Two partitions built from permutations of the same parts are equal,
// share a Key and share a Hash.
//
// The zero value is the empty partition.
type Partition struct {
	parts []int
	key   string
}

// New returns the canonical partition of the given parts.
// The input slice is copied; later changes to it are not observed.
func New(parts ...int) Partition {
	canon := slices.Clone(parts)
	slices.Sort(canon)
	return Partition{parts: canon, key: keyOf(canon)}
}

// Repeat returns the partition made of count copies of part.
func Repeat(part, count int) Partition {
	if count <= 0 {
		return Partition{}
	}
	parts := make([]int, count)
	for i := range parts {
		parts[i] = part
	}
	return Partition{parts: parts, key: keyOf(parts)}
}

func keyOf(parts []int) string {
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}

// Parts returns a copy of the parts in ascending order.
func (p Partition) Parts() []int { return slices.Clone(p.parts) }

// Len returns the number of parts.
func (p Partition) Len() int { return len(p.parts) }

// At returns the i-th smallest part.
func (p Partition) At(i int) int { return p.parts[i] }

// Sum returns the total of all parts.
func (p Partition) Sum() int {
	total := 0
	for _, v := range p.parts {
		total += v
	}
	return total
}

// Min returns the smallest part, or 0 for the empty partition.
func (p Partition) Min() int {
	if len(p.parts) == 0 {
		return 0
	}
	return p.parts[0]
}

// Key is the canonical identity of the partition.
func (p Partition) Key() string { return p.key }

// Hash returns the xxhash digest of Key.
func (p Partition) Hash() uint64 { return xxhash.Sum64String(p.key) }

// Equal reports whether both partitions hold the same multiset.
func (p Partition) Equal(other Partition) bool { return p.key == other.key }

func (p Partition) without(part int) []int {
	idx, found := slices.BinarySearch(p.parts, part)
	if !found {
		panic("partition: Replace on a missing part " + strconv.Itoa(part))
	}
	rest := make([]int, 0, len(p.parts)-1)
	rest = append(rest, p.parts[:idx]...)
	return append(rest, p.parts[idx+1:]...)
}

// Replace swaps one occurrence of part for the parts of with.
// It panics if part does not occur in p.
func (p Partition) Replace(part int, with Partition) Partition {
	merged := merge(p.without(part), with.parts)
	return Partition{parts: merged, key: keyOf(merged)}
}

// merge joins two ascending slices into a new ascending slice.
func merge(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	for len(a) > 0 && len(b) > 0 {
		if a[0] <= b[0] {
			out, a = append(out, a[0]), a[1:]
		} else {
			out, b = append(out, b[0]), b[1:]
		}
	}
	out = append(out, a...)
	return append(out, b...)
}

// String renders the partition as a parenthesized list, e.g. "(1, 1, 2)".
func (p Partition) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p.parts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Compare orders partitions lexicographically over their canonical parts.
// A proper prefix sorts first.
func Compare(a, b Partition) int {
	return slices.Compare(a.parts, b.parts)
}
