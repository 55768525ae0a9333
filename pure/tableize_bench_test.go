package pure_test

import (
	"testing"

	"github.com/on-the-ground/allsums/pure"
)

func naiveBinom(n, k int) int {
	if k == 0 || k == n {
		return 1
	}
	return naiveBinom(n-1, k-1) + naiveBinom(n-1, k)
}

func BenchmarkNaiveBinom(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveBinom(18, 9)
	}
}

func BenchmarkTableizedBinom(b *testing.B) {
	var binom func(int, int) int
	binom = pure.TableizeI2O1(func(n, k int) int {
		if k == 0 || k == n {
			return 1
		}
		return binom(n-1, k-1) + binom(n-1, k)
	}, pure.NewTrie[int]())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = binom(18, 9)
	}
}
