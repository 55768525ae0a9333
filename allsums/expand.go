package allsums

import (
	"github.com/on-the-ground/allsums/partition"
	"go.uber.org/zap"
)

// computePairs splits off every multiple of step that leaves at least step
// behind: (i*step, n-i*step) for 1 <= i < n/step. Mirrored pairs collapse in
// the set. A smaller part that is not a multiple of step only shows up as
// the remainder of some pair, so (6, 2) yields (2, 4) but not (3, 3).
func (e *Enumerator) computePairs(n, step int) partition.Set {
	out := partition.NewSet()
	for i := 1; i < n/step; i++ {
		out.Add(partition.New(i*step, n-i*step))
	}
	return out
}

// computePartitions refines each pair of n until no part yields anything new.
//
// Every memoized partitions(e) is already closed under refining its own
// parts, so the fixpoint of a seed pair (a, b) is the product of the
// refinements of a and of b. Only the two seed parts are ever expanded.
// Recursive calls go through the memoized e.partitions on strictly smaller
// sums.
func (e *Enumerator) computePartitions(n, step int) partition.Set {
	result := partition.NewSet()

	e.pairs(n, step).Each(func(pair partition.Partition) bool {
		a, b := pair.At(0), pair.At(1)
		rights := e.refinements(b, step)
		for _, x := range e.refinements(a, step) {
			left := pair.Replace(a, x)
			for _, y := range rights {
				result.Add(left.Replace(b, y))
			}
		}
		return true
	})

	e.logger.Debug("memo miss",
		zap.Int("n", n),
		zap.Int("step", step),
		zap.Int("partitions", result.Len()),
	)
	return result
}

// refinements returns part on its own followed by every split of it.
func (e *Enumerator) refinements(part, step int) []partition.Partition {
	out := []partition.Partition{partition.New(part)}
	if part < 2*step {
		return out
	}
	e.splits(part, step).Each(func(sub partition.Partition) bool {
		out = append(out, sub)
		return true
	})
	return out
}

// splits returns every way to write part as two or more parts >= step.
// A part of exactly 2*step only splits into (step, step); that closed form
// is the base case that ends the recursion.
func (e *Enumerator) splits(part, step int) partition.Set {
	if part <= 2*step {
		return partition.NewSet(partition.Repeat(step, part/step))
	}
	return e.partitions(part, step)
}
