// Package allsums enumerates the partitions of a target sum into parts no
// smaller than a given step.
//
// An Enumerator owns the memo tables of its two components: Pairs, which
// yields every two-part split, and Partitions, which recursively refines
// those splits into every partition with two or more parts. Results are
// pure functions of (n, step), so the tables are filled lazily and never
// invalidated.
//
// Example:
//
//	e := allsums.New(allsums.NewCache())
//	set, err := e.Partitions(4, 1)
//	// set: {(1, 1, 1, 1), (1, 1, 2), (1, 3), (2, 2)}
package allsums

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/on-the-ground/allsums/partition"
	"github.com/on-the-ground/allsums/pure"
	"go.uber.org/zap"
)

var (
	// ErrNonPositiveStep rejects a step below 1, for which no split terminates.
	ErrNonPositiveStep = errors.New("step must be at least 1")

	// ErrTargetTooLarge rejects a target above the limit set by WithMaxN.
	ErrTargetTooLarge = errors.New("target exceeds limit")
)

// Enumerator computes partition sets through its memo tables.
// It is safe for concurrent use when its tables are.
type Enumerator struct {
	id     string
	logger *zap.Logger
	maxN   int

	pairs      func(n, step int) partition.Set
	partitions func(n, step int) partition.Set
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithLogger sets the logger used for debug traces of memo misses.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Enumerator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxN sets the largest accepted target. The number of partitions grows
// exponentially in n, so callers facing untrusted input should set one.
// A limit <= 0, the default, accepts every target.
func WithMaxN(maxN int) Option {
	return func(e *Enumerator) {
		e.maxN = maxN
	}
}

// New returns an Enumerator memoizing into cache.
func New(cache Cache, opts ...Option) *Enumerator {
	e := &Enumerator{
		id:     uuid.New().String(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("enumerator_id", e.id))
	e.pairs = pure.TableizeI2O1(e.computePairs, cache.Pairs)
	e.partitions = pure.TableizeI2O1(e.computePartitions, cache.Partitions)
	return e
}

// ID identifies the enumerator in logs.
func (e *Enumerator) ID() string { return e.id }

// Pairs returns every two-part partition of n into parts >= step.
// The set is empty when n < 2*step.
func (e *Enumerator) Pairs(n, step int) (partition.Set, error) {
	if err := e.check(n, step); err != nil {
		return partition.Set{}, err
	}
	if n < step {
		return partition.NewSet(), nil
	}
	return e.pairs(n, step).Clone(), nil
}

// Partitions returns every partition of n into two or more parts >= step.
// The single-part partition (n) is never included.
func (e *Enumerator) Partitions(n, step int) (partition.Set, error) {
	if err := e.check(n, step); err != nil {
		return partition.Set{}, err
	}
	if n < step {
		return partition.NewSet(), nil
	}
	return e.partitions(n, step).Clone(), nil
}

func (e *Enumerator) check(n, step int) error {
	if step < 1 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveStep, step)
	}
	if e.maxN > 0 && n > e.maxN {
		return fmt.Errorf("%w: %d > %d", ErrTargetTooLarge, n, e.maxN)
	}
	return nil
}
