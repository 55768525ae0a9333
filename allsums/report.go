package allsums

import (
	"time"

	"github.com/on-the-ground/allsums/partition"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Report summarizes one Enumerate call.
type Report struct {
	N      int
	Step   int
	Count  int
	Digest uint64
	Span   timespan.TimeSpan
}

// Fields renders the report as zap fields.
func (r Report) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("n", r.N),
		zap.Int("step", r.Step),
		zap.Int("count", r.Count),
		zap.Uint64("digest", r.Digest),
		zap.Time("start", r.Span.Start()),
		zap.Duration("elapsed", r.Span.Duration()),
	}
}

// Enumerate is Partitions plus a Report of the call.
func (e *Enumerator) Enumerate(n, step int) (partition.Set, Report, error) {
	return measure(n, step, e.Partitions)
}

// EnumeratePairs is Pairs plus a Report of the call.
func (e *Enumerator) EnumeratePairs(n, step int) (partition.Set, Report, error) {
	return measure(n, step, e.Pairs)
}

func measure(n, step int, fn func(n, step int) (partition.Set, error)) (partition.Set, Report, error) {
	start := time.Now()
	set, err := fn(n, step)
	if err != nil {
		return set, Report{}, err
	}
	return set, Report{
		N:      n,
		Step:   step,
		Count:  set.Len(),
		Digest: set.Digest(),
		Span:   timespan.BetweenTimes(start, time.Now()),
	}, nil
}
