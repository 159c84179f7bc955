// SPDX-License-Identifier: MIT

package metrics

import (
	"sync/atomic"
	"time"
)

// Collector receives operational metrics from the vine builder.
// Implementations must be safe for concurrent use.
type Collector interface {
	// RecordLevel is called after a vine tree has been selected and fitted.
	// level is the 0-based tree index, candidates the number of admissible
	// edges offered to the spanning-tree selector, selected the number kept.
	RecordLevel(level, candidates, selected int, duration time.Duration)

	// RecordWarning is called for every numeric warning raised on level.
	RecordWarning(level int)

	// RecordSelect is called once per structure selection; err is nil on
	// success.
	RecordSelect(dim int, duration time.Duration, err error)
}

var (
	_ Collector = Noop{}
	_ Collector = (*Basic)(nil)
)

// Noop discards all metrics.
type Noop struct{}

func (Noop) RecordLevel(int, int, int, time.Duration) {}
func (Noop) RecordWarning(int)                        {}
func (Noop) RecordSelect(int, time.Duration, error)   {}

// Basic keeps simple in-memory counters.
type Basic struct {
	Selects       atomic.Int64
	SelectErrors  atomic.Int64
	SelectNanos   atomic.Int64
	Levels        atomic.Int64
	LevelNanos    atomic.Int64
	Candidates    atomic.Int64
	SelectedEdges atomic.Int64
	Warnings      atomic.Int64
	MaxDim        atomic.Int64
}

// RecordLevel implements Collector.
func (b *Basic) RecordLevel(_, candidates, selected int, duration time.Duration) {
	b.Levels.Add(1)
	b.LevelNanos.Add(duration.Nanoseconds())
	b.Candidates.Add(int64(candidates))
	b.SelectedEdges.Add(int64(selected))
}

// RecordWarning implements Collector.
func (b *Basic) RecordWarning(int) {
	b.Warnings.Add(1)
}

// RecordSelect implements Collector.
func (b *Basic) RecordSelect(dim int, duration time.Duration, err error) {
	b.Selects.Add(1)
	b.SelectNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SelectErrors.Add(1)
	}
	for {
		cur := b.MaxDim.Load()
		if int64(dim) <= cur || b.MaxDim.CompareAndSwap(cur, int64(dim)) {
			return
		}
	}
}

// Stats returns a snapshot of the counters.
func (b *Basic) Stats() Stats {
	s := Stats{
		Selects:       b.Selects.Load(),
		SelectErrors:  b.SelectErrors.Load(),
		Levels:        b.Levels.Load(),
		Candidates:    b.Candidates.Load(),
		SelectedEdges: b.SelectedEdges.Load(),
		Warnings:      b.Warnings.Load(),
		MaxDim:        b.MaxDim.Load(),
	}
	if s.Selects > 0 {
		s.SelectAvg = time.Duration(b.SelectNanos.Load() / s.Selects)
	}
	if s.Levels > 0 {
		s.LevelAvg = time.Duration(b.LevelNanos.Load() / s.Levels)
	}

	return s
}

// Stats is a snapshot of Basic.
type Stats struct {
	Selects       int64
	SelectErrors  int64
	SelectAvg     time.Duration
	Levels        int64
	LevelAvg      time.Duration
	Candidates    int64
	SelectedEdges int64
	Warnings      int64
	MaxDim        int64
}
