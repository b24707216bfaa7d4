// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Len returns the number of bytes held by active records. Reused blocks
// count at their full capacity.
func (a *Arena) Len() int { return a.inUse }

// Cap returns the total capacity of all records, active or not.
func (a *Arena) Cap() int {
	total := 0
	for i := range a.records {
		total += len(a.records[i].buf)
	}
	return total
}

// Peak returns the high-water mark of active bytes. It is not cleared by
// Reset, so it tracks maximum usage across reuse cycles.
func (a *Arena) Peak() int { return a.peak }

// NumRecords returns the number of records owned by the arena.
func (a *Arena) NumRecords() int { return len(a.records) }

// Utilization returns the ratio of active bytes to total capacity, or 0
// for an arena with no records.
func (a *Arena) Utilization() float64 {
	c := a.Cap()
	if c == 0 {
		return 0
	}
	return float64(a.Len()) / float64(c)
}

// Metrics is a snapshot of arena statistics.
type Metrics struct {
	InUse       int     // bytes held by active records
	Capacity    int     // total capacity in bytes
	Peak        int     // high-water mark of active bytes
	NumRecords  int     // number of records
	Utilization float64 // ratio of active bytes to capacity (0.0-1.0)
}

// Metrics returns a snapshot of the arena's statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		InUse:       a.Len(),
		Capacity:    a.Cap(),
		Peak:        a.Peak(),
		NumRecords:  a.NumRecords(),
		Utilization: a.Utilization(),
	}
}

func (m Metrics) String() string {
	return fmt.Sprintf("in_use=%s cap=%s peak=%s records=%d util=%.1f%%",
		humanize.IBytes(uint64(m.InUse)),
		humanize.IBytes(uint64(m.Capacity)),
		humanize.IBytes(uint64(m.Peak)),
		m.NumRecords,
		m.Utilization*100,
	)
}
