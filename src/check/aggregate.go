package check

import "github.com/aalborgunilib/check-process-memory-usage/src/filter"

// Memory is the aggregated memory usage of the matched process set.
type Memory struct {
	RSSBytes uint64
	VMSBytes uint64
	Matched  int
}

// RSSKilobytes returns the resident sum in the unit thresholds and
// perfdata use.
func (m Memory) RSSKilobytes() uint64 { return m.RSSBytes / 1024 }

func (m Memory) VMSKilobytes() uint64 { return m.VMSBytes / 1024 }

// Aggregate sums resident and virtual memory over the matched subset.
// Order-independent; records with unavailable memory counters
// contribute zero but still count as matched.
func Aggregate(results []filter.Result) Memory {
	var mem Memory
	for _, r := range results {
		mem.RSSBytes += r.Record.RSS
		mem.VMSBytes += r.Record.VMS
		mem.Matched++
	}
	return mem
}
