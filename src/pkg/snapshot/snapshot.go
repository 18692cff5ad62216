// Package snapshot takes a single point-in-time read of the OS process
// table. The snapshot is immutable for the remainder of the run.
package snapshot

import (
	"context"

	"github.com/shirou/gopsutil/v3/process"
	"github.com/sirupsen/logrus"
)

// Record describes one process as observed at snapshot time. Fields
// that could not be read (permission-restricted cmdline, vanished
// process) are left at their zero value and contribute nothing to
// aggregation.
type Record struct {
	PID     int32
	UID     int32
	GID     int32
	Name    string // executable base name, no path
	Cmdline string // full invocation including arguments
	RSS     uint64 // resident set size, bytes
	VMS     uint64 // virtual memory size, bytes
}

// Source produces a process-table snapshot. The production
// implementation reads the live OS table; tests substitute fakes.
type Source interface {
	Snapshot(ctx context.Context) ([]Record, error)
}

// SystemSource reads the live process table through gopsutil.
type SystemSource struct{}

func NewSystemSource() SystemSource {
	return SystemSource{}
}

func (SystemSource) Snapshot(ctx context.Context) ([]Record, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(procs))
	for _, p := range procs {
		// Deadline check once per process scanned, so a short check
		// timeout cannot be stretched by a large process table.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec := Record{PID: p.Pid}

		if name, err := p.NameWithContext(ctx); err == nil {
			rec.Name = name
		}
		if cmdline, err := p.CmdlineWithContext(ctx); err == nil {
			rec.Cmdline = cmdline
		} else {
			logrus.WithField("pid", p.Pid).Debug("cmdline unavailable")
		}
		if uids, err := p.UidsWithContext(ctx); err == nil {
			rec.UID = effectiveID(uids)
		}
		if gids, err := p.GidsWithContext(ctx); err == nil {
			rec.GID = effectiveID(gids)
		}
		if mem, err := p.MemoryInfoWithContext(ctx); err == nil && mem != nil {
			rec.RSS = mem.RSS
			rec.VMS = mem.VMS
		}

		records = append(records, rec)
	}
	return records, nil
}

// effectiveID picks the effective id out of the (real, effective,
// saved, fs) id list exposed by the kernel, falling back to the first
// entry on platforms that report fewer values.
func effectiveID(ids []int32) int32 {
	if len(ids) > 1 {
		return ids[1]
	}
	if len(ids) == 1 {
		return ids[0]
	}
	return 0
}
