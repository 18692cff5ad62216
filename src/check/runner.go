package check

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aalborgunilib/check-process-memory-usage/src/configs"
	"github.com/aalborgunilib/check-process-memory-usage/src/filter"
	"github.com/aalborgunilib/check-process-memory-usage/src/pkg/pidfile"
	"github.com/aalborgunilib/check-process-memory-usage/src/pkg/snapshot"
	"github.com/aalborgunilib/check-process-memory-usage/src/types"
)

// Result is everything one invocation produces: the verdict, the
// aggregate for perfdata, and the raw snapshot plus match set for the
// verbose listing.
type Result struct {
	Status types.Status
	// Reason replaces the memory summary in the status line when set
	// (no-match, pidfile failure, timeout).
	Reason   string
	Memory     Memory
	Thresholds Thresholds
	Matches    []filter.Result
	Records    []snapshot.Record
	WithPerf   bool
}

// Runner executes resolve -> snapshot -> filter -> aggregate ->
// evaluate as one unit under a wall-clock deadline. Single-shot: a
// Runner is built, run once, and discarded with the invocation.
type Runner struct {
	cfg      *configs.Config
	source   snapshot.Source
	resolver filter.Resolver
	exclude  map[int32]struct{}
}

func NewRunner(cfg *configs.Config, source snapshot.Source, resolver filter.Resolver, exclude map[int32]struct{}) *Runner {
	return &Runner{
		cfg:      cfg,
		source:   source,
		resolver: resolver,
		exclude:  exclude,
	}
}

// Run executes the check. When the deadline elapses first, any partial
// aggregation is discarded and the result is forced to UNKNOWN with a
// timeout message.
func (r *Runner) Run(ctx context.Context) Result {
	timeout := time.Duration(r.cfg.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan Result, 1)
	go func() {
		done <- r.run(ctx)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		logrus.Warnf("check abandoned after %s", timeout)
		return r.timeoutResult()
	}
}

func (r *Runner) run(ctx context.Context) Result {
	pid, havePid, err := pidfile.Resolve(int32(r.cfg.PID), r.cfg.PidFile)
	if err != nil {
		return Result{Status: types.StatusUnknown, Reason: err.Error()}
	}

	records, err := r.source.Snapshot(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return r.timeoutResult()
		}
		return Result{
			Status: types.StatusUnknown,
			Reason: fmt.Sprintf("failed to read process table: %v", err),
		}
	}
	logrus.Debugf("snapshot holds %d processes", len(records))

	spec := filter.Spec{
		Name:    r.cfg.FName,
		Cmdline: r.cfg.CmdLine,
		Exclude: r.exclude,
	}
	if havePid {
		spec.PID = &pid
	}
	if r.cfg.UID != "" {
		ref := filter.ParseRef(r.cfg.UID)
		spec.UID = &ref
	}
	if r.cfg.GID != "" {
		ref := filter.ParseRef(r.cfg.GID)
		spec.GID = &ref
	}

	matches, err := filter.NewEngine(spec, r.resolver).Match(ctx, records)
	if err != nil {
		return r.timeoutResult()
	}

	mem := Aggregate(matches)
	status, reason := Evaluate(mem, r.thresholds(), r.cfg.NoMatchOK)
	logrus.Debugf("matched %d processes, rss=%dKB vms=%dKB, status=%s",
		mem.Matched, mem.RSSKilobytes(), mem.VMSKilobytes(), status)

	return Result{
		Status:     status,
		Reason:     reason,
		Memory:     mem,
		Thresholds: r.thresholds(),
		Matches:    matches,
		Records:    records,
		WithPerf:   true,
	}
}

func (r *Runner) thresholds() Thresholds {
	return Thresholds{
		WarningKB:  r.cfg.WarningKB,
		CriticalKB: r.cfg.CriticalKB,
	}
}

func (r *Runner) timeoutResult() Result {
	return Result{
		Status: types.StatusUnknown,
		Reason: fmt.Sprintf("check timed out after %d seconds", r.cfg.TimeoutSeconds),
	}
}
