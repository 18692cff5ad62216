package check

import "github.com/aalborgunilib/check-process-memory-usage/src/types"

// Thresholds are the resident-set-size boundaries in kilobytes. nil
// means unset; an unset threshold never triggers.
type Thresholds struct {
	WarningKB  *int64
	CriticalKB *int64
}

// Evaluate classifies the aggregate against the thresholds and the
// no-match policy. reason is non-empty only when the status does not
// come from the threshold comparison.
//
// Evaluation order: the zero-match policy first, then critical, then
// warning. A value exactly equal to a threshold triggers it.
func Evaluate(mem Memory, th Thresholds, noMatchOK bool) (status types.Status, reason string) {
	if mem.Matched == 0 && !noMatchOK {
		return types.StatusUnknown, "no process matched the filter"
	}

	rssKB := int64(mem.RSSKilobytes())
	if th.CriticalKB != nil && rssKB >= *th.CriticalKB {
		return types.StatusCritical, ""
	}
	if th.WarningKB != nil && rssKB >= *th.WarningKB {
		return types.StatusWarning, ""
	}
	return types.StatusOK, ""
}
