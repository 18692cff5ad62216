// Package plugin renders results in the monitoring-plugin output
// protocol: a single status line with optional performance data.
package plugin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/aalborgunilib/check-process-memory-usage/src/check"
	"github.com/aalborgunilib/check-process-memory-usage/src/consts"
)

// Render produces the final status line.
//
// With perfdata:
//
//	PROCESS_MEMORY_USAGE OK - RSS 391 MiB - SIZE: 1.2 GiB | 'resident set size'=400384KB;512000;1024000 'virtual memory size'=1258291KB;;
//
// reason, when non-empty, replaces the memory summary (no-match,
// pidfile failure, timeout, configuration error).
func Render(res check.Result) string {
	var sb strings.Builder
	sb.WriteString(consts.CheckName)
	sb.WriteByte(' ')
	sb.WriteString(res.Status.String())
	sb.WriteString(" - ")

	if res.Reason != "" {
		sb.WriteString(res.Reason)
	} else {
		fmt.Fprintf(&sb, "RSS %s - SIZE: %s",
			humanize.IBytes(res.Memory.RSSBytes), humanize.IBytes(res.Memory.VMSBytes))
	}

	if res.WithPerf {
		fmt.Fprintf(&sb, " | 'resident set size'=%dKB;%s;%s 'virtual memory size'=%dKB;;",
			res.Memory.RSSKilobytes(),
			thresholdField(res.Thresholds.WarningKB),
			thresholdField(res.Thresholds.CriticalKB),
			res.Memory.VMSKilobytes())
	}
	return sb.String()
}

func thresholdField(kb *int64) string {
	if kb == nil {
		return ""
	}
	return strconv.FormatInt(*kb, 10)
}
