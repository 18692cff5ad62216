// Package render prints the verbose diagnostic listing: every process
// considered, with the attributes that matched the filter highlighted.
package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/aalborgunilib/check-process-memory-usage/src/filter"
	"github.com/aalborgunilib/check-process-memory-usage/src/pkg/snapshot"
)

var matched = color.New(color.FgGreen, color.Bold)

// Listing writes the process table to w, one row per snapshot record,
// in snapshot order. Fields that caused a record to match are wrapped
// in color; color is a no-op when stdout is not a terminal.
func Listing(w io.Writer, records []snapshot.Record, matches []filter.Result) error {
	attrsByPid := make(map[int32]filter.Attr, len(matches))
	for _, m := range matches {
		attrsByPid[m.Record.PID] = m.Attrs
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "UID\tGID\tPID\tFNAME\tCMNDLINE")
	for _, rec := range records {
		attrs := attrsByPid[rec.PID]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			field(strconv.FormatInt(int64(rec.UID), 10), attrs.Has(filter.AttrUID)),
			field(strconv.FormatInt(int64(rec.GID), 10), attrs.Has(filter.AttrGID)),
			field(strconv.FormatInt(int64(rec.PID), 10), attrs.Has(filter.AttrPID)),
			field(rec.Name, attrs.Has(filter.AttrName)),
			field(rec.Cmdline, attrs.Has(filter.AttrCmdline)))
	}
	return tw.Flush()
}

func field(s string, highlight bool) string {
	if highlight {
		return matched.Sprint(s)
	}
	return s
}
