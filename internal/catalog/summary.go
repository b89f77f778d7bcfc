package catalog

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/catgar/catgar/internal/history"
	"github.com/catgar/catgar/internal/sync"
)

const dayFormat = "2006-01-02"

// PrintSummary writes the end-of-run report to w: points written per
// category, accumulated errors, and the cursor outcome.
func PrintSummary(w io.Writer, s *sync.Summary) {
	if s.Window.IsEmpty() {
		fmt.Fprintln(w, "Already up to date, nothing to sync.")
		return
	}

	fmt.Fprintf(w, "Synced %s to %s (%d days) in %s\n",
		s.Window.Start.Format(dayFormat),
		s.Window.End.Format(dayFormat),
		s.DaysSynced,
		s.Duration.Round(time.Millisecond),
	)

	names := make([]string, 0, len(s.Written))
	for name := range s.Written {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%d points\n", name, s.Written[name])
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %d points\n", s.Points)

	if len(s.Errors) > 0 {
		fmt.Fprintf(w, "\n%d errors, sync cursor NOT advanced:\n", len(s.Errors))
		for _, e := range s.Errors {
			fmt.Fprintf(w, "  %s\n", e.String())
		}
		return
	}
	if s.CursorAdvanced {
		fmt.Fprintf(w, "Sync cursor advanced to %s\n", s.Window.End.Format(dayFormat))
	}
}

// PrintRuns writes recent run history to w, newest first.
func PrintRuns(w io.Writer, runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No recorded runs.")
		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tWINDOW\tDAYS\tPOINTS\tERRORS\tCURSOR\tDURATION")
	for _, r := range runs {
		cursor := "held"
		if r.CursorAdvanced {
			cursor = "advanced"
		}
		fmt.Fprintf(tw, "%s\t%s..%s\t%d\t%d\t%d\t%s\t%s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.WindowStart.Format(dayFormat),
			r.WindowEnd.Format(dayFormat),
			r.Days,
			r.Points,
			r.Errors,
			cursor,
			r.Duration.Round(time.Millisecond),
		)
	}
	tw.Flush()
}
