package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/catgar/catgar/internal/infrastructure/logging"
)

// Window is a closed range of calendar days to sync. A window whose Start is
// after its End is empty: the engine has nothing to do.
type Window struct {
	Start time.Time
	End   time.Time
}

// IsEmpty reports whether the window contains no days.
func (w Window) IsEmpty() bool {
	return w.Start.After(w.End)
}

// Days returns every calendar day in the window in order.
func (w Window) Days() []time.Time {
	if w.IsEmpty() {
		return nil
	}
	var days []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// PlanRequest selects one of the four window modes. Date, Days and Backfill
// are mutually exclusive; all unset means auto-resume.
type PlanRequest struct {
	// Date syncs exactly one explicit day.
	Date *time.Time

	// Days syncs the last N days ending today.
	Days int

	// Backfill searches for the oldest day with data and syncs from there
	// through today.
	Backfill bool

	// BackfillMaxDays bounds how far back the backfill search probes.
	BackfillMaxDays int
}

// PlanWindow resolves the sync window for one run.
//
// The planner never mutates state. In auto-resume mode the window starts the
// day after the stored cursor and ends today; a cursor at or past today
// yields an empty window. With no cursor at all, only today is synced.
//
// Parameters:
//   - ctx: Context passed through to backfill probes
//   - req: Mode selection
//   - cursor: Stored cursor date, valid only when hasCursor is true
//   - hasCursor: Whether a prior sync is recorded
//   - prober: Presence probe for backfill mode
//   - now: The current instant, truncated internally to a calendar day
//   - log: Logger
//
// Returns:
//   - Window: Resolved sync window, possibly empty
//   - error: If the request combines mutually exclusive modes, or asks for
//     a backfill without a positive search depth
func PlanWindow(ctx context.Context, req PlanRequest, cursor time.Time, hasCursor bool,
	prober Prober, now time.Time, log *logging.Logger) (Window, error) {

	modes := 0
	if req.Date != nil {
		modes++
	}
	if req.Days > 0 {
		modes++
	}
	if req.Backfill {
		modes++
	}
	if modes > 1 {
		return Window{}, fmt.Errorf("date, day count and backfill modes are mutually exclusive")
	}

	today := midnight(now)

	switch {
	case req.Date != nil:
		day := midnight(*req.Date)
		return Window{Start: day, End: day}, nil

	case req.Days > 0:
		return Window{Start: today.AddDate(0, 0, -(req.Days - 1)), End: today}, nil

	case req.Backfill:
		if req.BackfillMaxDays <= 0 {
			return Window{}, fmt.Errorf("backfill search depth must be positive, got %d", req.BackfillMaxDays)
		}
		earliest := today.AddDate(0, 0, -req.BackfillMaxDays)
		start := FindOldest(ctx, prober, earliest, today, log)
		return Window{Start: start, End: today}, nil

	case hasCursor:
		start := midnight(cursor).AddDate(0, 0, 1)
		return Window{Start: start, End: today}, nil

	default:
		return Window{Start: today, End: today}, nil
	}
}

// midnight truncates t to local midnight of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
