package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/catgar/catgar/internal/garmin"
	"github.com/catgar/catgar/internal/infrastructure/logging"
	"github.com/catgar/catgar/internal/points"
)

// Writer is the sink capability the engine needs: accept one category's
// batch of points for one day. The InfluxDB client satisfies it.
type Writer interface {
	WriteBatch(ctx context.Context, batch []points.Point) error
}

// CategoryError records one isolated category failure.
type CategoryError struct {
	Category string
	Day      time.Time
	Err      error
}

func (e CategoryError) String() string {
	return fmt.Sprintf("%s %s: %v", e.Day.Format(dayFormat), e.Category, e.Err)
}

// DayResult aggregates one day's outcome across all categories.
type DayResult struct {
	Day     time.Time
	Points  int
	Written map[string]int
	Errors  []CategoryError
}

// Summary is the run-level outcome handed back to the caller.
type Summary struct {
	Window         Window
	DaysSynced     int
	Points         int
	Written        map[string]int
	Errors         []CategoryError
	CursorAdvanced bool
	Duration       time.Duration
}

// Clean reports whether the run finished with zero category-level errors.
func (s *Summary) Clean() bool {
	return len(s.Errors) == 0
}

// Engine drives the per-day, per-category fetch/build/write pipeline.
//
// Thread Safety: not safe for concurrent runs; the cursor file has no
// locking, so overlapping invocations must be serialized externally.
type Engine struct {
	fetcher    Fetcher
	writer     Writer
	builder    *points.Builder
	store      *Store
	log        *logging.Logger
	categories []Category
	sessions   []sessionCategory
}

// NewEngine creates a sync engine over the given upstream, sink and cursor
// store.
func NewEngine(fetcher Fetcher, writer Writer, builder *points.Builder, store *Store, log *logging.Logger) *Engine {
	return &Engine{
		fetcher:    fetcher,
		writer:     writer,
		builder:    builder,
		store:      store,
		log:        log.With("component", "sync_engine"),
		categories: Registry(),
		sessions:   sessionRegistry(),
	}
}

// Run syncs every day in the window and advances the cursor if the run was
// clean.
//
// Every day and every category is attempted regardless of earlier failures;
// errors are accumulated in the summary, never propagated mid-run. The
// returned error covers only infrastructure problems committing the cursor.
//
// Parameters:
//   - ctx: Context for timeout/cancellation between network calls
//   - window: Days to sync, from the planner
//
// Returns:
//   - *Summary: Per-category counts, accumulated errors, cursor outcome
//   - error: If the cursor file cannot be written after a clean run
func (e *Engine) Run(ctx context.Context, window Window) (*Summary, error) {
	started := time.Now()
	summary := &Summary{
		Window:  window,
		Written: make(map[string]int),
	}

	if window.IsEmpty() {
		e.log.Info("already up to date, nothing to sync")
		summary.Duration = time.Since(started)
		return summary, nil
	}

	days := window.Days()
	e.log.Info("sync window planned",
		"start", window.Start.Format(dayFormat),
		"end", window.End.Format(dayFormat),
		"days", len(days),
	)

	for _, day := range days {
		result := e.syncDay(ctx, day)
		summary.DaysSynced++
		summary.Points += result.Points
		for name, n := range result.Written {
			summary.Written[name] += n
		}
		summary.Errors = append(summary.Errors, result.Errors...)

		e.log.Info("day synced",
			"day", day.Format(dayFormat),
			"points", result.Points,
			"errors", len(result.Errors),
		)
	}

	if summary.Clean() {
		if err := e.store.Write(window.End); err != nil {
			return summary, fmt.Errorf("advancing sync cursor: %w", err)
		}
		summary.CursorAdvanced = true
	} else {
		e.log.Warn("run had errors, sync cursor not advanced",
			"errors", len(summary.Errors),
		)
	}

	summary.Duration = time.Since(started)
	return summary, nil
}

// syncDay runs every registered category for one day with isolated error
// handling. A not-found response is benign absence, not a failure.
func (e *Engine) syncDay(ctx context.Context, day time.Time) DayResult {
	result := DayResult{
		Day:     day,
		Written: make(map[string]int),
	}

	var activityList any

	for _, cat := range e.categories {
		raw, err := cat.Fetch(ctx, e.fetcher, day)
		if err != nil {
			if garmin.IsNotFound(err) {
				e.log.Debug("no data", "category", cat.Name, "day", day.Format(dayFormat))
				continue
			}
			e.recordError(&result, cat.Name, day, fmt.Errorf("fetch: %w", err))
			continue
		}

		if cat.Name == "activities" {
			activityList = raw
		}

		batch := cat.Build(e.builder, raw, day)
		if len(batch) == 0 {
			e.log.Debug("no fields emitted", "category", cat.Name, "day", day.Format(dayFormat))
			continue
		}

		if err := e.writer.WriteBatch(ctx, batch); err != nil {
			e.recordError(&result, cat.Name, day, fmt.Errorf("write: %w", err))
			continue
		}

		result.Written[cat.Name] += len(batch)
		result.Points += len(batch)
	}

	if activityList != nil {
		e.syncSessions(ctx, activityList, &result)
	}

	return result
}

// syncSessions runs the per-session sub-categories for every activity
// discovered in the day's list. Sub-category failures are expected for some
// session types (no weather indoors, no track on a treadmill), so they are
// logged at debug severity and do not count against the run.
func (e *Engine) syncSessions(ctx context.Context, activityList any, result *DayResult) {
	for _, session := range points.Sessions(activityList) {
		for _, sub := range e.sessions {
			raw, err := sub.Fetch(ctx, e.fetcher, session.ID)
			if err != nil {
				e.log.Debug("session sub-category unavailable",
					"category", sub.Name,
					"activity_id", session.ID,
					"error", err,
				)
				continue
			}

			batch := sub.Build(e.builder, raw, session)
			if len(batch) == 0 {
				continue
			}

			if err := e.writer.WriteBatch(ctx, batch); err != nil {
				e.log.Debug("session sub-category write failed",
					"category", sub.Name,
					"activity_id", session.ID,
					"error", err,
				)
				continue
			}

			result.Written[sub.Name] += len(batch)
			result.Points += len(batch)
		}
	}
}

// recordError logs and accumulates one isolated category failure.
func (e *Engine) recordError(result *DayResult, category string, day time.Time, err error) {
	e.log.Error("category failed",
		"category", category,
		"day", day.Format(dayFormat),
		"error", err,
	)
	result.Errors = append(result.Errors, CategoryError{
		Category: category,
		Day:      day,
		Err:      err,
	})
}
