package history

import (
	"context"
	"fmt"
	"time"

	"github.com/catgar/catgar/internal/infrastructure/database"
)

// dayFormat is the calendar-date layout used in the runs table.
const dayFormat = "2006-01-02"

// schema creates the runs table. Idempotent; applied on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS sync_runs (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at      TEXT    NOT NULL,
    window_start    TEXT    NOT NULL,
    window_end      TEXT    NOT NULL,
    days            INTEGER NOT NULL,
    points          INTEGER NOT NULL,
    errors          INTEGER NOT NULL,
    cursor_advanced INTEGER NOT NULL,
    duration_ms     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sync_runs_started_at ON sync_runs(started_at);
`

// Run is one recorded sync run.
type Run struct {
	ID             int64
	StartedAt      time.Time
	WindowStart    time.Time
	WindowEnd      time.Time
	Days           int
	Points         int
	Errors         int
	CursorAdvanced bool
	Duration       time.Duration
}

// Repository persists and queries sync run records.
type Repository struct {
	db *database.DB
}

// NewRepository creates a run-history repository and applies the schema.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - db: Open database connection
//
// Returns:
//   - *Repository: Ready repository
//   - error: If the schema cannot be applied
func NewRepository(ctx context.Context, db *database.DB) (*Repository, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("applying run history schema: %w", err)
	}
	return &Repository{db: db}, nil
}

// Record inserts one completed run.
func (r *Repository) Record(ctx context.Context, run Run) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sync_runs
		 (started_at, window_start, window_end, days, points, errors, cursor_advanced, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339),
		run.WindowStart.Format(dayFormat),
		run.WindowEnd.Format(dayFormat),
		run.Days,
		run.Points,
		run.Errors,
		boolToInt(run.CursorAdvanced),
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("recording sync run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, started_at, window_start, window_end, days, points, errors, cursor_advanced, duration_ms
		 FROM sync_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sync runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedAt  string
			winStart   string
			winEnd     string
			advanced   int
			durationMS int64
		)
		if err := rows.Scan(&run.ID, &startedAt, &winStart, &winEnd,
			&run.Days, &run.Points, &run.Errors, &advanced, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning sync run: %w", err)
		}

		run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		run.WindowStart, _ = time.ParseInLocation(dayFormat, winStart, time.Local)
		run.WindowEnd, _ = time.ParseInLocation(dayFormat, winEnd, time.Local)
		run.CursorAdvanced = advanced != 0
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync runs: %w", err)
	}
	return runs, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
