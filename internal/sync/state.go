package sync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/catgar/catgar/internal/infrastructure/logging"
)

// dayFormat is the calendar-date layout stored in the state file.
const dayFormat = "2006-01-02"

// stateDoc is the on-disk shape of the cursor file.
type stateDoc struct {
	LastSync string `json:"last_sync"`
}

// Store persists the sync cursor, the last successfully completed calendar
// date, as a small JSON file.
//
// Reads are deliberately forgiving: a missing file, malformed JSON, a
// missing key or an unparseable date all mean "never synced" rather than an
// error, because the worst outcome of a lost cursor is re-syncing data the
// sink will overwrite anyway.
type Store struct {
	path string
	log  *logging.Logger
}

// NewStore creates a cursor store backed by the file at path.
func NewStore(path string, log *logging.Logger) *Store {
	return &Store{
		path: path,
		log:  log.With("component", "sync_state"),
	}
}

// Read returns the stored cursor date and whether one exists.
//
// Returns:
//   - time.Time: Last completed calendar date, zero if none
//   - bool: false when no valid prior sync is recorded
func (s *Store) Read() (time.Time, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("state file unreadable, treating as never synced",
				"path", s.path, "error", err)
		}
		return time.Time{}, false
	}

	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn("state file malformed, treating as never synced",
			"path", s.path, "error", err)
		return time.Time{}, false
	}
	if doc.LastSync == "" {
		return time.Time{}, false
	}

	day, err := time.ParseInLocation(dayFormat, doc.LastSync, time.Local)
	if err != nil {
		s.log.Warn("state file date unparseable, treating as never synced",
			"path", s.path, "value", doc.LastSync)
		return time.Time{}, false
	}
	return day, true
}

// Write records day as the last successfully completed sync date.
//
// The file is written via a temp file and rename so a crash mid-write never
// leaves a truncated cursor behind.
func (s *Store) Write(day time.Time) error {
	data, err := json.Marshal(stateDoc{LastSync: day.Format(dayFormat)})
	if err != nil {
		return fmt.Errorf("marshaling sync state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory %s: %w", dir, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing sync state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing sync state: %w", err)
	}

	s.log.Debug("sync cursor written", "path", s.path, "last_sync", day.Format(dayFormat))
	return nil
}
