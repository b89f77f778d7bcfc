package sync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/catgar/catgar/internal/infrastructure/logging"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "state", ".last_sync"), logging.Default())
}

// TestStateRoundTrip verifies writing a cursor then reading it back.
func TestStateRoundTrip(t *testing.T) {
	store := testStore(t)
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	if err := store.Write(day); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, ok := store.Read()
	if !ok {
		t.Fatal("Read() ok = false, want true")
	}
	if !got.Equal(day) {
		t.Errorf("Read() = %v, want %v", got, day)
	}
}

// TestStateReadFailures verifies every unreadable state variant means
// "never synced" rather than an error.
func TestStateReadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
	}{
		{"missing file", "", false},
		{"malformed json", "{not json", true},
		{"missing key", `{"other": "2024-06-10"}`, true},
		{"empty value", `{"last_sync": ""}`, true},
		{"unparseable date", `{"last_sync": "June 10th"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".last_sync")
			if tt.write {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("writing fixture: %v", err)
				}
			}

			store := NewStore(path, logging.Default())
			if _, ok := store.Read(); ok {
				t.Error("Read() ok = true, want false")
			}
		})
	}
}

// TestStateOverwrite verifies a second write replaces the first cursor.
func TestStateOverwrite(t *testing.T) {
	store := testStore(t)
	first := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	second := time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local)

	if err := store.Write(first); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := store.Write(second); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, ok := store.Read()
	if !ok || !got.Equal(second) {
		t.Errorf("Read() = %v, %v, want %v, true", got, ok, second)
	}
}
