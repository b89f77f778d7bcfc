package points

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/catgar/catgar/internal/infrastructure/logging"
)

func testBuilder() *Builder {
	return NewBuilder(logging.Default(), nil)
}

func testDay() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
}

// fieldSet flattens a point list into field name -> value for assertions
// that do not care about point boundaries.
func fieldSet(t *testing.T, pts []Point) map[string]float64 {
	t.Helper()
	fields := make(map[string]float64)
	for _, p := range pts {
		for k, v := range p.Fields {
			if _, dup := fields[k]; dup {
				t.Fatalf("field %q emitted twice", k)
			}
			fields[k] = v
		}
	}
	return fields
}

// TestDailyStats verifies declared mapping, extra-field discovery, and the
// one-point-per-field shape for daily summaries.
func TestDailyStats(t *testing.T) {
	b := testBuilder()
	day := testDay()

	raw := map[string]any{
		"totalSteps":       8500.0,
		"restingHeartRate": 58.0,
		"newField":         42.0,
	}

	pts := b.DailyStats(raw, day)
	if len(pts) != 3 {
		t.Fatalf("DailyStats() returned %d points, want 3", len(pts))
	}

	for _, p := range pts {
		if p.Measurement != "daily_stats" {
			t.Errorf("measurement = %q, want daily_stats", p.Measurement)
		}
		if len(p.Fields) != 1 {
			t.Errorf("point carries %d fields, want 1", len(p.Fields))
		}
		if !p.Time.Equal(day) {
			t.Errorf("point time = %v, want %v", p.Time, day)
		}
		if p.Precision != PrecisionSecond {
			t.Errorf("precision = %v, want PrecisionSecond", p.Precision)
		}
	}

	fields := fieldSet(t, pts)
	want := map[string]float64{"steps": 8500, "resting_hr": 58, "newField": 42}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("fields = %v, want %v", fields, want)
	}
}

// TestBuildIdempotence verifies that building twice from the same record
// yields identical point lists, which is what makes window retries safe.
func TestBuildIdempotence(t *testing.T) {
	b := testBuilder()
	day := testDay()

	raw := map[string]any{
		"totalSteps":       8500.0,
		"restingHeartRate": 58.0,
		"zNewField":        1.0,
		"aNewField":        2.0,
		"bNewField":        3.0,
	}

	first := b.DailyStats(raw, day)
	second := b.DailyStats(raw, day)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated builds differ:\n%v\n%v", first, second)
	}
}

// TestEmptyRecords verifies that absent or all-null data yields zero points.
func TestEmptyRecords(t *testing.T) {
	b := testBuilder()
	day := testDay()

	tests := []struct {
		name string
		raw  any
	}{
		{"nil payload", nil},
		{"non-object payload", "oops"},
		{"empty object", map[string]any{}},
		{"all nulls", map[string]any{"totalSteps": nil, "restingHeartRate": nil}},
		{"only ignored keys", map[string]any{"calendarDate": "2024-06-01", "source": "device"}},
		{"only non-numeric", map[string]any{"someLabel": "resting"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pts := b.DailyStats(tt.raw, day); len(pts) != 0 {
				t.Errorf("DailyStats() returned %d points, want 0", len(pts))
			}
		})
	}
}

// TestExtraDiscoveryExclusions verifies the discovery rule skips declared,
// ignored, null, and structured values.
func TestExtraDiscoveryExclusions(t *testing.T) {
	b := testBuilder()
	day := testDay()

	raw := map[string]any{
		"totalSteps":   100.0,                     // declared
		"calendarDate": "2024-06-01",              // ignored set
		"nullValue":    nil,                       // null
		"nested":       map[string]any{"x": 1.0},  // object
		"series":       []any{1.0, 2.0},           // array
		"label":        "tempo run",               // non-numeric string
		"numericExtra": 5.0,                       // should be discovered
	}

	fields := fieldSet(t, b.DailyStats(raw, day))
	want := map[string]float64{"steps": 100, "numericExtra": 5}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("fields = %v, want %v", fields, want)
	}
}

// TestExtraDiscoveryWarnsOnNonNumeric verifies an unknown scalar key that
// fails coercion is skipped with a warning, not silently: the log line is
// what tells operators to extend the field tables or the ignored set.
func TestExtraDiscoveryWarnsOnNonNumeric(t *testing.T) {
	var buf bytes.Buffer
	log := &logging.Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	b := NewBuilder(log, nil)

	raw := map[string]any{
		"totalSteps":    8500.0,
		"wellnessPhase": "RECOVERY",
	}

	pts := b.DailyStats(raw, testDay())
	if len(pts) != 1 {
		t.Fatalf("DailyStats() returned %d points, want 1", len(pts))
	}

	out := buf.String()
	if !strings.Contains(out, "wellnessPhase") || !strings.Contains(out, "WARN") {
		t.Errorf("missing coercion warning for wellnessPhase in:\n%s", out)
	}
}

// TestSleep verifies the dailySleepDTO unwrapping and sleep score
// flattening, including the {"value": N} wrapper variant.
func TestSleep(t *testing.T) {
	b := testBuilder()
	day := testDay()

	raw := map[string]any{
		"dailySleepDTO": map[string]any{
			"sleepTimeSeconds": 27000.0,
			"deepSleepSeconds": 5400.0,
			"sleepScores": map[string]any{
				"overall": map[string]any{"value": 85.0},
				"stress":  60.0,
			},
		},
	}

	fields := fieldSet(t, b.Sleep(raw, day))
	want := map[string]float64{
		"sleep_time_sec": 27000,
		"deep_sleep_sec": 5400,
		"score_overall":  85,
		"score_stress":   60,
	}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("fields = %v, want %v", fields, want)
	}
}

// TestHeartRate verifies intraday samples keep their native millisecond
// timestamps and malformed pairs are skipped.
func TestHeartRate(t *testing.T) {
	b := testBuilder()

	raw := []any{
		map[string]any{
			"heartRateValues": []any{
				[]any{1717233900000.0, 62.0},
				[]any{1717233960000.0, nil},  // missing reading
				[]any{1717234020000.0},       // truncated pair
				"garbage",                    // not a pair at all
				[]any{1717234080000.0, 65.0},
			},
		},
	}

	pts := b.HeartRate(raw, testDay())
	if len(pts) != 2 {
		t.Fatalf("HeartRate() returned %d points, want 2", len(pts))
	}

	first := pts[0]
	if first.Measurement != "heart_rate" {
		t.Errorf("measurement = %q, want heart_rate", first.Measurement)
	}
	if first.Precision != PrecisionMillisecond {
		t.Errorf("precision = %v, want PrecisionMillisecond", first.Precision)
	}
	if got := first.Time.UnixMilli(); got != 1717233900000 {
		t.Errorf("time = %d, want 1717233900000", got)
	}
	if first.Fields["bpm"] != 62 {
		t.Errorf("bpm = %v, want 62", first.Fields["bpm"])
	}
}

// TestHRV verifies the hrvSummary unwrapping and baseline flattening.
func TestHRV(t *testing.T) {
	b := testBuilder()
	day := testDay()

	raw := map[string]any{
		"hrvSummary": map[string]any{
			"weeklyAvg":    55.0,
			"lastNightAvg": 52.0,
			"status":       "BALANCED",
			"baseline": map[string]any{
				"lowUpper":      48.0,
				"balancedLow":   50.0,
				"balancedUpper": 62.0,
			},
		},
	}

	fields := fieldSet(t, b.HRV(raw, day))
	want := map[string]float64{
		"weekly_avg":             55,
		"last_night_avg":         52,
		"baseline_lowUpper":      48,
		"baseline_balancedLow":   50,
		"baseline_balancedUpper": 62,
	}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("fields = %v, want %v", fields, want)
	}

	t.Run("flat summary fallback", func(t *testing.T) {
		flat := map[string]any{"weeklyAvg": 55.0}
		fields := fieldSet(t, b.HRV(flat, day))
		if fields["weekly_avg"] != 55 {
			t.Errorf("weekly_avg = %v, want 55", fields["weekly_avg"])
		}
	})
}

// TestMaxMetrics verifies the per-sport multi-field points and the three
// accepted payload shapes.
func TestMaxMetrics(t *testing.T) {
	b := testBuilder()
	day := testDay()

	entry := map[string]any{
		"sport":       "RUNNING",
		"vo2MaxValue": 52.0,
		"fitnessAge":  29.0,
	}

	t.Run("bare list", func(t *testing.T) {
		pts := b.MaxMetrics([]any{entry}, day)
		if len(pts) != 1 {
			t.Fatalf("MaxMetrics() returned %d points, want 1", len(pts))
		}
		p := pts[0]
		if want := []Tag{{Key: "sport", Value: "RUNNING"}}; !reflect.DeepEqual(p.Tags, want) {
			t.Errorf("tags = %v, want %v", p.Tags, want)
		}
		if p.Fields["vo2max"] != 52 || p.Fields["fitness_age"] != 29 {
			t.Errorf("fields = %v", p.Fields)
		}
	})

	t.Run("wrapped list", func(t *testing.T) {
		pts := b.MaxMetrics(map[string]any{"maxMetrics": []any{entry}}, day)
		if len(pts) != 1 {
			t.Fatalf("MaxMetrics() returned %d points, want 1", len(pts))
		}
	})

	t.Run("single entry", func(t *testing.T) {
		pts := b.MaxMetrics(entry, day)
		if len(pts) != 1 {
			t.Fatalf("MaxMetrics() returned %d points, want 1", len(pts))
		}
	})

	t.Run("missing sport falls back", func(t *testing.T) {
		pts := b.MaxMetrics([]any{map[string]any{"vo2MaxValue": 40.0}}, day)
		if len(pts) != 1 {
			t.Fatalf("MaxMetrics() returned %d points, want 1", len(pts))
		}
		if got := pts[0].Tags[0].Value; got != "generic" {
			t.Errorf("sport tag = %q, want generic", got)
		}
	})
}
