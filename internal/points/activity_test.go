package points

import (
	"reflect"
	"strconv"
	"testing"
	"time"
)

func testSession() Session {
	return Session{
		ID:    "123456",
		Type:  "running",
		Name:  "Morning Run",
		Start: time.Date(2024, 6, 1, 8, 30, 0, 0, time.Local),
	}
}

// TestSessions verifies session extraction from the activities list,
// including the skip rules for unusable entries.
func TestSessions(t *testing.T) {
	raw := []any{
		map[string]any{
			"activityId":     123456.0,
			"activityName":   "Morning Run",
			"startTimeLocal": "2024-06-01 08:30:00",
			"activityType":   map[string]any{"typeKey": "running"},
		},
		map[string]any{ // no id
			"activityName":   "Mystery",
			"startTimeLocal": "2024-06-01 09:00:00",
		},
		map[string]any{ // unparseable start
			"activityId":     789.0,
			"startTimeLocal": "yesterday-ish",
		},
		"not an object",
	}

	sessions := Sessions(raw)
	if len(sessions) != 1 {
		t.Fatalf("Sessions() returned %d sessions, want 1", len(sessions))
	}

	want := testSession()
	if !reflect.DeepEqual(sessions[0], want) {
		t.Errorf("session = %+v, want %+v", sessions[0], want)
	}

	t.Run("non-list payload", func(t *testing.T) {
		if got := Sessions(map[string]any{}); got != nil {
			t.Errorf("Sessions(map) = %v, want nil", got)
		}
	})
}

// TestActivities verifies the multi-field session summary points.
func TestActivities(t *testing.T) {
	b := testBuilder()

	raw := []any{
		map[string]any{
			"activityId":     123456.0,
			"activityName":   "Morning Run",
			"startTimeLocal": "2024-06-01 08:30:00",
			"activityType":   map[string]any{"typeKey": "running"},
			"distance":       10000.0,
			"duration":       3000.0,
			"averageHR":      150.0,
		},
		map[string]any{ // all fields null: no point
			"activityId":     789.0,
			"startTimeLocal": "2024-06-01 12:00:00",
			"distance":       nil,
		},
	}

	pts := b.Activities(raw, testDay())
	if len(pts) != 1 {
		t.Fatalf("Activities() returned %d points, want 1", len(pts))
	}

	p := pts[0]
	if p.Measurement != "activity" {
		t.Errorf("measurement = %q, want activity", p.Measurement)
	}
	wantTags := []Tag{{Key: "type", Value: "running"}, {Key: "name", Value: "Morning Run"}}
	if !reflect.DeepEqual(p.Tags, wantTags) {
		t.Errorf("tags = %v, want %v", p.Tags, wantTags)
	}
	wantFields := map[string]float64{"distance_meters": 10000, "duration_sec": 3000, "avg_hr": 150}
	if !reflect.DeepEqual(p.Fields, wantFields) {
		t.Errorf("fields = %v, want %v", p.Fields, wantFields)
	}
	if want := time.Date(2024, 6, 1, 8, 30, 0, 0, time.Local); !p.Time.Equal(want) {
		t.Errorf("time = %v, want %v", p.Time, want)
	}
}

// TestActivityDetail verifies the summaryDTO unwrapping and session tags.
func TestActivityDetail(t *testing.T) {
	b := testBuilder()
	s := testSession()

	raw := map[string]any{
		"summaryDTO": map[string]any{
			"trainingEffect":          3.2,
			"anaerobicTrainingEffect": 1.1,
		},
	}

	pts := b.ActivityDetail(raw, s)
	if len(pts) != 1 {
		t.Fatalf("ActivityDetail() returned %d points, want 1", len(pts))
	}

	p := pts[0]
	wantTags := []Tag{
		{Key: "type", Value: "running"},
		{Key: "name", Value: "Morning Run"},
		{Key: "activity_id", Value: "123456"},
	}
	if !reflect.DeepEqual(p.Tags, wantTags) {
		t.Errorf("tags = %v, want %v", p.Tags, wantTags)
	}
	if p.Fields["training_effect_aerobic"] != 3.2 {
		t.Errorf("fields = %v", p.Fields)
	}
	if !p.Time.Equal(s.Start) {
		t.Errorf("time = %v, want session start %v", p.Time, s.Start)
	}
}

// TestActivitySplits verifies per-lap points with 1-based split numbers.
func TestActivitySplits(t *testing.T) {
	b := testBuilder()
	s := testSession()

	raw := map[string]any{
		"lapDTOs": []any{
			map[string]any{"distance": 1000.0, "duration": 290.0},
			map[string]any{"distance": 1000.0, "duration": 285.0},
		},
	}

	pts := b.ActivitySplits(raw, s)
	if len(pts) != 2 {
		t.Fatalf("ActivitySplits() returned %d points, want 2", len(pts))
	}

	for i, p := range pts {
		last := p.Tags[len(p.Tags)-1]
		if last.Key != "split_num" {
			t.Fatalf("last tag = %q, want split_num", last.Key)
		}
		if want := strconv.Itoa(i + 1); last.Value != want {
			t.Errorf("split_num = %q, want %q", last.Value, want)
		}
	}
}

// TestActivityHRZones verifies both accepted payload shapes and the zone tag.
func TestActivityHRZones(t *testing.T) {
	b := testBuilder()
	s := testSession()

	zones := []any{
		map[string]any{"zoneNumber": 1.0, "secsInZone": 600.0, "zoneLowBoundary": 100.0},
		map[string]any{"zoneNumber": 2.0, "secsInZone": 1200.0, "zoneLowBoundary": 130.0},
		map[string]any{"secsInZone": 50.0}, // no zone number: skipped
	}

	t.Run("bare list", func(t *testing.T) {
		pts := b.ActivityHRZones(zones, s)
		if len(pts) != 2 {
			t.Fatalf("ActivityHRZones() returned %d points, want 2", len(pts))
		}
		last := pts[0].Tags[len(pts[0].Tags)-1]
		if last.Key != "zone" || last.Value != "1" {
			t.Errorf("zone tag = %v", last)
		}
	})

	t.Run("wrapped list", func(t *testing.T) {
		pts := b.ActivityHRZones(map[string]any{"hrTimeInZones": zones}, s)
		if len(pts) != 2 {
			t.Fatalf("ActivityHRZones() returned %d points, want 2", len(pts))
		}
	})
}

// TestActivityTrack verifies descriptor-indexed sample extraction with the
// lat/lon requirement and per-sample extra metrics.
func TestActivityTrack(t *testing.T) {
	b := testBuilder()
	s := testSession()

	raw := map[string]any{
		"metricDescriptors": []any{
			map[string]any{"key": "directLatitude", "metricsIndex": 0.0},
			map[string]any{"key": "directLongitude", "metricsIndex": 1.0},
			map[string]any{"key": "directSpeed", "metricsIndex": 2.0},
		},
		"activityDetailMetrics": []any{
			map[string]any{"metrics": []any{51.5, -0.12, 3.4}},
			map[string]any{"metrics": []any{nil, -0.12, 3.4}}, // lat null: skipped
			map[string]any{"metrics": []any{51.6, -0.13, nil}},
		},
	}

	pts := b.ActivityTrack(raw, s)
	if len(pts) != 2 {
		t.Fatalf("ActivityTrack() returned %d points, want 2", len(pts))
	}

	first := pts[0]
	want := map[string]float64{"lat": 51.5, "lon": -0.12, "directSpeed": 3.4}
	if !reflect.DeepEqual(first.Fields, want) {
		t.Errorf("fields = %v, want %v", first.Fields, want)
	}
	last := first.Tags[len(first.Tags)-1]
	if last.Key != "point_idx" || last.Value != "0" {
		t.Errorf("point_idx tag = %v", last)
	}

	second := pts[1]
	if _, ok := second.Fields["directSpeed"]; ok {
		t.Error("null speed metric should not be emitted")
	}

	t.Run("missing coordinates", func(t *testing.T) {
		noGPS := map[string]any{
			"metricDescriptors": []any{
				map[string]any{"key": "directSpeed", "metricsIndex": 0.0},
			},
			"activityDetailMetrics": []any{
				map[string]any{"metrics": []any{3.4}},
			},
		}
		if pts := b.ActivityTrack(noGPS, s); pts != nil {
			t.Errorf("ActivityTrack() = %v, want nil without lat/lon", pts)
		}
	})
}
