package influxdb

import (
	"testing"
	"time"

	"github.com/catgar/catgar/internal/points"
)

// TestToWritePoint verifies the conversion to the client's line-protocol
// point, including precision-based timestamp truncation.
func TestToWritePoint(t *testing.T) {
	ts := time.Date(2024, 6, 1, 8, 30, 15, 123456789, time.Local)

	p := points.Point{
		Measurement: "activity",
		Tags: []points.Tag{
			{Key: "type", Value: "running"},
			{Key: "activity_id", Value: "123456"},
		},
		Fields:    map[string]float64{"distance_meters": 10000, "avg_hr": 150},
		Time:      ts,
		Precision: points.PrecisionSecond,
	}

	wp := toWritePoint(p)

	if wp.Name() != "activity" {
		t.Errorf("Name() = %q, want activity", wp.Name())
	}

	tags := make(map[string]string)
	for _, tag := range wp.TagList() {
		tags[tag.Key] = tag.Value
	}
	if tags["type"] != "running" || tags["activity_id"] != "123456" {
		t.Errorf("tags = %v", tags)
	}

	fields := make(map[string]any)
	for _, f := range wp.FieldList() {
		fields[f.Key] = f.Value
	}
	if fields["distance_meters"] != 10000.0 || fields["avg_hr"] != 150.0 {
		t.Errorf("fields = %v", fields)
	}

	if want := ts.Truncate(time.Second); !wp.Time().Equal(want) {
		t.Errorf("Time() = %v, want second-truncated %v", wp.Time(), want)
	}
}

// TestToWritePointMillisecond verifies sub-daily points keep millisecond
// resolution.
func TestToWritePointMillisecond(t *testing.T) {
	ts := time.UnixMilli(1717233900123).Add(456 * time.Microsecond)

	p := points.Point{
		Measurement: "heart_rate",
		Fields:      map[string]float64{"bpm": 62},
		Time:        ts,
		Precision:   points.PrecisionMillisecond,
	}

	wp := toWritePoint(p)
	if want := ts.Truncate(time.Millisecond); !wp.Time().Equal(want) {
		t.Errorf("Time() = %v, want millisecond-truncated %v", wp.Time(), want)
	}
	if len(wp.TagList()) != 0 {
		t.Errorf("TagList() = %v, want empty for tag-less point", wp.TagList())
	}
}
