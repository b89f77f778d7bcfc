package points

import "time"

// Precision declares the timestamp granularity of a Point.
type Precision int

const (
	// PrecisionSecond is used for daily summaries and per-session points.
	PrecisionSecond Precision = iota

	// PrecisionMillisecond is used for continuous readings that carry their
	// own native timestamps (e.g. heart rate samples).
	PrecisionMillisecond
)

// Tag is a single key/value pair identifying a point. Tags are kept as an
// ordered slice rather than a map so that built point lists are
// deterministic and comparable in tests.
type Tag struct {
	Key   string
	Value string
}

// Point is one typed, timestamped, tagged set of numeric fields destined for
// the sink. A point always carries at least one field; tag-less points are
// valid. Point identity in the sink is (measurement, tag set, timestamp), so
// re-writing the same point overwrites rather than duplicates.
type Point struct {
	Measurement string
	Tags        []Tag
	Fields      map[string]float64
	Time        time.Time
	Precision   Precision
}

// newFieldPoint returns a Point carrying a single field. Daily summary
// categories emit one point per field; they share identity in the sink and
// merge into one row.
func newFieldPoint(measurement, field string, value float64, ts time.Time) Point {
	return Point{
		Measurement: measurement,
		Fields:      map[string]float64{field: value},
		Time:        ts,
		Precision:   PrecisionSecond,
	}
}
