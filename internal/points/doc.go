// Package points converts raw Garmin Connect JSON records into typed
// measurement points ready for the time-series sink.
//
// Each data category (daily stats, sleep, heart rate, activities, ...) has a
// declarative field table mapping upstream JSON keys to sink field names. One
// generic builder routine consumes those tables, so categories differ in data,
// not logic. Keys absent from a table are still captured when they hold
// numeric values, unless listed in the ignored-key set; this lets newly added
// upstream fields flow through without a code change.
//
// Timestamp policy:
//   - Daily summary categories stamp every point at local midnight of the
//     reference day, second precision.
//   - Continuous readings (heart rate) stamp each point at its native
//     instant, millisecond precision.
//   - Per-session categories stamp at the session start and carry identifying
//     tags so points for the same day do not collide.
//
// Builders never fail: a value that cannot be coerced to a number is dropped
// and logged, and a record with no usable fields yields zero points.
package points
