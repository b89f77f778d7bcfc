// Package garmin is a minimal Garmin Connect API client covering the
// wellness and activity endpoints catGar syncs.
//
// The client authenticates once at Connect time and then exposes one fetch
// method per data category. Every method returns the decoded JSON payload as
// loosely-typed data (map[string]any / []any); shaping it into measurement
// points is the points package's job, keeping the upstream provider an
// opaque collaborator of the sync engine.
//
// Upstream "no data for this day" responses (HTTP 404) surface as
// ErrNotFound so callers can distinguish benign absence from real failures.
package garmin
