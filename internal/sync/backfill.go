package sync

import (
	"context"
	"time"

	"github.com/catgar/catgar/internal/infrastructure/logging"
)

// Prober answers whether a given calendar day has any upstream data. The
// check must be cheap; the locator may issue O(log n) probes over a
// multi-year range.
type Prober interface {
	HasData(ctx context.Context, day time.Time) bool
}

// FindOldest locates the oldest date with data in the closed range
// [earliest, latest] by binary search on the day offset from earliest.
//
// The search assumes monotonic availability: once upstream history begins,
// it continues without gaps through latest. Real account history can in
// principle have holes, in which case the result is the start of the most
// recent contiguous stretch rather than the true first record. That
// approximation is accepted; a linear scan over years of history would cost
// thousands of probes.
//
// Probe failures of any kind read as "no data", so the search converges on
// a conservative (later) date rather than erroring out.
//
// Parameters:
//   - ctx: Context passed through to each probe
//   - p: Presence probe
//   - earliest: Oldest candidate day (inclusive)
//   - latest: Newest candidate day (inclusive)
//   - log: Logger for search progress
//
// Returns:
//   - time.Time: Oldest day with data; latest when no day in range has any
func FindOldest(ctx context.Context, p Prober, earliest, latest time.Time, log *logging.Logger) time.Time {
	log = log.With("component", "backfill")

	if !earliest.Before(latest) {
		return earliest
	}

	// Data at the very start means there is no boundary to search for.
	if p.HasData(ctx, earliest) {
		log.Debug("earliest candidate already has data", "day", earliest.Format(dayFormat))
		return earliest
	}

	// No data even at the newest day: nothing to backfill.
	if !p.HasData(ctx, latest) {
		log.Debug("no data found in range", "latest", latest.Format(dayFormat))
		return latest
	}

	// Invariant: earliest+low has no data, earliest+high has data.
	low := 0
	high := daysBetween(earliest, latest)

	for high-low > 1 {
		mid := (low + high) / 2
		day := earliest.AddDate(0, 0, mid)
		if p.HasData(ctx, day) {
			high = mid
			log.Debug("probe positive", "day", day.Format(dayFormat))
		} else {
			low = mid
			log.Debug("probe negative", "day", day.Format(dayFormat))
		}
	}

	oldest := earliest.AddDate(0, 0, high)
	log.Info("oldest day with data located", "day", oldest.Format(dayFormat))
	return oldest
}

// daysBetween counts calendar days from a to b. Both are normalized to UTC
// dates first: local midnights on either side of a daylight-saving change are
// 23 or 25 hours apart, and dividing that duration by 24 would miscount.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
