package garmin

import (
	"context"
	"net/url"
	"time"

	"github.com/catgar/catgar/internal/points"
)

// Stats fetches the daily user summary (steps, calories, heart rate, stress,
// body battery) for day.
func (c *Client) Stats(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/usersummary-service/usersummary/daily?calendarDate="+day.Format(dayFormat))
}

// Sleep fetches the daily sleep summary for day.
func (c *Client) Sleep(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/wellness-service/wellness/dailySleepData?date="+day.Format(dayFormat))
}

// HeartRate fetches intraday heart rate samples for day.
func (c *Client) HeartRate(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/wellness-service/wellness/dailyHeartRate?date="+day.Format(dayFormat))
}

// BodyComposition fetches weight and body composition entries for day.
func (c *Client) BodyComposition(ctx context.Context, day time.Time) (any, error) {
	d := day.Format(dayFormat)
	return c.get(ctx, "/bodycomposition-service/bodycomposition?startDate="+d+"&endDate="+d)
}

// Respiration fetches the daily respiration summary for day.
func (c *Client) Respiration(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/wellness-service/wellness/daily/respiration/"+day.Format(dayFormat))
}

// SpO2 fetches the daily pulse-ox summary for day.
func (c *Client) SpO2(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/wellness-service/wellness/daily/spo2/"+day.Format(dayFormat))
}

// Stress fetches the daily stress summary for day.
func (c *Client) Stress(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/wellness-service/wellness/dailyStress/"+day.Format(dayFormat))
}

// HRV fetches the daily heart rate variability summary for day.
func (c *Client) HRV(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/hrv-service/hrv/"+day.Format(dayFormat))
}

// Hydration fetches the daily hydration log for day.
func (c *Client) Hydration(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/usersummary-service/usersummary/hydration/daily/"+day.Format(dayFormat))
}

// TrainingReadiness fetches the training readiness score for day.
func (c *Client) TrainingReadiness(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/metrics-service/metrics/trainingreadiness/"+day.Format(dayFormat))
}

// TrainingStatus fetches the aggregated training status for day.
func (c *Client) TrainingStatus(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/metrics-service/metrics/trainingstatus/aggregated/"+day.Format(dayFormat))
}

// MaxMetrics fetches VO2 max metrics for day.
func (c *Client) MaxMetrics(ctx context.Context, day time.Time) (any, error) {
	d := day.Format(dayFormat)
	return c.get(ctx, "/metrics-service/metrics/maxmet/daily/"+d+"/"+d)
}

// EnduranceScore fetches the endurance score for day.
func (c *Client) EnduranceScore(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/metrics-service/metrics/endurancescore?calendarDate="+day.Format(dayFormat))
}

// HillScore fetches the hill score for day.
func (c *Client) HillScore(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/metrics-service/metrics/hillscore?calendarDate="+day.Format(dayFormat))
}

// FitnessAge fetches the fitness age estimate for day.
func (c *Client) FitnessAge(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/fitnessage-service/fitnessage/"+day.Format(dayFormat))
}

// Floors fetches floors climbed/descended for day.
func (c *Client) Floors(ctx context.Context, day time.Time) (any, error) {
	return c.get(ctx, "/wellness-service/wellness/floorsChartData/daily/"+day.Format(dayFormat))
}

// Activities fetches the activity list for day.
func (c *Client) Activities(ctx context.Context, day time.Time) (any, error) {
	d := day.Format(dayFormat)
	return c.get(ctx, "/activitylist-service/activities/search/activities?startDate="+d+"&endDate="+d)
}

// ActivityDetail fetches the full summary for a single activity.
func (c *Client) ActivityDetail(ctx context.Context, activityID string) (any, error) {
	return c.get(ctx, "/activity-service/activity/"+url.PathEscape(activityID))
}

// ActivitySplits fetches lap/split summaries for a single activity.
func (c *Client) ActivitySplits(ctx context.Context, activityID string) (any, error) {
	return c.get(ctx, "/activity-service/activity/"+url.PathEscape(activityID)+"/splits")
}

// ActivityHRZones fetches time-in-zone data for a single activity.
func (c *Client) ActivityHRZones(ctx context.Context, activityID string) (any, error) {
	return c.get(ctx, "/activity-service/activity/"+url.PathEscape(activityID)+"/hrTimeInZones")
}

// ActivityWeather fetches recorded weather conditions for a single activity.
func (c *Client) ActivityWeather(ctx context.Context, activityID string) (any, error) {
	return c.get(ctx, "/activity-service/activity/"+url.PathEscape(activityID)+"/weather")
}

// ActivityTrack fetches the GPS/sensor sample stream for a single activity.
func (c *Client) ActivityTrack(ctx context.Context, activityID string) (any, error) {
	return c.get(ctx, "/activity-service/activity/"+url.PathEscape(activityID)+"/details?maxChartSize=10000")
}

// probeFields are the daily-stats keys whose presence marks a day as having
// wellness data.
var probeFields = []string{"totalSteps", "totalDistanceMeters", "restingHeartRate"}

// HasData probes whether any wellness data exists for day.
//
// It fetches the daily stats summary and checks a few core fields. Any fetch
// error, including benign absence, reads as "no data": the backfill search
// only ever treats a day as populated when upstream proves it.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - day: Calendar day to probe
//
// Returns:
//   - bool: true if the day has at least one populated core field
func (c *Client) HasData(ctx context.Context, day time.Time) bool {
	raw, err := c.Stats(ctx, day)
	if err != nil {
		if !IsNotFound(err) {
			c.log.Debug("data probe failed, treating day as empty",
				"day", day.Format(dayFormat), "error", err)
		}
		return false
	}

	rec := points.AsRecord(raw)
	for _, key := range probeFields {
		if _, ok := rec.Value(key); ok {
			return true
		}
	}
	return false
}

// DayString formats a calendar day the way the API expects it. Exposed for
// log and error messages that must match request URLs.
func DayString(day time.Time) string {
	return day.Format(dayFormat)
}
