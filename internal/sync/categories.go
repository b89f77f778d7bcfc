package sync

import (
	"context"
	"time"

	"github.com/catgar/catgar/internal/points"
)

// Fetcher is the upstream capability the engine needs: one fetch per data
// category plus the per-session detail endpoints. The Garmin client
// satisfies it; tests substitute fakes.
type Fetcher interface {
	Stats(ctx context.Context, day time.Time) (any, error)
	Sleep(ctx context.Context, day time.Time) (any, error)
	HeartRate(ctx context.Context, day time.Time) (any, error)
	BodyComposition(ctx context.Context, day time.Time) (any, error)
	Respiration(ctx context.Context, day time.Time) (any, error)
	SpO2(ctx context.Context, day time.Time) (any, error)
	Stress(ctx context.Context, day time.Time) (any, error)
	HRV(ctx context.Context, day time.Time) (any, error)
	Hydration(ctx context.Context, day time.Time) (any, error)
	TrainingReadiness(ctx context.Context, day time.Time) (any, error)
	TrainingStatus(ctx context.Context, day time.Time) (any, error)
	MaxMetrics(ctx context.Context, day time.Time) (any, error)
	EnduranceScore(ctx context.Context, day time.Time) (any, error)
	HillScore(ctx context.Context, day time.Time) (any, error)
	FitnessAge(ctx context.Context, day time.Time) (any, error)
	Floors(ctx context.Context, day time.Time) (any, error)
	Activities(ctx context.Context, day time.Time) (any, error)

	ActivityDetail(ctx context.Context, activityID string) (any, error)
	ActivitySplits(ctx context.Context, activityID string) (any, error)
	ActivityHRZones(ctx context.Context, activityID string) (any, error)
	ActivityWeather(ctx context.Context, activityID string) (any, error)
	ActivityTrack(ctx context.Context, activityID string) (any, error)
}

// Category pairs an upstream fetch with the point builder that shapes its
// payload. The ordered registry below drives the orchestrator; adding a new
// daily category means adding one entry here, nothing else.
type Category struct {
	Name  string
	Fetch func(ctx context.Context, f Fetcher, day time.Time) (any, error)
	Build func(b *points.Builder, raw any, day time.Time) []points.Point
}

// Registry returns the ordered list of daily categories.
func Registry() []Category {
	return []Category{
		{"stats", fetchWith(Fetcher.Stats), (*points.Builder).DailyStats},
		{"sleep", fetchWith(Fetcher.Sleep), (*points.Builder).Sleep},
		{"heart_rate", fetchWith(Fetcher.HeartRate), (*points.Builder).HeartRate},
		{"body_composition", fetchWith(Fetcher.BodyComposition), (*points.Builder).BodyComposition},
		{"respiration", fetchWith(Fetcher.Respiration), (*points.Builder).Respiration},
		{"spo2", fetchWith(Fetcher.SpO2), (*points.Builder).SpO2},
		{"stress", fetchWith(Fetcher.Stress), (*points.Builder).Stress},
		{"hrv", fetchWith(Fetcher.HRV), (*points.Builder).HRV},
		{"hydration", fetchWith(Fetcher.Hydration), (*points.Builder).Hydration},
		{"training_readiness", fetchWith(Fetcher.TrainingReadiness), (*points.Builder).TrainingReadiness},
		{"training_status", fetchWith(Fetcher.TrainingStatus), (*points.Builder).TrainingStatus},
		{"max_metrics", fetchWith(Fetcher.MaxMetrics), (*points.Builder).MaxMetrics},
		{"endurance_score", fetchWith(Fetcher.EnduranceScore), (*points.Builder).EnduranceScore},
		{"hill_score", fetchWith(Fetcher.HillScore), (*points.Builder).HillScore},
		{"fitness_age", fetchWith(Fetcher.FitnessAge), (*points.Builder).FitnessAge},
		{"floors", fetchWith(Fetcher.Floors), (*points.Builder).Floors},
		{"activities", fetchWith(Fetcher.Activities), (*points.Builder).Activities},
	}
}

// fetchWith adapts a Fetcher method expression to the Category fetch shape.
func fetchWith(m func(Fetcher, context.Context, time.Time) (any, error)) func(context.Context, Fetcher, time.Time) (any, error) {
	return func(ctx context.Context, f Fetcher, day time.Time) (any, error) {
		return m(f, ctx, day)
	}
}

// sessionCategory pairs a per-session fetch with its point builder. These
// run once per discovered activity session; absence is routine (indoor
// sessions have no weather, treadmill runs no GPS track).
type sessionCategory struct {
	Name  string
	Fetch func(ctx context.Context, f Fetcher, activityID string) (any, error)
	Build func(b *points.Builder, raw any, s points.Session) []points.Point
}

// sessionRegistry returns the ordered list of per-session sub-categories.
func sessionRegistry() []sessionCategory {
	return []sessionCategory{
		{"activity_detail", fetchByID(Fetcher.ActivityDetail), (*points.Builder).ActivityDetail},
		{"activity_splits", fetchByID(Fetcher.ActivitySplits), (*points.Builder).ActivitySplits},
		{"activity_hr_zones", fetchByID(Fetcher.ActivityHRZones), (*points.Builder).ActivityHRZones},
		{"activity_weather", fetchByID(Fetcher.ActivityWeather), (*points.Builder).ActivityWeather},
		{"activity_track", fetchByID(Fetcher.ActivityTrack), (*points.Builder).ActivityTrack},
	}
}

func fetchByID(m func(Fetcher, context.Context, string) (any, error)) func(context.Context, Fetcher, string) (any, error) {
	return func(ctx context.Context, f Fetcher, id string) (any, error) {
		return m(f, ctx, id)
	}
}
