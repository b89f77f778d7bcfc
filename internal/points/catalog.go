package points

// CatalogEntry describes one measurement for human-readable catalog output.
type CatalogEntry struct {
	Measurement string
	Description string
	Cadence     string
	Tags        []string
	Fields      []FieldSpec
}

// Catalog returns every measurement the builders can emit, with its declared
// field mappings. Extra-field discovery means real data may carry more
// fields than listed here; the catalog covers the stable, renamed core.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{"daily_stats", "Daily activity summary: steps, calories, heart rate, stress, body battery", "daily", nil, dailyStatsFields},
		{"sleep", "Nightly sleep stages, pulse ox and respiration during sleep, sleep scores", "daily", nil, sleepFields},
		{"heart_rate", "Intraday heart rate samples", "intraday", nil, []FieldSpec{{"heartRateValues", "bpm"}}},
		{"body_composition", "Weight and body composition measurements", "daily", nil, bodyCompositionFields},
		{"respiration", "Daily respiration rate summary", "daily", nil, respirationFields},
		{"spo2", "Daily pulse ox summary", "daily", nil, spo2Fields},
		{"stress", "Daily stress level durations", "daily", nil, stressFields},
		{"hrv", "Heart rate variability with personal baseline", "daily", nil, hrvFields},
		{"hydration", "Hydration intake against goal", "daily", nil, hydrationFields},
		{"training_readiness", "Training readiness score and inputs", "daily", nil, trainingReadinessFields},
		{"training_status", "Aggregated training status and lactate threshold", "daily", nil, trainingStatusFields},
		{"max_metrics", "VO2 max estimates per sport", "daily", []string{"sport"}, maxMetricsFields},
		{"endurance_score", "Endurance score", "daily", nil, enduranceScoreFields},
		{"hill_score", "Hill running score", "daily", nil, hillScoreFields},
		{"fitness_age", "Estimated fitness age", "daily", nil, fitnessAgeFields},
		{"floors", "Floors climbed and descended", "daily", nil, floorsFields},
		{"activity", "Activity session summaries", "per-session", []string{"type", "name"}, activityFields},
		{"activity_detail", "Extended per-session metrics: training effect, running dynamics, power", "per-session", []string{"type", "name", "activity_id"}, activityDetailFields},
		{"activity_split", "Per-lap/split metrics within a session", "per-session", []string{"type", "name", "activity_id", "split_num"}, activitySplitFields},
		{"activity_hr_zone", "Time in each heart rate zone per session", "per-session", []string{"type", "name", "activity_id", "zone"}, activityHRZoneFields},
		{"activity_weather", "Recorded weather conditions for outdoor sessions", "per-session", []string{"type", "name", "activity_id"}, activityWeatherFields},
		{"activity_track", "GPS/sensor sample stream per session", "per-session", []string{"type", "name", "activity_id", "point_idx"}, []FieldSpec{{"directLatitude", "lat"}, {"directLongitude", "lon"}}},
	}
}
