package points

// FieldSpec maps one upstream JSON key to a sink field name. An empty Field
// marks a key that is known but must not become a numeric field (strings,
// nested objects handled elsewhere); it is suppressed from extra-field
// discovery as well.
type FieldSpec struct {
	Key   string
	Field string
}

// DefaultIgnoredKeys returns the process-wide set of upstream keys that are
// metadata, timestamps, or strings and must never be promoted to a numeric
// field by extra-field discovery. The set is built once at startup and
// treated as read-only.
func DefaultIgnoredKeys() map[string]struct{} {
	keys := []string{
		"calendarDate", "startTimestampGMT", "endTimestampGMT",
		"startTimestampLocal", "endTimestampLocal",
		"userProfilePK", "startOfDayGMT", "startOfDayLocal",
		"userDailySummaryId",
		// Wellness / daily-stats timestamp and string fields
		"wellnessStartTimeGmt", "wellnessStartTimeLocal",
		"wellnessEndTimeGmt", "wellnessEndTimeLocal",
		"source", "stressQualifier",
		// SpO2 / respiration timestamp fields
		"latestSpo2ReadingTimeGmt", "latestSpo2ReadingTimeLocal",
		"latestRespirationTimeGMT",
		"latestSpO2TimestampGMT", "latestSpO2TimestampLocal",
		// Sleep-related timestamp fields
		"tomorrowSleepStartTimestampGMT", "tomorrowSleepEndTimestampGMT",
		"tomorrowSleepStartTimestampLocal", "tomorrowSleepEndTimestampLocal",
		// Body composition date fields
		"startDate", "endDate",
	}

	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Declared field tables, one per category. Order is significant: builders
// iterate these slices top to bottom so emitted point lists are stable.

var dailyStatsFields = []FieldSpec{
	{"totalSteps", "steps"},
	{"totalDistanceMeters", "distance_meters"},
	{"activeKilocalories", "active_kcal"},
	{"totalKilocalories", "total_kcal"},
	{"restingHeartRate", "resting_hr"},
	{"maxHeartRate", "max_hr"},
	{"minHeartRate", "min_hr"},
	{"averageHeartRate", "avg_hr"},
	{"moderateIntensityMinutes", "moderate_intensity_min"},
	{"vigorousIntensityMinutes", "vigorous_intensity_min"},
	{"floorsAscended", "floors_ascended"},
	{"floorsDescended", "floors_descended"},
	{"averageStressLevel", "avg_stress"},
	{"maxStressLevel", "max_stress"},
	{"bodyBatteryChargedValue", "body_battery_charged"},
	{"bodyBatteryDrainedValue", "body_battery_drained"},
	{"bodyBatteryHighestValue", "body_battery_high"},
	{"bodyBatteryLowestValue", "body_battery_low"},
}

var sleepFields = []FieldSpec{
	{"sleepTimeSeconds", "sleep_time_sec"},
	{"deepSleepSeconds", "deep_sleep_sec"},
	{"lightSleepSeconds", "light_sleep_sec"},
	{"remSleepSeconds", "rem_sleep_sec"},
	{"awakeSleepSeconds", "awake_sec"},
	{"averageSpO2Value", "avg_spo2"},
	{"lowestSpO2Value", "lowest_spo2"},
	{"averageRespirationValue", "avg_respiration"},
	{"lowestRespirationValue", "lowest_respiration"},
	{"highestRespirationValue", "highest_respiration"},
	{"averageSpO2HRSleep", "avg_hr_sleep"},
	{"sleepScores", ""}, // nested object, handled separately
}

// sleepScoreKeys are the sub-keys of the sleepScores block that are
// flattened into score_<key> fields. Each may be a bare number or a
// {"value": N} wrapper.
var sleepScoreKeys = []string{"overall", "totalDuration", "stress", "revitalizationScore"}

var activityFields = []FieldSpec{
	{"distance", "distance_meters"},
	{"duration", "duration_sec"},
	{"elapsedDuration", "elapsed_sec"},
	{"movingDuration", "moving_sec"},
	{"averageHR", "avg_hr"},
	{"maxHR", "max_hr"},
	{"calories", "calories"},
	{"averageSpeed", "avg_speed"},
	{"maxSpeed", "max_speed"},
	{"elevationGain", "elevation_gain"},
	{"elevationLoss", "elevation_loss"},
	{"averageRunningCadenceInStepsPerMinute", "avg_cadence"},
	{"steps", "steps"},
	{"vO2MaxValue", "vo2max"},
	{"avgPower", "avg_power"},
	{"maxPower", "max_power"},
	{"trainingEffectLabel", ""},
}

var activityDetailFields = []FieldSpec{
	{"trainingEffect", "training_effect_aerobic"},
	{"anaerobicTrainingEffect", "training_effect_anaerobic"},
	{"aerobicTrainingEffectMessage", ""},
	{"anaerobicTrainingEffectMessage", ""},
	{"performanceCondition", "performance_condition"},
	{"lactateThreshold", "lactate_threshold"},
	{"normalizedPower", "normalized_power"},
	{"groundContactTime", "ground_contact_time"},
	{"groundContactBalanceLeft", "ground_contact_balance_left"},
	{"strideLength", "stride_length"},
	{"verticalOscillation", "vertical_oscillation"},
	{"verticalRatio", "vertical_ratio"},
	{"trainingStressScore", "training_stress_score"},
	{"intensityFactor", "intensity_factor"},
	{"functionalThresholdPower", "ftp"},
	{"minTemperature", "min_temperature"},
	{"maxTemperature", "max_temperature"},
	{"minElevation", "min_elevation"},
	{"maxElevation", "max_elevation"},
	{"maxRunCadence", "max_cadence"},
	{"maxBikeCadence", "max_bike_cadence"},
	{"lapCount", "lap_count"},
	{"waterEstimated", "water_estimated_ml"},
	{"directWorkoutFeel", ""},
	{"directWorkoutRpe", ""},
}

var activitySplitFields = []FieldSpec{
	{"distance", "distance_meters"},
	{"duration", "duration_sec"},
	{"movingDuration", "moving_sec"},
	{"averageHR", "avg_hr"},
	{"maxHR", "max_hr"},
	{"averageSpeed", "avg_speed"},
	{"maxSpeed", "max_speed"},
	{"calories", "calories"},
	{"elevationGain", "elevation_gain"},
	{"elevationLoss", "elevation_loss"},
	{"averageRunCadence", "avg_cadence"},
	{"maxRunCadence", "max_cadence"},
	{"averagePower", "avg_power"},
	{"maxPower", "max_power"},
	{"startLatitude", "start_lat"},
	{"startLongitude", "start_lon"},
	{"endLatitude", "end_lat"},
	{"endLongitude", "end_lon"},
	{"totalExerciseReps", "total_reps"},
	{"messageIndex", ""},
}

var activityHRZoneFields = []FieldSpec{
	{"secsInZone", "secs_in_zone"},
	{"zoneLowBoundary", "zone_low_bpm"},
	{"zoneHighBoundary", "zone_high_bpm"},
}

var activityWeatherFields = []FieldSpec{
	{"temperature", "temperature_c"},
	{"apparentTemperature", "feels_like_c"},
	{"dewPoint", "dew_point_c"},
	{"relativeHumidity", "humidity_pct"},
	{"windDirection", "wind_direction_deg"},
	{"windSpeed", "wind_speed_mps"},
	{"windGust", "wind_gust_mps"},
	{"weatherTypeDTO", ""},
}

var bodyCompositionFields = []FieldSpec{
	{"weight", "weight_grams"},
	{"bmi", "bmi"},
	{"bodyFat", "body_fat_pct"},
	{"bodyWater", "body_water_pct"},
	{"muscleMass", "muscle_mass_grams"},
	{"skeletalMuscleMass", "skeletal_muscle_mass_grams"},
	{"boneMass", "bone_mass_grams"},
	{"metabolicAge", "metabolic_age"},
	{"visceralFat", "visceral_fat"},
	{"weightChange", "weight_change"},
	{"physiqueRating", "physique_rating"},
}

var respirationFields = []FieldSpec{
	{"avgWakingRespirationValue", "avg_waking_respiration"},
	{"highestRespirationValue", "highest_respiration"},
	{"lowestRespirationValue", "lowest_respiration"},
	{"avgSleepRespirationValue", "avg_sleep_respiration"},
}

// SpO2 fields keep their upstream names in the sink.
var spo2Fields = []FieldSpec{
	{"averageSpO2", "averageSpO2"},
	{"lowestSpO2", "lowestSpO2"},
	{"latestSpO2", "latestSpO2"},
}

var stressFields = []FieldSpec{
	{"avgStressLevel", "avg_stress"},
	{"maxStressLevel", "max_stress"},
	{"totalStressDuration", "total_stress_duration"},
	{"lowStressDuration", "low_stress_duration"},
	{"mediumStressDuration", "medium_stress_duration"},
	{"highStressDuration", "high_stress_duration"},
	{"totalRestStressDuration", "rest_stress_duration"},
}

var hrvFields = []FieldSpec{
	{"weeklyAvg", "weekly_avg"},
	{"lastNight", "last_night"},
	{"lastNightAvg", "last_night_avg"},
	{"lastNight5MinHigh", "last_night_5min_high"},
	{"baseline", ""}, // nested, flattened to baseline_<key>
	{"status", ""},   // string
}

// hrvBaselineKeys are the sub-keys of the HRV baseline block flattened into
// baseline_<key> fields.
var hrvBaselineKeys = []string{"lowUpper", "balancedLow", "balancedUpper"}

var hydrationFields = []FieldSpec{
	{"valueInML", "intake_ml"},
	{"goalInML", "goal_ml"},
	{"sweatLossInML", "sweat_loss_ml"},
}

var trainingReadinessFields = []FieldSpec{
	{"score", "score"},
	{"sleepScore", "sleep_score"},
	{"recoveryTime", "recovery_time"},
	{"acuteLoad", "acute_load"},
	{"hrvStatus", "hrv_status"},
	{"trainingLoad", "training_load"},
}

var trainingStatusFields = []FieldSpec{
	{"trainingLoadBalance", "load_balance"},
	{"ltTimestamp", "lt_timestamp"},
	{"vo2MaxValue", "vo2max"},
	{"loadFocus", "load_focus"},
	{"lactateThresholdHeartRate", "lt_heart_rate"},
	{"lactateThresholdSpeed", "lt_speed"},
}

var maxMetricsFields = []FieldSpec{
	{"vo2MaxPreciseValue", "vo2max_precise"},
	{"vo2MaxValue", "vo2max"},
	{"fitnessAge", "fitness_age"},
	{"fitnessAgeDescription", ""},
}

var enduranceScoreFields = []FieldSpec{
	{"overallScore", "overall_score"},
	{"enduranceScore", "endurance_score"},
}

var hillScoreFields = []FieldSpec{
	{"overallScore", "overall_score"},
	{"hillScore", "hill_score"},
}

var fitnessAgeFields = []FieldSpec{
	{"fitnessAge", "fitness_age"},
	{"chronologicalAge", "chronological_age"},
	{"bmi", "bmi"},
	{"healthyBmiTop", "healthy_bmi_top"},
	{"healthyBmiBottom", "healthy_bmi_bottom"},
	{"vigorousMinutes", "vigorous_minutes"},
	{"vigorousMinutesGoal", "vigorous_minutes_goal"},
	{"restingHr", "resting_hr"},
	{"restingHrGoal", "resting_hr_goal"},
}

var floorsFields = []FieldSpec{
	{"floorsAscended", "floors_ascended"},
	{"floorsDescended", "floors_descended"},
	{"floorsAscendedGoal", "floors_ascended_goal"},
}

// knownKeys returns the set of declared upstream keys for a field table,
// including suppressed ones, plus any additional keys the caller wants
// excluded from extra-field discovery.
func knownKeys(specs []FieldSpec, extra ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(specs)+len(extra))
	for _, s := range specs {
		set[s.Key] = struct{}{}
	}
	for _, k := range extra {
		set[k] = struct{}{}
	}
	return set
}
