package points

import "time"

// Builders for daily summary categories. Each takes the decoded upstream
// response and the reference day (local midnight) and returns zero or more
// points. A missing, empty, or all-null record yields zero points: that is
// "no data", not an error.

// DailyStats builds points from the daily wellness summary.
func (b *Builder) DailyStats(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("daily_stats", rec, dailyStatsFields, day)
	pts = append(pts, b.extraPoints("daily_stats", rec, knownKeys(dailyStatsFields), day)...)
	return pts
}

// Sleep builds points from the nightly sleep summary. The summary lives
// under dailySleepDTO; sleep scores are a nested block whose entries may be
// bare numbers or {"value": N} wrappers, flattened to score_<key>.
func (b *Builder) Sleep(raw any, day time.Time) []Point {
	summary := AsRecord(raw).Sub("dailySleepDTO")
	pts := b.declaredPoints("sleep", summary, sleepFields, day)

	scores := summary.Sub("sleepScores")
	for _, key := range sleepScoreKeys {
		v, ok := scores.Value(key)
		if !ok {
			continue
		}
		if wrapped := AsRecord(v); wrapped != nil {
			v, ok = wrapped.Value("value")
			if !ok {
				continue
			}
		}
		f, ok := b.coerce(v, "score_"+key, "sleep")
		if !ok {
			continue
		}
		pts = append(pts, newFieldPoint("sleep", "score_"+key, f, day))
	}

	pts = append(pts, b.extraPoints("sleep", summary, knownKeys(sleepFields), day)...)
	return pts
}

// HeartRate builds points from continuous heart-rate readings. Each sample
// is a [timestamp_ms, bpm] pair and keeps its native instant at millisecond
// precision.
func (b *Builder) HeartRate(raw any, _ time.Time) []Point {
	entries, ok := raw.([]any)
	if !ok {
		// Some responses wrap the series in a single object.
		if rec := AsRecord(raw); rec != nil {
			entries = []any{raw}
		}
	}

	var pts []Point
	for _, entry := range entries {
		values := AsRecord(entry).List("heartRateValues")
		for _, pair := range values {
			sample, ok := pair.([]any)
			if !ok || len(sample) != 2 {
				continue
			}
			tsMS, ok := Float(sample[0])
			if !ok {
				continue
			}
			bpm, ok := Float(sample[1])
			if !ok {
				continue
			}
			pts = append(pts, Point{
				Measurement: "heart_rate",
				Fields:      map[string]float64{"bpm": bpm},
				Time:        time.UnixMilli(int64(tsMS)),
				Precision:   PrecisionMillisecond,
			})
		}
	}
	return pts
}

// BodyComposition builds points from smart-scale measurements.
func (b *Builder) BodyComposition(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("body_composition", rec, bodyCompositionFields, day)
	pts = append(pts, b.extraPoints("body_composition", rec, knownKeys(bodyCompositionFields), day)...)
	return pts
}

// Respiration builds points from the daily respiration summary.
func (b *Builder) Respiration(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("respiration", rec, respirationFields, day)
	pts = append(pts, b.extraPoints("respiration", rec, knownKeys(respirationFields), day)...)
	return pts
}

// SpO2 builds points from blood-oxygen readings. Fields keep their upstream
// names in the sink.
func (b *Builder) SpO2(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("spo2", rec, spo2Fields, day)
	pts = append(pts, b.extraPoints("spo2", rec, knownKeys(spo2Fields), day)...)
	return pts
}

// Stress builds points from the daily stress summary.
func (b *Builder) Stress(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("stress", rec, stressFields, day)
	pts = append(pts, b.extraPoints("stress", rec, knownKeys(stressFields), day)...)
	return pts
}

// HRV builds points from heart-rate-variability data. The summary may be
// nested under hrvSummary or flat; the personal baseline block is flattened
// to baseline_<key>.
func (b *Builder) HRV(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	summary := rec.Sub("hrvSummary")
	if summary == nil {
		summary = rec
	}

	pts := b.declaredPoints("hrv", summary, hrvFields, day)

	baseline := summary.Sub("baseline")
	for _, key := range hrvBaselineKeys {
		v, ok := baseline.Value(key)
		if !ok {
			continue
		}
		f, ok := b.coerce(v, "baseline_"+key, "hrv")
		if !ok {
			continue
		}
		pts = append(pts, newFieldPoint("hrv", "baseline_"+key, f, day))
	}

	pts = append(pts, b.extraPoints("hrv", summary, knownKeys(hrvFields), day)...)
	return pts
}

// Hydration builds points from manual fluid-intake tracking.
func (b *Builder) Hydration(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("hydration", rec, hydrationFields, day)
	pts = append(pts, b.extraPoints("hydration", rec, knownKeys(hydrationFields), day)...)
	return pts
}

// TrainingReadiness builds points from the daily readiness score.
func (b *Builder) TrainingReadiness(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("training_readiness", rec, trainingReadinessFields, day)
	pts = append(pts, b.extraPoints("training_readiness", rec, knownKeys(trainingReadinessFields), day)...)
	return pts
}

// TrainingStatus builds points from training load and threshold metrics.
func (b *Builder) TrainingStatus(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("training_status", rec, trainingStatusFields, day)
	pts = append(pts, b.extraPoints("training_status", rec, knownKeys(trainingStatusFields), day)...)
	return pts
}

// MaxMetrics builds points from VO2 max / fitness age estimates. The
// response may be a bare list, a {"maxMetrics": [...]} wrapper, or a single
// entry; each entry becomes one point tagged by sport.
func (b *Builder) MaxMetrics(raw any, day time.Time) []Point {
	var entries []any
	switch v := raw.(type) {
	case []any:
		entries = v
	case map[string]any:
		rec := Record(v)
		if list := rec.List("maxMetrics"); list != nil {
			entries = list
		} else {
			entries = []any{v}
		}
	default:
		return nil
	}

	var pts []Point
	for _, entry := range entries {
		rec := AsRecord(entry)
		if rec == nil {
			continue
		}

		sport, ok := rec.String("sport")
		if !ok {
			if sport, ok = rec.String("metricsType"); !ok {
				sport = "generic"
			}
		}

		known := knownKeys(maxMetricsFields, "sport", "metricsType")
		fields := b.declaredFields("max_metrics", rec, maxMetricsFields)
		for _, spec := range b.extraFields(rec, known, "max_metrics") {
			if f, ok := Float(rec[spec.Key]); ok {
				fields[spec.Key] = f
			}
		}
		if len(fields) == 0 {
			continue
		}

		pts = append(pts, Point{
			Measurement: "max_metrics",
			Tags:        []Tag{{Key: "sport", Value: sport}},
			Fields:      fields,
			Time:        day,
			Precision:   PrecisionSecond,
		})
	}
	return pts
}

// EnduranceScore builds points from the aerobic endurance score.
func (b *Builder) EnduranceScore(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("endurance_score", rec, enduranceScoreFields, day)
	pts = append(pts, b.extraPoints("endurance_score", rec, knownKeys(enduranceScoreFields), day)...)
	return pts
}

// HillScore builds points from the climbing fitness score.
func (b *Builder) HillScore(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("hill_score", rec, hillScoreFields, day)
	pts = append(pts, b.extraPoints("hill_score", rec, knownKeys(hillScoreFields), day)...)
	return pts
}

// FitnessAge builds points from the fitness age estimate.
func (b *Builder) FitnessAge(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("fitness_age", rec, fitnessAgeFields, day)
	pts = append(pts, b.extraPoints("fitness_age", rec, knownKeys(fitnessAgeFields), day)...)
	return pts
}

// Floors builds points from daily floors climbed.
func (b *Builder) Floors(raw any, day time.Time) []Point {
	rec := AsRecord(raw)
	pts := b.declaredPoints("floors", rec, floorsFields, day)
	pts = append(pts, b.extraPoints("floors", rec, knownKeys(floorsFields), day)...)
	return pts
}
