package points

import (
	"strconv"
	"time"
)

// sessionTimeLayout is the timestamp format used by the activities endpoint.
const sessionTimeLayout = "2006-01-02 15:04:05"

// Session is the identifying metadata of one activity session, extracted
// from the day's session list. Sub-category builders stamp their points at
// the session start and tag them with this metadata so points for the same
// day do not collide.
type Session struct {
	ID    string
	Type  string
	Name  string
	Start time.Time
}

// tags returns the common tag set for per-session points, optionally
// extended with a category-specific dimension (split index, zone number).
func (s Session) tags(extra ...Tag) []Tag {
	tags := []Tag{
		{Key: "type", Value: s.Type},
		{Key: "name", Value: s.Name},
		{Key: "activity_id", Value: s.ID},
	}
	return append(tags, extra...)
}

// Sessions extracts session metadata from the activities list response.
// Entries without an id or a parseable start time are skipped.
func Sessions(raw any) []Session {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	var sessions []Session
	for _, entry := range list {
		rec := AsRecord(entry)
		if rec == nil {
			continue
		}

		id := sessionID(rec)
		if id == "" {
			continue
		}
		start, ok := sessionStart(rec)
		if !ok {
			continue
		}

		typ, ok := rec.Sub("activityType").String("typeKey")
		if !ok {
			typ = "unknown"
		}
		name, _ := rec.String("activityName")

		sessions = append(sessions, Session{
			ID:    id,
			Type:  typ,
			Name:  name,
			Start: start,
		})
	}
	return sessions
}

// sessionID returns the activity id as a string. JSON decodes numeric ids
// as float64, so format without a fractional part.
func sessionID(rec Record) string {
	v, ok := rec.Value("activityId")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	default:
		return ""
	}
}

// sessionStart parses the session start instant, preferring local time.
func sessionStart(rec Record) (time.Time, bool) {
	ts, ok := rec.String("startTimeLocal")
	if !ok {
		if ts, ok = rec.String("startTimeGMT"); !ok {
			return time.Time{}, false
		}
	}
	t, err := time.ParseInLocation(sessionTimeLayout, ts, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Activities builds one point per activity session from the day's session
// list, tagged by activity type and name and stamped at the session start.
// Sessions with no numeric fields produce no point.
func (b *Builder) Activities(raw any, _ time.Time) []Point {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	var pts []Point
	for _, entry := range list {
		rec := AsRecord(entry)
		if rec == nil {
			continue
		}
		start, ok := sessionStart(rec)
		if !ok {
			continue
		}
		typ, ok := rec.Sub("activityType").String("typeKey")
		if !ok {
			typ = "unknown"
		}
		name, _ := rec.String("activityName")

		fields := b.declaredFields("activity", rec, activityFields)
		if len(fields) == 0 {
			continue
		}

		pts = append(pts, Point{
			Measurement: "activity",
			Tags: []Tag{
				{Key: "type", Value: typ},
				{Key: "name", Value: name},
			},
			Fields:    fields,
			Time:      start,
			Precision: PrecisionSecond,
		})
	}
	return pts
}

// ActivityDetail builds a point from the enriched per-activity endpoint:
// training effect, performance condition, running dynamics, and power
// metrics not present in the session list. The summary may live under
// summaryDTO or at the top level.
func (b *Builder) ActivityDetail(raw any, s Session) []Point {
	rec := AsRecord(raw)
	if rec == nil {
		return nil
	}
	summary := rec.Sub("summaryDTO")
	if summary == nil {
		summary = rec
	}

	fields := b.declaredFields("activity_detail", summary, activityDetailFields)
	if len(fields) == 0 {
		return nil
	}

	return []Point{{
		Measurement: "activity_detail",
		Tags:        s.tags(),
		Fields:      fields,
		Time:        s.Start,
		Precision:   PrecisionSecond,
	}}
}

// ActivitySplits builds one point per split/lap, tagged with the 1-based
// split number.
func (b *Builder) ActivitySplits(raw any, s Session) []Point {
	rec := AsRecord(raw)
	if rec == nil {
		return nil
	}
	laps := rec.List("lapDTOs")
	if laps == nil {
		laps = rec.List("splitSummaries")
	}

	var pts []Point
	for i, lap := range laps {
		lapRec := AsRecord(lap)
		if lapRec == nil {
			continue
		}
		fields := b.declaredFields("activity_split", lapRec, activitySplitFields)
		if len(fields) == 0 {
			continue
		}
		pts = append(pts, Point{
			Measurement: "activity_split",
			Tags:        s.tags(Tag{Key: "split_num", Value: strconv.Itoa(i + 1)}),
			Fields:      fields,
			Time:        s.Start,
			Precision:   PrecisionSecond,
		})
	}
	return pts
}

// ActivityHRZones builds one point per heart-rate zone with time-in-zone and
// zone boundaries. The zone list may arrive bare or wrapped under
// hrTimeInZones / heartRateZones.
func (b *Builder) ActivityHRZones(raw any, s Session) []Point {
	zones, ok := raw.([]any)
	if !ok {
		rec := AsRecord(raw)
		if rec == nil {
			return nil
		}
		zones = rec.List("hrTimeInZones")
		if zones == nil {
			zones = rec.List("heartRateZones")
		}
	}

	var pts []Point
	for _, zone := range zones {
		zoneRec := AsRecord(zone)
		if zoneRec == nil {
			continue
		}
		num, ok := zoneRec.Value("zoneNumber")
		if !ok {
			if num, ok = zoneRec.Value("zone"); !ok {
				continue
			}
		}
		zoneNum, ok := Float(num)
		if !ok {
			continue
		}

		fields := b.declaredFields("activity_hr_zone", zoneRec, activityHRZoneFields)
		if len(fields) == 0 {
			continue
		}
		pts = append(pts, Point{
			Measurement: "activity_hr_zone",
			Tags:        s.tags(Tag{Key: "zone", Value: strconv.Itoa(int(zoneNum))}),
			Fields:      fields,
			Time:        s.Start,
			Precision:   PrecisionSecond,
		})
	}
	return pts
}

// ActivityWeather builds a point from the weather conditions recorded for an
// outdoor activity. Indoor sessions typically have none.
func (b *Builder) ActivityWeather(raw any, s Session) []Point {
	rec := AsRecord(raw)
	if rec == nil {
		return nil
	}

	fields := b.declaredFields("activity_weather", rec, activityWeatherFields)
	if len(fields) == 0 {
		return nil
	}

	return []Point{{
		Measurement: "activity_weather",
		Tags:        s.tags(),
		Fields:      fields,
		Time:        s.Start,
		Precision:   PrecisionSecond,
	}}
}

// ActivityTrack builds one point per GPS sample from the high-resolution
// activity details. The metricDescriptors array maps metric keys to
// positions in each sample's metrics array; directLatitude/directLongitude
// are required, and any other numeric metric at the sample is captured
// alongside them. Points are tagged with the sample index so they do not
// collide.
func (b *Builder) ActivityTrack(raw any, s Session) []Point {
	rec := AsRecord(raw)
	if rec == nil {
		return nil
	}
	descriptors := rec.List("metricDescriptors")
	samples := rec.List("activityDetailMetrics")
	if descriptors == nil || samples == nil {
		return nil
	}

	keyToIdx := make(map[string]int, len(descriptors))
	for _, d := range descriptors {
		dRec := AsRecord(d)
		key, ok := dRec.String("key")
		if !ok {
			continue
		}
		idx, ok := Float(dRec["metricsIndex"])
		if !ok {
			continue
		}
		keyToIdx[key] = int(idx)
	}

	latIdx, latOK := keyToIdx["directLatitude"]
	lonIdx, lonOK := keyToIdx["directLongitude"]
	if !latOK || !lonOK {
		return nil
	}

	var pts []Point
	for i, sample := range samples {
		metrics := AsRecord(sample).List("metrics")
		if metrics == nil || latIdx >= len(metrics) || lonIdx >= len(metrics) {
			continue
		}

		lat, ok := b.coerce(metrics[latIdx], "directLatitude", "activity_track")
		if !ok {
			continue
		}
		lon, ok := b.coerce(metrics[lonIdx], "directLongitude", "activity_track")
		if !ok {
			continue
		}

		fields := map[string]float64{"lat": lat, "lon": lon}
		for key, idx := range keyToIdx {
			if key == "directLatitude" || key == "directLongitude" {
				continue
			}
			if idx >= len(metrics) || metrics[idx] == nil {
				continue
			}
			if f, ok := b.coerce(metrics[idx], key, "activity_track"); ok {
				fields[key] = f
			}
		}

		pts = append(pts, Point{
			Measurement: "activity_track",
			Tags:        s.tags(Tag{Key: "point_idx", Value: strconv.Itoa(i)}),
			Fields:      fields,
			Time:        s.Start,
			Precision:   PrecisionSecond,
		})
	}
	return pts
}
