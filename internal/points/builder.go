package points

import (
	"sort"
	"time"

	"github.com/catgar/catgar/internal/infrastructure/logging"
)

// Builder converts raw upstream records into measurement points.
//
// The logger and ignored-key set are injected once at construction and never
// mutated afterwards, so a single Builder is safe to share across categories.
type Builder struct {
	log     *logging.Logger
	ignored map[string]struct{}
}

// NewBuilder creates a Builder.
//
// Parameters:
//   - log: logger for coercion warnings and discovery debug messages
//   - ignored: upstream keys excluded from extra-field discovery; pass
//     DefaultIgnoredKeys() unless a test needs a custom set
func NewBuilder(log *logging.Logger, ignored map[string]struct{}) *Builder {
	if ignored == nil {
		ignored = DefaultIgnoredKeys()
	}
	return &Builder{log: log, ignored: ignored}
}

// coerce converts a raw value to float64, logging a warning on failure
// instead of propagating an error. The bool reports success.
func (b *Builder) coerce(v any, key, measurement string) (float64, bool) {
	f, ok := Float(v)
	if !ok {
		b.log.Warn("could not convert value to float, skipping field",
			"key", key,
			"measurement", measurement,
		)
		return 0, false
	}
	return f, true
}

// declaredPoints emits one single-field point per declared key present in
// rec, in field-table order. Used by daily summary categories where each
// field becomes its own point sharing (measurement, timestamp) identity.
func (b *Builder) declaredPoints(measurement string, rec Record, specs []FieldSpec, ts time.Time) []Point {
	var pts []Point
	for _, spec := range specs {
		if spec.Field == "" {
			continue
		}
		v, ok := rec.Value(spec.Key)
		if !ok {
			continue
		}
		f, ok := b.coerce(v, spec.Key, measurement)
		if !ok {
			continue
		}
		pts = append(pts, newFieldPoint(measurement, spec.Field, f, ts))
	}
	return pts
}

// extraFields scans rec for keys that are neither declared nor ignored and
// coerce to numbers, returning them under their raw upstream names in sorted
// order. This is the generic discovery rule that keeps new upstream fields
// flowing without a code change.
func (b *Builder) extraFields(rec Record, known map[string]struct{}, measurement string) []FieldSpec {
	if rec == nil {
		return nil
	}

	var extras []FieldSpec
	for key, v := range rec {
		if _, ok := known[key]; ok {
			continue
		}
		if _, ok := b.ignored[key]; ok {
			continue
		}
		if v == nil {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		// A scalar unknown key that fails coercion warns so operators can
		// grow the field tables or the ignored set.
		if _, ok := b.coerce(v, key, measurement); !ok {
			continue
		}
		b.log.Debug("discovered extra numeric field",
			"key", key,
			"measurement", measurement,
		)
		extras = append(extras, FieldSpec{Key: key, Field: key})
	}

	// Map iteration order is random; sort so built lists are deterministic.
	sort.Slice(extras, func(i, j int) bool { return extras[i].Key < extras[j].Key })
	return extras
}

// extraPoints emits one single-field point per discovered extra key.
func (b *Builder) extraPoints(measurement string, rec Record, known map[string]struct{}, ts time.Time) []Point {
	var pts []Point
	for _, spec := range b.extraFields(rec, known, measurement) {
		f, ok := Float(rec[spec.Key])
		if !ok {
			continue
		}
		pts = append(pts, newFieldPoint(measurement, spec.Key, f, ts))
	}
	return pts
}

// declaredFields collects declared keys into a single field map, in
// field-table order. Used by per-session categories that emit one
// multi-field point per record.
func (b *Builder) declaredFields(measurement string, rec Record, specs []FieldSpec) map[string]float64 {
	fields := make(map[string]float64)
	for _, spec := range specs {
		if spec.Field == "" {
			continue
		}
		v, ok := rec.Value(spec.Key)
		if !ok {
			continue
		}
		f, ok := b.coerce(v, spec.Key, measurement)
		if !ok {
			continue
		}
		fields[spec.Field] = f
	}
	return fields
}
