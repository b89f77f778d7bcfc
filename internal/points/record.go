package points

// Record is a loosely-typed view over a decoded JSON object. It is the single
// boundary through which builders access upstream payloads, so malformed
// shapes degrade to "absent" instead of propagating untyped nils.
//
// A nil Record is valid: every accessor returns the zero/absent result.
type Record map[string]any

// AsRecord converts a decoded JSON value to a Record. Non-object values
// (including nil) yield a nil Record.
func AsRecord(v any) Record {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return Record(m)
}

// Value returns the raw value for key if it is present and non-nil.
func (r Record) Value(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Sub returns the nested object under key, or nil if absent or not an object.
func (r Record) Sub(key string) Record {
	v, ok := r.Value(key)
	if !ok {
		return nil
	}
	return AsRecord(v)
}

// List returns the array under key, or nil if absent or not an array.
func (r Record) List(key string) []any {
	v, ok := r.Value(key)
	if !ok {
		return nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil
	}
	return l
}

// String returns the string under key.
func (r Record) String(key string) (string, bool) {
	v, ok := r.Value(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
