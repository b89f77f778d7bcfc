package points

import (
	"encoding/json"
	"testing"
)

// TestFloat verifies numeric coercion across the value types JSON decoding
// and upstream quirks can produce.
func TestFloat(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
		ok    bool
	}{
		{"float64", 42.5, 42.5, true},
		{"float32", float32(1.5), 1.5, true},
		{"int", 7, 7, true},
		{"int64", int64(-3), -3, true},
		{"uint", uint(9), 9, true},
		{"json number", json.Number("123.25"), 123.25, true},
		{"numeric string", "58", 58, true},
		{"numeric string with spaces", " 8500 ", 8500, true},
		{"float string", "36.6", 36.6, true},
		{"bool true", true, 1, true},
		{"bool false", false, 0, true},
		{"nil", nil, 0, false},
		{"non-numeric string", "resting", 0, false},
		{"empty string", "", 0, false},
		{"object", map[string]any{"value": 1.0}, 0, false},
		{"list", []any{1.0, 2.0}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Float(tt.input)
			if ok != tt.ok {
				t.Fatalf("Float(%v) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Float(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
