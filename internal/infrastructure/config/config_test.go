package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setRequiredEnv sets the minimal environment for a valid config.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GARMIN_EMAIL", "user@example.com")
	t.Setenv("GARMIN_PASSWORD", "secret")
	t.Setenv("INFLUXDB_TOKEN", "token")
	t.Setenv("INFLUXDB_ORG", "home")
}

// TestLoadEnvironmentOnly verifies the env-only path a scheduled job uses.
func TestLoadEnvironmentOnly(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Garmin.Email != "user@example.com" {
		t.Errorf("Garmin.Email = %q", cfg.Garmin.Email)
	}
	if cfg.InfluxDB.URL != "http://localhost:8086" {
		t.Errorf("InfluxDB.URL = %q, want default", cfg.InfluxDB.URL)
	}
	if cfg.InfluxDB.Bucket != "garmin" {
		t.Errorf("InfluxDB.Bucket = %q, want default garmin", cfg.InfluxDB.Bucket)
	}
	if cfg.Sync.BackfillMaxDays != 365*5 {
		t.Errorf("Sync.BackfillMaxDays = %d, want %d", cfg.Sync.BackfillMaxDays, 365*5)
	}
}

// TestLoadYAMLFile verifies file values override defaults and env overrides
// file values.
func TestLoadYAMLFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("INFLUXDB_BUCKET", "env-bucket")

	content := `
garmin:
  url: https://garmin.example.com
influxdb:
  bucket: file-bucket
sync:
  state_file: /var/lib/catgar/.last_sync
  backfill_max_days: 30
history:
  enabled: true
  path: /var/lib/catgar/catgar.db
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Garmin.URL != "https://garmin.example.com" {
		t.Errorf("Garmin.URL = %q, want file value", cfg.Garmin.URL)
	}
	if cfg.InfluxDB.Bucket != "env-bucket" {
		t.Errorf("InfluxDB.Bucket = %q, want env override", cfg.InfluxDB.Bucket)
	}
	if cfg.Sync.BackfillMaxDays != 30 {
		t.Errorf("Sync.BackfillMaxDays = %d, want 30", cfg.Sync.BackfillMaxDays)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true")
	}
}

// TestLoadMissingFile verifies a named but absent file is an error, unlike
// an empty path.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() error = nil, want read failure")
	}
}

// TestValidate verifies required settings are reported before any work.
func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		cfg.Garmin.Email = "user@example.com"
		cfg.Garmin.Password = "secret"
		cfg.InfluxDB.Token = "token"
		cfg.InfluxDB.Org = "home"
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"missing email", func(c *Config) { c.Garmin.Email = "" }, "garmin.email"},
		{"missing password", func(c *Config) { c.Garmin.Password = "" }, "garmin.password"},
		{"missing token", func(c *Config) { c.InfluxDB.Token = "" }, "influxdb.token"},
		{"missing org", func(c *Config) { c.InfluxDB.Org = "" }, "influxdb.org"},
		{"missing bucket", func(c *Config) { c.InfluxDB.Bucket = "" }, "influxdb.bucket"},
		{"missing state file", func(c *Config) { c.Sync.StateFile = "" }, "sync.state_file"},
		{"bad backfill days", func(c *Config) { c.Sync.BackfillMaxDays = 0 }, "backfill_max_days"},
		{"history without path", func(c *Config) { c.History.Enabled = true; c.History.Path = "" }, "history.path"},
		{"mqtt bad qos", func(c *Config) { c.MQTT.Enabled = true; c.MQTT.QoS = 3 }, "mqtt.qos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Validate() error = %q, want mention of %q", err, tt.wantSub)
			}
		})
	}
}
