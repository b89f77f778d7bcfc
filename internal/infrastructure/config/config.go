package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for catGar.
//
// Configuration is layered: hardcoded defaults, then an optional YAML file,
// then environment variables. The upstream and sink credentials use the
// plain environment names (GARMIN_EMAIL, INFLUXDB_TOKEN, ...) so the tool
// works with nothing but environment variables, as a scheduled job would
// run it.
type Config struct {
	Garmin   GarminConfig   `yaml:"garmin"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Sync     SyncConfig     `yaml:"sync"`
	History  HistoryConfig  `yaml:"history"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GarminConfig contains Garmin Connect credentials and endpoint settings.
type GarminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`

	// URL is the Garmin Connect base URL. Overridable for testing.
	URL string `yaml:"url"`
}

// InfluxDBConfig contains InfluxDB v2 connection settings.
type InfluxDBConfig struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

// SyncConfig contains sync engine settings.
type SyncConfig struct {
	// StateFile is the path of the JSON file recording the last
	// successfully synced date. Overridable via the --state-file flag.
	StateFile string `yaml:"state_file"`

	// BackfillMaxDays bounds how far back the backfill search looks.
	BackfillMaxDays int `yaml:"backfill_max_days"`
}

// HistoryConfig contains run-history database settings.
type HistoryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Path        string `yaml:"path"`
	WALMode     bool   `yaml:"wal_mode"`
	BusyTimeout int    `yaml:"busy_timeout"`
}

// MQTTConfig contains optional run-status publishing settings.
type MQTTConfig struct {
	Enabled bool             `yaml:"enabled"`
	Broker  MQTTBrokerConfig `yaml:"broker"`
	Auth    MQTTAuthConfig   `yaml:"auth"`
	QoS     int              `yaml:"qos"`
	Topic   string           `yaml:"topic"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string            `yaml:"level"`
	Format string            `yaml:"format"`
	Output string            `yaml:"output"`
	File   FileLoggingConfig `yaml:"file"`
}

// FileLoggingConfig contains rotating file log settings.
type FileLoggingConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variable overrides.
//
// The loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values, if path is non-empty (override defaults)
//  3. Environment variables (override file values)
//
// Load does not validate: callers apply their flag overrides first and then
// call Validate before any network activity.
//
// Parameters:
//   - path: Path to a YAML configuration file; empty means environment-only
//
// Returns:
//   - *Config: Loaded configuration
//   - error: If the file cannot be read or parsed
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		Garmin: GarminConfig{
			URL: "https://connect.garmin.com",
		},
		InfluxDB: InfluxDBConfig{
			URL:    "http://localhost:8086",
			Bucket: "garmin",
		},
		Sync: SyncConfig{
			StateFile:       ".last_sync",
			BackfillMaxDays: 365 * 5,
		},
		History: HistoryConfig{
			Enabled:     false,
			Path:        "./data/catgar.db",
			WALMode:     true,
			BusyTimeout: 5,
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "catgar",
			},
			QoS:   1,
			Topic: "catgar/sync",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides.
//
// Upstream and sink credentials use their conventional plain names; all
// other overrides are prefixed CATGAR_.
func applyEnvOverrides(cfg *Config) {
	// Garmin Connect
	if v := os.Getenv("GARMIN_EMAIL"); v != "" {
		cfg.Garmin.Email = v
	}
	if v := os.Getenv("GARMIN_PASSWORD"); v != "" {
		cfg.Garmin.Password = v
	}

	// InfluxDB
	if v := os.Getenv("INFLUXDB_URL"); v != "" {
		cfg.InfluxDB.URL = v
	}
	if v := os.Getenv("INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}
	if v := os.Getenv("INFLUXDB_ORG"); v != "" {
		cfg.InfluxDB.Org = v
	}
	if v := os.Getenv("INFLUXDB_BUCKET"); v != "" {
		cfg.InfluxDB.Bucket = v
	}

	// Sync
	if v := os.Getenv("CATGAR_STATE_FILE"); v != "" {
		cfg.Sync.StateFile = v
	}
	if v := os.Getenv("CATGAR_BACKFILL_MAX_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Sync.BackfillMaxDays = n
		}
	}

	// History
	if v := os.Getenv("CATGAR_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}

	// MQTT
	if v := os.Getenv("CATGAR_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// Logging
	if v := os.Getenv("CATGAR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
//
// Missing upstream or sink credentials are fatal: the process must stop
// before any network activity.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Garmin.Email == "" {
		errs = append(errs, "garmin.email is required (set GARMIN_EMAIL)")
	}
	if c.Garmin.Password == "" {
		errs = append(errs, "garmin.password is required (set GARMIN_PASSWORD)")
	}
	if c.Garmin.URL == "" {
		errs = append(errs, "garmin.url is required")
	}

	if c.InfluxDB.URL == "" {
		errs = append(errs, "influxdb.url is required (set INFLUXDB_URL)")
	}
	if c.InfluxDB.Token == "" {
		errs = append(errs, "influxdb.token is required (set INFLUXDB_TOKEN)")
	}
	if c.InfluxDB.Org == "" {
		errs = append(errs, "influxdb.org is required (set INFLUXDB_ORG)")
	}
	if c.InfluxDB.Bucket == "" {
		errs = append(errs, "influxdb.bucket is required (set INFLUXDB_BUCKET)")
	}

	if c.Sync.StateFile == "" {
		errs = append(errs, "sync.state_file is required")
	}
	if c.Sync.BackfillMaxDays <= 0 {
		errs = append(errs, "sync.backfill_max_days must be positive")
	}

	if c.History.Enabled && c.History.Path == "" {
		errs = append(errs, "history.path is required when history is enabled")
	}

	if c.MQTT.Enabled {
		if c.MQTT.Broker.Host == "" {
			errs = append(errs, "mqtt.broker.host is required when mqtt is enabled")
		}
		if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
			errs = append(errs, "mqtt.qos must be 0, 1, or 2")
		}
		if c.MQTT.Topic == "" {
			errs = append(errs, "mqtt.topic is required when mqtt is enabled")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
