// Package config loads and validates catGar configuration.
//
// Configuration is layered: hardcoded defaults, an optional YAML file, then
// environment variables. Credentials for Garmin Connect and InfluxDB come
// from the conventional environment names (GARMIN_EMAIL, GARMIN_PASSWORD,
// INFLUXDB_URL, INFLUXDB_TOKEN, INFLUXDB_ORG, INFLUXDB_BUCKET), so a
// scheduled job needs no config file at all. Validation runs before any
// network activity; missing required values abort the process.
package config
