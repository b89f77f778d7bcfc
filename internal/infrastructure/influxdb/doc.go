// Package influxdb provides the InfluxDB v2 sink for measurement points.
//
// It wraps the official influxdb-client-go client with:
//   - Connection management with ping verification
//   - Synchronous batch writes attributed to one category per call
//   - Bucket bootstrap with infinite retention
//   - Health checks
//
// Unlike a streaming collector, the sync engine writes one category's batch
// at a time and needs the result before moving on, so the blocking write API
// is used throughout. Writes are idempotent from the caller's perspective:
// point identity is (measurement, tag set, timestamp), so re-sending a day's
// data overwrites rather than duplicates.
package influxdb
