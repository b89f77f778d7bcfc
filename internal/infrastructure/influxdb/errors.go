package influxdb

import "errors"

// Sentinel errors for InfluxDB operations.
//
// These errors can be checked using errors.Is() for specific handling:
//
//	if errors.Is(err, influxdb.ErrWriteFailed) {
//	    // Handle failed batch
//	}
var (
	// ErrConnectionFailed indicates the initial connection attempt failed.
	ErrConnectionFailed = errors.New("influxdb: connection failed")

	// ErrWriteFailed indicates a batch write failed.
	ErrWriteFailed = errors.New("influxdb: write failed")

	// ErrBucketSetup indicates the target bucket could not be created.
	ErrBucketSetup = errors.New("influxdb: bucket setup failed")
)
