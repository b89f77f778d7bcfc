package garmin

import "errors"

// Sentinel errors for Garmin Connect operations.
var (
	// ErrAuthFailed indicates the sign-in request was rejected.
	ErrAuthFailed = errors.New("garmin: authentication failed")

	// ErrNotFound indicates upstream has no data for the request. This is
	// benign absence, not a failure; the orchestrator records it as a
	// zero-point result.
	ErrNotFound = errors.New("garmin: no data (not found)")

	// ErrRequestFailed indicates a request failed for any other reason
	// (network error, 5xx, unexpected payload).
	ErrRequestFailed = errors.New("garmin: request failed")
)

// IsNotFound reports whether err represents benign upstream absence.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
