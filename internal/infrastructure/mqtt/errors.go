package mqtt

import "errors"

// Sentinel errors for MQTT operations.
var (
	// ErrConnectionFailed indicates the initial broker connection failed.
	ErrConnectionFailed = errors.New("mqtt: connection failed")

	// ErrNotConnected indicates an operation was attempted while disconnected.
	ErrNotConnected = errors.New("mqtt: not connected")

	// ErrPublishFailed indicates a publish was not acknowledged.
	ErrPublishFailed = errors.New("mqtt: publish failed")
)
