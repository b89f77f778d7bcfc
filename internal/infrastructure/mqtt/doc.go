// Package mqtt publishes sync run status to an MQTT broker.
//
// This is an optional integration for home-automation dashboards: after each
// run the summary is published as a retained JSON message, so a subscriber
// connecting later still sees the latest outcome. The client is
// publish-only; nothing in the sync engine reacts to broker traffic.
package mqtt
