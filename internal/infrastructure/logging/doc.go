// Package logging provides structured logging for catGar.
//
// It wraps the standard library's log/slog with configuration-driven level,
// format, and destination selection, default service/version attributes, and
// optional size-based log rotation for scheduled jobs.
//
// Usage:
//
//	log := logging.New(cfg.Logging, version)
//	log.Info("sync starting", "window_start", start, "window_end", end)
package logging
