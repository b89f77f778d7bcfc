// Package sync implements the incremental sync engine: the date range
// planner, the last-sync cursor store, the binary-search backfill locator,
// and the orchestrator that drives every data category through its
// fetch/build/write pipeline.
//
// The engine is deliberately sequential. One day at a time, one category at
// a time, one network round trip at a time; upstream rate limits and sink
// write ordering stay trivial that way. Failure handling is the interesting
// part: a category failing on one day never blocks its siblings or later
// days, and the sync cursor only advances after a run with zero
// category-level errors, so an unclean run is retried wholesale on the next
// invocation. Sink writes are idempotent (point identity is measurement,
// tag set and timestamp), which makes whole-window retry safe.
package sync
