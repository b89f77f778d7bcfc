// Package catalog renders human-readable views: the measurement catalog,
// the end-of-run summary, and recent run history. Pure display; nothing
// here affects sync behavior.
package catalog
