// Package history records the outcome of each sync run in SQLite.
//
// The runs table is an operator aid: it answers "when did the last clean
// run happen" and "which categories keep failing" without digging through
// logs. It has no influence on sync behavior; the cursor file alone drives
// resumption.
package history
