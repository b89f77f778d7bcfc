// Package database manages the embedded SQLite store used for run history.
//
// It wraps database/sql with the connection pragmas SQLite wants for a
// single-writer workload (WAL journaling, busy timeout, one open
// connection) and restrictive file permissions, since the directory also
// holds the sync cursor.
package database
