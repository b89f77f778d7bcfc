// catGar - Garmin Connect to InfluxDB sync
//
// catGar incrementally pulls daily wellness and activity telemetry from
// Garmin Connect and writes it to InfluxDB as time-series points. It resumes
// where the last clean run left off and can backfill years of history by
// locating the oldest day with data.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
