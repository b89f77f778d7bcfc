package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/catgar/catgar/internal/catalog"
	"github.com/catgar/catgar/internal/garmin"
	"github.com/catgar/catgar/internal/history"
	"github.com/catgar/catgar/internal/infrastructure/config"
	"github.com/catgar/catgar/internal/infrastructure/database"
	"github.com/catgar/catgar/internal/infrastructure/influxdb"
	"github.com/catgar/catgar/internal/infrastructure/logging"
	"github.com/catgar/catgar/internal/infrastructure/mqtt"
	"github.com/catgar/catgar/internal/points"
	"github.com/catgar/catgar/internal/sync"
)

const dayFormat = "2006-01-02"

// rootFlags holds the sync command's flag values.
type rootFlags struct {
	configPath string
	days       int
	backfill   bool
	stateFile  string
}

// newRootCmd builds the root command. Invoked bare it auto-resumes from the
// stored cursor; a positional date, --days or --backfill select the other
// window modes.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "catgar [YYYY-MM-DD]",
		Short: "Sync Garmin Connect wellness data to InfluxDB",
		Long: `catgar pulls daily wellness and activity telemetry from Garmin Connect
and writes it to InfluxDB. Without arguments it resumes from the day after
the last clean run. A positional date syncs exactly that day; --days syncs
the last N days; --backfill locates the oldest day with data and syncs the
full history from there.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := sync.PlanRequest{
				Days:     flags.days,
				Backfill: flags.backfill,
			}
			if len(args) == 1 {
				day, err := time.ParseInLocation(dayFormat, args[0], time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
				}
				req.Date = &day
			}
			return runSync(cmd.Context(), flags, req)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to config file (default: environment only)")
	cmd.Flags().IntVarP(&flags.days, "days", "d", 0, "sync the last N days ending today")
	cmd.Flags().BoolVarP(&flags.backfill, "backfill", "b", false, "locate the oldest day with data and sync from there")
	cmd.Flags().StringVar(&flags.stateFile, "state-file", "", "override the sync cursor file path")
	cmd.MarkFlagsMutuallyExclusive("days", "backfill")

	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newRunsCmd(flags))

	return cmd
}

// runSync wires the whole pipeline together and executes one run.
func runSync(ctx context.Context, flags *rootFlags, req sync.PlanRequest) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flags.stateFile != "" {
		cfg.Sync.StateFile = flags.stateFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	req.BackfillMaxDays = cfg.Sync.BackfillMaxDays

	log := logging.New(cfg.Logging, version)
	startedAt := time.Now()

	influx, err := influxdb.Connect(ctx, cfg.InfluxDB)
	if err != nil {
		return fmt.Errorf("connecting to influxdb: %w", err)
	}
	defer influx.Close()
	influx.SetLogger(log)

	if err := influx.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("preparing bucket: %w", err)
	}

	client, err := garmin.Connect(ctx, cfg.Garmin, log)
	if err != nil {
		return fmt.Errorf("connecting to garmin: %w", err)
	}

	store := sync.NewStore(cfg.Sync.StateFile, log)
	cursor, hasCursor := store.Read()

	window, err := sync.PlanWindow(ctx, req, cursor, hasCursor, client, time.Now(), log)
	if err != nil {
		return err
	}

	builder := points.NewBuilder(log, nil)
	engine := sync.NewEngine(client, influx, builder, store, log)

	summary, runErr := engine.Run(ctx, window)

	catalog.PrintSummary(os.Stdout, summary)
	recordRun(ctx, cfg, log, startedAt, summary)
	publishSummary(cfg, log, summary)

	if runErr != nil {
		return runErr
	}
	if !summary.Clean() {
		return fmt.Errorf("%d category errors, cursor not advanced", len(summary.Errors))
	}
	return nil
}

// recordRun appends the run outcome to the SQLite history when enabled.
// History is an operator aid; failures here never fail the run.
func recordRun(ctx context.Context, cfg *config.Config, log *logging.Logger, startedAt time.Time, s *sync.Summary) {
	if !cfg.History.Enabled {
		return
	}

	db, err := database.Open(database.Config{
		Path:        cfg.History.Path,
		WALMode:     cfg.History.WALMode,
		BusyTimeout: cfg.History.BusyTimeout,
	})
	if err != nil {
		log.Warn("run history unavailable", "error", err)
		return
	}
	defer db.Close()

	repo, err := history.NewRepository(ctx, db)
	if err != nil {
		log.Warn("run history unavailable", "error", err)
		return
	}

	err = repo.Record(ctx, history.Run{
		StartedAt:      startedAt,
		WindowStart:    s.Window.Start,
		WindowEnd:      s.Window.End,
		Days:           s.DaysSynced,
		Points:         s.Points,
		Errors:         len(s.Errors),
		CursorAdvanced: s.CursorAdvanced,
		Duration:       s.Duration,
	})
	if err != nil {
		log.Warn("recording run history failed", "error", err)
	}
}

// publishSummary pushes the run outcome to MQTT when enabled, retained so a
// dashboard connecting later still sees the latest state.
func publishSummary(cfg *config.Config, log *logging.Logger, s *sync.Summary) {
	if !cfg.MQTT.Enabled {
		return
	}

	client, err := mqtt.Connect(cfg.MQTT)
	if err != nil {
		log.Warn("mqtt unavailable, status not published", "error", err)
		return
	}
	defer client.Close()

	payload, err := json.Marshal(map[string]any{
		"window_start":    s.Window.Start.Format(dayFormat),
		"window_end":      s.Window.End.Format(dayFormat),
		"days":            s.DaysSynced,
		"points":          s.Points,
		"errors":          len(s.Errors),
		"cursor_advanced": s.CursorAdvanced,
		"clean":           s.Clean(),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Warn("encoding mqtt status failed", "error", err)
		return
	}

	if err := client.Publish(cfg.MQTT.Topic, payload, true); err != nil {
		log.Warn("publishing mqtt status failed", "error", err)
	}
}
