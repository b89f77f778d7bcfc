package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/catgar/catgar/internal/catalog"
	"github.com/catgar/catgar/internal/history"
	"github.com/catgar/catgar/internal/infrastructure/config"
	"github.com/catgar/catgar/internal/infrastructure/database"
)

// newRunsCmd builds the runs subcommand, which lists recent sync runs from
// the history database.
func newRunsCmd(flags *rootFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent sync runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("run history is disabled in configuration")
			}

			db, err := database.Open(database.Config{
				Path:        cfg.History.Path,
				WALMode:     cfg.History.WALMode,
				BusyTimeout: cfg.History.BusyTimeout,
			})
			if err != nil {
				return fmt.Errorf("opening history database: %w", err)
			}
			defer db.Close()

			repo, err := history.NewRepository(cmd.Context(), db)
			if err != nil {
				return err
			}
			runs, err := repo.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			catalog.PrintRuns(os.Stdout, runs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list")
	return cmd
}
