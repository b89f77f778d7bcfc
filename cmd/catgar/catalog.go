package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/catgar/catgar/internal/catalog"
)

// newCatalogCmd builds the catalog subcommand, which prints every
// measurement and its field mappings.
func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the measurement catalog",
		Long:  "Print every InfluxDB measurement catgar can write, with its tags and declared field mappings.",
		Run: func(cmd *cobra.Command, args []string) {
			catalog.PrintCatalog(os.Stdout)
		},
	}
}
