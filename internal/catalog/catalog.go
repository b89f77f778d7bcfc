package catalog

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/catgar/catgar/internal/points"
)

// PrintCatalog writes the full measurement catalog to w.
func PrintCatalog(w io.Writer) {
	for _, entry := range points.Catalog() {
		fmt.Fprintf(w, "%s (%s)\n", entry.Measurement, entry.Cadence)
		fmt.Fprintf(w, "  %s\n", entry.Description)
		if len(entry.Tags) > 0 {
			fmt.Fprintf(w, "  tags: %s\n", strings.Join(entry.Tags, ", "))
		}

		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		for _, f := range entry.Fields {
			if f.Field == "" {
				continue
			}
			fmt.Fprintf(tw, "  %s\t<- %s\n", f.Field, f.Key)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
}
