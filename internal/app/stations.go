package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"ndbc-data/internal/metadata"
)

// Stations prints the id and position of every met-enabled station in the
// current metadata document.
func (a *App) Stations(ctx context.Context) error {
	client := a.newClient()

	doc, err := client.FetchMetadata(ctx)
	if err != nil {
		return fmt.Errorf("fetch station metadata: %w", err)
	}

	positions, err := metadata.Scan(doc)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Station\tLatitude\tLongitude")
	for _, id := range metadata.StationIDs(positions) {
		pos := positions[id]
		fmt.Fprintf(writer, "%s\t%.3f\t%.3f\n", id, pos.Lat, pos.Lon)
	}
	return writer.Flush()
}
