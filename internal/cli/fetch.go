package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ndbc-data/internal/app"
)

var fetchAll bool

var fetchCmd = &cobra.Command{
	Use:   "fetch [STATION...]",
	Short: "Download and save standard met data for the given stations",
	Long: "Downloads the NDBC station metadata, then retrieves each station's " +
		"realtime standard meteorological feed (roughly the last 45 days), parses " +
		"it, and writes one columnar file per station into the output directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !fetchAll {
			return fmt.Errorf("provide station ids (e.g. 42040 46042 FPKA2) or --all")
		}

		opts := app.FetchOptions{
			Stations: args,
			All:      fetchAll,
		}

		return getApp().Fetch(cmd.Context(), opts)
	},
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchAll, "all", false, "Process every met-enabled station in the metadata")
}
