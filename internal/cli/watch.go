package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ndbc-data/internal/app"
)

var watchAll bool

var watchCmd = &cobra.Command{
	Use:   "watch [STATION...]",
	Short: "Refetch station data on an interval until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !watchAll {
			return fmt.Errorf("provide station ids or --all")
		}

		opts := app.FetchOptions{
			Stations: args,
			All:      watchAll,
		}

		return getApp().Watch(cmd.Context(), opts)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchAll, "all", false, "Process every met-enabled station in the metadata")
}
