package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ndbc-data/internal/app"
)

var (
	plotField string
	plotOut   string
)

var plotCmd = &cobra.Command{
	Use:   "plot STATION",
	Short: "Render a PNG time-series chart of one field for a station",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if plotOut == "" {
			return fmt.Errorf("--out must be provided")
		}

		opts := app.PlotOptions{
			Station: args[0],
			Field:   plotField,
			PNGPath: plotOut,
		}

		return getApp().Plot(cmd.Context(), opts)
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotField, "field", "WSPD", "Observation field to plot (e.g. WSPD, WVHT, PRES)")
	plotCmd.Flags().StringVar(&plotOut, "out", "", "Path to write the PNG chart")
}
