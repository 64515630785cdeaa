package cli

import (
	"github.com/spf13/cobra"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List met-enabled stations and their positions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Stations(cmd.Context())
	},
}
