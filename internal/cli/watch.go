package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/config"
	"github.com/tessro/cadence/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch service status in a live dashboard",
	Long:  "Launch a terminal dashboard that polls the status of every configured service.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return tui.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
