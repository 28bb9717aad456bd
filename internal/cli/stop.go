package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/service"
)

var stopCmd = &cobra.Command{
	Use:   "stop <service>",
	Short: "Stop a running service",
	Long: "Signal a running service to stop and wait until it has exited. " +
		"The running process finishes its current work cycle before stopping. " +
		"A stale marker left by a crashed process is cleaned up instead.",
	Args: cobra.ExactArgs(1),
	RunE: runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	name := args[0]
	_, sc, err := loadService(name)
	if err != nil {
		return err
	}

	ctrl, err := service.NewQueryController(name, sc, printEvent(name), slog.Default())
	if err != nil {
		return err
	}
	return ctrl.Stop()
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
