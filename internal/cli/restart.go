package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/logging"
	"github.com/tessro/cadence/internal/service"
)

var restartVerbose bool

var restartCmd = &cobra.Command{
	Use:   "restart <service>",
	Short: "Restart a service in this process",
	Long: "Stop a running service, wait for it to exit, then run it in the " +
		"foreground of this process. The two phases are strictly sequential.",
	Args: cobra.ExactArgs(1),
	RunE: runRestart,
}

func runRestart(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, sc, err := loadService(name)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	var cleanup func()
	if restartVerbose {
		cleanup, err = logging.SetupMulti(cfg.Log.Path, os.Stderr, level)
	} else {
		cleanup, err = logging.Setup(cfg.Log.Path, level)
	}
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer cleanup()

	ctrl, err := service.NewController(name, sc, printEvent(name), slog.Default())
	if err != nil {
		return err
	}
	return ctrl.Restart()
}

func init() {
	restartCmd.Flags().BoolVarP(&restartVerbose, "verbose", "v", false, "also log to stderr")
	rootCmd.AddCommand(restartCmd)
}
