package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/logging"
	"github.com/tessro/cadence/internal/service"
)

var runVerbose bool

var runCmd = &cobra.Command{
	Use:   "run <service>",
	Short: "Run a configured service in the foreground",
	Long: "Run a configured service as a singleton daemon in the foreground. " +
		"The service invokes its command once per work cycle until it is stopped. " +
		"If another instance already owns the service, this is a no-op.",
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, sc, err := loadService(name)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.Log.Level)
	var cleanup func()
	if runVerbose {
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
	return ctrl.Start()
}

func init() {
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "also log to stderr")
	rootCmd.AddCommand(runCmd)
}
