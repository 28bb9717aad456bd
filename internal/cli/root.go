// Package cli implements the cadence command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/paths"
)

// cadenceDir is the global --cadence-dir flag value.
var cadenceDir string

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Singleton service runner",
	Long: "cadence runs configured commands as singleton daemon services, " +
		"coordinating start, stop, and status through per-service PID marker files.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set CADENCE_DIR if --cadence-dir is provided, so all path
		// helpers pick up the override.
		if cadenceDir != "" {
			if err := os.Setenv(paths.EnvCadenceDir, cadenceDir); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cadenceDir, "cadence-dir", "", "base directory for cadence data (overrides ~/.cadence)")
}

func Execute() error {
	return rootCmd.Execute()
}
