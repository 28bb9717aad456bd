package cli

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tessro/cadence/internal/config"
	"github.com/tessro/cadence/internal/lifecycle"
	"github.com/tessro/cadence/internal/service"
)

var statusFormat string

var statusCmd = &cobra.Command{
	Use:   "status [service]",
	Short: "Show service status",
	Long: "Display the lifecycle status of one configured service, or of all " +
		"configured services when no argument is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

// serviceStatus is one row of status output.
type serviceStatus struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
	PID    int    `yaml:"pid,omitempty"`
}

var (
	statusRunningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")) // Green
	statusStoppedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")) // Gray
	statusStoppingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")) // Amber
	statusStaleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")) // Red
)

func styleFor(s lifecycle.Status) lipgloss.Style {
	switch s {
	case lifecycle.StatusRunning, lifecycle.StatusOtherRunning:
		return statusRunningStyle
	case lifecycle.StatusShuttingDown:
		return statusStoppingStyle
	case lifecycle.StatusStale:
		return statusStaleStyle
	default:
		return statusStoppedStyle
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	names := cfg.ServiceNames()
	if len(args) == 1 {
		if _, ok := cfg.Service(args[0]); !ok {
			return fmt.Errorf("unknown service %q", args[0])
		}
		names = args
	}

	if len(names) == 0 {
		fmt.Println("No services configured.")
		fmt.Println("Add a [services.<name>] section to the config to define one.")
		return nil
	}

	rows := make([]serviceStatus, 0, len(names))
	statuses := make([]lifecycle.Status, 0, len(names))
	for _, name := range names {
		sc, _ := cfg.Service(name)
		ctrl, err := service.NewQueryController(name, sc, nil, slog.Default())
		if err != nil {
			return err
		}
		st := ctrl.Status()
		pid, _ := ctrl.CurrentPID()
		rows = append(rows, serviceStatus{Name: name, Status: st.String(), PID: pid})
		statuses = append(statuses, st)
	}

	switch statusFormat {
	case "yaml":
		out, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshal status: %w", err)
		}
		fmt.Print(string(out))
		return nil
	case "text":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "SERVICE\tSTATUS\tPID")
		for i, row := range rows {
			pid := "-"
			if row.PID != 0 {
				pid = fmt.Sprintf("%d", row.PID)
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", row.Name, styleFor(statuses[i]).Render(row.Status), pid)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", statusFormat)
	}
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "text", "output format: text or yaml")
	rootCmd.AddCommand(statusCmd)
}
