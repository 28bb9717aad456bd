package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	runningColor = lipgloss.Color("#10B981") // Green
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	staleColor   = lipgloss.Color("#EF4444") // Red
	warningColor = lipgloss.Color("#F59E0B") // Amber

	// Header styles
	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Padding(0, 1)

	headerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E0E0E0")).
			Background(primaryColor).
			Padding(0, 1)

	headerContainerStyle = lipgloss.NewStyle().
				Background(primaryColor)

	// Table styles
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(mutedColor).
				Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(1, 2)

	// Status styles
	statusRunningStyle  = lipgloss.NewStyle().Foreground(runningColor)
	statusStoppedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	statusStoppingStyle = lipgloss.NewStyle().Foreground(warningColor)
	statusStaleStyle    = lipgloss.NewStyle().Foreground(staleColor)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)
)
