// Package tui provides the Bubbletea-based live status dashboard for
// cadence. It polls each configured service's marker file once per second
// and renders the derived lifecycle status.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tessro/cadence/internal/config"
	"github.com/tessro/cadence/internal/lifecycle"
	"github.com/tessro/cadence/internal/service"
)

// pollEvery is how often the dashboard re-derives statuses.
const pollEvery = time.Second

// row is one service's latest observed state.
type row struct {
	name   string
	status lifecycle.Status
	pid    int
}

// tickMsg triggers a status refresh.
type tickMsg time.Time

// Model is the Bubbletea model for the watch dashboard.
type Model struct {
	width  int
	height int

	ctrls []*lifecycle.Controller
	rows  []row
	keys  KeyBindings

	refreshedAt time.Time
}

// NewModel builds the dashboard model for the given config.
func NewModel(cfg *config.Config) (Model, error) {
	// The dashboard only reads marker files; discard log output so it
	// doesn't fight the terminal.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	names := cfg.ServiceNames()
	ctrls := make([]*lifecycle.Controller, 0, len(names))
	for _, name := range names {
		sc, _ := cfg.Service(name)
		ctrl, err := service.NewQueryController(name, sc, nil, logger)
		if err != nil {
			return Model{}, err
		}
		ctrls = append(ctrls, ctrl)
	}

	m := Model{
		ctrls: ctrls,
		keys:  DefaultKeyBindings(),
	}
	m.refresh()
	return m, nil
}

// refresh re-derives every service's status from its marker file.
func (m *Model) refresh() {
	rows := make([]row, 0, len(m.ctrls))
	for _, ctrl := range m.ctrls {
		pid, _ := ctrl.CurrentPID()
		rows = append(rows, row{
			name:   ctrl.Name(),
			status: ctrl.Status(),
			pid:    pid,
		})
	}
	m.rows = rows
	m.refreshedAt = time.Now()
}

func tick() tea.Cmd {
	return tea.Tick(pollEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(emptyStyle.Render("No services configured."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.tableView())
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	brand := headerBrandStyle.Render("🥁 cadence")
	running := 0
	for _, r := range m.rows {
		if r.status == lifecycle.StatusRunning || r.status == lifecycle.StatusOtherRunning {
			running++
		}
	}
	info := headerInfoStyle.Render(fmt.Sprintf("%d services, %d running", len(m.rows), running))

	bar := lipgloss.JoinHorizontal(lipgloss.Top, brand, info)
	if m.width > lipgloss.Width(bar) {
		bar += headerContainerStyle.Render(strings.Repeat(" ", m.width-lipgloss.Width(bar)))
	}
	return bar
}

func (m Model) tableView() string {
	nameWidth := len("SERVICE")
	for _, r := range m.rows {
		if len(r.name) > nameWidth {
			nameWidth = len(r.name)
		}
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-*s  %-24s  %s", nameWidth, "SERVICE", "STATUS", "PID")))
	b.WriteString("\n")
	for _, r := range m.rows {
		pid := "-"
		if r.pid != 0 {
			pid = fmt.Sprintf("%d", r.pid)
		}
		status := statusStyleFor(r.status).Render(fmt.Sprintf("%-24s", r.status.String()))
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s  %s  %s", nameWidth, r.name, status, pid)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) footerView() string {
	help := fmt.Sprintf("%s · %s · refreshed %s",
		renderBinding(m.keys.Quit),
		renderBinding(m.keys.Refresh),
		m.refreshedAt.Format("15:04:05"),
	)
	if m.width > 0 {
		help = wordwrap.String(help, m.width-2)
	}
	return footerStyle.Render(help)
}

func renderBinding(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}

func statusStyleFor(s lifecycle.Status) lipgloss.Style {
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

// Run launches the dashboard and blocks until the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
