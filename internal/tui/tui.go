package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tsnip/internal/app"
	"tsnip/internal/cli"
	"tsnip/internal/model"
	"tsnip/internal/remover"
	"tsnip/internal/ui"
)

// --- Messages ---
type summaryMsg struct {
	model.Summary
}

type errorMsg struct{ err error }

func (e errorMsg) Error() string { return e.err.Error() }

// --- Model ---
type Model struct {
	app     *app.App
	cfg     *cli.Config
	spinner spinner.Model
	state   state
	summary model.Summary
	err     error
}

type state int

const (
	stateProcessing state = iota
	stateSummary
	stateError
)

func New(application *app.App, cfg *cli.Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		app:     application,
		cfg:     cfg,
		spinner: s,
		state:   stateProcessing,
	}
}

// Err reports the error the run finished with, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runApp)
}

func (m Model) runApp() tea.Msg {
	summary, err := m.app.Execute()
	if err != nil {
		if stack := app.Stack(err); stack != nil {
			os.Stderr.Write(stack)
		}
		return errorMsg{err}
	}
	return summaryMsg{summary}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case summaryMsg:
		m.state = stateSummary
		m.summary = msg.Summary
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg.err
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateProcessing {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateProcessing:
		return fmt.Sprintf("%s Scanning %s...", m.spinner.View(), remover.TargetFile)
	case stateError:
		return ui.RenderError(m.err)
	case stateSummary:
		return ui.RenderSummary(m.summary, m.cfg.Quiet)
	default:
		return ""
	}
}
