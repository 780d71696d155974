package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandfly/dawnpatrol/internal/advisor"
	"github.com/sandfly/dawnpatrol/internal/cache"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Fetching and scoring
	StateDisplay                 // Showing the advisory
	StateError                   // Run failed and no cache to fall back on
)

// runTimeout bounds one complete advisory run.
const runTimeout = 60 * time.Second

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	runner *advisor.Runner
	store  *cache.Cache

	result *advisor.RunResult
	stale  bool

	spinner spinner.Model
}

// NewModel creates a new application model. store may be nil when the cache
// could not be opened; the app then runs online-only.
func NewModel(runner *advisor.Runner, store *cache.Cache) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		state:   StateLoading,
		runner:  runner,
		store:   store,
		spinner: s,
	}
}

// Init starts the first advisory run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh())
}

// refresh runs one advisory. On failure it substitutes the cached advisory,
// flagged stale, before giving up with an error.
func (m Model) refresh() tea.Cmd {
	runner, store := m.runner, m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		result, err := runner.Run(ctx)
		if err == nil {
			return runCompletedMsg{result: result}
		}

		if store != nil {
			cached, cacheErr := store.Load()
			if cacheErr == nil {
				return runCompletedMsg{result: cached, stale: true}
			}
			if !errors.Is(cacheErr, cache.ErrNoCachedRun) {
				err = fmt.Errorf("%w (cache also failed: %v)", err, cacheErr)
			}
		}
		return errMsg{err: err}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			// A new independent run; its result overwrites whatever is
			// showing (last write wins).
			m.state = StateLoading
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.refresh())
		}
		return m, nil

	case runCompletedMsg:
		m.state = StateDisplay
		m.result = msg.result
		m.stale = msg.stale
		m.err = nil
		if !msg.stale && m.store != nil {
			// Best effort; a write failure only costs the offline fallback.
			_ = m.store.Save(msg.result)
		}
		return m, nil

	case errMsg:
		m.state = StateError
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the application
func (m Model) View() string {
	switch m.state {
	case StateLoading:
		return fmt.Sprintf("\n  %s Checking tomorrow morning...\n", m.spinner.View())
	case StateError:
		return fmt.Sprintf("\n  %s\n\n%s",
			errorStyle.Render(fmt.Sprintf("Error: %v", m.err)),
			helpStyle.Render("  r: retry • q: quit"))
	case StateDisplay:
		return m.renderAdvisory()
	}
	return ""
}
