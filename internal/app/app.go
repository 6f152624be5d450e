// Package app is the interactive commit review TUI entered via
// `attci log --interactive`. It lists the commits in the range with
// pass/fail markers and shows each commit's violations in detail.
package app

import (
	"time"

	"github.com/wahlandcase/attuned.cichecks/internal/config"
	"github.com/wahlandcase/attuned.cichecks/internal/git"
	"github.com/wahlandcase/attuned.cichecks/internal/lint"
	"github.com/wahlandcase/attuned.cichecks/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the main application state
type Model struct {
	// Configuration
	config   *config.Config
	repoPath string
	startRev string
	endRev   string

	// Navigation
	screen     Screen
	listIndex  int
	listScroll int
	shouldQuit bool

	// Loaded results
	results []models.CheckResult

	// UI state
	errorMessage string
	spinnerFrame int

	// Window size
	width  int
	height int
}

// New creates a new application model for the given commit range
func New(cfg *config.Config, repoPath, startRev, endRev string) Model {
	return Model{
		config:   cfg,
		repoPath: repoPath,
		startRev: startRev,
		endRev:   endRev,
		screen:   ScreenLoading,
		width:    80,
		height:   24,
	}
}

// Results returns the loaded check results (for the exit code after the
// TUI closes)
func (m Model) Results() []models.CheckResult {
	return m.results
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
		loadResultsCmd(m.config, m.repoPath, m.startRev, m.endRev),
	)
}

// tickMsg is sent on each tick for the loading spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// resultsLoadedMsg carries the validated commit range
type resultsLoadedMsg struct {
	results []models.CheckResult
	err     error
}

// loadResultsCmd walks the range and validates each commit in the background
func loadResultsCmd(cfg *config.Config, repoPath, startRev, endRev string) tea.Cmd {
	return func() tea.Msg {
		commits, err := git.CommitsBetween(repoPath, startRev, endRev)
		if err != nil {
			return resultsLoadedMsg{err: err}
		}

		rules := cfg.Rules()
		results := make([]models.CheckResult, 0, len(commits))
		for _, commit := range commits {
			_, violations := lint.Validate(commit.Message, rules)
			if v := lint.ValidateAuthor(commit.Author, commit.Email, rules); v != nil {
				violations = append(violations, *v)
			}
			results = append(results, models.CheckResult{Commit: commit, Violations: violations})
		}

		return resultsLoadedMsg{results: results}
	}
}
