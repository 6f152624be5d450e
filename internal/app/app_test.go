package app

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wahlandcase/attuned.cichecks/internal/config"
	"github.com/wahlandcase/attuned.cichecks/internal/models"
	"github.com/wahlandcase/attuned.cichecks/internal/ui"
)

func init() {
	ui.DisableColors()
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := New(config.DefaultConfig(), "/repo", "origin/main", "HEAD")

	results := []models.CheckResult{
		{Commit: models.NewCommitInfo("abc1234", "feat[auth]: add login", "alice", "alice@is.ic")},
		{
			Commit: models.NewCommitInfo("def5678", "wip stuff", "bob", "bob@is.ic"),
			Violations: []models.Violation{
				{Kind: models.MalformedHeader, Excerpt: "wip stuff", Line: 1},
			},
		},
	}

	updated, _ := m.Update(resultsLoadedMsg{results: results})
	model, ok := updated.(Model)
	require.True(t, ok)
	return model
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadTransitionsToList(t *testing.T) {
	m := loadedModel(t)
	assert.Equal(t, ScreenCommitList, m.screen)
	assert.Len(t, m.Results(), 2)
}

func TestModel_LoadErrorShowsErrorScreen(t *testing.T) {
	m := New(config.DefaultConfig(), "/repo", "a", "b")
	updated, _ := m.Update(resultsLoadedMsg{err: errors.New("revision not found: a")})
	model := updated.(Model)
	assert.Equal(t, ScreenError, model.screen)
	assert.Contains(t, model.View(), "revision not found")
}

func TestModel_Navigation(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(key("j"))
	m = updated.(Model)
	assert.Equal(t, 1, m.listIndex)

	// Does not run past the end
	updated, _ = m.Update(key("j"))
	m = updated.(Model)
	assert.Equal(t, 1, m.listIndex)

	updated, _ = m.Update(key("k"))
	m = updated.(Model)
	assert.Equal(t, 0, m.listIndex)
}

func TestModel_DetailAndBack(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Equal(t, ScreenCommitDetail, m.screen)
	assert.Contains(t, m.View(), "abc1234")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	assert.Equal(t, ScreenCommitList, m.screen)
}

func TestModel_ViewShowsMarkers(t *testing.T) {
	m := loadedModel(t)
	view := m.View()
	assert.Contains(t, view, "abc1234")
	assert.Contains(t, view, "def5678")
	assert.Contains(t, view, "2 commits, 1 failing")
}

func TestTruncate_MultiByteSubject(t *testing.T) {
	got := truncate("fix[ui]: préférences ééééééééééééé", 12)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 12, len([]rune(got)))

	assert.Equal(t, "short", truncate("short", 12))
}

func TestModel_Quit(t *testing.T) {
	m := loadedModel(t)
	updated, cmd := m.Update(key("q"))
	m = updated.(Model)
	assert.True(t, m.shouldQuit)
	require.NotNil(t, cmd)
}
