package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		if m.screen == ScreenLoading {
			return m, tickCmd()
		}
		return m, nil

	case resultsLoadedMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			m.screen = ScreenError
			return m, nil
		}
		m.results = msg.results
		m.screen = ScreenCommitList
		m.listIndex = 0
		m.listScroll = 0
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenCommitList:
		return m.handleListKey(msg)
	case ScreenCommitDetail:
		return m.handleDetailKey(msg)
	case ScreenError:
		return m.handleErrorKey(msg)
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.listIndex > 0 {
			m.listIndex--
		}
	case "down", "j":
		if m.listIndex < len(m.results)-1 {
			m.listIndex++
		}
	case "g":
		m.listIndex = 0
	case "G":
		if len(m.results) > 0 {
			m.listIndex = len(m.results) - 1
		}
	case "enter":
		if len(m.results) > 0 {
			m.screen = ScreenCommitDetail
		}
	}

	m.clampScroll()
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "esc", "backspace":
		m.screen = ScreenCommitList
	case "up", "k":
		if m.listIndex > 0 {
			m.listIndex--
		}
	case "down", "j":
		if m.listIndex < len(m.results)-1 {
			m.listIndex++
		}
	}
	return m, nil
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

// clampScroll keeps the selected row inside the visible window
func (m *Model) clampScroll() {
	visible := m.listHeight()
	if visible <= 0 {
		return
	}
	if m.listIndex < m.listScroll {
		m.listScroll = m.listIndex
	}
	if m.listIndex >= m.listScroll+visible {
		m.listScroll = m.listIndex - visible + 1
	}
}

// listHeight is the number of commit rows that fit on screen
func (m Model) listHeight() int {
	// header, summary and footer take a few rows
	h := m.height - 7
	if h < 1 {
		h = 1
	}
	return h
}
