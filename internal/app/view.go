package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
	"github.com/wahlandcase/attuned.cichecks/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View renders the current screen
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	switch m.screen {
	case ScreenLoading:
		return m.viewLoading()
	case ScreenCommitList:
		return m.viewCommitList()
	case ScreenCommitDetail:
		return m.viewCommitDetail()
	case ScreenError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewLoading() string {
	spinner := spinnerFrames[m.spinnerFrame%len(spinnerFrames)]
	style := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	return fmt.Sprintf("\n  %s Validating %s..%s\n",
		style.Render(spinner), m.startRev, m.endRev)
}

func (m Model) viewCommitList() string {
	var b strings.Builder

	b.WriteString(ui.SectionHeader("COMMIT CHECKS", ui.ColorCyan))
	b.WriteString("\n")

	failed := models.CountFailed(m.results)
	summary := fmt.Sprintf("  %d commits, %d failing  (%s..%s)",
		len(m.results), failed, m.startRev, m.endRev)
	b.WriteString(ui.SkipStyle.Render(summary))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString("  No commits in range.\n")
		b.WriteString(m.footer("q quit"))
		return b.String()
	}

	visible := m.listHeight()
	end := m.listScroll + visible
	if end > len(m.results) {
		end = len(m.results)
	}

	for i := m.listScroll; i < end; i++ {
		r := m.results[i]

		cursor := "  "
		if i == m.listIndex {
			cursor = "> "
		}

		marker := ui.PassStyle.Render("✓")
		if !r.Passed() {
			marker = ui.FailStyle.Render(fmt.Sprintf("✗ %d", len(r.Violations)))
		}

		line := fmt.Sprintf("%s%s %s  %s",
			cursor,
			ui.HashStyle.Render(r.Commit.Hash),
			truncate(r.Commit.Subject, m.width-18),
			marker)

		if i == m.listIndex {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.footer("↑/↓ navigate · enter details · q quit"))
	return b.String()
}

func (m Model) viewCommitDetail() string {
	if m.listIndex >= len(m.results) {
		return ""
	}
	r := m.results[m.listIndex]

	var b strings.Builder
	b.WriteString(ui.SectionHeader("COMMIT "+r.Commit.Hash, ui.ColorCyan))
	b.WriteString("\n")
	b.WriteString(ui.SkipStyle.Render(fmt.Sprintf("  %s <%s>", r.Commit.Author, r.Commit.Email)))
	b.WriteString("\n\n")

	if r.Passed() {
		b.WriteString("  " + ui.PassStyle.Render("✓ matches the template") + "\n")
	} else {
		for _, v := range r.Violations {
			line := v.Message()
			if v.Excerpt != "" {
				line += fmt.Sprintf(": %q", v.Excerpt)
			}
			b.WriteString("  " + ui.FailStyle.Render("✗ ") + ui.DetailStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(ui.SectionHeader("MESSAGE", ui.ColorDarkGray))
	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(r.Commit.Message, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString(m.footer("↑/↓ next commit · esc back · q quit"))
	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + ui.FailStyle.Render("Error: ") + m.errorMessage + "\n")
	b.WriteString(m.footer("q quit"))
	return b.String()
}

func (m Model) footer(help string) string {
	return "\n" + ui.SkipStyle.Render("  "+help) + "\n"
}

// truncate shortens a string to fit the available width without
// splitting multi-byte runes
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
