package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// RenderCheckReport renders the commit validation results as a report.
// Every failing commit gets one line per violation so the author can fix
// the whole message in one pass.
func RenderCheckReport(results []models.CheckResult) string {
	var b strings.Builder

	failed := models.CountFailed(results)
	if failed == 0 {
		b.WriteString(PassStyle.Render("All commits match the template!"))
		b.WriteString(fmt.Sprintf(" (%d checked)\n", len(results)))
		return b.String()
	}

	b.WriteString(FailStyle.Render(fmt.Sprintf(
		"Found %d commits that don't match the template:", failed)))
	b.WriteString("\n")

	for _, r := range results {
		if r.Passed() {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			HashStyle.Render(r.Commit.Hash),
			SubjectStyle.Render(r.Commit.Subject)))
		for _, v := range r.Violations {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				FailStyle.Render("✗"),
				DetailStyle.Render(violationLine(v))))
		}
	}

	return b.String()
}

// DiagnosticLines returns one plain line per violation for CI log output:
// commit hash, violation kind, offending excerpt.
func DiagnosticLines(results []models.CheckResult) []string {
	var lines []string
	for _, r := range results {
		for _, v := range r.Violations {
			line := fmt.Sprintf("- Commit %s: %s: %s", r.Commit.Hash, v.Kind, v.Message())
			if v.Excerpt != "" {
				line += fmt.Sprintf(" (%q)", v.Excerpt)
			}
			lines = append(lines, line)
		}
	}
	return lines
}

// RenderGateReport renders the toolchain gate results
func RenderGateReport(results []models.GateResult) string {
	var b strings.Builder

	for _, r := range results {
		switch {
		case models.IsGatePassed(r.Status):
			b.WriteString(fmt.Sprintf("%s %s (%s): %d files clean\n",
				PassStyle.Render("✓"), r.FriendlyName, r.Gate, len(r.Files)))
		case models.IsGateSkipped(r.Status):
			b.WriteString(SkipStyle.Render(fmt.Sprintf("- %s (%s): skipped, %s",
				r.FriendlyName, r.Gate, models.GateStatusDetail(r.Status))))
			b.WriteString("\n")
		default:
			b.WriteString(fmt.Sprintf("%s %s (%s) detected some issues:\n",
				FailStyle.Render("✗"), r.FriendlyName, r.Gate))
			detail := strings.TrimRight(models.GateStatusDetail(r.Status), "\n")
			if detail == "" {
				// The tool failed without printing a diff (e.g. some sort
				// of infrastructure failure). Check the logs for stderr.
				detail = "tool failed without printing a diff"
			}
			for _, line := range strings.Split(detail, "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	return b.String()
}

func violationLine(v models.Violation) string {
	line := v.Message()
	if v.Excerpt != "" {
		line += fmt.Sprintf(": %q", v.Excerpt)
	}
	return line
}
