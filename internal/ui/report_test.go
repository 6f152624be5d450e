package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
)

func init() {
	// Deterministic output regardless of the test terminal
	DisableColors()
}

func sampleResults() []models.CheckResult {
	return []models.CheckResult{
		{
			Commit: models.NewCommitInfo("abc1234", "feat[auth]: add login", "alice", "alice@is.ic"),
		},
		{
			Commit: models.NewCommitInfo("def5678", "wip stuff", "bob", "bob@is.ic"),
			Violations: []models.Violation{
				{Kind: models.MalformedHeader, Excerpt: "wip stuff", Line: 1},
				{Kind: models.MissingSection, Section: "Test"},
			},
		},
	}
}

func TestRenderCheckReport_AllPassing(t *testing.T) {
	results := []models.CheckResult{
		{Commit: models.NewCommitInfo("abc1234", "feat[auth]: add login", "alice", "alice@is.ic")},
	}
	out := RenderCheckReport(results)
	assert.Contains(t, out, "All commits match the template!")
	assert.Contains(t, out, "(1 checked)")
}

func TestRenderCheckReport_WithFailures(t *testing.T) {
	out := RenderCheckReport(sampleResults())

	assert.Contains(t, out, "Found 1 commits that don't match the template:")
	assert.Contains(t, out, "def5678")
	assert.Contains(t, out, "wip stuff")
	assert.Contains(t, out, "Missing 'Test:' section")
	assert.NotContains(t, out, "abc1234", "passing commits are not listed")
}

func TestDiagnosticLines(t *testing.T) {
	lines := DiagnosticLines(sampleResults())
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "def5678")
	assert.Contains(t, lines[0], "MalformedHeader")
	assert.Contains(t, lines[0], `"wip stuff"`)
	assert.Contains(t, lines[1], "MissingSection")
}

func TestRenderGateReport(t *testing.T) {
	results := []models.GateResult{
		{Gate: "ruff", FriendlyName: "Python code formatter", Status: models.GatePassed, Files: []string{"a.py"}},
		{Gate: "clang-format", FriendlyName: "C/C++ code formatter", Status: models.GateSkipped("no C/C++ files changed")},
		{Gate: "mypy", FriendlyName: "Static Typing for Python", Status: models.GateFailed("a.py:3: error: bad type")},
	}

	out := RenderGateReport(results)
	assert.Contains(t, out, "1 files clean")
	assert.Contains(t, out, "skipped, no C/C++ files changed")
	assert.Contains(t, out, "detected some issues")
	assert.Contains(t, out, "a.py:3: error: bad type")
}

func TestRenderGateReport_FailureWithoutOutput(t *testing.T) {
	out := RenderGateReport([]models.GateResult{
		{Gate: "ruff", FriendlyName: "Python code formatter", Status: models.GateFailed("")},
	})
	assert.Contains(t, out, "tool failed without printing a diff")
}

func TestSectionHeader(t *testing.T) {
	out := SectionHeader("RESULTS", ColorCyan)
	assert.True(t, strings.Contains(out, "RESULTS"))
	assert.True(t, strings.Contains(out, "───"))
}
