package toolchain

import (
	"context"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
)

// RuffGate checks Python formatting with ruff.
// The ruff binary path can be overridden with $RUFF_FORMAT_PATH.
type RuffGate struct {
	// Runner executes the tool (ExecRunner in production)
	Runner Runner
	// Dir is the repository root the tool runs in
	Dir string
	// StyleConfig is an optional path to a ruff.toml style file
	StyleConfig string
}

func (RuffGate) Name() string { return "ruff" }

func (RuffGate) FriendlyName() string { return "Python code formatter" }

func (RuffGate) Filter(files []string) []string {
	return filterByExt(files, ".py")
}

func (g RuffGate) HasTool(ctx context.Context) bool {
	result, err := g.Runner.Run(ctx, g.path(), []string{"--version"}, g.Dir)
	return err == nil && result.ExitCode == 0
}

func (g RuffGate) Run(ctx context.Context, files []string) models.GateResult {
	result := models.GateResult{Gate: g.Name(), FriendlyName: g.FriendlyName()}

	pyFiles := g.Filter(files)
	if len(pyFiles) == 0 {
		result.Status = models.GateSkipped("no python files changed")
		return result
	}
	result.Files = pyFiles

	args := []string{"format", "--check", "--diff"}
	if g.StyleConfig != "" {
		args = append(args, "--config", g.StyleConfig)
	}
	args = append(args, "--")
	args = append(args, pyFiles...)

	out, err := g.Runner.Run(ctx, g.path(), args, g.Dir)
	if err != nil {
		result.Status = models.GateFailed(err.Error())
		return result
	}

	if out.ExitCode != 0 {
		// Formatting needed, or the tool otherwise failed. The diff (or
		// stderr when there is none) tells the author what to fix.
		detail := out.Stdout
		if detail == "" {
			detail = out.Stderr
		}
		result.Status = models.GateFailed(detail)
		return result
	}

	result.Status = models.GatePassed
	return result
}

func (RuffGate) path() string {
	return toolPath("RUFF_FORMAT_PATH", "ruff")
}
