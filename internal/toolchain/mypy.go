package toolchain

import (
	"context"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
)

// MypyGate checks static typing for Python with mypy.
// The mypy binary path can be overridden with $MYPY_PATH.
type MypyGate struct {
	// Runner executes the tool (ExecRunner in production)
	Runner Runner
	// Dir is the repository root the tool runs in
	Dir string
}

func (MypyGate) Name() string { return "mypy" }

func (MypyGate) FriendlyName() string { return "Static Typing for Python" }

func (MypyGate) Filter(files []string) []string {
	return filterByExt(files, ".py")
}

func (g MypyGate) HasTool(ctx context.Context) bool {
	result, err := g.Runner.Run(ctx, g.path(), []string{"--version"}, g.Dir)
	return err == nil && result.ExitCode == 0
}

func (g MypyGate) Run(ctx context.Context, files []string) models.GateResult {
	result := models.GateResult{Gate: g.Name(), FriendlyName: g.FriendlyName()}

	pyFiles := g.Filter(files)
	if len(pyFiles) == 0 {
		result.Status = models.GateSkipped("no python files changed")
		return result
	}
	result.Files = pyFiles

	out, err := g.Runner.Run(ctx, g.path(), pyFiles, g.Dir)
	if err != nil {
		result.Status = models.GateFailed(err.Error())
		return result
	}

	if out.ExitCode != 0 {
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

func (MypyGate) path() string {
	return toolPath("MYPY_PATH", "mypy")
}
