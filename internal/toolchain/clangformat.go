package toolchain

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
)

// cppExtensions are the file extensions handed to git-clang-format
var cppExtensions = []string{
	".cpp", ".c", ".cc", ".h", ".hpp", ".hxx", ".cxx", ".inc", ".cppm", ".cl",
}

// ClangFormatGate checks C/C++ formatting with git-clang-format.
// The binary path can be overridden with $CLANG_FORMAT_PATH.
type ClangFormatGate struct {
	// Runner executes the tool (ExecRunner in production)
	Runner Runner
	// Dir is the repository root the tool runs in
	Dir string
	// StartRev and EndRev bound the diff when both are set
	StartRev string
	EndRev   string
}

func (ClangFormatGate) Name() string { return "clang-format" }

func (ClangFormatGate) FriendlyName() string { return "C/C++ code formatter" }

func (ClangFormatGate) Filter(files []string) []string {
	filtered := filterByExt(files, cppExtensions...)
	for _, f := range files {
		// Extensionless headers under libcxx/include are formatted too
		if filepath.Ext(f) == "" && strings.HasPrefix(f, "libcxx/include") {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func (g ClangFormatGate) HasTool(ctx context.Context) bool {
	result, err := g.Runner.Run(ctx, g.path(), []string{"-h"}, g.Dir)
	return err == nil && result.ExitCode == 0
}

func (g ClangFormatGate) Run(ctx context.Context, files []string) models.GateResult {
	result := models.GateResult{Gate: g.Name(), FriendlyName: g.FriendlyName()}

	cppFiles := g.Filter(files)
	if len(cppFiles) == 0 {
		result.Status = models.GateSkipped("no C/C++ files changed")
		return result
	}
	result.Files = cppFiles

	args := []string{"--diff"}
	if g.StartRev != "" && g.EndRev != "" {
		args = append(args, g.StartRev, g.EndRev)
	}

	// Pass the extensions of the changed files explicitly so
	// git-clang-format doesn't apply its own filtering on top of ours.
	// Periods are stripped since it takes extensions without them.
	extSet := make(map[string]bool)
	for _, f := range cppFiles {
		ext := strings.TrimPrefix(filepath.Ext(f), ".")
		if ext != "" {
			extSet[ext] = true
		}
	}
	exts := make([]string, 0, len(extSet))
	for ext := range extSet {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	if len(exts) > 0 {
		args = append(args, "--extensions", strings.Join(exts, ","))
	}

	args = append(args, "--")
	args = append(args, cppFiles...)

	out, err := g.Runner.Run(ctx, g.path(), args, g.Dir)
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

func (ClangFormatGate) path() string {
	return toolPath("CLANG_FORMAT_PATH", "git-clang-format")
}
