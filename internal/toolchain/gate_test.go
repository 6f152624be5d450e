package toolchain

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
)

// stubRunner records invocations and returns a canned result
type stubRunner struct {
	result CmdResult
	err    error

	name string
	args []string
	dir  string
}

func (s *stubRunner) Run(_ context.Context, name string, args []string, dir string) (CmdResult, error) {
	s.name = name
	s.args = args
	s.dir = dir
	return s.result, s.err
}

func TestRuffGate_Filter(t *testing.T) {
	g := RuffGate{}
	files := []string{"a.py", "b.cpp", "dir/c.py", "README.md", "script"}
	assert.Equal(t, []string{"a.py", "dir/c.py"}, g.Filter(files))
}

func TestRuffGate_SkipsWithoutPythonFiles(t *testing.T) {
	runner := &stubRunner{}
	g := RuffGate{Runner: runner, Dir: "/repo"}

	result := g.Run(context.Background(), []string{"main.cpp", "notes.txt"})
	assert.True(t, models.IsGateSkipped(result.Status))
	assert.Empty(t, runner.name, "tool must not be invoked for an empty file set")
}

func TestRuffGate_Passes(t *testing.T) {
	runner := &stubRunner{result: CmdResult{ExitCode: 0}}
	g := RuffGate{Runner: runner, Dir: "/repo", StyleConfig: "ci/ruff.toml"}

	result := g.Run(context.Background(), []string{"a.py"})
	assert.True(t, models.IsGatePassed(result.Status))
	assert.Equal(t, []string{"a.py"}, result.Files)

	assert.Equal(t, "ruff", runner.name)
	assert.Equal(t, []string{"format", "--check", "--diff", "--config", "ci/ruff.toml", "--", "a.py"}, runner.args)
	assert.Equal(t, "/repo", runner.dir)
}

func TestRuffGate_FailsWithDiff(t *testing.T) {
	runner := &stubRunner{result: CmdResult{ExitCode: 1, Stdout: "--- a.py\n+++ a.py\n"}}
	g := RuffGate{Runner: runner, Dir: "/repo"}

	result := g.Run(context.Background(), []string{"a.py"})
	require.True(t, models.IsGateFailed(result.Status))
	assert.Contains(t, models.GateStatusDetail(result.Status), "--- a.py")
}

func TestRuffGate_FailsWithoutDiff(t *testing.T) {
	// Tool failed without printing a diff (infrastructure failure): still a failure
	runner := &stubRunner{result: CmdResult{ExitCode: 2, Stderr: "ruff exploded"}}
	g := RuffGate{Runner: runner, Dir: "/repo"}

	result := g.Run(context.Background(), []string{"a.py"})
	require.True(t, models.IsGateFailed(result.Status))
	assert.Equal(t, "ruff exploded", models.GateStatusDetail(result.Status))
}

func TestClangFormatGate_Filter(t *testing.T) {
	g := ClangFormatGate{}
	files := []string{
		"src/a.cpp", "src/b.h", "src/c.py", "libcxx/include/vector",
		"docs/guide", "mod.cppm", "kernel.cl",
	}
	got := g.Filter(files)
	assert.ElementsMatch(t, []string{"src/a.cpp", "src/b.h", "libcxx/include/vector", "mod.cppm", "kernel.cl"}, got)
}

func TestClangFormatGate_ExtensionsArg(t *testing.T) {
	runner := &stubRunner{result: CmdResult{ExitCode: 0}}
	g := ClangFormatGate{Runner: runner, Dir: "/repo", StartRev: "abc", EndRev: "def"}

	result := g.Run(context.Background(), []string{"a.cpp", "b.h", "c.cpp"})
	assert.True(t, models.IsGatePassed(result.Status))

	assert.Equal(t, "git-clang-format", runner.name)
	assert.Equal(t, []string{"--diff", "abc", "def", "--extensions", "cpp,h", "--", "a.cpp", "b.h", "c.cpp"}, runner.args)
}

func TestMypyGate_Run(t *testing.T) {
	runner := &stubRunner{result: CmdResult{ExitCode: 1, Stdout: "a.py:3: error: bad type"}}
	g := MypyGate{Runner: runner, Dir: "/repo"}

	result := g.Run(context.Background(), []string{"a.py", "b.cpp"})
	require.True(t, models.IsGateFailed(result.Status))
	assert.Equal(t, []string{"a.py"}, runner.args)
	assert.Contains(t, models.GateStatusDetail(result.Status), "error: bad type")
}

func TestMypyGate_SkipsWithoutPythonFiles(t *testing.T) {
	g := MypyGate{Runner: &stubRunner{}, Dir: "/repo"}
	result := g.Run(context.Background(), []string{"a.cpp"})
	assert.True(t, models.IsGateSkipped(result.Status))
}

func TestRunAll(t *testing.T) {
	pass := &stubRunner{result: CmdResult{ExitCode: 0}}
	fail := &stubRunner{result: CmdResult{ExitCode: 1, Stdout: "diff"}}

	gates := []Gate{
		RuffGate{Runner: fail, Dir: "/repo"},
		MypyGate{Runner: pass, Dir: "/repo"},
	}

	results := RunAll(context.Background(), gates, []string{"a.py"}, zerolog.Nop())
	require.Len(t, results, 2)
	assert.True(t, models.IsGateFailed(results[0].Status))
	assert.True(t, models.IsGatePassed(results[1].Status))
}

func TestExcludeFiles(t *testing.T) {
	files := []string{"a.py", "test/unittests/lit.cfg.py", "b.py"}
	got := ExcludeFiles(files, []string{"test/unittests/lit.cfg.py"})
	assert.Equal(t, []string{"a.py", "b.py"}, got)

	assert.Equal(t, files, ExcludeFiles(files, nil))
}

func TestExecRunner_ExitCodes(t *testing.T) {
	runner := ExecRunner{}

	result, err := runner.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2; exit 3"}, "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Contains(t, result.Stdout, "out")
	assert.Contains(t, result.Stderr, "err")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	runner := ExecRunner{}
	_, err := runner.Run(context.Background(), "definitely-not-a-real-tool-xyz", nil, "")
	assert.Error(t, err)
}
