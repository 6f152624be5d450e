package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// CmdResult holds the result of a tool invocation
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes external tools. Implementations must be safe for
// stubbing in tests.
type Runner interface {
	// Run executes a command in dir and returns the result.
	// Returns CmdResult with ExitCode set if the process exits (even
	// non-zero). Returns error only for execution failures (binary not
	// found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, dir string) (CmdResult, error)
}

// ExecRunner is the production Runner using os/exec
type ExecRunner struct{}

// Run executes the command and captures stdout/stderr
func (ExecRunner) Run(ctx context.Context, name string, args []string, dir string) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}
