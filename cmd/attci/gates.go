package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/attuned.cichecks/internal/config"
	"github.com/wahlandcase/attuned.cichecks/internal/git"
	"github.com/wahlandcase/attuned.cichecks/internal/log"
	"github.com/wahlandcase/attuned.cichecks/internal/models"
	"github.com/wahlandcase/attuned.cichecks/internal/toolchain"
	"github.com/wahlandcase/attuned.cichecks/internal/ui"
)

func newFormatCmd() *cobra.Command {
	var (
		startRev     string
		endRev       string
		changedFiles []string
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Check formatting of changed files with ruff and git-clang-format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			root, err := repoRoot()
			if err != nil {
				return err
			}

			startRev, endRev, err = resolveRange(root, startRev, endRev, 0)
			if err != nil {
				return err
			}

			files, err := gateFiles(cfg, root, startRev, endRev, changedFiles)
			if err != nil {
				return err
			}

			gates := []toolchain.Gate{
				toolchain.RuffGate{
					Runner:      toolchain.ExecRunner{},
					Dir:         root,
					StyleConfig: cfg.Tools.RuffStyleConfig,
				},
				toolchain.ClangFormatGate{
					Runner:   toolchain.ExecRunner{},
					Dir:      root,
					StartRev: startRev,
					EndRev:   endRev,
				},
			}
			return runGates(cmd.Context(), gates, files)
		},
	}

	cmd.Flags().StringVar(&startRev, "start-rev", "", "Start of the commit range (defaults to the main branch)")
	cmd.Flags().StringVar(&endRev, "end-rev", "HEAD", "End of the commit range")
	cmd.Flags().StringSliceVar(&changedFiles, "changed-files", nil, "Explicit file list instead of the git diff")

	return cmd
}

func newTypingCmd() *cobra.Command {
	var (
		startRev     string
		endRev       string
		changedFiles []string
	)

	cmd := &cobra.Command{
		Use:   "typing",
		Short: "Check static typing of changed Python files with mypy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			root, err := repoRoot()
			if err != nil {
				return err
			}

			startRev, endRev, err = resolveRange(root, startRev, endRev, 0)
			if err != nil {
				return err
			}

			files, err := gateFiles(cfg, root, startRev, endRev, changedFiles)
			if err != nil {
				return err
			}

			gates := []toolchain.Gate{
				toolchain.MypyGate{Runner: toolchain.ExecRunner{}, Dir: root},
			}
			return runGates(cmd.Context(), gates, files)
		},
	}

	cmd.Flags().StringVar(&startRev, "start-rev", "", "Start of the commit range (defaults to the main branch)")
	cmd.Flags().StringVar(&endRev, "end-rev", "HEAD", "End of the commit range")
	cmd.Flags().StringSliceVar(&changedFiles, "changed-files", nil, "Explicit file list instead of the git diff")

	return cmd
}

// gateFiles decides which files the gates look at: an explicit list if given,
// otherwise the files changed between the two revs, minus the configured
// exclusions.
func gateFiles(cfg *config.Config, root, startRev, endRev string, explicit []string) ([]string, error) {
	files := explicit
	if len(files) == 0 {
		var err error
		files, err = git.ChangedFilesBetween(root, startRev, endRev)
		if err != nil {
			return nil, err
		}
	}
	return toolchain.ExcludeFiles(files, cfg.Tools.ExcludedFiles), nil
}

func runGates(ctx context.Context, gates []toolchain.Gate, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for _, g := range gates {
		if len(g.Filter(files)) > 0 && !g.HasTool(ctx) {
			return fmt.Errorf("%s not found (is it installed and on $PATH?)", g.Name())
		}
	}

	results := toolchain.RunAll(ctx, gates, files, log.WithComponent("gates"))
	fmt.Print(ui.RenderGateReport(results))

	for _, r := range results {
		if models.IsGateFailed(r.Status) {
			exitCode = 1
		}
	}
	return nil
}
