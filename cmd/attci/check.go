package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wahlandcase/attuned.cichecks/internal/app"
	"github.com/wahlandcase/attuned.cichecks/internal/config"
	"github.com/wahlandcase/attuned.cichecks/internal/git"
	"github.com/wahlandcase/attuned.cichecks/internal/github"
	"github.com/wahlandcase/attuned.cichecks/internal/lint"
	"github.com/wahlandcase/attuned.cichecks/internal/models"
	"github.com/wahlandcase/attuned.cichecks/internal/ui"
)

func newLogCmd() *cobra.Command {
	var (
		startRev    string
		endRev      string
		prNumber    uint64
		interactive bool
		plain       bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Check that commits in a range match the message template",
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

			startRev, endRev, err = resolveRange(root, startRev, endRev, prNumber)
			if err != nil {
				return err
			}

			if interactive {
				model := app.New(cfg, root, startRev, endRev)
				p := tea.NewProgram(model, tea.WithAltScreen())
				final, err := p.Run()
				if err != nil {
					return fmt.Errorf("error running program: %w", err)
				}
				if m, ok := final.(app.Model); ok && models.CountFailed(m.Results()) > 0 {
					exitCode = 1
				}
				return nil
			}

			commits, err := git.CommitsBetween(root, startRev, endRev)
			if err != nil {
				return err
			}

			results := checkCommits(cfg, commits)
			if plain {
				for _, line := range ui.DiagnosticLines(results) {
					fmt.Println(line)
				}
			} else {
				fmt.Print(ui.RenderCheckReport(results))
			}

			if models.CountFailed(results) > 0 {
				exitCode = 1
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startRev, "start-rev", "", "Start of the commit range (defaults to the main branch)")
	cmd.Flags().StringVar(&endRev, "end-rev", "HEAD", "End of the commit range")
	cmd.Flags().Uint64Var(&prNumber, "pr", 0, "Check the commits of a GitHub pull request")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse results in a TUI")
	cmd.Flags().BoolVar(&plain, "plain", false, "One diagnostic per line, suitable for CI annotations")

	return cmd
}

func newMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message [file]",
		Short: "Check a single commit message from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			var text []byte
			if len(args) == 0 || args[0] == "-" {
				text, err = io.ReadAll(os.Stdin)
			} else {
				text, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read message: %w", err)
			}

			_, violations := lint.Validate(string(text), cfg.Rules())
			if len(violations) == 0 {
				fmt.Println(ui.PassStyle.Render("✓ Message matches the template"))
				return nil
			}

			for _, v := range violations {
				line := "✗ " + v.Message()
				if v.Excerpt != "" {
					line += " (" + v.Excerpt + ")"
				}
				fmt.Println(ui.FailStyle.Render(line))
			}
			exitCode = 1
			return nil
		},
	}

	return cmd
}

// resolveRange turns the log command's flags into a concrete rev pair. A PR
// number wins over explicit revs; an empty start falls back to the repo's
// main branch.
func resolveRange(root, startRev, endRev string, prNumber uint64) (string, string, error) {
	if prNumber > 0 {
		if err := github.CheckAuth(); err != nil {
			return "", "", err
		}
		start, end, err := github.PrRange(root, prNumber)
		if err != nil {
			return "", "", err
		}
		branches := []string{
			strings.TrimPrefix(start, "origin/"),
			strings.TrimPrefix(end, "origin/"),
		}
		if err := git.FetchBranches(root, branches); err != nil {
			return "", "", err
		}
		return start, end, nil
	}

	if startRev == "" {
		info, err := git.GetRepoInfo(root)
		if err != nil {
			return "", "", err
		}
		startRev = info.MainBranch
	}
	return startRev, endRev, nil
}

func checkCommits(cfg *config.Config, commits []models.CommitInfo) []models.CheckResult {
	rules := cfg.Rules()
	results := make([]models.CheckResult, 0, len(commits))
	for _, c := range commits {
		_, violations := lint.Validate(c.Message, rules)
		if v := lint.ValidateAuthor(c.Author, c.Email, rules); v != nil {
			violations = append(violations, *v)
		}
		results = append(results, models.CheckResult{Commit: c, Violations: violations})
	}
	return results
}

func repoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return git.FindRepoRoot(cwd)
}
