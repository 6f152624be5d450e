package github

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
)

// CheckAuth verifies gh CLI is authenticated
func CheckAuth() error {
	cmd := exec.Command("gh", "auth", "status")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("not authenticated with GitHub CLI. Run 'gh auth login' first")
	}
	return nil
}

// GetPR gets PR details by number, including its base and head refs
func GetPR(repoPath string, prNumber uint64) (*models.GhPr, error) {
	cmd := exec.Command("gh", "pr", "view",
		strconv.FormatUint(prNumber, 10),
		"--json", "number,url,title,state,baseRefName,headRefName",
	)
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("gh pr view failed: %w", err)
	}

	var pr models.GhPr
	if err := json.Unmarshal(output, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse gh pr view output: %w", err)
	}

	return &pr, nil
}

// PrRange resolves the revision range a PR covers: the PR's commits are the
// ones reachable from the head ref but not the base ref.
func PrRange(repoPath string, prNumber uint64) (startRev, endRev string, err error) {
	pr, err := GetPR(repoPath, prNumber)
	if err != nil {
		return "", "", err
	}
	if pr.BaseRefName == "" || pr.HeadRefName == "" {
		return "", "", fmt.Errorf("PR #%d has no base/head refs", prNumber)
	}
	return "origin/" + pr.BaseRefName, "origin/" + pr.HeadRefName, nil
}
