package git

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/attuned.cichecks/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRepoRoot walks up from start until it finds a git repository root
func FindRepoRoot(start string) (string, error) {
	path := start
	for {
		if IsGitRepo(path) {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", os.ErrNotExist
		}
		path = parent
	}
}

// GetRepoInfo opens a repository and gets basic info
func GetRepoInfo(path string) (*models.RepoInfo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}

	mainBranch, err := DetectMainBranch(repo)
	if err != nil {
		return nil, err
	}

	info := models.NewRepoInfo(path, filepath.Base(path), mainBranch)
	return &info, nil
}

// GetCurrentRepoInfo gets info for the repository containing the working directory
func GetCurrentRepoInfo() (*models.RepoInfo, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindRepoRoot(cwd)
	if err != nil {
		return nil, err
	}

	return GetRepoInfo(root)
}

// DetectMainBranch determines if the repo uses "main" or "master"
func DetectMainBranch(repo *git.Repository) (string, error) {
	refs, err := repo.References()
	if err != nil {
		return "main", nil
	}

	present := make(map[string]bool)
	refs.ForEach(func(ref *plumbing.Reference) error {
		present[ref.Name().String()] = true
		return nil
	})

	// Prefer remote refs over local ones
	for _, name := range []string{
		"refs/remotes/origin/main",
		"refs/remotes/origin/master",
		"refs/heads/main",
		"refs/heads/master",
	} {
		if present[name] {
			return filepath.Base(name), nil
		}
	}

	return "main", nil
}

// FetchBranches fetches specified branches from origin using the git CLI
// (to inherit the SSH agent)
func FetchBranches(repoPath string, branches []string) error {
	args := append([]string{"fetch", "origin"}, branches...)
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		outputStr := strings.TrimSpace(string(output))
		if strings.Contains(outputStr, "couldn't find remote ref") {
			return &RevisionNotFoundError{Rev: strings.Join(branches, ", ")}
		}
		if outputStr != "" {
			return &GitError{Op: "fetch", Err: errors.New(outputStr)}
		}
		return &GitError{Op: "fetch", Err: errors.New("failed to fetch from remote (check network/auth)")}
	}

	return nil
}

// GitError provides better context for git operation failures
type GitError struct {
	Op  string
	Err error
}

func (e *GitError) Error() string {
	return "git " + e.Op + ": " + e.Err.Error()
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// RevisionNotFoundError indicates a revision could not be resolved
type RevisionNotFoundError struct {
	Rev string
}

func (e *RevisionNotFoundError) Error() string {
	return "revision not found: " + e.Rev
}
