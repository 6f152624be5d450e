package git

import (
	"sort"

	"github.com/wahlandcase/attuned.cichecks/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitsBetween returns the commits reachable from endRev but not from
// startRev (git log startRev..endRev), newest first, with full messages
// and author identity for validation.
func CommitsBetween(repoPath, startRev, endRev string) ([]models.CommitInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	startHash, err := repo.ResolveRevision(plumbing.Revision(startRev))
	if err != nil {
		return nil, &RevisionNotFoundError{Rev: startRev}
	}

	endHash, err := repo.ResolveRevision(plumbing.Revision(endRev))
	if err != nil {
		return nil, &RevisionNotFoundError{Rev: endRev}
	}

	// Build set of commits reachable from the start revision
	startCommits := make(map[plumbing.Hash]bool)
	startIter, err := repo.Log(&git.LogOptions{From: *startHash})
	if err != nil {
		return nil, &GitError{Op: "log " + startRev, Err: err}
	}
	startIter.ForEach(func(c *object.Commit) error {
		startCommits[c.Hash] = true
		return nil
	})

	endIter, err := repo.Log(&git.LogOptions{From: *endHash})
	if err != nil {
		return nil, &GitError{Op: "log " + endRev, Err: err}
	}

	var commits []models.CommitInfo
	seen := make(map[plumbing.Hash]bool)
	err = endIter.ForEach(func(c *object.Commit) error {
		// Skip if already processed or reachable from start.
		// Don't stop iteration - merge commits have multiple parents
		// and we need to traverse all paths to find range commits.
		if seen[c.Hash] || startCommits[c.Hash] {
			return nil
		}
		seen[c.Hash] = true

		hash := c.Hash.String()[:7]
		commits = append(commits, models.NewCommitInfo(hash, c.Message, c.Author.Name, c.Author.Email))
		return nil
	})

	if err != nil {
		return nil, err
	}

	return commits, nil
}

// CommitMessage returns the full message and author of a single revision
func CommitMessage(repoPath, rev string) (*models.CommitInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, &RevisionNotFoundError{Rev: rev}
	}

	c, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, &GitError{Op: "show " + rev, Err: err}
	}

	info := models.NewCommitInfo(c.Hash.String()[:7], c.Message, c.Author.Name, c.Author.Email)
	return &info, nil
}

// ChangedFilesBetween returns the paths touched between two revisions,
// excluding deletions (a file that no longer exists cannot be formatted).
func ChangedFilesBetween(repoPath, startRev, endRev string) ([]string, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	startTree, err := treeAt(repo, startRev)
	if err != nil {
		return nil, err
	}
	endTree, err := treeAt(repo, endRev)
	if err != nil {
		return nil, err
	}

	changes, err := startTree.Diff(endTree)
	if err != nil {
		return nil, &GitError{Op: "diff " + startRev + ".." + endRev, Err: err}
	}

	fileSet := make(map[string]bool)
	for _, change := range changes {
		if change.To.Name == "" {
			continue // deletion
		}
		fileSet[change.To.Name] = true
	}

	files := make([]string, 0, len(fileSet))
	for f := range fileSet {
		files = append(files, f)
	}
	sort.Strings(files)

	return files, nil
}

func treeAt(repo *git.Repository, rev string) (*object.Tree, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, &RevisionNotFoundError{Rev: rev}
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, &GitError{Op: "show " + rev, Err: err}
	}

	return commit.Tree()
}
