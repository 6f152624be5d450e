package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testRepo wraps a throwaway repository for commit-walk tests
type testRepo struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return &testRepo{t: t, dir: dir, repo: repo}
}

func (r *testRepo) write(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.dir, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0644))
}

func (r *testRepo) commit(message string, files ...string) plumbing.Hash {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	require.NoError(r.t, err)
	for _, f := range files {
		_, err := wt.Add(f)
		require.NoError(r.t, err)
	}
	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "alice",
			Email: "alice@is.ic",
			When:  time.Now(),
		},
	})
	require.NoError(r.t, err)
	return hash
}

func (r *testRepo) remove(name string) {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	require.NoError(r.t, err)
	_, err = wt.Remove(name)
	require.NoError(r.t, err)
}

func TestCommitsBetween(t *testing.T) {
	r := newTestRepo(t)

	r.write("a.txt", "one")
	base := r.commit("chore[repo]: initial import", "a.txt")

	r.write("a.txt", "two")
	r.commit("feat[auth]: add login\n\nProblem:\np\n\nSolution:\ns\n\nTest:\nt\n\nJIRA: AUTH-1\n", "a.txt")

	r.write("b.txt", "three")
	head := r.commit("fix[api]: handle nil", "b.txt")

	commits, err := CommitsBetween(r.dir, base.String(), head.String())
	require.NoError(t, err)
	require.Len(t, commits, 2)

	// Newest first
	assert.Equal(t, "fix[api]: handle nil", commits[0].Subject)
	assert.Equal(t, "feat[auth]: add login", commits[1].Subject)
	assert.Contains(t, commits[1].Message, "JIRA: AUTH-1")
	assert.Equal(t, "alice", commits[0].Author)
	assert.Equal(t, "alice@is.ic", commits[0].Email)
	assert.Len(t, commits[0].Hash, 7)
}

func TestCommitsBetween_EmptyRange(t *testing.T) {
	r := newTestRepo(t)
	r.write("a.txt", "one")
	head := r.commit("chore[repo]: initial import", "a.txt")

	commits, err := CommitsBetween(r.dir, head.String(), head.String())
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestCommitsBetween_UnknownRevision(t *testing.T) {
	r := newTestRepo(t)
	r.write("a.txt", "one")
	head := r.commit("chore[repo]: initial import", "a.txt")

	_, err := CommitsBetween(r.dir, "does-not-exist", head.String())
	var notFound *RevisionNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "does-not-exist", notFound.Rev)
}

func TestCommitMessage_HEAD(t *testing.T) {
	r := newTestRepo(t)
	r.write("a.txt", "one")
	r.commit("feat[auth]: add login", "a.txt")

	info, err := CommitMessage(r.dir, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "feat[auth]: add login", info.Subject)
	assert.Equal(t, "alice", info.Author)
}

func TestChangedFilesBetween(t *testing.T) {
	r := newTestRepo(t)

	r.write("keep.py", "x = 1\n")
	r.write("gone.py", "y = 2\n")
	base := r.commit("chore[repo]: initial import", "keep.py", "gone.py")

	r.write("keep.py", "x = 2\n")
	r.write("new/module.cpp", "int main() {}\n")
	r.remove("gone.py")
	head := r.commit("refactor[core]: rework", "keep.py", "new/module.cpp")

	files, err := ChangedFilesBetween(r.dir, base.String(), head.String())
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.py", "new/module.cpp"}, files)
	assert.NotContains(t, files, "gone.py")
}

func TestFindRepoRoot(t *testing.T) {
	r := newTestRepo(t)
	r.write("sub/dir/file.txt", "x")

	root, err := FindRepoRoot(filepath.Join(r.dir, "sub", "dir"))
	require.NoError(t, err)

	// Resolve symlinks before comparing (macOS /var vs /private/var)
	want, _ := filepath.EvalSymlinks(r.dir)
	got, _ := filepath.EvalSymlinks(root)
	assert.Equal(t, want, got)
}

func TestFindRepoRoot_NotARepo(t *testing.T) {
	_, err := FindRepoRoot(t.TempDir())
	assert.Error(t, err)
}

func TestGetRepoInfo(t *testing.T) {
	r := newTestRepo(t)
	r.write("a.txt", "one")
	r.commit("chore[repo]: initial import", "a.txt")

	info, err := GetRepoInfo(r.dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(r.dir), info.DisplayName)
	assert.Equal(t, "master", info.MainBranch)
}
