// Package testutil builds throwaway git repositories for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Repo is a repository created under t.TempDir().
type Repo struct {
	Dir  string
	Git  *git.Repository
	Head plumbing.Hash
}

// NewRepo initialises a repository on branch and commits the given files
// (path -> content). Remotes maps remote name to URL.
func NewRepo(t *testing.T, branch string, remotes map[string]string, files map[string]string) *Repo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err, "init repository")

	if branch != "" {
		err = repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch)))
		require.NoError(t, err, "point HEAD at %s", branch)
	}

	for name, url := range remotes {
		_, err = repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
		require.NoError(t, err, "create remote %s", name)
	}

	r := &Repo{Dir: dir, Git: repo}
	if len(files) > 0 {
		r.Commit(t, files)
	}
	return r
}

// Commit writes files and records them in a new commit on HEAD.
func (r *Repo) Commit(t *testing.T, files map[string]string) plumbing.Hash {
	t.Helper()

	wt, err := r.Git.Worktree()
	require.NoError(t, err, "worktree")
	for name, content := range files {
		full := filepath.Join(r.Dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
		_, err = wt.Add(name)
		require.NoError(t, err, "add %s", name)
	}
	hash, err := wt.Commit("test commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Unix(1700000000, 0)},
	})
	require.NoError(t, err, "commit")
	r.Head = hash
	return hash
}

// Detach points HEAD directly at the current commit.
func (r *Repo) Detach(t *testing.T) {
	t.Helper()
	require.NoError(t, r.Git.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, r.Head)))
}

// Path returns the absolute path of a repository-relative slash path.
func (r *Repo) Path(rel string) string {
	return filepath.Join(r.Dir, filepath.FromSlash(rel))
}
