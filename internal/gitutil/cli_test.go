package gitutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openrepo/internal/testutil"
)

func TestParseRemotes(t *testing.T) {
	out := "upstream\thttps://github.com/up/widget.git (fetch)\n" +
		"origin\tgit@github.com:acme/widget.git (fetch)\n" +
		"origin\tgit@github.com:acme/widget-push.git (push)\n" +
		"upstream\thttps://github.com/up/widget.git (push)\n" +
		"\n"

	got := parseRemotes(out)
	assert.Equal(t, []RemoteRef{
		{Name: "origin", FetchURL: "git@github.com:acme/widget.git", PushURL: "git@github.com:acme/widget-push.git"},
		{Name: "upstream", FetchURL: "https://github.com/up/widget.git", PushURL: "https://github.com/up/widget.git"},
	}, got)
	assert.Empty(t, parseRemotes(""))
}

func TestRemoteRefURL(t *testing.T) {
	assert.Equal(t, "f", RemoteRef{FetchURL: "f", PushURL: "p"}.URL())
	assert.Equal(t, "p", RemoteRef{PushURL: "p"}.URL())
	assert.Empty(t, RemoteRef{}.URL())
}

func TestCLIQueries(t *testing.T) {
	if !IsInstalled() {
		t.Skip("git binary not available")
	}
	ctx := context.Background()
	repo := testutil.NewRepo(t, "main", map[string]string{"origin": "git@github.com:acme/widget.git"},
		map[string]string{"README.md": "hello"})
	c := NewCLI(repo.Dir)

	remotes, err := c.Remotes(ctx)
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	assert.Equal(t, "git@github.com:acme/widget.git", remotes[0].FetchURL)

	branch, err := c.CurrentBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	hash, err := c.ResolveRevision(ctx, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, repo.Head.String(), hash)

	repo.Detach(t)
	_, err = c.CurrentBranch(ctx)
	assert.ErrorIs(t, err, ErrDetachedHead)
}

func TestCLIErrorCarriesStderr(t *testing.T) {
	if !IsInstalled() {
		t.Skip("git binary not available")
	}
	_, err := NewCLI(t.TempDir()).ResolveRevision(context.Background(), "HEAD")
	var gitErr *GitError
	require.ErrorAs(t, err, &gitErr)
	assert.Equal(t, []string{"rev-parse", "--verify", "--end-of-options", "HEAD"}, gitErr.Args)
}
