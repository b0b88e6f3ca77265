package browserurl

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openrepo/internal/config"
	"openrepo/internal/gitroot"
	"openrepo/internal/gitutil"
	"openrepo/internal/location"
	"openrepo/internal/testutil"
)

func newTestResolver(cfg config.Config) *Resolver {
	r := NewResolver(cfg)
	r.Logger = log.New(io.Discard)
	return r
}

func TestResolveEndToEnd(t *testing.T) {
	repo := testutil.NewRepo(t, "main", map[string]string{"origin": "git@github.com:acme/widget.git"},
		map[string]string{"src/app.ts": "export {}\n", "docs/my notes.md": "x"})
	r := newTestResolver(config.Default())
	ctx := context.Background()

	res, err := r.Resolve(ctx, Request{
		FilePath:   repo.Path("src/app.ts"),
		Selections: []location.Selection{{StartLine: 9, EndLine: 19}},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widget/blob/main/src/app.ts#L10-L20", res.URL)
	assert.Equal(t, "Open in github.com", res.Tooltip)
	assert.Equal(t, repo.Dir, res.Root)
	assert.Equal(t, repo.Head.String(), res.Info.CommitHash)

	res, err = r.Resolve(ctx, Request{StartDir: repo.Path("src")})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widget/blob/main", res.URL)

	res, err = r.Resolve(ctx, Request{FilePath: repo.Path("docs/my notes.md")})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widget/blob/main/docs/my%20notes.md", res.URL)
}

func TestResolveFixedBranchAndCursor(t *testing.T) {
	repo := testutil.NewRepo(t, "feature", map[string]string{"origin": "https://gitlab.com/acme/widget.git"},
		map[string]string{"a.go": "package a\n"})
	cfg := config.Default()
	cfg.UseLocalBranch = false
	cfg.Branch = "master"
	cursor := []location.Selection{{StartLine: 4, EndLine: 4, Empty: true}}

	res, err := newTestResolver(cfg).Resolve(context.Background(), Request{FilePath: repo.Path("a.go"), Selections: cursor})
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.com/acme/widget/blob/master/a.go", res.URL)

	cfg.UseLocalLine = true
	res, err = newTestResolver(cfg).Resolve(context.Background(), Request{FilePath: repo.Path("a.go"), Selections: cursor})
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.com/acme/widget/blob/master/a.go#L5", res.URL)
}

func TestResolveDetachedHead(t *testing.T) {
	repo := testutil.NewRepo(t, "main", map[string]string{"origin": "git@github.com:acme/widget.git"},
		map[string]string{"a.go": "package a\n"})
	repo.Detach(t)

	res, err := newTestResolver(config.Default()).Resolve(context.Background(), Request{FilePath: repo.Path("a.go")})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widget/blob/"+repo.Head.String()+"/a.go", res.URL)
}

func TestResolveMissingRemote(t *testing.T) {
	repo := testutil.NewRepo(t, "main", map[string]string{"upstream": "git@github.com:up/widget.git"},
		map[string]string{"a.go": "package a\n"})

	res, err := newTestResolver(config.Default()).Resolve(context.Background(), Request{FilePath: repo.Path("a.go")})
	require.NoError(t, err)
	assert.Empty(t, res.Info.RepoURL)
	assert.Equal(t, "main", res.Info.Branch)
	assert.Equal(t, repo.Head.String(), res.Info.CommitHash)
	assert.False(t, Available(res.URL))
}

func TestResolveProjectConfig(t *testing.T) {
	repo := testutil.NewRepo(t, "main", map[string]string{
		"origin":   "git@github.com:acme/widget.git",
		"upstream": "git@github.com:up/widget.git",
	}, map[string]string{"a.go": "package a\n"})
	require.NoError(t, os.WriteFile(filepath.Join(repo.Dir, config.ProjectFile), []byte("remote_name = \"upstream\"\n"), 0o644))

	r := newTestResolver(config.Default())
	res, err := r.Resolve(context.Background(), Request{FilePath: repo.Path("a.go")})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/up/widget/blob/main/a.go", res.URL)

	r.SkipProjectConfig = true
	res, err = r.Resolve(context.Background(), Request{FilePath: repo.Path("a.go")})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widget/blob/main/a.go", res.URL)
}

func TestResolveNotFound(t *testing.T) {
	dir := t.TempDir()
	r := newTestResolver(config.Default())
	r.Locator = gitroot.New(memfs.New())

	_, err := r.Resolve(context.Background(), Request{StartDir: dir})
	assert.ErrorIs(t, err, gitroot.ErrNotFound)
}

func TestResolveClientFailure(t *testing.T) {
	repo := testutil.NewRepo(t, "main", nil, nil)
	boom := errors.New("spawn failed")
	r := newTestResolver(config.Default())
	r.Open = func(dir, backend string) (gitutil.Client, error) { return nil, boom }

	_, err := r.Resolve(context.Background(), Request{StartDir: repo.Dir})
	assert.ErrorIs(t, err, boom)
}
