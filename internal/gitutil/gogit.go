package gitutil

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGit answers queries by reading the repository with go-git, without
// spawning processes.
type GoGit struct {
	repo *git.Repository
}

func OpenGoGit(dir string) (*GoGit, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotRepository, dir, err)
	}
	return &GoGit{repo: repo}, nil
}

func (g *GoGit) Remotes(ctx context.Context) ([]RemoteRef, error) {
	remotes, err := g.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}
	refs := make([]RemoteRef, 0, len(remotes))
	for _, r := range remotes {
		cfg := r.Config()
		ref := RemoteRef{Name: cfg.Name}
		if len(cfg.URLs) > 0 {
			// go-git has no pushurl; the first url serves both directions.
			ref.FetchURL = cfg.URLs[0]
			ref.PushURL = cfg.URLs[0]
		}
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// CurrentBranch reads the symbolic HEAD, so it also works before the first commit.
func (g *GoGit) CurrentBranch(ctx context.Context) (string, error) {
	head, err := g.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", ErrDetachedHead
	}
	return head.Target().Short(), nil
}

func (g *GoGit) ResolveRevision(ctx context.Context, rev string) (string, error) {
	hash, err := g.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", rev, err)
	}
	return hash.String(), nil
}
