package gitutil

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendGoGit = "go-git"
	BackendCLI   = "cli"
)

// RemoteRef is one configured remote.
type RemoteRef struct {
	Name     string
	FetchURL string
	PushURL  string
}

// URL returns the fetch URL, or the push URL when no fetch URL is set.
func (r RemoteRef) URL() string {
	if r.FetchURL != "" {
		return r.FetchURL
	}
	return r.PushURL
}

// Client is the subset of git queries needed to build a browser URL.
type Client interface {
	Remotes(ctx context.Context) ([]RemoteRef, error)
	CurrentBranch(ctx context.Context) (string, error)
	ResolveRevision(ctx context.Context, rev string) (string, error)
}

// Open returns a Client for the repository rooted at dir.
// An empty backend selects go-git.
func Open(dir, backend string) (Client, error) {
	switch backend {
	case "", BackendGoGit:
		g, err := OpenGoGit(dir)
		if err != nil {
			return nil, err
		}
		return g, nil
	case BackendCLI:
		return NewCLI(dir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
