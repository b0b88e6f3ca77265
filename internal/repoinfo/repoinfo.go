package repoinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"openrepo/internal/gitutil"
)

const DefaultRemoteName = "origin"

type Options struct {
	RemoteName     string
	Branch         string
	UseLocalBranch bool
}

// Info describes where a repository is browsable. RepoURL is empty when the
// configured remote does not exist.
type Info struct {
	RepoURL    string
	Branch     string
	CommitHash string
	Domain     string
	Remote     string
	// Remotes lists every remote name seen, for diagnostics.
	Remotes []string
}

// Tooltip is the display hint for the resolved host.
func (i Info) Tooltip() string {
	if i.Domain == "" {
		return ""
	}
	return "Open in " + i.Domain
}

// Resolve queries the git client and builds Info. A missing remote is not an
// error; a failing git query is.
func Resolve(ctx context.Context, client gitutil.Client, opts Options) (Info, error) {
	remotes, err := client.Remotes(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("remotes: %w", err)
	}

	hash, err := client.ResolveRevision(ctx, "HEAD")
	if err != nil {
		return Info{}, fmt.Errorf("head: %w", err)
	}
	hash = strings.TrimSpace(hash)

	branch := opts.Branch
	if opts.UseLocalBranch {
		branch, err = client.CurrentBranch(ctx)
		switch {
		case errors.Is(err, gitutil.ErrDetachedHead):
			branch = hash
		case err != nil:
			return Info{}, fmt.Errorf("branch: %w", err)
		}
	}

	name := opts.RemoteName
	if name == "" {
		name = DefaultRemoteName
	}
	info := Info{Branch: branch, CommitHash: hash, Remote: name}
	for _, r := range remotes {
		info.Remotes = append(info.Remotes, r.Name)
	}
	for _, r := range remotes {
		if r.Name != name {
			continue
		}
		remote := gitutil.Normalize(r.URL())
		info.RepoURL = remote.WebURL
		info.Domain = remote.Domain
		break
	}
	return info, nil
}
