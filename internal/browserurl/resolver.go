package browserurl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"openrepo/internal/config"
	"openrepo/internal/gitroot"
	"openrepo/internal/gitutil"
	"openrepo/internal/location"
	"openrepo/internal/repoinfo"
)

// Request is the editor state a URL is resolved for. StartDir is used when
// no FilePath is given.
type Request struct {
	StartDir   string
	FilePath   string
	Selections []location.Selection
}

type Result struct {
	URL      string
	Tooltip  string
	Root     string
	Info     repoinfo.Info
	Location location.Location
}

// Resolver runs the whole lookup: repository root, remote info, file
// location and composition.
type Resolver struct {
	Config  config.Config
	Locator *gitroot.Locator
	// Open creates the git client for a repository root; nil uses gitutil.Open.
	Open   func(dir, backend string) (gitutil.Client, error)
	Logger *log.Logger
	// SkipProjectConfig ignores .openrepo.toml in the repository root.
	SkipProjectConfig bool
}

func NewResolver(cfg config.Config) *Resolver {
	return &Resolver{Config: cfg, Locator: gitroot.NewOS(), Open: gitutil.Open, Logger: log.Default()}
}

func (r *Resolver) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

// Resolve returns gitroot.ErrNotFound when the request is outside any
// repository and the git client's error when a query fails.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Result, error) {
	logger := r.logger()

	start := req.StartDir
	if req.FilePath != "" {
		start = filepath.Dir(req.FilePath)
	}
	locator := r.Locator
	if locator == nil {
		locator = gitroot.NewOS()
	}
	root, err := locator.Locate(start)
	if err != nil {
		logger.Debug("no repository", "start", start)
		return Result{}, err
	}
	logger.Debug("located repository", "root", root)

	cfg := r.Config
	if !r.SkipProjectConfig {
		if cfg, err = config.LoadProject(r.Config, root); err != nil {
			logger.Warn("ignoring project config", "err", err)
		}
	}

	open := r.Open
	if open == nil {
		open = gitutil.Open
	}
	client, err := open(root, cfg.Git.Backend)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", root, err)
	}

	info, err := repoinfo.Resolve(ctx, client, repoinfo.Options{
		RemoteName:     cfg.RemoteName,
		Branch:         cfg.Branch,
		UseLocalBranch: cfg.UseLocalBranch,
	})
	if err != nil {
		return Result{}, fmt.Errorf("resolve %s: %w", root, err)
	}
	if info.RepoURL == "" {
		logger.Warn("remote not found", "remote", info.Remote, "suggestions", repoinfo.Suggest(info.Remote, info.Remotes))
	}

	loc := location.Resolve(root, req.FilePath, req.Selections, location.Options{
		UseLocalRange: cfg.UseLocalRange,
		UseLocalLine:  cfg.UseLocalLine,
	})

	res := Result{
		URL:      Compose(info.RepoURL, info.Branch, escapePath(loc.RelativePath), loc.LineFragment),
		Tooltip:  info.Tooltip(),
		Root:     root,
		Info:     info,
		Location: loc,
	}
	logger.Debug("resolved", "url", res.URL, "backend", cfg.Git.Backend)
	return res, nil
}
