package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"openrepo/internal/browserurl"
	"openrepo/internal/config"
	"openrepo/internal/gitroot"
	"openrepo/internal/location"
	"openrepo/internal/run"
	"openrepo/internal/workspace"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath  string
	verbose     bool
	remote      string
	branch      string
	backend     string
	localBranch bool
	localRange  bool
	localLine   bool
	workspaces  []string

	logger *log.Logger
}

func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "openrepo",
		Short:         "Resolve the web URL of a file in its hosted git repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			o.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "openrepo"})
			o.logger.SetLevel(log.WarnLevel)
			if o.verbose {
				o.logger.SetLevel(log.DebugLevel)
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/openrepo/config.yml)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log resolution steps to stderr")
	f.StringVar(&o.remote, "remote", "", "remote to link to (config remote_name)")
	f.StringVar(&o.branch, "branch", "", "fixed branch used when --local-branch=false")
	f.StringVar(&o.backend, "backend", "", "git backend: go-git or cli")
	f.BoolVar(&o.localBranch, "local-branch", true, "link to the checked out branch")
	f.BoolVar(&o.localRange, "local-range", true, "anchor the URL to the selected lines")
	f.BoolVar(&o.localLine, "local-line", false, "anchor the URL to the cursor line when nothing is selected")
	f.StringSliceVarP(&o.workspaces, "workspace", "w", nil, "workspace folder (repeatable)")

	root.AddCommand(newURLCmd(o), newOpenCmd(o), newCopyCmd(o), newWatchCmd(o), newListCmd(o))
	return root
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// config loads the user config and applies flags the user actually set.
func (o *options) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("remote") {
		cfg.RemoteName = o.remote
	}
	if f.Changed("branch") {
		cfg.Branch = o.branch
	}
	if f.Changed("backend") {
		cfg.Git.Backend = o.backend
	}
	if f.Changed("local-branch") {
		cfg.UseLocalBranch = o.localBranch
	}
	if f.Changed("local-range") {
		cfg.UseLocalRange = o.localRange
	}
	if f.Changed("local-line") {
		cfg.UseLocalLine = o.localLine
	}
	return cfg, nil
}

// request turns a target argument into editor state. It also returns the
// workspace folder the target belongs to, if any.
func (o *options) request(target string) (browserurl.Request, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return browserurl.Request{}, "", err
	}
	var req browserurl.Request
	if target != "" {
		t, err := location.ParseTarget(target)
		if err != nil {
			return req, "", err
		}
		path := t.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		path = filepath.Clean(path)
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			// a directory has no file part; resolve from inside it
			req.StartDir = path
		} else {
			req.FilePath = path
			req.Selections = t.Selections
		}
	}

	folder, _ := workspace.FolderFor(o.workspaces, req.FilePath)
	switch {
	case req.StartDir != "":
		if folder == "" {
			folder, _ = workspace.FolderFor(o.workspaces, req.StartDir)
		}
	case req.FilePath != "":
		req.StartDir = filepath.Dir(req.FilePath)
	case folder != "":
		req.StartDir = folder
	case len(o.workspaces) > 0:
		req.StartDir = o.workspaces[0]
	default:
		req.StartDir = cwd
	}
	return req, folder, nil
}

func (o *options) resolver(cfg config.Config) *browserurl.Resolver {
	r := browserurl.NewResolver(cfg)
	r.Logger = o.logger
	return r
}

// resolve is the one-shot path shared by url, open and copy. A result
// without a browsable URL is reported as run.ErrUnavailable.
func (o *options) resolve(cmd *cobra.Command, args []string) (browserurl.Result, config.Config, error) {
	cfg, err := o.config(cmd)
	if err != nil {
		return browserurl.Result{}, cfg, err
	}
	req, _, err := o.request(firstArg(args))
	if err != nil {
		return browserurl.Result{}, cfg, err
	}
	res, err := o.resolver(cfg).Resolve(cmd.Context(), req)
	if errors.Is(err, gitroot.ErrNotFound) {
		return res, cfg, run.ErrUnavailable
	}
	if err != nil {
		return res, cfg, err
	}
	if !browserurl.Available(res.URL) {
		return res, cfg, fmt.Errorf("%w (remote %q not found)", run.ErrUnavailable, res.Info.Remote)
	}
	o.logger.Debug("tooltip", "hint", res.Tooltip)
	return res, cfg, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
