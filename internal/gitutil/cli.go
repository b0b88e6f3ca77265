package gitutil

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// CLI answers queries by running the git binary in Dir.
type CLI struct {
	Dir string
}

func NewCLI(dir string) *CLI {
	return &CLI{Dir: dir}
}

// IsInstalled reports whether git is on PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.Dir
	cmd.Env = sanitizedEnv()
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &GitError{Args: args, Stderr: string(exitErr.Stderr), Err: err}
		}
		return "", &GitError{Args: args, Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

func (c *CLI) Remotes(ctx context.Context) ([]RemoteRef, error) {
	out, err := c.run(ctx, "remote", "-v")
	if err != nil {
		return nil, err
	}
	return parseRemotes(out), nil
}

func (c *CLI) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "symbolic-ref", "-q", "--short", "HEAD")
	if err != nil {
		var exitErr *exec.ExitError
		// symbolic-ref -q exits 1 without output when HEAD is detached
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrDetachedHead
		}
		return "", err
	}
	return out, nil
}

func (c *CLI) ResolveRevision(ctx context.Context, rev string) (string, error) {
	return c.run(ctx, "rev-parse", "--verify", "--end-of-options", rev)
}

// parseRemotes reads `git remote -v` output:
//
//	origin	git@github.com:acme/widget.git (fetch)
//	origin	git@github.com:acme/widget.git (push)
func parseRemotes(out string) []RemoteRef {
	byName := map[string]*RemoteRef{}
	var names []string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		name, url := fields[0], fields[1]
		ref, ok := byName[name]
		if !ok {
			ref = &RemoteRef{Name: name}
			byName[name] = ref
			names = append(names, name)
		}
		kind := ""
		if len(fields) > 2 {
			kind = fields[2]
		}
		switch kind {
		case "(push)":
			ref.PushURL = url
		default:
			ref.FetchURL = url
		}
	}
	sort.Strings(names)
	refs := make([]RemoteRef, 0, len(names))
	for _, n := range names {
		refs = append(refs, *byName[n])
	}
	return refs
}

// sanitizedEnv drops variables that would redirect git to another repository
// when openrepo itself runs from a git hook.
func sanitizedEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		key, _, _ := strings.Cut(e, "=")
		switch strings.ToUpper(key) {
		case "GIT_DIR", "GIT_INDEX_FILE", "GIT_WORK_TREE",
			"GIT_OBJECT_DIRECTORY", "GIT_ALTERNATE_OBJECT_DIRECTORIES":
			continue
		}
		env = append(env, e)
	}
	return env
}
