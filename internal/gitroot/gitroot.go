package gitroot

import (
	"errors"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// ErrNotFound is returned when no enclosing directory holds a .git entry.
var ErrNotFound = errors.New("no enclosing git repository")

const marker = ".git"

type Locator struct {
	fs billy.Basic
}

func New(fs billy.Basic) *Locator {
	return &Locator{fs: fs}
}

// NewOS returns a Locator probing the host filesystem.
func NewOS() *Locator {
	return New(osfs.Default)
}

// Locate walks from startDir up to the filesystem root and returns the first
// directory containing a .git entry. A .git file (worktree pointer) counts.
// A startDir that does not exist is ErrNotFound.
func (l *Locator) Locate(startDir string) (string, error) {
	if startDir == "" {
		return "", ErrNotFound
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", ErrNotFound
	}
	if _, err := l.fs.Stat(dir); err != nil {
		return "", ErrNotFound
	}
	for {
		if _, err := l.fs.Stat(filepath.Join(dir, marker)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}
