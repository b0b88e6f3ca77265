package ui

import (
	"os"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// Watcher coalesces filesystem events under a set of paths into change
// notifications.
type Watcher struct {
	fs   *fsnotify.Watcher
	ch   chan struct{}
	done chan struct{}
	once sync.Once
}

// WatchPaths lists what to watch for a request: the directory holding the
// file (or the start directory) and the repository's .git directory, which
// changes on checkout and commit.
func WatchPaths(dir, root string) []string {
	var paths []string
	if dir != "" {
		paths = append(paths, dir)
	}
	if root != "" {
		gitDir := filepath.Join(root, ".git")
		if fi, err := os.Stat(gitDir); err == nil && fi.IsDir() {
			paths = append(paths, gitDir)
		}
	}
	return paths
}

// NewWatcher watches paths; ones that cannot be watched are skipped.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fs: fw, ch: make(chan struct{}, 1), done: make(chan struct{})}
	for _, p := range paths {
		_ = fw.Add(p)
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.ch)
	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
			select {
			case w.ch <- struct{}{}:
			default:
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// ignore; next event will retrigger
		case <-w.done:
			return
		}
	}
}

// Changes yields one value per burst of events and is closed by Close.
func (w *Watcher) Changes() <-chan struct{} {
	return w.ch
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

type changedMsg struct{}

func waitForChange(w *Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return changedMsg{}
	}
}
