package browserurl

import (
	"errors"
	"sync"

	"openrepo/internal/gitroot"
)

// Tracker holds the most recently applied Result. Resolutions are tagged
// with Begin and only the latest one initiated may be applied, so a slow
// earlier resolution never overwrites a newer one.
type Tracker struct {
	mu      sync.Mutex
	latest  uint64
	current Result
	err     error
}

// Begin tags a new resolution.
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest++
	return t.latest
}

// Complete applies the outcome of resolution seq and reports whether it was
// applied. A repository-not-found outcome clears the URL; any other error
// keeps the previous result.
func (t *Tracker) Complete(seq uint64, res Result, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.latest {
		return false
	}
	switch {
	case err == nil:
		t.current, t.err = res, nil
	case errors.Is(err, gitroot.ErrNotFound):
		t.current, t.err = Result{}, nil
	default:
		t.err = err
	}
	return true
}

func (t *Tracker) Current() Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Err is the error of the latest applied resolution, if it failed.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
