package browserurl

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"openrepo/internal/gitroot"
)

func TestTrackerDropsStaleResults(t *testing.T) {
	var tr Tracker
	first := tr.Begin()
	second := tr.Begin()

	assert.True(t, tr.Complete(second, Result{URL: "https://example.com/new"}, nil))
	assert.False(t, tr.Complete(first, Result{URL: "https://example.com/old"}, nil))
	assert.Equal(t, "https://example.com/new", tr.Current().URL)
}

func TestTrackerErrors(t *testing.T) {
	var tr Tracker
	tr.Complete(tr.Begin(), Result{URL: "https://example.com/a"}, nil)

	boom := errors.New("git failed")
	assert.True(t, tr.Complete(tr.Begin(), Result{}, boom))
	assert.Equal(t, "https://example.com/a", tr.Current().URL, "failure keeps previous url")
	assert.ErrorIs(t, tr.Err(), boom)

	assert.True(t, tr.Complete(tr.Begin(), Result{}, gitroot.ErrNotFound))
	assert.Empty(t, tr.Current().URL, "no repository clears url")
	assert.NoError(t, tr.Err())
}

func TestTrackerConcurrent(t *testing.T) {
	var tr Tracker
	var wg sync.WaitGroup
	seqs := make(chan uint64, 50)
	for i := 0; i < 50; i++ {
		seqs <- tr.Begin()
	}
	close(seqs)
	last := uint64(50)
	for seq := range seqs {
		wg.Add(1)
		go func(seq uint64) {
			defer wg.Done()
			tr.Complete(seq, Result{URL: "https://example.com/" + string(rune('a'+seq%26))}, nil)
		}(seq)
	}
	wg.Wait()
	assert.Equal(t, "https://example.com/"+string(rune('a'+last%26)), tr.Current().URL)
}
