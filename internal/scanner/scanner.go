// Package scanner resolves the repository URL of every workspace folder.
package scanner

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"openrepo/internal/browserurl"
	"openrepo/internal/gitroot"
	"openrepo/internal/workspace"
)

// Entry is one workspace folder and the repository it lives in.
type Entry struct {
	Folder string
	Name   string
	Root   string
	URL    string
	Branch string
	Err    error
}

// Resolver is the part of browserurl.Resolver a scan needs.
type Resolver interface {
	Resolve(ctx context.Context, req browserurl.Request) (browserurl.Result, error)
}

// Scan resolves folders concurrently. Entries keep the order of folders;
// a folder whose repository was already reported by an earlier folder is
// dropped. Folders outside any repository are kept with an empty Root.
func Scan(ctx context.Context, r Resolver, folders []string, transform string) []Entry {
	out := make([]Entry, len(folders))
	var wg sync.WaitGroup
	sem := make(chan struct{}, max(8, 2*runtime.GOMAXPROCS(0)))
	for i, f := range folders {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = collect(ctx, r, f, transform)
		}()
	}
	wg.Wait()

	uniq := make([]Entry, 0, len(out))
	seen := map[string]struct{}{}
	for _, e := range out {
		if e.Root != "" {
			if _, ok := seen[e.Root]; ok {
				continue
			}
			seen[e.Root] = struct{}{}
		}
		uniq = append(uniq, e)
	}
	return uniq
}

func collect(ctx context.Context, r Resolver, folder, transform string) Entry {
	e := Entry{Folder: folder, Name: workspace.ProjectName(folder, transform)}
	res, err := r.Resolve(ctx, browserurl.Request{StartDir: folder})
	if errors.Is(err, gitroot.ErrNotFound) {
		return e
	}
	e.Root = res.Root
	e.Err = err
	if err == nil && browserurl.Available(res.URL) {
		e.URL = res.URL
		e.Branch = res.Info.Branch
	}
	return e
}
