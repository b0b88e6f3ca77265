package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"openrepo/internal/browserurl"
	"openrepo/internal/config"
	"openrepo/internal/gitroot"
	"openrepo/internal/ui"
)

func newWatchCmd(o *options) *cobra.Command {
	var fromStdin bool
	cmd := &cobra.Command{
		Use:   "watch [TARGET]",
		Short: "Keep the browser URL up to date",
		Long: `Show a status line with the browser URL of TARGET, refreshed when the
checkout changes.

With --stdin, each input line is a TARGET reported by an editor as the focus
moves; the URL for the newest target is printed as soon as it is known.
Results for targets that were superseded before they resolved are dropped.
An empty output line means no browsable URL.

` + targetHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config(cmd)
			if err != nil {
				return err
			}
			if fromStdin {
				return o.stream(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			if !isTerminal(os.Stdout) {
				res, _, err := o.resolve(cmd, args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.URL)
				return nil
			}
			return o.statusLine(cfg, firstArg(args))
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read targets from standard input, one per line")
	return cmd
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// stream resolves every target read from in concurrently and prints the
// result of a resolution only if no newer target was read before it finished.
func (o *options) stream(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	var (
		tracker  browserurl.Tracker
		resolver = o.resolver(cfg)
		outMu    sync.Mutex
		wg       sync.WaitGroup
	)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		req, _, err := o.request(line)
		if err != nil {
			o.logger.Warn("skipping target", "target", line, "err", err)
			continue
		}
		seq := tracker.Begin()
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := resolver.Resolve(ctx, req)

			outMu.Lock()
			defer outMu.Unlock()
			if !tracker.Complete(seq, res, err) {
				o.logger.Debug("dropped stale result", "seq", seq, "target", line)
				return
			}
			if err != nil && !errors.Is(err, gitroot.ErrNotFound) {
				o.logger.Error("resolve failed", "target", line, "err", err)
				return
			}
			url := tracker.Current().URL
			if !browserurl.Available(url) {
				url = ""
			}
			fmt.Fprintln(out, url)
		}()
	}
	wg.Wait()
	return sc.Err()
}

func (o *options) statusLine(cfg config.Config, target string) error {
	req, folder, err := o.request(target)
	if err != nil {
		return err
	}
	resolver := o.resolver(cfg)
	if !o.verbose {
		// log output would tear the status line
		resolver.Logger = log.New(io.Discard)
	}

	root, _ := gitroot.NewOS().Locate(req.StartDir)
	w, err := ui.NewWatcher(ui.WatchPaths(req.StartDir, root)...)
	if err != nil {
		o.logger.Warn("file watching disabled", "err", err)
		w = nil
	}
	if w != nil {
		defer w.Close()
	}

	p := tea.NewProgram(ui.NewModel(cfg, resolver, req, folder, w))
	_, err = p.Run()
	return err
}
