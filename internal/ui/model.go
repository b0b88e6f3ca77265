package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"openrepo/internal/browserurl"
	"openrepo/internal/config"
	"openrepo/internal/gitroot"
	"openrepo/internal/run"
	"openrepo/internal/theme"
	"openrepo/internal/workspace"
)

// Model is a one-line status bar for a file: project badge, host hint and
// the file's browser URL, kept fresh as the checkout changes.
type Model struct {
	width    int
	showHelp bool

	cfg      config.Config
	resolver *browserurl.Resolver
	tracker  *browserurl.Tracker
	req      browserurl.Request
	watcher  *Watcher

	// projectPath is the workspace folder; empty means the repository root.
	projectPath string
	status      string

	keys keyMap
	help help.Model

	openURL func(string, config.Browser) error
	copyURL func(string) error
}

func NewModel(cfg config.Config, resolver *browserurl.Resolver, req browserurl.Request, projectPath string, w *Watcher) Model {
	return Model{
		cfg:         cfg,
		resolver:    resolver,
		tracker:     &browserurl.Tracker{},
		req:         req,
		watcher:     w,
		projectPath: projectPath,
		keys:        defaultKeyMap(),
		help:        help.New(),
		openURL:     run.OpenURL,
		copyURL:     run.CopyToClipboard,
	}
}

type resolvedMsg struct {
	seq uint64
	res browserurl.Result
	err error
}

// resolve tags a resolution now and runs it in the background.
func (m Model) resolve() tea.Cmd {
	seq := m.tracker.Begin()
	resolver, req := m.resolver, m.req
	return func() tea.Msg {
		res, err := resolver.Resolve(context.Background(), req)
		return resolvedMsg{seq: seq, res: res, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.resolve(), waitForChange(m.watcher))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case resolvedMsg:
		if !m.tracker.Complete(msg.seq, msg.res, msg.err) {
			return m, nil
		}
		switch {
		case msg.err == nil:
			m.status = ""
		case errors.Is(msg.err, gitroot.ErrNotFound):
			m.status = "not inside a git repository"
		default:
			m.status = "resolve failed: " + msg.err.Error()
		}
		return m, nil

	case changedMsg:
		return m, tea.Batch(m.resolve(), waitForChange(m.watcher))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.watcher != nil {
				_ = m.watcher.Close()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.status = "refreshing…"
			return m, m.resolve()
		case key.Matches(msg, m.keys.Open):
			url := m.tracker.Current().URL
			if !browserurl.Available(url) {
				m.status = run.ErrUnavailable.Error()
				return m, nil
			}
			if err := m.openURL(url, m.cfg.Browser); err != nil {
				m.status = "browser: " + err.Error()
			} else {
				m.status = "opened browser"
			}
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			url := m.tracker.Current().URL
			if !browserurl.Available(url) {
				m.status = run.ErrUnavailable.Error()
				return m, nil
			}
			if err := m.copyURL(url); err != nil {
				m.status = "clipboard: " + err.Error()
			} else {
				m.status = "copied"
			}
			return m, nil
		}
	}
	return m, nil
}

func (m Model) project() string {
	if m.projectPath != "" {
		return m.projectPath
	}
	return m.tracker.Current().Root
}

func (m Model) View() string {
	var b strings.Builder
	cur := m.tracker.Current()

	name := "no project"
	color := ""
	if p := m.project(); p != "" {
		name = workspace.ProjectName(p, m.cfg.Display.TextTransform)
		color = theme.ProjectColor(p, m.cfg.Display)
	}
	b.WriteString(badgeStyle(color).Render(name))
	if tip := cur.Tooltip; tip != "" {
		b.WriteString("  " + hintStyle.Render(tip))
	}
	b.WriteString("\n")

	if browserurl.Available(cur.URL) {
		fmt.Fprintln(&b, urlStyle.Render(cur.URL))
	} else {
		fmt.Fprintln(&b, hintStyle.Render("no browsable URL"))
	}

	if m.status != "" {
		fmt.Fprintln(&b, statusStyle.Render(m.status))
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
