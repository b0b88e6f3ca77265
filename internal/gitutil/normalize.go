package gitutil

import (
	"net/url"
	"strings"

	giturls "github.com/whilp/git-urls"
)

// Kind tags how a remote URL was understood.
type Kind int

const (
	// KindPassthrough means the raw URL is used as the web URL.
	KindPassthrough Kind = iota
	// KindSSH means an scp-like git@host:owner/project remote was parsed.
	KindSSH
)

// Remote is a normalized remote URL. Owner and Project are only set for KindSSH.
type Remote struct {
	Kind    Kind
	Domain  string
	Owner   string
	Project string
	WebURL  string
}

// Normalize turns a raw remote URL into a web URL.
//
//	git@github.com:user/repo.git -> https://github.com/user/repo
//	https://github.com/user/repo.git -> https://github.com/user/repo
//
// Anything else is passed through; it never fails.
func Normalize(raw string) Remote {
	s := trimRepoSuffix(strings.TrimSpace(raw))
	u, err := giturls.Parse(scpForm(s))
	if err != nil {
		return passthrough(s, nil)
	}
	if r, ok := sshRemote(s, u); ok {
		return r
	}
	return passthrough(s, u)
}

func trimRepoSuffix(u string) string {
	for {
		trimmed := strings.TrimSuffix(strings.TrimSuffix(u, "/"), ".git")
		if trimmed == u {
			return u
		}
		u = trimmed
	}
}

// scpForm rewrites git@host/owner/project to git@host:owner/project.
func scpForm(s string) string {
	rest, ok := strings.CutPrefix(s, "git@")
	if !ok {
		return s
	}
	if i := strings.IndexAny(rest, ":/"); i > 0 && rest[i] == '/' {
		return "git@" + rest[:i] + ":" + rest[i+1:]
	}
	return s
}

// sshRemote accepts only the scp-like shorthand; ssh:// URLs pass through.
func sshRemote(s string, u *url.URL) (Remote, bool) {
	if u.Scheme != "ssh" || strings.Contains(s, "://") || u.RawQuery != "" {
		return Remote{}, false
	}
	if u.User == nil || u.User.Username() != "git" {
		return Remote{}, false
	}
	host := u.Host
	dot := strings.LastIndex(host, ".")
	if dot <= 0 || dot == len(host)-1 {
		return Remote{}, false
	}
	owner, project, ok := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	if !ok || owner == "" {
		return Remote{}, false
	}
	project = trimRepoSuffix(project)
	if project == "" {
		return Remote{}, false
	}
	return Remote{
		Kind:    KindSSH,
		Domain:  host,
		Owner:   owner,
		Project: project,
		WebURL:  "https://" + host + "/" + owner + "/" + project,
	}, true
}

// passthrough keeps s as the web URL. The domain is the host of an http(s)
// URL, credentials included, else s up to its first slash.
func passthrough(s string, u *url.URL) Remote {
	r := Remote{Kind: KindPassthrough, Domain: s, WebURL: s}
	if u != nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		r.Domain = u.Host
		if u.User != nil {
			r.Domain = u.User.String() + "@" + u.Host
		}
		return r
	}
	if i := strings.Index(s, "/"); i >= 0 {
		r.Domain = s[:i]
	}
	return r
}
