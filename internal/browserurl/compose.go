// Package browserurl turns a file in a git checkout into the URL of that file
// on its hosting site.
package browserurl

import (
	"net/url"
	"strings"
)

// Compose joins the non-empty parts of repoURL/blob/branch/relativePath and
// appends lineFragment. Without a repoURL the result has no scheme; check it
// with Available before use.
func Compose(repoURL, branch, relativePath, lineFragment string) string {
	var parts []string
	for i, seg := range []string{repoURL, "blob", branch, relativePath} {
		if i == 0 {
			seg = strings.TrimRight(seg, "/")
		} else {
			seg = strings.Trim(seg, "/")
		}
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "/") + lineFragment
}

// Available reports whether u is a browsable scheme://host URL.
func Available(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// escapePath escapes each segment of a slash separated path.
func escapePath(p string) string {
	if p == "" {
		return ""
	}
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
