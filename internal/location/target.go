package location

import (
	"fmt"
	"strconv"
	"strings"
)

// Target is a file plus editor selection state as given on the command line
// or an event stream.
type Target struct {
	Path       string
	Selections []Selection
}

// ParseTarget reads "path", "path:N" (cursor on 1-indexed line N),
// "path:A-B" (selected lines A through B) or a comma separated list of those
// specs for multiple selections, e.g. "main.go:3,10-12".
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, ":")
	if i < 0 || !isSpec(s[i+1:]) {
		return Target{Path: s}, nil
	}
	t := Target{Path: s[:i]}
	if t.Path == "" {
		return Target{}, fmt.Errorf("target %q: missing path", s)
	}
	for _, part := range strings.Split(s[i+1:], ",") {
		sel, err := parseSelection(part)
		if err != nil {
			return Target{}, fmt.Errorf("target %q: %w", s, err)
		}
		t.Selections = append(t.Selections, sel)
	}
	return t, nil
}

// isSpec keeps Windows drive letters and odd file names out of spec parsing.
func isSpec(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' && r != ',' {
			return false
		}
	}
	return true
}

func parseSelection(spec string) (Selection, error) {
	from, to, isRange := strings.Cut(spec, "-")
	start, err := parseLine(from)
	if err != nil {
		return Selection{}, err
	}
	if !isRange {
		return Selection{StartLine: start, EndLine: start, Empty: true}, nil
	}
	end, err := parseLine(to)
	if err != nil {
		return Selection{}, err
	}
	if end < start {
		start, end = end, start
	}
	return Selection{StartLine: start, EndLine: end}, nil
}

func parseLine(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid line %q", s)
	}
	return n - 1, nil
}
