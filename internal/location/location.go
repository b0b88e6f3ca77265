package location

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Selection is one editor selection; lines are 0-indexed and inclusive.
// An Empty selection is a bare cursor on StartLine.
type Selection struct {
	StartLine int
	EndLine   int
	Empty     bool
}

type Options struct {
	UseLocalRange bool
	UseLocalLine  bool
}

// Location is the file part of a browser URL.
type Location struct {
	RelativePath string
	LineFragment string
}

// Resolve computes the file part. There is no line fragment without a
// relative path.
func Resolve(projectRoot, filePath string, selections []Selection, opts Options) Location {
	loc := Location{RelativePath: RelativePath(projectRoot, filePath)}
	if loc.RelativePath != "" && opts.UseLocalRange {
		loc.LineFragment = Fragment(selections, opts.UseLocalLine)
	}
	return loc
}

// RelativePath returns filePath relative to root with forward slashes, or ""
// when there is no file or it lies outside root.
func RelativePath(root, filePath string) string {
	if filePath == "" || root == "" {
		return ""
	}
	rel, err := filepath.Rel(root, filePath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
}

// Fragment renders the #L anchor. Only a single selection is honoured;
// multi-cursor state yields no anchor.
func Fragment(selections []Selection, useLocalLine bool) string {
	if len(selections) != 1 {
		return ""
	}
	s := selections[0]
	switch {
	case !s.Empty && s.StartLine == s.EndLine:
		return fmt.Sprintf("#L%d", s.StartLine+1)
	case !s.Empty:
		return fmt.Sprintf("#L%d-L%d", s.StartLine+1, s.EndLine+1)
	case useLocalLine:
		return fmt.Sprintf("#L%d", s.StartLine+1)
	}
	return ""
}
