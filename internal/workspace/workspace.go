// Package workspace maps editor workspace folders to projects.
package workspace

import (
	"path/filepath"
	"strings"
)

// FolderFor picks the workspace folder a file belongs to. With a single
// folder that folder is used regardless of the file; with several, the first
// folder containing filePath wins.
func FolderFor(folders []string, filePath string) (string, bool) {
	switch len(folders) {
	case 0:
		return "", false
	case 1:
		return folders[0], true
	}
	if filePath == "" {
		return "", false
	}
	for _, f := range folders {
		rel, err := filepath.Rel(f, filePath)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
			return f, true
		}
	}
	return "", false
}

var transforms = map[string]func(string) string{
	"uppercase": strings.ToUpper,
	"lowercase": strings.ToLower,
	"capitalize": func(s string) string {
		words := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool { return r == '-' || r == '_' })
		for i, w := range words {
			words[i] = Capitalize(w)
		}
		return strings.Join(words, " ")
	},
}

// ProjectName is the folder's base name after an optional text transform
// (uppercase, lowercase or capitalize). Unknown transforms are ignored.
func ProjectName(projectPath, transform string) string {
	name := filepath.Base(projectPath)
	if fn, ok := transforms[transform]; ok {
		return fn(name)
	}
	return name
}

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
