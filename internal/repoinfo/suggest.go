package repoinfo

import "github.com/sahilm/fuzzy"

// Suggest returns remote names resembling name, best match first.
func Suggest(name string, remotes []string) []string {
	if name == "" {
		return nil
	}
	var out []string
	for _, m := range fuzzy.Find(name, remotes) {
		out = append(out, m.Str)
	}
	return out
}
