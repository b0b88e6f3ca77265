package browserurl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name                            string
		repoURL, branch, path, fragment string
		want                            string
	}{
		{
			name:    "full",
			repoURL: "https://github.com/acme/widget", branch: "main", path: "src/app.ts", fragment: "#L10-L20",
			want: "https://github.com/acme/widget/blob/main/src/app.ts#L10-L20",
		},
		{
			name:    "no file open",
			repoURL: "https://github.com/acme/widget", branch: "main",
			want: "https://github.com/acme/widget/blob/main",
		},
		{
			name:    "no branch",
			repoURL: "https://github.com/acme/widget", path: "README.md",
			want: "https://github.com/acme/widget/blob/README.md",
		},
		{
			name:    "stray slashes trimmed",
			repoURL: "https://github.com/acme/widget/", branch: "/main/", path: "/src/app.ts",
			want: "https://github.com/acme/widget/blob/main/src/app.ts",
		},
		{
			name:    "branch with slash",
			repoURL: "https://github.com/acme/widget", branch: "feature/x", path: "a.go", fragment: "#L3",
			want: "https://github.com/acme/widget/blob/feature/x/a.go#L3",
		},
		{
			name:   "no repo url degrades",
			branch: "main", path: "a.go",
			want: "blob/main/a.go",
		},
		{
			name: "nothing",
			want: "blob",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.repoURL, tt.branch, tt.path, tt.fragment)
			assert.Equal(t, tt.want, got)

			_, rest, _ := strings.Cut(got, "://")
			assert.NotContains(t, rest, "//")
		})
	}
}

func TestAvailable(t *testing.T) {
	assert.True(t, Available("https://github.com/acme/widget/blob/main"))
	assert.True(t, Available("http://git.internal:8080/x"))
	assert.False(t, Available("blob/main/a.go"))
	assert.False(t, Available(""))
	assert.False(t, Available("git@localhost:acme/widget/blob/main"))
}

func TestEscapePath(t *testing.T) {
	assert.Equal(t, "docs/my%20notes/a%23b.md", escapePath("docs/my notes/a#b.md"))
	assert.Equal(t, "src/app.ts", escapePath("src/app.ts"))
	assert.Empty(t, escapePath(""))
}
