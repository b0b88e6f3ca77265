package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"openrepo/internal/config"
)

func TestStringToColor(t *testing.T) {
	assert.Equal(t, "#627801", StringToColor("abc"))
	assert.Equal(t, "#9f0cb9", StringToColor("/home/dev/widget"))
	assert.Equal(t, "#e90000", StringToColor("é"))
	assert.Equal(t, "#000000", StringToColor(""))
	assert.Equal(t, StringToColor("/x/y"), StringToColor("/x/y"))
}

func TestProjectColor(t *testing.T) {
	assert.Empty(t, ProjectColor("/home/dev/widget", config.Display{Colorful: false, Color: "#ff0000"}))
	assert.Equal(t, "#ff0000", ProjectColor("/home/dev/widget", config.Display{Colorful: true, Color: "#ff0000"}))
	assert.Equal(t, "#9f0cb9", ProjectColor("/home/dev/widget", config.Display{Colorful: true}))
	assert.Empty(t, ProjectColor("", config.Display{Colorful: true}))
}

func TestIsDark(t *testing.T) {
	assert.True(t, IsDark("#000000"))
	assert.True(t, IsDark("#1e1e2e"))
	assert.False(t, IsDark("#ffffff"))
	assert.False(t, IsDark("#f0f0a0"))
	assert.True(t, IsDark("red"))
}
