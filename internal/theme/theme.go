package theme

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"openrepo/internal/config"
)

// ProjectColor returns the status colour for a project: "" when colours are
// off, the configured colour if set, otherwise one derived from the path.
func ProjectColor(projectPath string, d config.Display) string {
	if !d.Colorful {
		return ""
	}
	if d.Color != "" || projectPath == "" {
		return d.Color
	}
	return StringToColor(projectPath)
}

// StringToColor hashes s into a stable #rrggbb colour. The hash runs over
// UTF-16 code units with 32-bit wraparound so every machine agrees on a
// project's colour.
func StringToColor(s string) string {
	var hash int32
	for _, c := range utf16.Encode([]rune(s)) {
		hash = int32(c) + (hash << 5) - hash
	}
	colour := "#"
	for i := 0; i < 3; i++ {
		colour += fmt.Sprintf("%02x", uint8(hash>>(i*8)))
	}
	return colour
}

// IsDark reports whether a #rrggbb colour has low perceived luminance.
// Unparseable colours count as dark.
func IsDark(hex string) bool {
	r, g, b, ok := hexToRGB(hex)
	if !ok {
		return true
	}
	l := 0.2126*float64(r)/255 + 0.7152*float64(g)/255 + 0.0722*float64(b)/255
	return l < 0.5
}

func hexToRGB(s string) (int, int, int, bool) {
	// Accept formats like #rrggbb
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	r64, err := strconv.ParseUint(s[1:3], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	g64, err := strconv.ParseUint(s[3:5], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	b64, err := strconv.ParseUint(s[5:7], 16, 8)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(r64), int(g64), int(b64), true
}
