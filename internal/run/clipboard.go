package run

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

var writeClipboard = clipboard.WriteAll

// CopyToClipboard puts s on the system clipboard.
func CopyToClipboard(s string) error {
	if err := writeClipboard(s); err == nil {
		return nil
	}
	// fallbacks for Wayland/X11
	if runtime.GOOS == "linux" {
		if err := exec.Command("wl-copy", s).Run(); err == nil {
			return nil
		}
		cmd := exec.Command("xclip", "-selection", "clipboard")
		cmd.Stdin = strings.NewReader(s)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return errors.New("clipboard unavailable")
}
