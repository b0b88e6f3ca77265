package run

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"openrepo/internal/config"
)

// ErrUnavailable is shown when there is no browsable URL to act on.
var ErrUnavailable = errors.New("you have to open a git project before being able to open it in browser")

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// start launches a command without waiting for it.
var start = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// OpenURL hands url to the configured browser command, or to the first
// available system opener.
func OpenURL(url string, cfg config.Browser) error {
	name, args, err := browserCommand(url, cfg)
	if err != nil {
		return err
	}
	return start(name, args...)
}

func browserCommand(url string, cfg config.Browser) (string, []string, error) {
	if fields := strings.Fields(cfg.Command); len(fields) > 0 {
		return fields[0], append(fields[1:], url), nil
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	}
	seen := map[string]struct{}{}
	for _, b := range cfg.Fallbacks {
		if b == "" {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		if _, err := lookPath(b); err == nil {
			return b, []string{url}, nil
		}
	}
	return "", nil, fmt.Errorf("no browser opener found (tried: %s)", strings.Join(cfg.Fallbacks, ", "))
}
