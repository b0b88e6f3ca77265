package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ProjectFile is the per-repository override read from the repository root.
const ProjectFile = ".openrepo.toml"

type Git struct {
	Backend string `yaml:"backend" toml:"backend"`
}

type Display struct {
	TextTransform string `yaml:"text_transform" toml:"text_transform"`
	Colorful      bool   `yaml:"colorful" toml:"colorful"`
	Color         string `yaml:"color" toml:"color"`
}

type Browser struct {
	Command   string   `yaml:"command" toml:"command"`
	Fallbacks []string `yaml:"fallbacks" toml:"fallbacks"`
}

type Config struct {
	RemoteName     string `yaml:"remote_name" toml:"remote_name"`
	Branch         string `yaml:"branch" toml:"branch"`
	UseLocalBranch bool   `yaml:"use_local_branch" toml:"use_local_branch"`
	UseLocalRange  bool   `yaml:"use_local_range" toml:"use_local_range"`
	UseLocalLine   bool   `yaml:"use_local_line" toml:"use_local_line"`

	Git     Git     `yaml:"git" toml:"git"`
	Display Display `yaml:"display" toml:"display"`
	Browser Browser `yaml:"browser" toml:"browser"`
}

func Default() Config {
	return Config{
		RemoteName:     "origin",
		Branch:         "master",
		UseLocalBranch: true,
		UseLocalRange:  true,
		UseLocalLine:   false,
		Git:            Git{Backend: "go-git"},
		Display:        Display{TextTransform: "", Colorful: true},
		Browser: Browser{
			Fallbacks: []string{"xdg-open", "wslview", "sensible-browser"},
		},
	}
}

// overlay mirrors Config with pointer booleans so an explicit false in a
// file can switch off a default.
type overlay struct {
	RemoteName     string `yaml:"remote_name" toml:"remote_name"`
	Branch         string `yaml:"branch" toml:"branch"`
	UseLocalBranch *bool  `yaml:"use_local_branch" toml:"use_local_branch"`
	UseLocalRange  *bool  `yaml:"use_local_range" toml:"use_local_range"`
	UseLocalLine   *bool  `yaml:"use_local_line" toml:"use_local_line"`

	Git struct {
		Backend string `yaml:"backend" toml:"backend"`
	} `yaml:"git" toml:"git"`
	Display struct {
		TextTransform string `yaml:"text_transform" toml:"text_transform"`
		Colorful      *bool  `yaml:"colorful" toml:"colorful"`
		Color         string `yaml:"color" toml:"color"`
	} `yaml:"display" toml:"display"`
	Browser struct {
		Command   string   `yaml:"command" toml:"command"`
		Fallbacks []string `yaml:"fallbacks" toml:"fallbacks"`
	} `yaml:"browser" toml:"browser"`
}

func (o overlay) apply(cfg Config) Config {
	merge := cfg
	if o.RemoteName != "" {
		merge.RemoteName = o.RemoteName
	}
	if o.Branch != "" {
		merge.Branch = o.Branch
	}
	if o.UseLocalBranch != nil {
		merge.UseLocalBranch = *o.UseLocalBranch
	}
	if o.UseLocalRange != nil {
		merge.UseLocalRange = *o.UseLocalRange
	}
	if o.UseLocalLine != nil {
		merge.UseLocalLine = *o.UseLocalLine
	}
	if o.Git.Backend != "" {
		merge.Git.Backend = o.Git.Backend
	}
	if o.Display.TextTransform != "" {
		merge.Display.TextTransform = o.Display.TextTransform
	}
	if o.Display.Colorful != nil {
		merge.Display.Colorful = *o.Display.Colorful
	}
	if o.Display.Color != "" {
		merge.Display.Color = o.Display.Color
	}
	if o.Browser.Command != "" {
		merge.Browser.Command = o.Browser.Command
	}
	if len(o.Browser.Fallbacks) > 0 {
		merge.Browser.Fallbacks = o.Browser.Fallbacks
	}
	return merge
}

// Path returns the user config location under XDG_CONFIG_HOME.
func Path() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "openrepo", "config.yml"), nil
}

// Load overlays the YAML file at path onto Default. An empty path means Path().
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	var user overlay
	if err := yaml.Unmarshal(data, &user); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return user.apply(cfg), nil
}

// LoadProject overlays root/.openrepo.toml onto cfg. On any error cfg is
// returned unchanged together with the error.
func LoadProject(cfg Config, root string) (Config, error) {
	path := filepath.Join(root, ProjectFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	var project overlay
	if err := toml.Unmarshal(data, &project); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return project.apply(cfg), nil
}
