package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// Config is the top-level configuration. Rules themselves are fixed and
// cannot be toggled; the config only decides which files are checked and
// how.
type Config struct {
	// Ignore lists glob patterns of paths that are never linted.
	Ignore []string `yaml:"ignore,omitempty"`

	// Files lists doublestar patterns used to find Python files when no
	// paths are given on the command line.
	Files []string `yaml:"files,omitempty"`

	// Gitignore controls whether .gitignore files are honoured while
	// walking directories. Nil means the default (true).
	Gitignore *bool `yaml:"gitignore,omitempty"`

	// Jobs is the number of files linted in parallel. Zero means one
	// worker per CPU.
	Jobs int `yaml:"jobs,omitempty"`
}

// Validate checks every pattern and value. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error

	for _, pattern := range c.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err))
		}
	}

	for _, pattern := range c.Files {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("invalid files pattern %q", pattern))
		}
	}

	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs))
	}

	return errors.Join(errs...)
}

// IsIgnored reports whether path matches one of the ignore patterns. The
// path, its slash-separated clean form and its base name are all tried.
// Invalid patterns never match.
func (c *Config) IsIgnored(path string) bool {
	cleanPath := filepath.ToSlash(filepath.Clean(path))
	base := filepath.Base(path)

	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(base) {
			return true
		}
	}
	return false
}

// UseGitignore reports whether .gitignore files should be honoured.
func (c *Config) UseGitignore() bool {
	return c.Gitignore == nil || *c.Gitignore
}
