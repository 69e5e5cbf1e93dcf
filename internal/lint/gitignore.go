package lint

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GitignoreMatcher answers whether a path is excluded by the .gitignore
// files of a directory tree and of its ancestors. Later rules override
// earlier ones, so negations re-include paths.
type GitignoreMatcher struct {
	rules []ignoreRule
}

type ignoreRule struct {
	// base is the directory holding the .gitignore that defined the rule.
	base     string
	pattern  string
	negate   bool
	dirOnly  bool
	anchored bool
}

// NewGitignoreMatcher collects the rules of every .gitignore from the
// filesystem root down to root, and of every .gitignore inside root.
func NewGitignoreMatcher(root string) *GitignoreMatcher {
	m := &GitignoreMatcher{}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return m
	}

	for _, gi := range ancestorGitignores(absRoot) {
		m.load(gi)
	}

	_ = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == ".gitignore" {
			m.load(path)
		}
		return nil
	})

	return m
}

// ancestorGitignores lists .gitignore files above root, outermost first.
func ancestorGitignores(root string) []string {
	var found []string
	dir := filepath.Dir(root)
	for {
		gi := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gi); err == nil {
			found = append([]string{gi}, found...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return found
		}
		dir = parent
	}
}

func (m *GitignoreMatcher) load(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	base := filepath.Dir(path)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		r := ignoreRule{base: base}
		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			r.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		// A slash anywhere but the end anchors the pattern to base.
		if strings.Contains(line, "/") {
			r.anchored = true
			line = strings.TrimPrefix(line, "/")
		}
		if line == "" {
			continue
		}
		r.pattern = line
		m.rules = append(m.rules, r)
	}
}

// Ignored reports whether path is excluded.
func (m *GitignoreMatcher) Ignored(path string, isDir bool) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	ignored := false
	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.matches(absPath) {
			ignored = !r.negate
		}
	}
	return ignored
}

func (r ignoreRule) matches(absPath string) bool {
	rel, err := filepath.Rel(r.base, absPath)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	if r.anchored {
		ok, _ := doublestar.Match(r.pattern, rel)
		return ok
	}
	// Unanchored patterns match at any depth.
	ok, _ := doublestar.Match("**/"+r.pattern, rel)
	return ok
}
