// Package discovery finds Python files by expanding the config's files
// patterns when no paths are given on the command line.
package discovery

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
)

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of doublestar patterns, relative to BaseDir,
	// to match files against. An empty or nil list means no files are
	// discovered.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string

	// UseGitignore enables filtering by .gitignore rules.
	UseGitignore bool
}

// Discover walks BaseDir and returns files matching any of the configured
// patterns. Results are deduplicated and sorted. Invalid patterns are
// skipped; Config.Validate reports them.
func Discover(opts Options) ([]string, error) {
	if len(opts.Patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	validPatterns := validatePatterns(opts.Patterns)
	if len(validPatterns) == 0 {
		return nil, nil
	}

	w := &walker{
		baseDir:  baseDir,
		absBase:  absBase,
		patterns: validPatterns,
		seen:     make(map[string]bool),
	}
	if opts.UseGitignore {
		w.git = lint.NewGitignoreMatcher(absBase)
	}

	if err := filepath.WalkDir(baseDir, w.visit); err != nil {
		return nil, err
	}

	sort.Strings(w.result)
	return w.result, nil
}

func validatePatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

type walker struct {
	baseDir  string
	absBase  string
	patterns []string
	git      *lint.GitignoreMatcher
	seen     map[string]bool
	result   []string
}

func (w *walker) visit(path string, d fs.DirEntry, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}

	rel, err := filepath.Rel(w.baseDir, path)
	if err != nil || rel == "." {
		return nil
	}
	rel = filepath.ToSlash(rel)

	if d.IsDir() && d.Name() == ".git" {
		return filepath.SkipDir
	}

	if w.isGitignored(rel, d.IsDir()) {
		if d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}

	if d.IsDir() {
		return nil
	}

	if w.matchesAny(rel) && !w.seen[rel] {
		w.seen[rel] = true
		w.result = append(w.result, path)
	}
	return nil
}

func (w *walker) isGitignored(rel string, isDir bool) bool {
	if w.git == nil {
		return false
	}
	return w.git.Ignored(filepath.Join(w.absBase, filepath.FromSlash(rel)), isDir)
}

func (w *walker) matchesAny(rel string) bool {
	for _, p := range w.patterns {
		if matched, err := doublestar.Match(p, rel); err == nil && matched {
			return true
		}
	}
	return false
}
