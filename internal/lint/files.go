package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsPython reports whether path has the .py extension.
func IsPython(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".py")
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// ResolveOpts controls how file resolution behaves.
type ResolveOpts struct {
	// UseGitignore enables .gitignore filtering of walked directories.
	// Explicitly named files are never filtered. A nil value means true.
	UseGitignore *bool
}

// DefaultResolveOpts returns options with defaults applied.
func DefaultResolveOpts() ResolveOpts {
	t := true
	return ResolveOpts{UseGitignore: &t}
}

func (o ResolveOpts) useGitignore() bool {
	if o.UseGitignore == nil {
		return true
	}
	return *o.UseGitignore
}

// ResolveFiles takes positional arguments and returns deduplicated, sorted
// Python file paths, using DefaultResolveOpts.
func ResolveFiles(args []string) ([]string, error) {
	return ResolveFilesWithOpts(args, DefaultResolveOpts())
}

// ResolveFilesWithOpts expands files, directories (recursive *.py) and
// doublestar glob patterns. An argument that does not exist yields an
// error wrapping ErrInputNotFound, but the remaining arguments are still
// resolved: the returned paths are valid even when err is not nil.
func ResolveFilesWithOpts(args []string, opts ResolveOpts) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	var errs []error
	for _, arg := range args {
		if err := resolveArg(arg, opts, addFile); err != nil {
			errs = append(errs, err)
		}
	}

	sort.Strings(result)
	return result, errors.Join(errs...)
}

func resolveArg(arg string, opts ResolveOpts, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, opts, addFile)
	}

	info, err := os.Stat(arg)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot access %q: %w", arg, ErrInputNotFound)
	}
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return addDirFiles(arg, opts, addFile)
	}

	addFile(arg)
	return nil
}

func resolveGlob(pattern string, opts ResolveOpts, addFile func(string)) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := addDirFiles(m, opts, addFile); err != nil {
				return err
			}
		} else if IsPython(m) {
			addFile(m)
		}
	}
	return nil
}

func addDirFiles(dir string, opts ResolveOpts, addFile func(string)) error {
	files, err := WalkDir(dir, opts.useGitignore())
	if err != nil {
		return err
	}
	for _, f := range files {
		addFile(f)
	}
	return nil
}

// WalkDir recursively collects the Python files under dir. Version
// control metadata is skipped, and with useGitignore so is everything
// matched by .gitignore files.
func WalkDir(dir string, useGitignore bool) ([]string, error) {
	var matcher *GitignoreMatcher
	if useGitignore {
		matcher = NewGitignoreMatcher(dir)
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		if matcher != nil && path != dir && matcher.Ignored(path, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && IsPython(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return files, nil
}
