package lint

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGitignoreMatcher_Patterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "# generated\n*.gen.py\n/top.py\ndocs/**/conf.py\nvenv/\n!keep.gen.py\n")

	m := NewGitignoreMatcher(dir)

	assert.True(t, m.Ignored(filepath.Join(dir, "a.gen.py"), false))
	assert.True(t, m.Ignored(filepath.Join(dir, "pkg", "b.gen.py"), false))
	assert.False(t, m.Ignored(filepath.Join(dir, "keep.gen.py"), false))

	assert.True(t, m.Ignored(filepath.Join(dir, "top.py"), false))
	assert.False(t, m.Ignored(filepath.Join(dir, "pkg", "top.py"), false))

	assert.True(t, m.Ignored(filepath.Join(dir, "docs", "a", "b", "conf.py"), false))
	assert.True(t, m.Ignored(filepath.Join(dir, "docs", "conf.py"), false))

	assert.True(t, m.Ignored(filepath.Join(dir, "venv"), true))
	assert.False(t, m.Ignored(filepath.Join(dir, "venv"), false))

	assert.False(t, m.Ignored(filepath.Join(dir, "main.py"), false))
}

func TestGitignoreMatcher_NestedFileScopedToItsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sub/.gitignore", "local.py\n")

	m := NewGitignoreMatcher(dir)
	assert.True(t, m.Ignored(filepath.Join(dir, "sub", "local.py"), false))
	assert.False(t, m.Ignored(filepath.Join(dir, "local.py"), false))
}
