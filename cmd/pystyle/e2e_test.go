package main_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all e2e tests.
	tmp, err := os.MkdirTemp("", "pystyle-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(tmp, "pystyle")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(tmp)
	os.Exit(code)
}

// runBinary runs the pystyle binary in dir with the given args and
// optional stdin. It returns stdout, stderr, and the exit code.
func runBinary(t *testing.T, dir, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	err := cmd.Run()
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		require.True(t, ok, "unexpected error running binary: %v", err)
		exitCode = exitErr.ExitCode()
	}

	return outBuf.String(), errBuf.String(), exitCode
}

// newProject returns a temporary directory that stops config discovery.
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

// writeFixture creates a file with the given content in the given directory.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sample = "import os\n" +
	"\n" +
	"\n" +
	"def main():\n" +
	"    print(\"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx\")\n" +
	"    return os.getcwd()\n" +
	"\n" +
	"\n" +
	"# helpers\n" +
	"class my_class:\n" +
	"    pass\n"

func TestE2E_EndToEndReport(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "sample.py", sample)

	stdout, _, exitCode := runBinary(t, dir, "", "sample.py")
	assert.Equal(t, 1, exitCode)
	assert.Equal(t,
		"sample.py: Line 5: S001 Too long line\n"+
			"sample.py: Line 10: S008 Class name 'my_class' should use CamelCase\n",
		stdout)
}

func TestE2E_Idempotent(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "sample.py", sample)
	writeFixture(t, dir, "pkg/other.py", "x = 1;  # TODO\n")

	first, _, _ := runBinary(t, dir, "", "--jobs", "4", ".")
	second, _, _ := runBinary(t, dir, "", "--jobs", "1", ".")
	assert.Equal(t, first, second)
	assert.Equal(t, 4, strings.Count(first, "\n"))
}

func TestE2E_CleanFile_ExitsZero(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "clean.py", "def add(a, b):\n    return a + b\n")

	stdout, _, exitCode := runBinary(t, dir, "", "clean.py")
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stdout)
}

func TestE2E_MissingInput_ExitsTwoButChecksOthers(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "dirty.py", "x = 1;\n")

	stdout, stderr, exitCode := runBinary(t, dir, "", "missing.py", "dirty.py")
	assert.Equal(t, 2, exitCode)
	assert.Contains(t, stderr, `pystyle: cannot access "missing.py": no such file or directory`)
	assert.Equal(t, "dirty.py: Line 1: S003 Unnecessary semicolon\n", stdout)
}

func TestE2E_SyntaxError_LineFindingsStillReported(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "broken.py", "x = 1;\ndef broken(:\n    pass\n")

	stdout, stderr, exitCode := runBinary(t, dir, "", "broken.py")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "syntax error")
	assert.Equal(t, "broken.py: Line 1: S003 Unnecessary semicolon\n", stdout)
}

func TestE2E_SyntaxErrorOnly_ExitsTwo(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "broken.py", "def broken(:\n    pass\n")

	stdout, stderr, exitCode := runBinary(t, dir, "", "broken.py")
	assert.Equal(t, 2, exitCode)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `parsing "broken.py"`)
}

func TestE2E_JSONFormat(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "dirty.py", "def f(x=[]):\n    pass\n")

	stdout, _, exitCode := runBinary(t, dir, "", "--format", "json", "dirty.py")
	assert.Equal(t, 1, exitCode)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "dirty.py", items[0]["file"])
	assert.Equal(t, float64(1), items[0]["line"])
	assert.Equal(t, "S012", items[0]["code"])
	assert.Equal(t, "mutable-default", items[0]["name"])
	assert.Equal(t, "Default argument value for 'x' is mutable", items[0]["message"])
}

func TestE2E_JSONFormat_CleanIsEmptyArray(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "clean.py", "x = 1\n")

	stdout, _, exitCode := runBinary(t, dir, "", "-f", "json", "clean.py")
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "[]\n", stdout)
}

func TestE2E_UnknownFormat_ExitsTwo(t *testing.T) {
	dir := newProject(t)
	_, stderr, exitCode := runBinary(t, dir, "", "--format", "xml", "x.py")
	assert.Equal(t, 2, exitCode)
	assert.Contains(t, stderr, `unknown format "xml"`)
}

func TestE2E_Quiet(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "dirty.py", "x = 1;\n")

	stdout, _, exitCode := runBinary(t, dir, "", "-q", "dirty.py")
	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout)
}

func TestE2E_Stdin(t *testing.T) {
	dir := newProject(t)

	stdout, _, exitCode := runBinary(t, dir, "x = 1 # note\n")
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "<stdin>: Line 1: S004 At least two spaces required before inline comments\n", stdout)
}

func TestE2E_NoArgs_UsesConfigFiles(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, ".pystyle.yml", "files:\n  - \"src/**/*.py\"\n")
	writeFixture(t, dir, "src/app.py", "x = 1;\n")
	writeFixture(t, dir, "scripts/tool.py", "y = 2;\n")

	stdout, _, exitCode := runBinary(t, dir, "")
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "src/app.py: Line 1: S003 Unnecessary semicolon\n", filepath.ToSlash(stdout))
}

func TestE2E_ConfigIgnore(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, ".pystyle.yml", "ignore:\n  - \"*_pb2.py\"\n")
	writeFixture(t, dir, "api_pb2.py", "x = 1;\n")

	_, _, exitCode := runBinary(t, dir, "", "api_pb2.py")
	assert.Equal(t, 0, exitCode)
}

func TestE2E_InvalidConfig_ExitsTwo(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "custom.yml", "jobs: -3\n")

	_, stderr, exitCode := runBinary(t, dir, "", "-c", "custom.yml", ".")
	assert.Equal(t, 2, exitCode)
	assert.Contains(t, stderr, "jobs must not be negative")
}

func TestE2E_DirectoryHonoursGitignore(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, ".gitignore", "build/\n")
	writeFixture(t, dir, "app.py", "x = 1\n")
	writeFixture(t, dir, "build/gen.py", "y = 2;\n")

	_, _, exitCode := runBinary(t, dir, "", ".")
	assert.Equal(t, 0, exitCode)

	stdout, _, exitCode := runBinary(t, dir, "", "--no-gitignore", ".")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stdout, "S003")
}

func TestE2E_Verbose(t *testing.T) {
	dir := newProject(t)
	writeFixture(t, dir, "clean.py", "x = 1\n")

	_, stderr, exitCode := runBinary(t, dir, "", "-v", "clean.py")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "checked file")
}

func TestE2E_Version(t *testing.T) {
	stdout, _, exitCode := runBinary(t, t.TempDir(), "", "version")
	assert.Equal(t, 0, exitCode)
	assert.True(t, strings.HasPrefix(stdout, "pystyle "))
}

func TestE2E_HelpRuleList(t *testing.T) {
	stdout, _, exitCode := runBinary(t, t.TempDir(), "", "help", "rule")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "S001")
	assert.Contains(t, stdout, "mutable-default")
	assert.Equal(t, 12, strings.Count(stdout, "\n"))
}

func TestE2E_HelpRuleShow(t *testing.T) {
	stdout, _, exitCode := runBinary(t, t.TempDir(), "", "help", "rule", "class-name")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "# S008: class-name")

	_, stderr, exitCode := runBinary(t, t.TempDir(), "", "help", "rule", "S999")
	assert.Equal(t, 2, exitCode)
	assert.Contains(t, stderr, `unknown rule "S999"`)
}

func TestE2E_Init(t *testing.T) {
	dir := newProject(t)

	_, _, exitCode := runBinary(t, dir, "", "init")
	require.Equal(t, 0, exitCode)

	data, err := os.ReadFile(filepath.Join(dir, ".pystyle.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "**/*.py")

	_, stderr, exitCode := runBinary(t, dir, "", "init")
	assert.Equal(t, 2, exitCode)
	assert.Contains(t, stderr, "already exists")
}
