package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/pyast"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

func checkSource(t *testing.T, src string) ([]lint.Finding, error) {
	t.Helper()
	f, err := lint.NewFile("test.py", []byte(src))
	require.NoError(t, err)
	lineRules, treeRules := rule.Split(rule.All())
	return CheckFile(context.Background(), f, lineRules, treeRules)
}

func TestCheckFile_MergesLineAndTreeFindings(t *testing.T) {
	src := "class my_class:\n    def Method(self):\n        Value = 1;\n"
	got, err := checkSource(t, src)
	require.NoError(t, err)

	assert.Equal(t, []key{
		{1, "S008"},
		{2, "S009"},
		{3, "S003"},
		{3, "S011"},
	}, keys(got))
}

func TestCheckFile_SyntaxErrorKeepsLineFindings(t *testing.T) {
	src := "x = 1;\ndef broken(:\n    pass\n"
	got, err := checkSource(t, src)

	var synErr *pyast.SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Contains(t, err.Error(), `parsing "test.py"`)
	assert.Equal(t, []key{{1, "S003"}}, keys(got))
}

func TestCheckFile_NoTreeRulesSkipsParsing(t *testing.T) {
	f, err := lint.NewFile("test.py", []byte("def broken(:\n"))
	require.NoError(t, err)

	lineRules, _ := rule.Split(rule.All())
	got, err := CheckFile(context.Background(), f, lineRules, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCheckFile_MutableDefaultsNotCollapsed(t *testing.T) {
	got, err := checkSource(t, "def f(x=[], y=2, z={}):\n    pass\n")
	require.NoError(t, err)
	assert.Equal(t, []key{{1, "S012"}, {1, "S012"}}, keys(got))
}

func TestCheckFile_UnderscoreClassName(t *testing.T) {
	got, err := checkSource(t, "class _Private:\n    pass\n")
	require.NoError(t, err)
	assert.Equal(t, []key{{1, "S008"}}, keys(got))
}

func TestCheckFile_Python2PrintIsParseFailure(t *testing.T) {
	got, err := checkSource(t, "class bad_name:\n    pass\nprint \"hello\";\n")

	var synErr *pyast.SyntaxError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, 3, synErr.Line)
	assert.Equal(t, []key{{3, "S003"}}, keys(got))
}
