package functionname

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
)

func check(t *testing.T, src string) []lint.Finding {
	t.Helper()
	f, err := lint.NewFile("test.py", []byte(src))
	require.NoError(t, err)
	mod, err := f.Tree(context.Background())
	require.NoError(t, err)
	return (&Rule{}).CheckTree(f, mod)
}

type hit struct {
	Line    int
	Message string
}

func hits(findings []lint.Finding) []hit {
	var out []hit
	for _, f := range findings {
		out = append(out, hit{f.Line, f.Message})
	}
	return out
}

func TestCheckTree_NotSnakeCase(t *testing.T) {
	src := "def CamelFunc():\n    pass\n\n\ndef good_func():\n    pass\n"
	assert.Equal(t, []hit{
		{1, "Function name 'CamelFunc' should use snake_case"},
	}, hits(check(t, src)))
}

func TestCheckTree_MethodsNestedAndAsync(t *testing.T) {
	src := "class A:\n" +
		"    def __init__(self):\n" +
		"        pass\n" +
		"\n" +
		"    def doThing(self):\n" +
		"        def Inner():\n" +
		"            pass\n" +
		"\n" +
		"\n" +
		"async def FetchAll():\n" +
		"    pass\n"
	assert.Equal(t, []hit{
		{5, "Function name 'doThing' should use snake_case"},
		{6, "Function name 'Inner' should use snake_case"},
		{10, "Function name 'FetchAll' should use snake_case"},
	}, hits(check(t, src)))
}

func TestCheckTree_InsideCompoundStatement(t *testing.T) {
	src := "if True:\n    def BadName():\n        pass\n"
	assert.Equal(t, []hit{{2, "Function name 'BadName' should use snake_case"}}, hits(check(t, src)))
}
