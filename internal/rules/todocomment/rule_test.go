package todocomment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
)

func check(t *testing.T, src string) []lint.Finding {
	t.Helper()
	f, err := lint.NewFile("test.py", []byte(src))
	require.NoError(t, err)

	r := &Rule{}
	var got []lint.Finding
	f.ScanLines(func(ln *lint.Line) {
		got = append(got, r.CheckLine(f, ln)...)
	})
	return got
}

func lines(findings []lint.Finding) []int {
	var out []int
	for _, f := range findings {
		out = append(out, f.Line)
	}
	return out
}

func TestCheckLine_AnyCase(t *testing.T) {
	src := "x = 1  # TODO: fix\n# todo later\n# ToDo\n# done\n"
	got := check(t, src)
	assert.Equal(t, []int{1, 2, 3}, lines(got))
	assert.Equal(t, "TODO found", got[0].Message)
}

func TestCheckLine_TodoOutsideComment(t *testing.T) {
	src := "todo = 1\ns = 'TODO # todo'\n"
	assert.Empty(t, check(t, src))
}
