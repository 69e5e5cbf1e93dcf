package todocomment

import (
	"strings"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule reports comments mentioning "todo" in any letter case.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S005" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "todo-comment" }

// CheckLine implements rule.LineRule.
func (r *Rule) CheckLine(f *lint.File, ln *lint.Line) []lint.Finding {
	if !ln.HasComment || !strings.Contains(strings.ToLower(ln.Comment), "todo") {
		return nil
	}
	return []lint.Finding{rule.Report(r, f, ln.Number)}
}
