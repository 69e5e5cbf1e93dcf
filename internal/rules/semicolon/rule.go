package semicolon

import (
	"strings"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule reports statements terminated by a semicolon. Semicolons inside
// strings and comments do not count.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S003" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "unnecessary-semicolon" }

// CheckLine implements rule.LineRule.
func (r *Rule) CheckLine(f *lint.File, ln *lint.Line) []lint.Finding {
	if !strings.HasSuffix(strings.TrimRight(ln.Code, " \t"), ";") {
		return nil
	}
	return []lint.Finding{rule.Report(r, f, ln.Number)}
}
