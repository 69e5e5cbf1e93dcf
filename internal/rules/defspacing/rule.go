package defspacing

import (
	"regexp"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

// constructRe matches a class or function header with two or more
// whitespace characters between the keyword and the name.
var constructRe = regexp.MustCompile(`^\s*(?:async\s+)?(class|def)\s{2,}\S`)

func init() {
	rule.Register(&Rule{})
}

// Rule reports extra spaces after the class and def keywords.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S007" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "def-spacing" }

// CheckLine implements rule.LineRule.
func (r *Rule) CheckLine(f *lint.File, ln *lint.Line) []lint.Finding {
	m := constructRe.FindStringSubmatch(ln.Code)
	if m == nil {
		return nil
	}
	return []lint.Finding{rule.Report(r, f, ln.Number, m[1])}
}
