package inlinecomment

import (
	"strings"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule reports inline comments separated from the code by fewer than two
// spaces. Full-line comments are not inline.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S004" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "inline-comment-spacing" }

// CheckLine implements rule.LineRule.
func (r *Rule) CheckLine(f *lint.File, ln *lint.Line) []lint.Finding {
	if !ln.HasComment || strings.TrimSpace(ln.Code) == "" {
		return nil
	}
	if strings.HasSuffix(ln.Code, "  ") {
		return nil
	}
	return []lint.Finding{rule.Report(r, f, ln.Number)}
}
