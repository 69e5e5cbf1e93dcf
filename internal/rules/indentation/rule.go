package indentation

import (
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule reports non-blank lines whose indentation column is not a
// multiple of four.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S002" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "indentation" }

// CheckLine implements rule.LineRule.
func (r *Rule) CheckLine(f *lint.File, ln *lint.Line) []lint.Finding {
	if ln.Blank() || ln.Indent%4 == 0 {
		return nil
	}
	return []lint.Finding{rule.Report(r, f, ln.Number)}
}
