package blanklines

import (
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

// MaxBlank is the number of consecutive blank lines allowed before a
// line.
const MaxBlank = 2

func init() {
	rule.Register(&Rule{})
}

// Rule reports the first non-blank line after more than MaxBlank blank
// lines.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S006" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "blank-lines" }

// CheckLine implements rule.LineRule.
func (r *Rule) CheckLine(f *lint.File, ln *lint.Line) []lint.Finding {
	if ln.Blank() || ln.BlankBefore <= MaxBlank {
		return nil
	}
	return []lint.Finding{rule.Report(r, f, ln.Number)}
}
