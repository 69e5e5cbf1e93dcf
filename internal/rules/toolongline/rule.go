package toolongline

import (
	"unicode/utf8"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

// MaxLength is the longest line, in characters, that passes.
const MaxLength = 79

func init() {
	rule.Register(&Rule{})
}

// Rule reports lines longer than MaxLength characters.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S001" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "too-long-line" }

// CheckLine implements rule.LineRule.
func (r *Rule) CheckLine(f *lint.File, ln *lint.Line) []lint.Finding {
	if utf8.RuneCountInString(ln.Text) <= MaxLength {
		return nil
	}
	return []lint.Finding{rule.Report(r, f, ln.Number)}
}
