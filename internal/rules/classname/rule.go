package classname

import (
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/naming"
	"github.com/oleszik/StaticCodeAnalyzer/internal/pyast"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule reports class names that are not CamelCase.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S008" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "class-name" }

// CheckTree implements rule.TreeRule.
func (r *Rule) CheckTree(f *lint.File, mod *pyast.Module) []lint.Finding {
	var findings []lint.Finding
	for _, cd := range pyast.Classes(mod) {
		if !naming.IsCamelCase(cd.Name) {
			findings = append(findings, rule.Report(r, f, cd.Line(), cd.Name))
		}
	}
	return findings
}
