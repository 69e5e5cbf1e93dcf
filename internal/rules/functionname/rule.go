package functionname

import (
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/naming"
	"github.com/oleszik/StaticCodeAnalyzer/internal/pyast"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule reports function and method names that are not snake_case.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S009" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "function-name" }

// CheckTree implements rule.TreeRule.
func (r *Rule) CheckTree(f *lint.File, mod *pyast.Module) []lint.Finding {
	var findings []lint.Finding
	for _, fn := range pyast.Functions(mod) {
		if !naming.IsSnakeCase(fn.Name) {
			findings = append(findings, rule.Report(r, f, fn.Line(), fn.Name))
		}
	}
	return findings
}
