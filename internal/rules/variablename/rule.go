package variablename

import (
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/naming"
	"github.com/oleszik/StaticCodeAnalyzer/internal/pyast"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule reports variables assigned inside a function body whose names are
// not snake_case. Module and class level assignments are not checked.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S011" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "variable-name" }

// CheckTree implements rule.TreeRule.
func (r *Rule) CheckTree(f *lint.File, mod *pyast.Module) []lint.Finding {
	var findings []lint.Finding
	for _, fn := range pyast.Functions(mod) {
		for _, local := range pyast.Describe(fn).Locals {
			if !naming.IsSnakeCase(local.Name) {
				findings = append(findings, rule.Report(r, f, local.Line, local.Name))
			}
		}
	}
	return findings
}
