package argumentname

import (
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/naming"
	"github.com/oleszik/StaticCodeAnalyzer/internal/pyast"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

func init() {
	rule.Register(&Rule{})
}

// Rule reports parameter names that are not snake_case, once per
// parameter, at the line of the def.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S010" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "argument-name" }

// CheckTree implements rule.TreeRule.
func (r *Rule) CheckTree(f *lint.File, mod *pyast.Module) []lint.Finding {
	var findings []lint.Finding
	for _, fn := range pyast.Functions(mod) {
		d := pyast.Describe(fn)
		for _, name := range d.Args {
			if !naming.IsSnakeCase(name) {
				findings = append(findings, rule.Report(r, f, d.Line, name))
			}
		}
	}
	return findings
}
