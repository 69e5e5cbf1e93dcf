package mutabledefault

import (
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/pyast"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

// constructors are the callables whose result is a fresh mutable
// container, matched by their final name component.
var constructors = map[string]bool{
	"list":        true,
	"dict":        true,
	"set":         true,
	"bytearray":   true,
	"defaultdict": true,
	"OrderedDict": true,
	"deque":       true,
	"Counter":     true,
}

func init() {
	rule.Register(&Rule{})
}

// Rule reports parameters whose default value is a mutable container.
type Rule struct{}

// ID implements rule.Rule.
func (r *Rule) ID() string { return "S012" }

// Name implements rule.Rule.
func (r *Rule) Name() string { return "mutable-default" }

// CheckTree implements rule.TreeRule.
func (r *Rule) CheckTree(f *lint.File, mod *pyast.Module) []lint.Finding {
	var findings []lint.Finding
	for _, fn := range pyast.Functions(mod) {
		d := pyast.Describe(fn)
		for i, def := range d.Defaults {
			if IsMutable(def) {
				findings = append(findings, rule.Report(r, f, d.Line, d.DefaultOwner(i)))
			}
		}
		for i, def := range d.KwDefaults {
			if def != nil && IsMutable(def) {
				findings = append(findings, rule.Report(r, f, d.Line, d.KwOnly[i]))
			}
		}
	}
	return findings
}

// IsMutable reports whether e evaluates to a new mutable container.
func IsMutable(e pyast.Expr) bool {
	switch e := e.(type) {
	case *pyast.List, *pyast.Dict, *pyast.Set:
		return true
	case *pyast.Comprehension:
		return e.Kind != "generator"
	case *pyast.Call:
		switch fn := e.Func.(type) {
		case *pyast.Name:
			return constructors[fn.ID]
		case *pyast.Attribute:
			return constructors[fn.Attr]
		}
	}
	return false
}
