package rule

import (
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/pyast"
)

// Rule is a single style check identified by a fixed code.
type Rule interface {
	ID() string
	Name() string
}

// LineRule checks one physical line at a time.
type LineRule interface {
	Rule
	CheckLine(f *lint.File, ln *lint.Line) []lint.Finding
}

// TreeRule checks the syntax tree of a whole file. It only runs when the
// file parses.
type TreeRule interface {
	Rule
	CheckTree(f *lint.File, mod *pyast.Module) []lint.Finding
}

// Report builds a finding of rule r at line, formatting the rule's message
// template with args.
func Report(r Rule, f *lint.File, line int, args ...any) lint.Finding {
	return lint.Finding{
		File:    f.Path,
		Line:    line,
		Code:    r.ID(),
		Message: Message(r.ID(), args...),
	}
}

// Split separates rules into line rules and tree rules, preserving order.
func Split(rules []Rule) (lineRules []LineRule, treeRules []TreeRule) {
	for _, r := range rules {
		if lr, ok := r.(LineRule); ok {
			lineRules = append(lineRules, lr)
		}
		if tr, ok := r.(TreeRule); ok {
			treeRules = append(treeRules, tr)
		}
	}
	return lineRules, treeRules
}
