package engine

import (
	"context"
	"fmt"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

// CheckFile runs every line rule over every physical line of f and, when
// f parses, every tree rule over its syntax tree. The two sets of
// findings are merged with lint.Aggregate.
//
// A parse failure is returned as an error wrapping *pyast.SyntaxError;
// the line findings are still returned alongside it.
func CheckFile(ctx context.Context, f *lint.File, lineRules []rule.LineRule, treeRules []rule.TreeRule) ([]lint.Finding, error) {
	var lineFindings []lint.Finding
	f.ScanLines(func(ln *lint.Line) {
		for _, r := range lineRules {
			lineFindings = append(lineFindings, r.CheckLine(f, ln)...)
		}
	})

	var treeFindings []lint.Finding
	var parseErr error
	if len(treeRules) > 0 {
		mod, err := f.Tree(ctx)
		if err != nil {
			parseErr = fmt.Errorf("parsing %q: %w", f.Path, err)
		} else {
			for _, r := range treeRules {
				treeFindings = append(treeFindings, r.CheckTree(f, mod)...)
			}
		}
	}

	return lint.Aggregate(lineFindings, treeFindings), parseErr
}
