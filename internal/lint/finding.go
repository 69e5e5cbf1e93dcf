package lint

import (
	"fmt"
	"sort"
)

// Finding is a single style violation.
type Finding struct {
	File    string
	Line    int
	Code    string
	Message string
}

// String renders the finding the way the text report prints it.
func (f Finding) String() string {
	return fmt.Sprintf("%s: Line %d: %s %s", f.File, f.Line, f.Code, f.Message)
}

// Aggregate merges the line-based and tree-based findings of one file,
// ordered by line and then rule code. Findings with equal keys keep their
// insertion order; exact duplicates (same line, code and message) are
// reported once.
func Aggregate(lineFindings, treeFindings []Finding) []Finding {
	all := make([]Finding, 0, len(lineFindings)+len(treeFindings))
	all = append(all, lineFindings...)
	all = append(all, treeFindings...)

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Line != all[j].Line {
			return all[i].Line < all[j].Line
		}
		return all[i].Code < all[j].Code
	})

	type key struct {
		line          int
		code, message string
	}
	seen := make(map[key]bool, len(all))
	out := all[:0]
	for _, f := range all {
		k := key{f.Line, f.Code, f.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, f)
	}
	return out
}

// SortFindings orders findings from several files by file path, line and
// rule code. The sort is stable.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		fi, fj := findings[i], findings[j]
		if fi.File != fj.File {
			return fi.File < fj.File
		}
		if fi.Line != fj.Line {
			return fi.Line < fj.Line
		}
		return fi.Code < fj.Code
	})
}
