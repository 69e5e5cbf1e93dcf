package output

import (
	"encoding/json"
	"io"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

// JSONFormatter outputs findings as a JSON array.
type JSONFormatter struct{}

type jsonFinding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Format writes findings as a pretty-printed JSON array.
// An empty slice of findings produces [].
func (f *JSONFormatter) Format(w io.Writer, findings []lint.Finding) error {
	items := make([]jsonFinding, 0, len(findings))
	for _, d := range findings {
		var name string
		if r := rule.Lookup(d.Code); r != nil {
			name = r.Name()
		}
		items = append(items, jsonFinding{
			File:    d.File,
			Line:    d.Line,
			Code:    d.Code,
			Name:    name,
			Message: d.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
