package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
)

// TextFormatter outputs findings in human-readable text format.
// When Color is true, the file path is printed in cyan and the rule code in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each finding as a single line in the pattern:
// path: Line n: code message
func (f *TextFormatter) Format(w io.Writer, findings []lint.Finding) error {
	path := color.New(color.FgCyan)
	code := color.New(color.FgYellow)
	if f.Color {
		path.EnableColor()
		code.EnableColor()
	} else {
		path.DisableColor()
		code.DisableColor()
	}

	for _, d := range findings {
		if _, err := fmt.Fprintf(w, "%s: Line %d: %s %s\n",
			path.Sprint(d.File), d.Line, code.Sprint(d.Code), d.Message); err != nil {
			return err
		}
	}
	return nil
}
