package output

import (
	"fmt"
	"io"

	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
)

// Formatter defines the interface for outputting findings.
type Formatter interface {
	Format(w io.Writer, findings []lint.Finding) error
}

// New returns the formatter for the named format, "text" or "json".
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown format %q (valid: text, json)", format)
}
