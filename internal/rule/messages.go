package rule

import "fmt"

// messages maps each rule code to its message template. It is never
// written after package initialisation.
var messages = map[string]string{
	"S001": "Too long line",
	"S002": "Indentation is not a multiple of four",
	"S003": "Unnecessary semicolon",
	"S004": "At least two spaces required before inline comments",
	"S005": "TODO found",
	"S006": "More than two blank lines used before this line",
	"S007": "Too many spaces after '%s'",
	"S008": "Class name '%s' should use CamelCase",
	"S009": "Function name '%s' should use snake_case",
	"S010": "Argument name '%s' should use snake_case",
	"S011": "Variable '%s' in function should use snake_case",
	"S012": "Default argument value for '%s' is mutable",
}

// Codes returns every known rule code in order.
func Codes() []string {
	return []string{
		"S001", "S002", "S003", "S004", "S005", "S006",
		"S007", "S008", "S009", "S010", "S011", "S012",
	}
}

// Message formats the message template of code with args. It panics on an
// unknown code: rules only ever report codes from the table.
func Message(code string, args ...any) string {
	tmpl, ok := messages[code]
	if !ok {
		panic(fmt.Sprintf("rule: unknown code %q", code))
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
