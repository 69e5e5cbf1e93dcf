// Package naming holds the identifier conventions the naming rules check.
package naming

import "regexp"

var (
	snakeCaseRe = regexp.MustCompile(`^_*[a-z][a-z0-9_]*$`)
	camelCaseRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// IsSnakeCase reports whether name is lower snake_case. Leading and
// trailing underscores are allowed but at least one lower-case letter must
// follow the leading ones, so "_" alone is not snake_case.
func IsSnakeCase(name string) bool {
	return snakeCaseRe.MatchString(name)
}

// IsCamelCase reports whether name is CamelCase: an upper-case letter,
// then letters and digits only.
func IsCamelCase(name string) bool {
	return camelCaseRe.MatchString(name)
}
