package lint

import "strings"

// SplitComment separates a physical line into its code and its trailing
// comment. A '#' starts a comment only outside string literals; single,
// double and triple quotes are tracked and a backslash inside a string
// escapes the next character. When the line has no comment, ok is false
// and code is the whole line. An unterminated string leaves the rest of
// the line as code.
func SplitComment(line string) (code, comment string, ok bool) {
	quote := ""
	for i := 0; i < len(line); i++ {
		ch := line[i]

		if quote != "" {
			switch {
			case ch == '\\':
				i++
			case strings.HasPrefix(line[i:], quote):
				i += len(quote) - 1
				quote = ""
			}
			continue
		}

		switch ch {
		case '#':
			return line[:i], line[i:], true
		case '\'', '"':
			if triple := line[i : i+1]; strings.HasPrefix(line[i:], strings.Repeat(triple, 3)) {
				quote = line[i : i+3]
				i += 2
			} else {
				quote = triple
			}
		}
	}
	return line, "", false
}
