package lint

import "strings"

// tabWidth is the column multiple a tab advances indentation to, as in
// the Python tokenizer.
const tabWidth = 8

// Line is one physical line together with the context the line rules
// need: its code/comment split, how many blank lines directly precede it
// and its indentation column.
type Line struct {
	Number     int
	Text       string
	Code       string
	Comment    string
	HasComment bool

	// BlankBefore counts the consecutive blank lines immediately above.
	BlankBefore int

	// Indent is the column of the first non-whitespace character. Tabs
	// advance to the next multiple of tabWidth.
	Indent int
}

// Blank reports whether the line holds only whitespace.
func (l *Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// ScanLines calls visit for every line of f in order, threading the
// blank-line run across calls.
func (f *File) ScanLines(visit func(ln *Line)) {
	blanks := 0
	for i, text := range f.Lines {
		code, comment, ok := SplitComment(text)
		ln := &Line{
			Number:      i + 1,
			Text:        text,
			Code:        code,
			Comment:     comment,
			HasComment:  ok,
			BlankBefore: blanks,
			Indent:      indentColumn(text),
		}
		visit(ln)

		if ln.Blank() {
			blanks++
		} else {
			blanks = 0
		}
	}
}

func indentColumn(text string) int {
	col := 0
	for _, ch := range text {
		switch ch {
		case ' ':
			col++
		case '\t':
			col += tabWidth - col%tabWidth
		case '\f':
			col = 0
		default:
			return col
		}
	}
	return col
}
