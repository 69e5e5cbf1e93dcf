package lint

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/oleszik/StaticCodeAnalyzer/internal/pyast"
)

// File holds a Python source file: its decoded text split into physical
// lines and, once requested, its syntax tree.
type File struct {
	Path   string
	Source []byte
	Lines  []string

	parseOnce sync.Once
	tree      *pyast.Module
	treeErr   error
}

// NewFile decodes source as UTF-8 (dropping a leading byte order mark),
// normalizes line endings to "\n" and returns a File. Content that is not
// valid UTF-8 yields an *EncodingError.
func NewFile(path string, source []byte) (*File, error) {
	if !utf8.Valid(source) {
		return nil, &EncodingError{Path: path}
	}

	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), source)
	if err != nil {
		return nil, &EncodingError{Path: path, Err: err}
	}

	text := []byte(lineBreaks.Replace(string(decoded)))
	return &File{
		Path:   path,
		Source: text,
		Lines:  splitLines(text),
	}, nil
}

// lineBreaks maps every line ending the Python tokenizer accepts to "\n".
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// splitLines splits normalized text on "\n". A final newline terminates
// the last line instead of starting an empty one.
func splitLines(src []byte) []string {
	if len(src) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(src), "\n"), "\n")
}

// Tree parses the file on first use and returns the cached syntax tree or
// parse error on every later call.
func (f *File) Tree(ctx context.Context) (*pyast.Module, error) {
	f.parseOnce.Do(func() {
		f.tree, f.treeErr = pyast.Parse(ctx, f.Source)
	})
	return f.tree, f.treeErr
}
