package lint

import (
	"errors"
	"fmt"
)

// ErrInputNotFound is wrapped by errors for command-line inputs that do
// not exist.
var ErrInputNotFound = errors.New("no such file or directory")

// EncodingError reports a file whose content is not valid UTF-8 text.
type EncodingError struct {
	Path string
	Err  error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("decoding %q: content is not valid UTF-8", e.Path)
}

func (e *EncodingError) Unwrap() error { return e.Err }
