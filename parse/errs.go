package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jdom/token"
)

var ErrParse = errors.New("parse error")

// SyntaxError reports a grammar violation at a byte offset in the input.
// Every failed Parse call carries its own error; there is no shared
// error state between calls.
type SyntaxError struct {
	Offset int
	Pos    token.Pos
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrParse, e.Msg, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return ErrParse
}
