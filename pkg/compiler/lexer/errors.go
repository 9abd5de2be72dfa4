package lexer

import (
	"errors"
	"fmt"
)

// ErrUnterminatedString is the only failure the scanner itself produces;
// every other classification error is deferred to the parser.
var ErrUnterminatedString = errors.New("lexer: unterminated string literal")

// Error attributes a lex failure to a 1-based source line.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
