package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand   = errors.New("parser: unknown command")
	ErrArgumentMismatch = errors.New("parser: argument mismatch")
	ErrTrailingTokens   = errors.New("parser: trailing tokens")
)

// Error attributes a parse failure to a 1-based source line.
type Error struct {
	Line   int
	Err    error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (p *Parser) errorf(kind error, format string, args ...any) *Error {
	return &Error{
		Line:   int(p.curTok.Line),
		Err:    kind,
		Detail: fmt.Sprintf(format, args...),
	}
}
