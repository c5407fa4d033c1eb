package parse

import (
	"errors"
	"fmt"

	"github.com/dpranke/floyd-datafile/go-floyd/token"
)

var (
	ErrParse                  = errors.New("parse error")
	ErrUnexpectedToken        = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrUnterminatedCollection = fmt.Errorf("%w: unterminated collection", ErrParse)
	ErrTrailingData           = fmt.Errorf("%w: trailing data", ErrParse)
	ErrNestingTooDeep         = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrDuplicateKey           = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrEmptyDocument          = fmt.Errorf("%w: empty document", ErrUnexpectedToken)
)

// SyntaxError is a grammar violation at a position in the input.
type SyntaxError struct {
	Err error
	Pos token.Pos
	Msg string
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
	}
	return fmt.Sprintf("%s: %s at %s", e.Err.Error(), e.Msg, e.Pos.String())
}

func (e *SyntaxError) Line() int { return e.Pos.Line() }
func (e *SyntaxError) Col() int  { return e.Pos.Col() }

func syntaxErr(e error, p *token.Pos, format string, args ...any) *SyntaxError {
	return &SyntaxError{Err: e, Pos: *p, Msg: fmt.Sprintf(format, args...)}
}
