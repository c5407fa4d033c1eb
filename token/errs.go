package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrMalformedNumber    = errors.New("malformed number")
	ErrBadEscape          = errors.New("bad escape")
	ErrBadUTF8            = errors.New("bad utf8")
	ErrNotJSON            = errors.New("not valid json")
	ErrUnexpectedText     = errors.New("unexpected text")
)

// LexicalError is a tokenizer failure at a position in the input.
type LexicalError struct {
	Err error
	Pos Pos
}

func NewLexicalError(e error, p *Pos) *LexicalError {
	return &LexicalError{Err: e, Pos: *p}
}

func (e *LexicalError) Unwrap() error {
	return e.Err
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *LexicalError) Line() int { return e.Pos.Line() }
func (e *LexicalError) Col() int  { return e.Pos.Col() }
