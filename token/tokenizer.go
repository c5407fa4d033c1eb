package token

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/dpranke/floyd-datafile/go-floyd/format"
)

type tokenOpts struct {
	format format.Format
}

type TokenOpt func(*tokenOpts)

// TokenFormat selects the syntax accepted by the tokenizer.
func TokenFormat(f format.Format) TokenOpt {
	return func(o *tokenOpts) { o.format = f }
}

// TokenJSON restricts the tokenizer to strict JSON lexemes.
func TokenJSON() TokenOpt {
	return TokenFormat(format.JSONFormat)
}

// Tokenizer produces the tokens of a document one at a time.
type Tokenizer struct {
	src    []byte
	off    int
	posDoc *PosDoc
	opt    tokenOpts
}

func NewTokenizer(src []byte, opts ...TokenOpt) *Tokenizer {
	t := &Tokenizer{
		src:    src,
		posDoc: NewPosDoc(src),
		opt:    tokenOpts{format: format.FloydFormat},
	}
	for _, o := range opts {
		o(&t.opt)
	}
	return t
}

// PosDoc returns the position document shared by every token this
// tokenizer produces.
func (t *Tokenizer) PosDoc() *PosDoc {
	return t.posDoc
}

// EndPos is the position just past the last byte of input.
func (t *Tokenizer) EndPos() *Pos {
	return t.posDoc.End()
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (t *Tokenizer) Next() (*Token, error) {
	if err := t.skipSpace(); err != nil {
		return nil, err
	}
	if t.off >= len(t.src) {
		return nil, io.EOF
	}
	var (
		tok *Token
		err error
	)
	switch c := t.src[t.off]; c {
	case '{':
		tok = t.punct(TLCurl)
	case '}':
		tok = t.punct(TRCurl)
	case '[':
		tok = t.punct(TLSquare)
	case ']':
		tok = t.punct(TRSquare)
	case ':':
		tok = t.punct(TColon)
	case ',':
		tok = t.punct(TComma)
	case '"', '\'', '`':
		tok, err = t.quoted()
	default:
		if isNumberStart(t.src[t.off:]) {
			tok, err = t.number()
		} else {
			tok, err = t.literal()
		}
	}
	if err != nil {
		return nil, err
	}
	logToken(tok)
	return tok, nil
}

// Tokenize returns every token in src.
func Tokenize(src []byte, opts ...TokenOpt) ([]Token, error) {
	tz := NewTokenizer(src, opts...)
	var res []Token
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, *tok)
	}
}

func (t *Tokenizer) token(typ TokenType, start, end int) *Token {
	return &Token{
		Type:  typ,
		Pos:   t.posDoc.Pos(start),
		End:   t.posDoc.Pos(end),
		Bytes: t.src[start:end],
	}
}

func (t *Tokenizer) punct(typ TokenType) *Token {
	tok := t.token(typ, t.off, t.off+1)
	t.off++
	return tok
}

func (t *Tokenizer) skipSpace() error {
	json := t.opt.format.IsJSON()
	for t.off < len(t.src) {
		c := t.src[t.off]
		switch c {
		case '\n':
			t.posDoc.nl(t.off)
			t.off++
			continue
		case ' ', '\t', '\r':
			t.off++
			continue
		case '\v', '\f':
			if json {
				return nil
			}
			t.off++
			continue
		}
		if c < utf8.RuneSelf || json {
			return nil
		}
		r, sz := utf8.DecodeRune(t.src[t.off:])
		if r == utf8.RuneError && sz == 1 {
			return NewLexicalError(ErrBadUTF8, t.posDoc.Pos(t.off))
		}
		if !unicode.IsSpace(r) {
			return nil
		}
		t.off += sz
	}
	return nil
}
