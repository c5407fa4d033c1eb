package token

import (
	"fmt"
)

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TInteger
	TFloat
	TLiteral
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TLiteral: "TLiteral",
	}[t]
	if ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a classified lexeme. Bytes is the source text of the token,
// including any quotes. End is exclusive.
type Token struct {
	Type  TokenType
	Pos   *Pos
	End   *Pos
	Bytes []byte

	str string
}

// String returns the text the token denotes: the decoded contents of a
// quoted string, or the lexeme itself for everything else.
func (t *Token) String() string {
	if t.Type == TString {
		return t.str
	}
	return string(t.Bytes)
}

// IsKeyword reports whether t is one of the bare words true, false or
// null.
func (t *Token) IsKeyword() bool {
	if t.Type != TLiteral {
		return false
	}
	return IsKeyword(string(t.Bytes))
}

func IsKeyword(s string) bool {
	switch s {
	case "true", "false", "null":
		return true
	}
	return false
}
