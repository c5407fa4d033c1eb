package token

import (
	"unicode"
	"unicode/utf8"
)

func isDelim(r rune) bool {
	switch r {
	case '{', '}', '[', ']', ':', ',':
		return true
	}
	return unicode.IsSpace(r)
}

// scanWord returns the end of the maximal run of non delimiter characters
// starting at the current offset.
func (t *Tokenizer) scanWord() (int, error) {
	i := t.off
	for i < len(t.src) {
		c := t.src[i]
		if c < utf8.RuneSelf {
			if isDelim(rune(c)) {
				break
			}
			i++
			continue
		}
		r, sz := utf8.DecodeRune(t.src[i:])
		if r == utf8.RuneError && sz == 1 {
			return 0, NewLexicalError(ErrBadUTF8, t.posDoc.Pos(i))
		}
		if unicode.IsSpace(r) {
			break
		}
		i += sz
	}
	return i, nil
}

func (t *Tokenizer) literal() (*Token, error) {
	start := t.off
	end, err := t.scanWord()
	if err != nil {
		return nil, err
	}
	if t.opt.format.IsJSON() && !IsKeyword(string(t.src[start:end])) {
		return nil, NewLexicalError(ErrNotJSON, t.posDoc.Pos(start))
	}
	tok := t.token(TLiteral, start, end)
	t.off = end
	return tok, nil
}

// IsBareWord reports whether s reads back as the same string when written
// without quotes.
func IsBareWord(s string) bool {
	if s == "" || !utf8.ValidString(s) || IsKeyword(s) {
		return false
	}
	switch s[0] {
	case '"', '\'', '`':
		return false
	}
	if isNumberStart([]byte(s)) {
		return false
	}
	for _, r := range s {
		if isDelim(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
