package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

func (t *Tokenizer) quoted() (*Token, error) {
	start := t.off
	q := t.src[start]
	json := t.opt.format.IsJSON()
	if json && q != '"' {
		return nil, NewLexicalError(ErrNotJSON, t.posDoc.Pos(start))
	}
	delim := 1
	if !json && start+2 < len(t.src) && t.src[start+1] == q && t.src[start+2] == q {
		delim = 3
	}
	buf := &strings.Builder{}
	i := start + delim
	for {
		if i >= len(t.src) {
			return nil, NewLexicalError(ErrUnterminatedString, t.posDoc.Pos(start))
		}
		c := t.src[i]
		switch {
		case c == q && (delim == 1 || (i+2 < len(t.src) && t.src[i+1] == q && t.src[i+2] == q)):
			end := i + delim
			tok := t.token(TString, start, end)
			tok.str = buf.String()
			t.off = end
			return tok, nil
		case c == '\\':
			n, err := t.escape(i, buf)
			if err != nil {
				return nil, err
			}
			i = n
		case c == '\n':
			if delim == 1 {
				return nil, NewLexicalError(ErrUnterminatedString, t.posDoc.Pos(start))
			}
			t.posDoc.nl(i)
			buf.WriteByte(c)
			i++
		case c < ' ' && json:
			return nil, NewLexicalError(ErrNotJSON, t.posDoc.Pos(i))
		case c < utf8.RuneSelf:
			buf.WriteByte(c)
			i++
		default:
			r, sz := utf8.DecodeRune(t.src[i:])
			if r == utf8.RuneError && sz == 1 {
				return nil, NewLexicalError(ErrBadUTF8, t.posDoc.Pos(i))
			}
			buf.Write(t.src[i : i+sz])
			i += sz
		}
	}
}

// escape decodes the escape sequence whose backslash is at i and returns
// the offset just past it. A backslash at the end of input is left for the
// caller to report as an unterminated string.
func (t *Tokenizer) escape(i int, buf *strings.Builder) (int, error) {
	if i+1 >= len(t.src) {
		return i + 1, nil
	}
	json := t.opt.format.IsJSON()
	bad := func() (int, error) {
		return 0, NewLexicalError(ErrBadEscape, t.posDoc.Pos(i))
	}
	c := t.src[i+1]
	switch c {
	case '"', '\\', '/':
		buf.WriteByte(c)
	case '\'', '`':
		if json {
			return bad()
		}
		buf.WriteByte(c)
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'v':
		if json {
			return bad()
		}
		buf.WriteByte('\v')
	case '0':
		if json {
			return bad()
		}
		buf.WriteByte(0)
	case '\n':
		if json {
			return bad()
		}
		t.posDoc.nl(i + 1)
	case 'x':
		if json {
			return bad()
		}
		v, ok := hexValue(t.src, i+2, 2)
		if !ok {
			return bad()
		}
		buf.WriteRune(rune(v))
		return i + 4, nil
	case 'u':
		r, ok := hexValue(t.src, i+2, 4)
		if !ok {
			return bad()
		}
		n := i + 6
		if utf16.IsSurrogate(rune(r)) {
			r2, ok := hexValue(t.src, n+2, 4)
			if ok && n+1 < len(t.src) && t.src[n] == '\\' && t.src[n+1] == 'u' {
				if dec := utf16.DecodeRune(rune(r), rune(r2)); dec != utf8.RuneError {
					buf.WriteRune(dec)
					return n + 6, nil
				}
			}
			buf.WriteRune(utf8.RuneError)
			return n, nil
		}
		buf.WriteRune(rune(r))
		return n, nil
	default:
		return bad()
	}
	return i + 2, nil
}

func hexValue(b []byte, i, n int) (int, bool) {
	if i+n > len(b) {
		return 0, false
	}
	v := 0
	for _, c := range b[i : i+n] {
		d := strings.IndexByte(hexDigits, lower(c))
		if d < 0 {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'F' {
		return c + 'a' - 'A'
	}
	return c
}

// Unquote decodes a single complete quoted string literal in any of the
// accepted quoting styles.
func Unquote(b []byte) (string, error) {
	tz := NewTokenizer(b)
	if len(b) == 0 {
		return "", NewLexicalError(ErrUnterminatedString, tz.posDoc.Pos(0))
	}
	switch b[0] {
	case '"', '\'', '`':
	default:
		return "", tz.unexpected(0)
	}
	tok, err := tz.quoted()
	if err != nil {
		return "", err
	}
	if tz.off != len(b) {
		return "", tz.unexpected(tz.off)
	}
	return tok.String(), nil
}

func (t *Tokenizer) unexpected(i int) error {
	return NewLexicalError(ErrUnexpectedText, t.posDoc.Pos(i))
}

// PreferredQuote returns the quote character that needs the fewest escapes
// for s: a single quote unless s holds more single quotes than double
// quotes.
func PreferredQuote(s string) byte {
	if strings.Count(s, "'") > strings.Count(s, `"`) {
		return '"'
	}
	return '\''
}

// Quote renders s between q quote characters, escaping q, backslashes and
// control characters. Invalid UTF-8 is replaced by U+FFFD. Output quoted
// with '"' is valid JSON.
func Quote(s string, q byte) string {
	buf := &strings.Builder{}
	buf.Grow(len(s) + 2)
	buf.WriteByte(q)
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == q || c == '\\':
				buf.WriteByte('\\')
				buf.WriteByte(c)
			case c == '\n':
				buf.WriteString(`\n`)
			case c == '\r':
				buf.WriteString(`\r`)
			case c == '\t':
				buf.WriteString(`\t`)
			case c == '\b':
				buf.WriteString(`\b`)
			case c == '\f':
				buf.WriteString(`\f`)
			case c < ' ' || c == 0x7f:
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[c>>4])
				buf.WriteByte(hexDigits[c&0xf])
			default:
				buf.WriteByte(c)
			}
			i++
			continue
		}
		r, sz := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && sz == 1 {
			buf.WriteRune(utf8.RuneError)
		} else {
			buf.WriteString(s[i : i+sz])
		}
		i += sz
	}
	buf.WriteByte(q)
	return buf.String()
}
