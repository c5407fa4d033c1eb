package token

func isNumberStart(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	c := b[0]
	if c == '+' || c == '-' {
		if len(b) < 2 {
			return false
		}
		c = b[1]
	}
	return isDecDigit(c)
}

func isDecDigit(c byte) bool { return '0' <= c && c <= '9' }
func isOctDigit(c byte) bool { return '0' <= c && c <= '7' }
func isBinDigit(c byte) bool { return c == '0' || c == '1' }
func isHexDigit(c byte) bool {
	return isDecDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func (t *Tokenizer) number() (*Token, error) {
	start := t.off
	end, err := t.scanWord()
	if err != nil {
		return nil, err
	}
	typ, err := ClassifyNumber(t.src[start:end], t.opt.format.IsJSON())
	if err != nil {
		return nil, NewLexicalError(err, t.posDoc.Pos(start))
	}
	tok := t.token(typ, start, end)
	t.off = end
	return tok, nil
}

// ClassifyNumber checks that b is a complete numeric literal and reports
// whether it denotes an integer or a float. With json set only the JSON
// number grammar is accepted.
func ClassifyNumber(b []byte, json bool) (TokenType, error) {
	typ, ok := classify(b, false)
	if !ok {
		return 0, ErrMalformedNumber
	}
	if json {
		if _, ok := classify(b, true); !ok {
			return 0, ErrNotJSON
		}
	}
	return typ, nil
}

func classify(b []byte, json bool) (TokenType, bool) {
	i := 0
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		if json && b[i] == '+' {
			return 0, false
		}
		i++
	}
	if !json && len(b)-i > 2 && b[i] == '0' {
		var isDigit func(byte) bool
		switch b[i+1] {
		case 'x', 'X':
			isDigit = isHexDigit
		case 'o', 'O':
			isDigit = isOctDigit
		case 'b', 'B':
			isDigit = isBinDigit
		}
		if isDigit != nil {
			rest := b[i+2:]
			n := scanDigits(rest, isDigit, true, true)
			return TInteger, n > 0 && n == len(rest)
		}
	}
	n := scanDigits(b[i:], isDecDigit, !json, false)
	if n == 0 {
		return 0, false
	}
	if json && b[i] == '0' && n > 1 {
		return 0, false
	}
	i += n
	typ := TInteger
	if i < len(b) && b[i] == '.' {
		i++
		n = scanDigits(b[i:], isDecDigit, !json, false)
		if n == 0 {
			return 0, false
		}
		i += n
		typ = TFloat
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		n = scanDigits(b[i:], isDecDigit, !json, false)
		if n == 0 {
			return 0, false
		}
		i += n
		typ = TFloat
	}
	return typ, i == len(b)
}

// scanDigits returns how many bytes of b form a digit run. Underscores are
// only accepted between digits, or directly before the first digit when
// prefixed is set.
func scanDigits(b []byte, isDigit func(byte) bool, underscore, prefixed bool) int {
	i := 0
	if underscore && prefixed && len(b) > 1 && b[0] == '_' && isDigit(b[1]) {
		i = 1
	}
	if i >= len(b) || !isDigit(b[i]) {
		return 0
	}
	for i < len(b) {
		switch {
		case isDigit(b[i]):
			i++
		case underscore && b[i] == '_' && i+1 < len(b) && isDigit(b[i+1]):
			i++
		default:
			return i
		}
	}
	return i
}
