package token

import (
	"fmt"
	"io"

	"github.com/dpranke/floyd-datafile/go-floyd/debug"
)

// FprintTokens writes one line per token: type, lexeme and start line:col.
func FprintTokens(w io.Writer, toks []Token) error {
	for i := range toks {
		t := &toks[i]
		line, col := t.Pos.LineCol()
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%s\n", line, col, t.Type, t.Bytes); err != nil {
			return err
		}
	}
	return nil
}

func logToken(t *Token) {
	if !debug.Tokens() {
		return
	}
	debug.Log("token", "type", t.Type, "bytes", string(t.Bytes), "offset", t.Pos.I)
}
