package token

import (
	"errors"
	"io"
	"testing"
)

func FuzzTokenize(f *testing.F) {
	for _, s := range []string{
		"", "[1 2]", "{foo: bar}", "'''a\nb'''", "0x_ff", "-1.5e3", `"é"`, "@foo",
	} {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, d []byte) {
		tz := NewTokenizer(d)
		prev := 0
		for {
			tok, err := tz.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				var lexErr *LexicalError
				if !errors.As(err, &lexErr) {
					t.Fatalf("unexpected error type %T", err)
				}
				return
			}
			if tok.Pos.Offset() < prev || tok.End.Offset() <= tok.Pos.Offset() {
				t.Fatalf("bad span [%d, %d) after %d", tok.Pos.Offset(), tok.End.Offset(), prev)
			}
			prev = tok.End.Offset()
		}
	})
}
