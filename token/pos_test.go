package token

import (
	"strings"
	"testing"
)

func TestPosLineCol(t *testing.T) {
	src := "{\n  a: 1\n\n  b: 'x'\n}"
	toks, err := Tokenize([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	type lc struct{ line, col int }
	want := []lc{{1, 0}, {2, 2}, {2, 3}, {2, 5}, {4, 2}, {4, 3}, {4, 5}, {5, 0}}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens", len(toks))
	}
	for i := range toks {
		l, c := toks[i].Pos.LineCol()
		if l != want[i].line || c != want[i].col {
			t.Errorf("token %d %q: got %d:%d want %d:%d", i, toks[i].Bytes, l, c, want[i].line, want[i].col)
		}
	}
	last := toks[len(toks)-1]
	if last.End.Line() != 5 || last.End.Col() != 1 {
		t.Errorf("end of last token %d:%d", last.End.Line(), last.End.Col())
	}
}

func TestPosTripleQuotedLines(t *testing.T) {
	src := "[\"\"\"a\nb\nc\"\"\" d]"
	toks, err := Tokenize([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	d := toks[2]
	if d.String() != "d" {
		t.Fatalf("got %q", d.String())
	}
	if d.Pos.Line() != 3 || d.Pos.Col() != 5 {
		t.Errorf("got %d:%d", d.Pos.Line(), d.Pos.Col())
	}
}

func TestPosString(t *testing.T) {
	doc := NewPosDoc([]byte("hello world"))
	s := doc.Pos(6).String()
	if !strings.Contains(s, "offset 6") || !strings.Contains(s, "line=1, col=6") {
		t.Errorf("got %s", s)
	}
	var zero Pos
	if zero.Line() != 1 || zero.Col() != 0 {
		t.Errorf("zero pos %d:%d", zero.Line(), zero.Col())
	}
}
