package parse

import (
	"github.com/dpranke/floyd-datafile/go-floyd/ir"
	"github.com/dpranke/floyd-datafile/go-floyd/token"
)

// Span is the source range of a node. End is exclusive.
type Span struct {
	Start *token.Pos
	End   *token.Pos
}

// Document is a parsed tree together with the source span of every node
// the parser produced, object keys included.
type Document struct {
	Root *ir.Node

	spans []Span
}

// Span returns the source span of n, which must come from this document.
func (d *Document) Span(n *ir.Node) (Span, bool) {
	if n == nil {
		return Span{}, false
	}
	return d.SpanOf(n.ID)
}

// SpanOf returns the span of the node with the given ID.
func (d *Document) SpanOf(id int) (Span, bool) {
	if id < 1 || id > len(d.spans) {
		return Span{}, false
	}
	s := d.spans[id-1]
	if s.Start == nil {
		return Span{}, false
	}
	return s, true
}

// Len is the number of nodes with a recorded span.
func (d *Document) Len() int {
	return len(d.spans)
}
