package parse

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/dpranke/floyd-datafile/go-floyd/debug"
	"github.com/dpranke/floyd-datafile/go-floyd/ir"
	"github.com/dpranke/floyd-datafile/go-floyd/token"
)

type parser struct {
	tz     *token.Tokenizer
	tok    *token.Token
	opts   parseOpts
	json   bool
	nextID int
	depth  int
	spans  []Span
}

// Parse parses a complete document into a tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, opts)
	node, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	if p.opts.doc != nil {
		p.opts.doc.Root = node
		p.opts.doc.spans = p.spans
	}
	return node, nil
}

// ParseDocument is Parse, also recording the source span of every node.
func ParseDocument(d []byte, opts ...ParseOption) (*Document, error) {
	doc := &Document{}
	opts = append(opts[:len(opts):len(opts)], ParsePositions(doc))
	if _, err := Parse(d, opts...); err != nil {
		return nil, err
	}
	return doc, nil
}

func newParser(d []byte, opts []ParseOption) *parser {
	p := &parser{opts: newParseOpts(opts)}
	p.json = p.opts.format.IsJSON()
	p.tz = token.NewTokenizer(d, token.TokenFormat(p.opts.format))
	return p
}

func (p *parser) advance() error {
	tok, err := p.tz.Next()
	if err == io.EOF {
		p.tok = nil
		return nil
	}
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) parseDocument() (*ir.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok == nil {
		return nil, syntaxErr(ErrEmptyDocument, p.tz.EndPos(), "no value")
	}
	node, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.tok != nil {
		return nil, syntaxErr(ErrTrailingData, p.tok.Pos, "%q after value", p.tok.Bytes)
	}
	return node, nil
}

// begin allocates the next node ID in document order.
func (p *parser) begin() int {
	p.nextID++
	if p.opts.doc != nil {
		p.spans = append(p.spans, Span{})
	}
	return p.nextID
}

func (p *parser) finish(n *ir.Node, id int, start, end *token.Pos) {
	n.ID = id
	if p.opts.doc != nil {
		p.spans[id-1] = Span{Start: start, End: end}
	}
	if debug.Parse() {
		debug.Log("parse", "id", id, "type", n.Type, "start", start.I, "end", end.I)
	}
}

func (p *parser) unexpected(tok *token.Token) error {
	return syntaxErr(ErrUnexpectedToken, tok.Pos, "%s %q", tok.Type, tok.Bytes)
}

func (p *parser) unterminated(open *token.Token) error {
	return syntaxErr(ErrUnterminatedCollection, p.tz.EndPos(), "%q opened at offset %d", open.Bytes, open.Pos.I)
}

func (p *parser) push(open *token.Token) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return syntaxErr(ErrNestingTooDeep, open.Pos, "more than %d levels", p.opts.maxDepth)
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}

func (p *parser) parseValue() (*ir.Node, error) {
	tok := p.tok
	var (
		n   *ir.Node
		err error
	)
	switch tok.Type {
	case token.TLSquare:
		return p.parseArray()
	case token.TLCurl:
		return p.parseObject()
	case token.TString:
		n = ir.FromString(tok.String())
	case token.TLiteral:
		switch string(tok.Bytes) {
		case "true":
			n = ir.FromBool(true)
		case "false":
			n = ir.FromBool(false)
		case "null":
			n = ir.Null()
		default:
			n = ir.FromString(tok.String())
		}
	case token.TInteger, token.TFloat:
		n, err = numberNode(tok)
		if err != nil {
			return nil, err
		}
	default:
		return nil, p.unexpected(tok)
	}
	p.finish(n, p.begin(), tok.Pos, tok.End)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) open() (*token.Token, int, error) {
	open := p.tok
	if err := p.push(open); err != nil {
		return nil, 0, err
	}
	id := p.begin()
	if err := p.advance(); err != nil {
		return nil, 0, err
	}
	if p.tok != nil && p.tok.Type == token.TComma {
		return nil, 0, p.unexpected(p.tok)
	}
	return open, id, nil
}

func (p *parser) parseArray() (*ir.Node, error) {
	open, id, err := p.open()
	if err != nil {
		return nil, err
	}
	defer p.pop()
	elts := []*ir.Node{}
	for {
		if p.tok == nil {
			return nil, p.unterminated(open)
		}
		if p.tok.Type == token.TRSquare {
			break
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elts = append(elts, v)
		if err := p.separator(token.TRSquare); err != nil {
			return nil, err
		}
	}
	n := ir.FromSlice(elts)
	p.finish(n, id, open.Pos, p.tok.End)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) parseObject() (*ir.Node, error) {
	open, id, err := p.open()
	if err != nil {
		return nil, err
	}
	defer p.pop()
	n := &ir.Node{Type: ir.ObjectType, Fields: []*ir.Node{}, Values: []*ir.Node{}}
	seen := map[string]int{}
	for {
		if p.tok == nil {
			return nil, p.unterminated(open)
		}
		if p.tok.Type == token.TRCurl {
			break
		}
		keyTok := p.tok
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if p.tok == nil {
			return nil, p.unterminated(open)
		}
		if p.tok.Type != token.TColon {
			return nil, p.unexpected(p.tok)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok == nil {
			return nil, p.unterminated(open)
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if i, dup := seen[key.String]; dup {
			if p.opts.rejectDup {
				return nil, syntaxErr(ErrDuplicateKey, keyTok.Pos, "%q", key.String)
			}
			n.ReplaceAt(i, v)
		} else {
			seen[key.String] = len(n.Fields)
			n.AppendField(key, v)
		}
		if err := p.separator(token.TRCurl); err != nil {
			return nil, err
		}
	}
	p.finish(n, id, open.Pos, p.tok.End)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) parseKey() (*ir.Node, error) {
	tok := p.tok
	switch tok.Type {
	case token.TString:
	case token.TLiteral:
		if p.json {
			return nil, p.unexpected(tok)
		}
	default:
		return nil, p.unexpected(tok)
	}
	key := ir.FromString(tok.String())
	p.finish(key, p.begin(), tok.Pos, tok.End)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return key, nil
}

// separator consumes the commas following an element. Any number of
// commas, including none, is accepted, as is a trailing comma before the
// closing bracket. JSON requires exactly one comma between elements and
// none before the closing bracket.
func (p *parser) separator(closer token.TokenType) error {
	var last *token.Token
	for p.tok != nil && p.tok.Type == token.TComma {
		if p.json && last != nil {
			return p.unexpected(p.tok)
		}
		last = p.tok
		if err := p.advance(); err != nil {
			return err
		}
	}
	if !p.json || p.tok == nil {
		return nil
	}
	if p.tok.Type == closer {
		if last != nil {
			return p.unexpected(last)
		}
		return nil
	}
	if last == nil {
		return syntaxErr(ErrUnexpectedToken, p.tok.Pos, "expected ',' before %q", p.tok.Bytes)
	}
	return nil
}

func numberNode(tok *token.Token) (*ir.Node, error) {
	s := strings.ReplaceAll(string(tok.Bytes), "_", "")
	if tok.Type == token.TFloat {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, token.NewLexicalError(fmt.Errorf("%w: %s out of range", token.ErrMalformedNumber, tok.Bytes), tok.Pos)
		}
		return ir.FromFloat(f), nil
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			s = s[2:]
		}
	}
	bi, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, token.NewLexicalError(token.ErrMalformedNumber, tok.Pos)
	}
	if neg {
		bi.Neg(bi)
	}
	return ir.FromBigInt(bi), nil
}
