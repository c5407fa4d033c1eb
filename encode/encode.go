package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dpranke/floyd-datafile/go-floyd/format"
	"github.com/dpranke/floyd-datafile/go-floyd/ir"
	"github.com/dpranke/floyd-datafile/go-floyd/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth     int
	multiline bool
	indent    string

	format format.Format
	err    error

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. No trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if es.err != nil {
		return es.err
	}
	return encode(node, w, es)
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(es.indent, es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, s string) error {
	return writeString(w, applyColor(es, cType, SepColor, s))
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	case ir.BoolType:
		return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		s, err := numberText(node)
		if err != nil {
			return err
		}
		return writeString(w, applyValueColor(es, ir.NumberType, s))
	case ir.StringType:
		return writeString(w, applyValueColor(es, ir.StringType, quoteString(node.String, es)))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}

func numberText(node *ir.Node) (string, error) {
	switch f := node.Float64; {
	case f != nil && (math.IsNaN(*f) || math.IsInf(*f, 0)):
		return "", fmt.Errorf("%w: %v has no representation", ErrEncoding, *f)
	case f == nil && node.Int64 == nil:
		if _, ok := new(big.Int).SetString(node.Number, 10); !ok {
			return "", fmt.Errorf("%w: bad number %q", ErrEncoding, node.Number)
		}
	}
	return node.NumberText(), nil
}

func quoteString(v string, es *EncState) string {
	if es.format.IsJSON() {
		return token.Quote(v, '"')
	}
	return token.Quote(v, token.PreferredQuote(v))
}

func quoteKey(v string, es *EncState) string {
	if !es.format.IsJSON() && token.IsBareWord(v) {
		return v
	}
	return quoteString(v, es)
}

func itemSep(es *EncState) string {
	if es.format.IsJSON() {
		return ", "
	}
	return " "
}

func isScalars(vs []*ir.Node) bool {
	for _, v := range vs {
		if !v.Type.IsLeaf() {
			return false
		}
	}
	return true
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	if !es.multiline || isScalars(node.Values) {
		for i, v := range node.Values {
			if i > 0 {
				if err := writeSep(w, es, ir.ArrayType, itemSep(es)); err != nil {
					return err
				}
			}
			if err := encode(v, w, es); err != nil {
				return err
			}
		}
		return writeSep(w, es, ir.ArrayType, "]")
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 && es.format.IsJSON() {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: object has %d keys and %d values", ErrEncoding, len(node.Fields), len(node.Values))
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if es.multiline {
		es.depth++
	}
	for i, v := range node.Values {
		if i > 0 {
			sep := itemSep(es)
			if es.multiline {
				sep = ""
				if es.format.IsJSON() {
					sep = ","
				}
			}
			if sep != "" {
				if err := writeSep(w, es, ir.ObjectType, sep); err != nil {
					return err
				}
			}
		}
		if es.multiline {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := encodeObjectField(node.Fields[i], v, w, es); err != nil {
			return err
		}
	}
	if es.multiline {
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeObjectField(key, val *ir.Node, w io.Writer, es *EncState) error {
	if key.Type != ir.StringType {
		return fmt.Errorf("%w: %s object key", ErrEncoding, key.Type)
	}
	if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, quoteKey(key.String, es))); err != nil {
		return err
	}
	if err := writeSep(w, es, ir.ObjectType, ": "); err != nil {
		return err
	}
	return encode(val, w, es)
}
