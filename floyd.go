package floyd

import (
	"bytes"
	"io"

	"github.com/dpranke/floyd-datafile/go-floyd/encode"
	"github.com/dpranke/floyd-datafile/go-floyd/ir"
	"github.com/dpranke/floyd-datafile/go-floyd/parse"

	"github.com/pkg/errors"
)

// Version is the version of the datafile engine.
const Version = "0.1.0.dev0"

// Loads parses a complete document held in s.
func Loads(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse([]byte(s), opts...)
}

// Load reads r to the end and parses it as one document.
func Load(r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}
	return parse.Parse(d, opts...)
}

// Dumps renders v as text. Without options the output is single line
// native syntax.
func Dumps(v *ir.Node, opts ...encode.EncodeOption) (string, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Dump renders v to w.
func Dump(v *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, opts...); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing document")
	}
	return nil
}

// Parse parses s, also returning the source span of every node.
func Parse(s string, opts ...parse.ParseOption) (*parse.Document, error) {
	return parse.ParseDocument([]byte(s), opts...)
}
