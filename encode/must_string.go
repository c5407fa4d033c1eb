package encode

import (
	"bytes"

	"github.com/dpranke/floyd-datafile/go-floyd/ir"
)

// MustString encodes node with opts and panics on failure.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
