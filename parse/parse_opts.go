package parse

import "github.com/dpranke/floyd-datafile/go-floyd/format"

// DefaultMaxDepth bounds how deeply arrays and objects may nest.
const DefaultMaxDepth = 1000

type parseOpts struct {
	format    format.Format
	maxDepth  int
	rejectDup bool
	doc       *Document
}

type ParseOption func(*parseOpts)

// ParseFormat selects the accepted syntax. JSONFormat accepts strict
// JSON only.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

func ParseFloyd() ParseOption {
	return ParseFormat(format.FloydFormat)
}

// MaxDepth limits nesting to n levels; n < 1 restores DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// RejectDuplicateKeys makes a repeated object key an error instead of
// replacing the earlier value.
func RejectDuplicateKeys() ParseOption {
	return func(o *parseOpts) { o.rejectDup = true }
}

// ParsePositions fills doc with the parsed tree and the source span of
// every node.
func ParsePositions(doc *Document) ParseOption {
	return func(o *parseOpts) { o.doc = doc }
}

func newParseOpts(opts []ParseOption) parseOpts {
	res := parseOpts{format: format.FloydFormat, maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		o(&res)
	}
	return res
}
