package encode

import (
	"fmt"
	"strings"

	"github.com/dpranke/floyd-datafile/go-floyd/format"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// AsJSON selects JSON output when v is true and native output otherwise.
func AsJSON(v bool) EncodeOption {
	if v {
		return EncodeFormat(format.JSONFormat)
	}
	return EncodeFormat(format.FloydFormat)
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent selects multi-line output indented by n spaces per level. A
// negative n selects single line output.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		es.err = nil
		if n < 0 {
			es.multiline = false
			es.indent = ""
			return
		}
		es.multiline = true
		es.indent = strings.Repeat(" ", n)
	}
}

// IndentString selects multi-line output using s verbatim as the
// indentation unit. s may hold only spaces, tabs, carriage returns and
// newlines; Encode fails with ErrEncoding otherwise.
func IndentString(s string) EncodeOption {
	return func(es *EncState) {
		if strings.Trim(s, " \t\r\n") != "" {
			es.err = fmt.Errorf("%w: indent unit %q is not whitespace", ErrEncoding, s)
			return
		}
		es.err = nil
		es.multiline = true
		es.indent = s
	}
}

// NoIndent selects single line output, which is the default.
func NoIndent() EncodeOption {
	return func(es *EncState) {
		es.err = nil
		es.multiline = false
		es.indent = ""
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
