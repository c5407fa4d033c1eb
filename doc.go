// Package floyd reads and writes Floyd datafiles, a relaxed superset of
// JSON.
//
// A datafile may use bare words in place of quoted strings, single, double
// or back quotes (tripled for multi-line text), optional commas, and
// hexadecimal, octal and binary integers with '_' digit separators:
//
//	{
//	    name: floyd
//	    sizes: [0x10 0b11 1_000]
//	    text: '''two
//	lines'''
//	}
//
// [Loads] and [Load] decode a document into an [ir.Node] tree; [Dumps] and
// [Dump] render a tree either in native syntax or, with
// [encode.AsJSON], as JSON. [Parse] additionally returns the source span
// of every node.
//
// The lower level packages are:
//
//   - token: the tokenizer
//   - parse: the parser and position tracking
//   - encode: the serializer
//   - ir: the value tree
package floyd
