// Package encode renders [ir.Node] trees as Floyd datafile or JSON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, w)                    // {age: 30 name: 'alice'}
//	err = encode.Encode(node, w, encode.Indent(2))   // one entry per line
//	err = encode.Encode(node, w, encode.AsJSON(true)) // {"age": 30, "name": "alice"}
//
// Output re-parses to an equal tree in either format and at every
// indentation setting.
//
// # Related Packages
//
//   - github.com/dpranke/floyd-datafile/go-floyd/ir - value tree
//   - github.com/dpranke/floyd-datafile/go-floyd/parse - text to tree
package encode
