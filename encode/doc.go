// Package encode renders ir nodes as JSON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Compact wire form
//	err := encode.Encode(node, os.Stdout, encode.EncodeWire(true))
//
// The formatted rendering indents object members with one tab per
// nesting level and separates a member name from its value with a
// tab. Array elements stay on one line, separated by ", ".
//
// # Related Packages
//
//   - github.com/signadot/jdom/ir - node representation
//   - github.com/signadot/jdom/parse - parse text to nodes
package encode
