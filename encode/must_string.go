package encode

import (
	"bytes"

	"github.com/signadot/jdom/ir"
)

// MustString renders node in the formatted style, panicking on
// failure. Only a broken node tree or a failing writer can make Encode
// fail, and bytes.Buffer writes do not fail.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

// MustWireString is MustString in the compact wire form.
func MustWireString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return buf.String()
}
