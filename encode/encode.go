package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jdom/ir"
	"github.com/signadot/jdom/token"
)

// EncState carries rendering state through one Encode call. depth is
// the object nesting level used for indentation; wire selects compact
// one-line output.
type EncState struct {
	depth int
	wire  bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default rendering is the formatted one,
// with tab indentation tracking object nesting; EncodeWire(true)
// selects the compact wire form. No trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, node.Type, "null")
	case ir.BoolType:
		if node.Bool {
			return writeValue(w, es, node.Type, "true")
		}
		return writeValue(w, es, node.Type, "false")
	case ir.NumberType:
		return writeValue(w, es, node.Type, numberString(node.Float64))
	case ir.StringType:
		return writeValue(w, es, node.Type, token.Quote(node.String))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	}
	return fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
}

const dblEpsilon = 2.220446049250313e-16

// numberString renders d one of three ways: integral values of
// magnitude under 1e60 in plain integer form, very small or very large
// magnitudes in exponential form with six digit precision, and
// everything else in fixed form with six digit precision.
func numberString(d float64) string {
	switch {
	case math.Abs(math.Floor(d)-d) <= dblEpsilon && math.Abs(d) < 1.0e60:
		return strconv.FormatFloat(d, 'f', 0, 64)
	case math.Abs(d) < 1.0e-6 || math.Abs(d) > 1.0e9:
		return strconv.FormatFloat(d, 'e', 6, 64)
	default:
		return strconv.FormatFloat(d, 'f', 6, 64)
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, node.Type, "[]")
	}
	if err := writeSep(w, es, node.Type, "["); err != nil {
		return err
	}
	es.depth++
	for i, child := range node.Values {
		if err := encode(child, w, es); err != nil {
			return err
		}
		if i == len(node.Values)-1 {
			continue
		}
		if err := writeSep(w, es, node.Type, ","); err != nil {
			return err
		}
		if !es.wire {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
	}
	es.depth--
	return writeSep(w, es, node.Type, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	es.depth++
	defer func() { es.depth-- }()
	if err := writeSep(w, es, node.Type, "{"); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		// the closing brace gets one tab less than the incoming nesting
		// level, bottoming out at none
		if !es.wire {
			if err := writeString(w, "\n"+tabs(max(es.depth-2, 0))); err != nil {
				return err
			}
		}
		return writeSep(w, es, node.Type, "}")
	}
	if !es.wire {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	for i, child := range node.Values {
		if !es.wire {
			if err := writeString(w, tabs(es.depth)); err != nil {
				return err
			}
		}
		if err := writeField(w, es, node.Type, token.Quote(child.Key)); err != nil {
			return err
		}
		if err := writeSep(w, es, node.Type, ":"); err != nil {
			return err
		}
		if !es.wire {
			if err := writeString(w, "\t"); err != nil {
				return err
			}
		}
		if err := encode(child, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if !es.wire {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
	}
	if !es.wire {
		if err := writeString(w, tabs(es.depth-1)); err != nil {
			return err
		}
	}
	return writeSep(w, es, node.Type, "}")
}

func tabs(n int) string {
	return strings.Repeat("\t", n)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, FieldColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}
