// Package gomap converts between ir nodes and plain Go values, the
// any-typed maps and slices produced by encoding/json.
package gomap

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/signadot/jdom/encode"
	"github.com/signadot/jdom/ir"
	"github.com/signadot/jdom/parse"
)

// MarshalJSON renders node as compact JSON text.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToAny maps node onto plain Go values: nil, bool, int64 or float64,
// string, []any, map[string]any. Objects with duplicate member names
// keep the first occurrence, matching lookup order on the node side.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Values))
		for _, field := range node.Values {
			if _, ok := res[field.Key]; ok {
				continue
			}
			res[field.Key] = ToAny(field)
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if float64(node.Int64) == node.Float64 {
			return node.Int64
		}
		return node.Float64
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny builds a node from a plain Go value. Nodes and collections
// of nodes pass through; anything else round-trips through
// encoding/json.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x.Clone(), nil
	case []*ir.Node:
		return ir.FromSlice(x), nil
	case map[string]*ir.Node:
		return ir.FromMap(x), nil
	case map[int]*ir.Node:
		stringMap := make(map[string]*ir.Node, len(x))
		for k, v := range x {
			stringMap[strconv.Itoa(k)] = v
		}
		return ir.FromMap(stringMap), nil
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromString(x), nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}
