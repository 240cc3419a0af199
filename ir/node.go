package ir

import (
	"maps"
	"math"
	"slices"
)

// Node is a single element of a JSON document tree.
//
// A container node (ArrayType, ObjectType) holds its children in Values,
// in document order. Children of an object carry the member name in Key;
// children of an array and root nodes have an empty Key. Parent and
// ParentIndex are maintained by the mutation API.
//
// NumberType nodes store the value in Float64; Int64 holds a best-effort
// truncation and is advisory only (0 when the value does not fit).
//
// A node with Reference set shares its Values slice and String payload
// with another node; see AppendReference.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	Key         string
	Values      []*Node
	Reference   bool

	String  string
	Bool    bool
	Float64 float64
	Int64   int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func True() *Node  { return FromBool(true) }
func False() *Node { return FromBool(false) }

func FromFloat(f float64) *Node {
	return FromFloatAt(&Node{}, f)
}

func FromFloatAt(p *Node, f float64) *Node {
	p.Type = NumberType
	p.Float64 = f
	p.Int64 = truncInt(f)
	return p
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: v, Float64: float64(v)}
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func Array() *Node {
	return &Node{Type: ArrayType}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

// FromMap builds an object node with members in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	keys := slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		v := m[key]
		v.Parent = res
		v.ParentIndex = i
		v.Key = key
		res.Values[i] = v
	}
	return res
}

// Get returns the value of the first member with the given key, matched
// exactly, or nil. See Member for the case-insensitive variant.
func Get(y *Node, key string) *Node {
	for _, v := range y.Values {
		if v.Key == key {
			return v
		}
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// truncInt truncates f toward zero. Doubles outside the int64 range
// (and NaN) yield 0; the advisory Int64 field is never authoritative.
func truncInt(f float64) int64 {
	if f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return 0
}
