package libdiff

import (
	"github.com/signadot/jdom/debug"
	"github.com/signadot/jdom/encode"
	"github.com/signadot/jdom/ir"
)

// DiffFunc recurses on a pair of nodes, returning nil when they agree.
type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff computes a structural diff between two documents, nil when they
// are equal. Objects diff member-wise by name, arrays element-wise by
// index; everything else that differs becomes a replace leaf.
func Diff(from, to *ir.Node) *ir.Node {
	res := diffNodes(from, to)
	if debug.Diff() && res != nil {
		debug.Logf("diff -> %s\n", encode.MustWireString(res))
	}
	return res
}

func diffNodes(from, to *ir.Node) *ir.Node {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil {
		return MakeDiff(from, to)
	}
	if from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return DiffObject(from, to, diffNodes)
	case ir.ArrayType:
		return DiffArrayByIndex(from, to, diffNodes)
	default:
		if ir.Equal(from, to) {
			return nil
		}
		return MakeDiff(from, to)
	}
}

// MakeDiff builds a diff leaf: {"-": from} for a deletion, {"+": to}
// for an insertion, both members for a replacement. Operands are
// cloned so diffs never alias the input documents.
func MakeDiff(from, to *ir.Node) *ir.Node {
	res := ir.Object()
	if from != nil {
		res.Set("-", from.Clone())
	}
	if to != nil {
		res.Set("+", to.Clone())
	}
	return res
}
