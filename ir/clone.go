package ir

// Clone deep-copies the node and all of its descendants, rebuilding
// parent links in the copy. The Reference flag is cleared: duplication
// always produces an independent owning tree.
func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Key = y.Key
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Float64 = y.Float64
	dst.Int64 = y.Int64
	dst.Reference = false
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

// ShallowClone copies the scalar fields and key only; the copy has no
// children regardless of the original's child sequence.
func (y *Node) ShallowClone() *Node {
	return &Node{
		Type:    y.Type,
		Key:     y.Key,
		String:  y.String,
		Bool:    y.Bool,
		Float64: y.Float64,
		Int64:   y.Int64,
	}
}
