package ir

import "strconv"

// GetPath walks node by the given steps. A step selects an object member
// (case-insensitive, first match) or, on an array, a 0-based index.
// A missing step yields nil, not an error.
func GetPath(node *Node, steps ...string) *Node {
	for _, s := range steps {
		if node == nil {
			return nil
		}
		switch node.Type {
		case ArrayType:
			i, err := strconv.Atoi(s)
			if err != nil {
				return nil
			}
			node = node.At(i)
		case ObjectType:
			node = node.Member(s)
		default:
			return nil
		}
	}
	return node
}
