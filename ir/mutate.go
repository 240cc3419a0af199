package ir

import (
	"strings"
)

// Append pushes item onto the end of a container's child sequence.
// A nil item is a no-op. The item must not already be linked under
// another parent.
func (y *Node) Append(item *Node) {
	if item == nil {
		return
	}
	item.Parent = y
	item.ParentIndex = len(y.Values)
	y.Values = append(y.Values, item)
}

// Set appends item to an object under key, overwriting any key the item
// carried. Duplicate keys are not detected or merged; lookups return the
// first match.
func (y *Node) Set(key string, item *Node) {
	if item == nil {
		return
	}
	item.Key = key
	y.Append(item)
}

// AppendReference appends a shallow copy of item that shares its child
// sequence and string payload. The copy is flagged Reference; cloning a
// reference produces an independent owning tree.
func (y *Node) AppendReference(item *Node) {
	y.Append(reference(item))
}

// SetReference is the object variant of AppendReference.
func (y *Node) SetReference(key string, item *Node) {
	y.Set(key, reference(item))
}

func reference(item *Node) *Node {
	if item == nil {
		return nil
	}
	ref := &Node{}
	*ref = *item
	ref.Key = ""
	ref.Parent = nil
	ref.ParentIndex = 0
	ref.Reference = true
	return ref
}

func (y *Node) Len() int {
	return len(y.Values)
}

// At returns the child at the 0-based index i, or nil if out of range.
func (y *Node) At(i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Member returns the value of the first member whose key matches key
// case-insensitively, or nil.
func (y *Node) Member(key string) *Node {
	i := y.memberIndex(key)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) memberIndex(key string) int {
	for i, v := range y.Values {
		if strings.EqualFold(v.Key, key) {
			return i
		}
	}
	return -1
}

// Detach unlinks and returns the child at index i, or nil if out of
// range. The detached node keeps its Key but has severed parent links;
// the caller owns it.
func (y *Node) Detach(i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	c := y.Values[i]
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.reindex(i)
	c.Parent = nil
	c.ParentIndex = 0
	return c
}

// DetachMember detaches the first member matching key, or returns nil.
func (y *Node) DetachMember(key string) *Node {
	return y.Detach(y.memberIndex(key))
}

// Delete removes the child at index i, discarding it.
func (y *Node) Delete(i int) {
	y.Detach(i)
}

// DeleteMember removes the first member matching key, discarding it.
func (y *Node) DeleteMember(key string) {
	y.DetachMember(key)
}

// Replace splices item into the position held by the child at index i,
// discarding the replaced child. Out of range is a no-op.
func (y *Node) Replace(i int, item *Node) {
	if i < 0 || i >= len(y.Values) || item == nil {
		return
	}
	old := y.Values[i]
	item.Parent = y
	item.ParentIndex = i
	y.Values[i] = item
	old.Parent = nil
	old.ParentIndex = 0
}

// ReplaceMember replaces the first member matching key, copying the key
// onto item. A missing key is a no-op.
func (y *Node) ReplaceMember(key string, item *Node) {
	i := y.memberIndex(key)
	if i < 0 || item == nil {
		return
	}
	item.Key = key
	y.Replace(i, item)
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
	}
}
