// Package ir provides the value tree for JSON documents.
//
// # Overview
//
// All documents (whether parsed from text or created programmatically)
// are represented as ir.Node trees. The tree is a simple recursive
// structure: containers hold an ordered child sequence, object members
// carry their key on the child node, and scalars carry their payload
// inline. Objects are ordered multisets of key/value pairs: duplicate
// keys are legal and lookups return the first match.
//
// # Numbers
//
// Number values are stored as IEEE-754 doubles in Float64. Int64 holds a
// best-effort truncation, valid only when the double is within integer
// range and has no fractional part; it is advisory, not authoritative.
//
// # References
//
// AppendReference and SetReference insert a shallow copy that shares the
// original's child sequence and string payload, so one subtree can appear
// under multiple parents without duplicating storage. Clone clears the
// Reference flag and always produces an independent tree.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone
// nodes for each goroutine.
//
// # Related Packages
//
//   - github.com/signadot/jdom/parse - Parses text into nodes
//   - github.com/signadot/jdom/encode - Encodes nodes to text
//   - github.com/signadot/jdom/gomap - Converts nodes to and from Go values
package ir
