// Package libdiff computes structural diffs between document trees.
//
// A diff is itself a document: objects map member names, or array
// indices as decimal strings, to nested diffs, and leaves carry the
// operation as {"-": old}, {"+": new}, or both for a replacement.
// Equal inputs diff to nil.
package libdiff
