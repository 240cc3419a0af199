// Package patch applies RFC 6902 JSON patches and RFC 7386 merge
// patches to document trees.
package patch

import (
	"github.com/signadot/jdom/debug"
	"github.com/signadot/jdom/gomap"
	"github.com/signadot/jdom/ir"
	"github.com/signadot/jdom/parse"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Apply applies the RFC 6902 operation list in patchDoc to doc and
// parses the result into a fresh tree. Neither input is modified.
func Apply(doc, patchDoc *ir.Node) (*ir.Node, error) {
	docJSON, err := gomap.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	patchJSON, err := gomap.MarshalJSON(patchDoc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}
	res, err := ops.Apply(docJSON)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %s on %s -> %s\n", patchJSON, docJSON, res)
	}
	return parse.Parse(res)
}

// Merge applies the RFC 7386 merge patch in mergeDoc to doc.
func Merge(doc, mergeDoc *ir.Node) (*ir.Node, error) {
	docJSON, err := gomap.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	mergeJSON, err := gomap.MarshalJSON(mergeDoc)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch(docJSON, mergeJSON)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge %s on %s -> %s\n", mergeJSON, docJSON, res)
	}
	return parse.Parse(res)
}
