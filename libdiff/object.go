package libdiff

import (
	"github.com/signadot/jdom/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffObject maps each distinct member name to a rune, runs a rune
// sequence diff over the two member lists, and emits one diff entry
// per inserted or deleted name, recursing with df on names both sides
// share.
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	resMap := map[string]*ir.Node{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(from.Values[fi], nil)
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				fRes := df(from.Values[fi], to.Values[ti])
				if fRes != nil {
					resMap[runeMap[r]] = fRes
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(nil, to.Values[ti])
				ti++
			}
		}
	}
	if len(resMap) == 0 {
		return nil
	}
	return ir.FromMap(resMap)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i := range node.Values {
		f := node.Values[i].Key
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
