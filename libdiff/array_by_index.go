package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/jdom/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex aligns the two element sequences with a rune diff
// over per-element summaries, then keys the resulting diff entries by
// element index in the from sequence. An insert directly following a
// delete collapses into a replace at the deleted index.
func DiffArrayByIndex(from, to *ir.Node, df DiffFunc) *ir.Node {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := ir.Object()

	fi, ti, ri := 0, 0, 0
	var delIndex *int
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				setIndex(res, ri, MakeDiff(from.Values[fi], nil))
				tmp := ri
				delIndex = &tmp
				ri++
				fi++
			}
		case diffpatch.DiffEqual:
			delIndex = nil
			for range diff.Text {
				di := df(from.Values[fi], to.Values[ti])
				if di != nil {
					setIndex(res, ri, di)
				}
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				if delIndex != nil && *delIndex == ri-1 {
					prev := res.Member(strconv.Itoa(ri - 1))
					setIndex(res, ri-1, MakeDiff(prev.Member("-"), to.Values[ti]))
				} else {
					setIndex(res, ri, MakeDiff(nil, to.Values[ti]))
				}
				ri++
				ti++
				delIndex = nil
			}
			delIndex = nil
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

func setIndex(res *ir.Node, i int, node *ir.Node) {
	key := strconv.Itoa(i)
	if res.Member(key) != nil {
		res.ReplaceMember(key, node)
		return
	}
	res.Set(key, node)
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		if float64(node.Int64) == node.Float64 {
			return node.Type.String() + "-i-" + strconv.FormatInt(node.Int64, 10)
		}
		return node.Type.String() + "-f-" + strconv.FormatFloat(node.Float64, 'f', -1, 64)
	default:
		panic("type")
	}
}
