package libdiff

import (
	"testing"

	"github.com/signadot/jdom/encode"
	"github.com/signadot/jdom/ir"
	"github.com/signadot/jdom/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestDiffEqual(t *testing.T) {
	a := mustParse(t, `{"a": [1, 2], "b": null}`)
	b := mustParse(t, `{"a": [1, 2], "b": null}`)
	if d := Diff(a, b); d != nil {
		t.Fatalf("got %s", encode.MustWireString(d))
	}
}

func TestDiffScalar(t *testing.T) {
	d := Diff(ir.FromInt(1), ir.FromInt(2))
	if d == nil {
		t.Fatal("nil diff")
	}
	if got := encode.MustWireString(d); got != `{"-":1,"+":2}` {
		t.Fatalf("got %s", got)
	}
}

func TestDiffTypeChange(t *testing.T) {
	d := Diff(ir.FromInt(1), ir.FromString("1"))
	if got := encode.MustWireString(d); got != `{"-":1,"+":"1"}` {
		t.Fatalf("got %s", got)
	}
}

func TestDiffObject(t *testing.T) {
	from := mustParse(t, `{"keep": 1, "old": 2, "chg": 3}`)
	to := mustParse(t, `{"keep": 1, "chg": 4, "new": 5}`)
	d := Diff(from, to)
	if d == nil {
		t.Fatal("nil diff")
	}
	if d.Member("keep") != nil {
		t.Fatal("unchanged member in diff")
	}
	old := d.Member("old")
	if old == nil || old.Member("-") == nil || old.Member("+") != nil {
		t.Fatalf("old: %+v", old)
	}
	chg := d.Member("chg")
	if chg == nil || chg.Member("-").Float64 != 3 || chg.Member("+").Float64 != 4 {
		t.Fatalf("chg: %+v", chg)
	}
	added := d.Member("new")
	if added == nil || added.Member("+").Float64 != 5 {
		t.Fatalf("new: %+v", added)
	}
}

func TestDiffArrayAppend(t *testing.T) {
	from := mustParse(t, `[1, 2]`)
	to := mustParse(t, `[1, 2, 3]`)
	d := Diff(from, to)
	if d == nil || d.Len() != 1 {
		t.Fatalf("got %+v", d)
	}
	ins := d.Member("2")
	if ins == nil || ins.Member("+").Float64 != 3 {
		t.Fatalf("ins: %+v", ins)
	}
}

func TestDiffArrayReplace(t *testing.T) {
	from := mustParse(t, `[1, 2]`)
	to := mustParse(t, `[1, 5]`)
	d := Diff(from, to)
	if d == nil {
		t.Fatal("nil diff")
	}
	rep := d.Member("1")
	if rep == nil || rep.Member("-").Float64 != 2 || rep.Member("+").Float64 != 5 {
		t.Fatalf("rep: %+v", rep)
	}
}

func TestDiffRecursesIntoArrays(t *testing.T) {
	from := mustParse(t, `[{"a": 1}]`)
	to := mustParse(t, `[{"a": 2}]`)
	d := Diff(from, to)
	if d == nil {
		t.Fatal("nil diff")
	}
	inner := d.Member("0")
	if inner == nil {
		t.Fatalf("diff: %s", encode.MustWireString(d))
	}
	a := inner.Member("a")
	if a == nil || a.Member("-").Float64 != 1 || a.Member("+").Float64 != 2 {
		t.Fatalf("a: %+v", a)
	}
}

func TestDiffDoesNotAliasInputs(t *testing.T) {
	from := mustParse(t, `{"a": 1}`)
	to := mustParse(t, `{"a": 2}`)
	d := Diff(from, to)
	d.Member("a").Member("+").Float64 = 99
	if to.Member("a").Float64 != 2 {
		t.Fatal("diff aliases input document")
	}
}
