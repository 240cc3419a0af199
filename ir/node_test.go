package ir

import (
	"testing"
)

func TestConstructors(t *testing.T) {
	if n := Null(); n.Type != NullType {
		t.Fatalf("got %s", n.Type)
	}
	if n := True(); n.Type != BoolType || !n.Bool {
		t.Fatalf("true: %+v", n)
	}
	if n := False(); n.Type != BoolType || n.Bool {
		t.Fatalf("false: %+v", n)
	}
	n := FromFloat(3.5)
	if n.Type != NumberType || n.Float64 != 3.5 || n.Int64 != 3 {
		t.Fatalf("number: %+v", n)
	}
	n = FromInt(42)
	if n.Float64 != 42 || n.Int64 != 42 {
		t.Fatalf("int: %+v", n)
	}
	n = FromString("hi")
	if n.Type != StringType || n.String != "hi" {
		t.Fatalf("string: %+v", n)
	}
}

func TestTruncIntOutOfRange(t *testing.T) {
	n := FromFloat(1e300)
	if n.Int64 != 0 {
		t.Fatalf("expected advisory 0, got %d", n.Int64)
	}
	if n.Float64 != 1e300 {
		t.Fatalf("float lost: %v", n.Float64)
	}
}

func TestFromSliceLinks(t *testing.T) {
	a, b := FromInt(1), FromInt(2)
	arr := FromSlice([]*Node{a, b})
	if arr.Len() != 2 {
		t.Fatalf("len %d", arr.Len())
	}
	if a.Parent != arr || a.ParentIndex != 0 {
		t.Fatalf("a links: %v %d", a.Parent, a.ParentIndex)
	}
	if b.Parent != arr || b.ParentIndex != 1 {
		t.Fatalf("b links: %v %d", b.Parent, b.ParentIndex)
	}
	if a.Root() != arr {
		t.Fatal("root")
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
	})
	if obj.Values[0].Key != "a" || obj.Values[1].Key != "b" {
		t.Fatalf("keys %q %q", obj.Values[0].Key, obj.Values[1].Key)
	}
}

func TestGetExactVsMemberFold(t *testing.T) {
	obj := Object()
	obj.Set("Name", FromString("x"))
	if Get(obj, "name") != nil {
		t.Fatal("Get should match exactly")
	}
	if Get(obj, "Name") == nil {
		t.Fatal("Get missed exact key")
	}
	if obj.Member("name") == nil {
		t.Fatal("Member should fold case")
	}
}

func TestMemberFirstMatch(t *testing.T) {
	obj := Object()
	obj.Set("k", FromInt(1))
	obj.Set("k", FromInt(2))
	if got := obj.Member("k").Int64; got != 1 {
		t.Fatalf("want first occurrence, got %d", got)
	}
}

func TestGetPath(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"names": FromStrings([]string{"ann", "bob"}),
	})
	got := GetPath(doc, "names", "1")
	if got == nil || got.String != "bob" {
		t.Fatalf("got %+v", got)
	}
	if GetPath(doc, "names", "7") != nil {
		t.Fatal("out of range index")
	}
	if GetPath(doc, "nope") != nil {
		t.Fatal("missing member")
	}
	if GetPath(doc, "names", "x") != nil {
		t.Fatal("non-numeric array step")
	}
}

func TestVisit(t *testing.T) {
	doc := FromSlice([]*Node{FromInt(1), FromSlice([]*Node{FromInt(2)})})
	pre := 0
	err := doc.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 4 {
		t.Fatalf("visited %d nodes", pre)
	}
}
