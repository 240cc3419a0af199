package ir

import (
	"testing"
)

func TestCloneIndependence(t *testing.T) {
	doc := FromMap(map[string]*Node{
		"xs": FromInts([]int{1, 2}),
	})
	cp := doc.Clone()
	if !Equal(doc, cp) {
		t.Fatal("clone differs")
	}
	cp.Member("xs").Values[0].Int64 = 99
	cp.Member("xs").Values[0].Float64 = 99
	if Equal(doc, cp) {
		t.Fatal("clone shares storage")
	}
	if cp.Member("xs").Parent != cp {
		t.Fatal("parent links not rebuilt")
	}
}

func TestCloneClearsReference(t *testing.T) {
	shared := FromSlice([]*Node{FromInt(1)})
	arr := Array()
	arr.AppendReference(shared)
	cp := arr.At(0).Clone()
	if cp.Reference {
		t.Fatal("clone kept reference flag")
	}
	if cp.Values[0] == shared.Values[0] {
		t.Fatal("clone aliases original children")
	}
}

func TestShallowClone(t *testing.T) {
	obj := Object()
	obj.Set("a", FromInt(1))
	cp := obj.ShallowClone()
	if cp.Type != ObjectType || len(cp.Values) != 0 {
		t.Fatalf("shallow: %+v", cp)
	}
}
