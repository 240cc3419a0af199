package parse

import (
	"errors"
	"testing"

	"github.com/signadot/jdom/ir"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"null", ir.Null()},
		{"true", ir.True()},
		{"false", ir.False()},
		{"0", ir.FromInt(0)},
		{"123", ir.FromInt(123)},
		{"-4.5", ir.FromFloat(-4.5)},
		{"1e3", ir.FromFloat(1000)},
		{`"hi"`, ir.FromString("hi")},
		{`""`, ir.FromString("")},
		{"  true  ", ir.True()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseContainers(t *testing.T) {
	got, err := ParseString(`{"a": 1, "b": [true, null, "s"], "c": {"d": []}}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.ObjectType || got.Len() != 3 {
		t.Fatalf("root: %+v", got)
	}
	if a := got.Member("a"); a == nil || a.Float64 != 1 {
		t.Fatalf("a: %+v", a)
	}
	b := got.Member("b")
	if b == nil || b.Type != ir.ArrayType || b.Len() != 3 {
		t.Fatalf("b: %+v", b)
	}
	if !b.At(0).Bool || b.At(1).Type != ir.NullType || b.At(2).String != "s" {
		t.Fatalf("b elements: %+v", b.Values)
	}
	if b.At(0).Parent != b || b.At(2).ParentIndex != 2 {
		t.Fatal("parent links")
	}
	d := ir.GetPath(got, "c", "d")
	if d == nil || d.Type != ir.ArrayType || d.Len() != 0 {
		t.Fatalf("c.d: %+v", d)
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	got, err := ParseString(`{"a": 1, "a": 2}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("len %d", got.Len())
	}
	if got.Member("a").Float64 != 1 {
		t.Fatal("lookup should return the first occurrence")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		offset int
	}{
		{"empty", "", 0},
		{"bad-token", "verdad", 0},
		{"array-eof", "[1,", 3},
		{"array-no-comma", "[1 2]", 3},
		{"object-eof", "{", 1},
		{"object-no-colon", `{"a" 1}`, 5},
		{"object-missing-value", `{"a":}`, 5},
		{"object-bad-name", `{a: 1}`, 1},
		{"object-no-comma", `{"a": 1 "b": 2}`, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrParse) {
				t.Fatalf("not an ErrParse: %v", err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("not a SyntaxError: %v", err)
			}
			if se.Offset != tt.offset {
				t.Errorf("offset %d, want %d: %v", se.Offset, tt.offset, err)
			}
		})
	}
}

func TestParseTrailing(t *testing.T) {
	// trailing content is ignored by default
	got, err := ParseString("1 x")
	if err != nil {
		t.Fatal(err)
	}
	if got.Float64 != 1 {
		t.Fatalf("got %+v", got)
	}
	_, err = ParseString("1 x", RequireFull())
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if se.Offset != 2 {
		t.Fatalf("offset %d", se.Offset)
	}
	if _, err := ParseString("  1  ", RequireFull()); err != nil {
		t.Fatal(err)
	}
}

func TestParseKeywordPrefix(t *testing.T) {
	// keywords match by prefix; what follows is trailing content
	got, err := ParseString("nullable")
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.NullType {
		t.Fatalf("got %+v", got)
	}
	if _, err := ParseString("nullable", RequireFull()); err == nil {
		t.Fatal("expected trailing content error")
	}
}

func TestParseStripComments(t *testing.T) {
	in := `{
	"a": 1, // count
	"b": [2, 3] /* more */
}`
	if _, err := ParseString(in, RequireFull()); err == nil {
		t.Fatal("comments should not parse without StripComments")
	}
	got, err := ParseString(in, StripComments(), RequireFull())
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 || got.Member("b").Len() != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseStripCommentsKeepsInput(t *testing.T) {
	in := []byte(`{ "a": 1 } // tail`)
	orig := string(in)
	if _, err := Parse(in, StripComments()); err != nil {
		t.Fatal(err)
	}
	if string(in) != orig {
		t.Fatal("caller's buffer was modified")
	}
}

func TestParsePosition(t *testing.T) {
	_, err := ParseString("{\n  \"a\" 1\n}")
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("got %v", err)
	}
	if se.Pos.Line != 2 {
		t.Fatalf("line %d", se.Pos.Line)
	}
}
