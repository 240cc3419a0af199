package minify

import (
	"testing"
)

func TestMinify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", `{ "a": 1, "b": 2 }`, `{"a":1,"b":2}`},
		{"newlines", "[\n\t1,\n\t2\n]", "[1,2]"},
		{"line-comment", "{ \"a\": 1, // count\n \"b\": 2 }", `{"a":1,"b":2}`},
		{"block-comment", "[1, /* two */ 2]", "[1,2]"},
		{"comment-at-eof", "1 // tail", "1"},
		{"unterminated-block", "1 /* tail", "1"},
		{"string-kept", `{"a": "b c // d"}`, `{"a":"b c // d"}`},
		{"string-escapes", `"a\" /* x */ b"`, `"a\" /* x */ b"`},
		{"unterminated-string", `"a b`, `"a b`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinifyString(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMinifyInPlace(t *testing.T) {
	d := []byte("[ 1 ]")
	got := Minify(d)
	if string(got) != "[1]" {
		t.Fatalf("got %q", got)
	}
	// result aliases the input buffer
	if &got[0] != &d[0] {
		t.Fatal("expected in-place result")
	}
}
