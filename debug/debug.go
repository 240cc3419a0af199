// Package debug gates diagnostic logging on JDOM_DEBUG_* environment
// variables, read once at startup.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Patch bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("JDOM_DEBUG_DIFF")
	d.Patch = boolEnv("JDOM_DEBUG_PATCH")
	d.Eval = boolEnv("JDOM_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
