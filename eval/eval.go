// Package eval runs expression queries against a document. The
// expression language is expr-lang; the document is bound to the
// variable "doc" as plain Go values.
package eval

import (
	"github.com/signadot/jdom/debug"
	"github.com/signadot/jdom/gomap"
	"github.com/signadot/jdom/ir"

	"github.com/expr-lang/expr"
)

// Eval compiles and runs src with doc bound as "doc", plus any extra
// bindings in env, and converts the result back to a node. env may be
// nil.
func Eval(doc *ir.Node, src string, env map[string]any) (*ir.Node, error) {
	runEnv := make(map[string]any, len(env)+1)
	for k, v := range env {
		runEnv[k] = v
	}
	runEnv["doc"] = gomap.ToAny(doc)
	prg, err := expr.Compile(src, expr.Env(runEnv), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, runEnv)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %T\n", src, res)
	}
	return gomap.FromAny(res)
}
