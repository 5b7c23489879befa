// Package query evaluates expr-lang expressions against jsonez documents.
//
// The members of the root object are the variables of the expression, so
// for the document
//
//	server: { port: 8080 }, tags: ["a", "b"]
//
// the expression `server.port > 1024 && "a" in tags` is true. Values are
// plain Go data as returned by (*jsonez.Node).Interface.
package query

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"

	"github.com/ZenToad/jsonez"
)

// Program is a compiled expression. It can be run against any document
// with the same shape as the one it was compiled for.
type Program struct {
	source  string
	program *vm.Program
}

// Source returns the expression text p was compiled from.
func (p *Program) Source() string { return p.source }

// Env returns the evaluation environment for n: the members of an object
// root keyed by name. Any other node is exposed as the variable "value".
func Env(n *jsonez.Node) map[string]any {
	if n == nil {
		return map[string]any{}
	}
	if n.Kind() == jsonez.KindObject {
		return n.Interface().(map[string]any)
	}
	return map[string]any{"value": n.Interface()}
}

// Compile compiles src, type-checking it against the environment of n. A
// nil n compiles without an environment.
func Compile(src string, n *jsonez.Node) (*Program, error) {
	var opts []expr.Option
	if n != nil {
		opts = append(opts, expr.Env(Env(n)))
	}
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", src)
	}
	return &Program{source: src, program: program}, nil
}

// Run evaluates p against n.
func (p *Program) Run(n *jsonez.Node) (any, error) {
	out, err := expr.Run(p.program, Env(n))
	if err != nil {
		return nil, errors.Wrapf(err, "run %q", p.source)
	}
	return out, nil
}

// Eval compiles src against n and runs it.
func Eval(n *jsonez.Node, src string) (any, error) {
	p, err := Compile(src, n)
	if err != nil {
		return nil, err
	}
	return p.Run(n)
}
