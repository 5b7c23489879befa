package cli

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/ZenToad/jsonez/query"
)

// Eval evaluates an expression with the members of a document as variables
// and prints the result as JSON.
type Eval struct {
	Expr string `arg:"" help:"Expression to evaluate." name:"expr"`
	File string `arg:"" optional:"" default:"-" help:"Document file, '-' for stdin." name:"file"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context, env *Env) error {
	root, _, err := env.parse(e.File, nil)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := query.Eval(root, e.Expr)
	if err != nil {
		return err
	}
	out, err := json.MarshalWithOption(result, json.DisableHTMLEscape())
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	_, err = env.Out.Write(append(out, '\n'))
	return err
}
