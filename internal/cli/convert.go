package cli

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ZenToad/jsonez/convert"
)

// Convert writes a document as JSON or YAML.
type Convert struct {
	To     string `required:"" enum:"json,yaml" help:"Output format (${enum})."`
	Indent int    `default:"2" help:"Indent width, 0 for compact JSON or flow YAML."`

	File string `arg:"" optional:"" default:"-" help:"File to convert, '-' for stdin." name:"file"`
}

// Run executes the convert command.
func (c *Convert) Run(ctx context.Context, env *Env) error {
	root, _, err := env.parse(c.File, nil)
	if err != nil {
		return err
	}

	var out []byte
	switch c.To {
	case "json":
		out, err = convert.ToJSON(root, c.Indent)
		out = append(out, '\n')
	case "yaml":
		out, err = convert.ToYAMLContext(ctx, root, c.Indent)
	}
	if err != nil {
		return errors.Wrapf(err, "convert %s to %s", displayName(c.File), c.To)
	}
	_, err = env.Out.Write(out)
	return err
}
