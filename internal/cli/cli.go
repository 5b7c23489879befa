// Package cli implements the jsonez command line tool.
package cli

import (
	"context"
	"io"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
)

// Streams are the standard streams of a command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Env is bound into every command's Run method.
type Env struct {
	Streams
	Logger log.Logger
}

// CLI is the top-level command-line interface.
type CLI struct {
	Log logConfig `embed:"" group:"log" prefix:"log-"`

	Fmt     Fmt     `cmd:"" help:"Format jsonez documents."`
	Check   Check   `cmd:"" help:"Report syntax errors in jsonez documents."`
	Convert Convert `cmd:"" help:"Convert a jsonez document to JSON or YAML."`
	Eval    Eval    `cmd:"" help:"Evaluate an expression against a jsonez document."`
}

// Run parses args and executes the selected command. exit is called by the
// argument parser for --help and usage errors.
func Run(ctx context.Context, exit func(code int), streams Streams, args ...string) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("jsonez"),
		kong.Description("Format, check and convert jsonez documents."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(streams.Out, streams.Err),
		kong.ExplicitGroups([]kong.Group{cli.Log.group()}),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	env := &Env{
		Streams: streams,
		Logger:  cli.Log.logger(streams.Err),
	}
	return ktx.Run(env)
}
