package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ZenToad/jsonez"
)

// Fmt rewrites documents in canonical jsonez layout.
type Fmt struct {
	Write bool `short:"w" help:"Write the result to the source file instead of stdout."`
	Diff  bool `short:"d" help:"Print a line diff instead of the formatted text."`

	Indent         int  `default:"3"    help:"Spaces per nesting level."`
	QuoteKeys      bool `default:"true" negatable:"" help:"Quote every key."`
	EqualSign      bool `help:"Separate keys and values with '=' instead of ':'."`
	RootBraces     bool `default:"true" negatable:"" help:"Wrap the root members in braces."`
	FloatPrecision int  `default:"-1"   help:"Decimals written for floats, -1 for the shortest exact form."`

	Files []string `arg:"" optional:"" default:"-" help:"Files to format, '-' for stdin." name:"file"`
}

func (f *Fmt) options() []jsonez.Option {
	return []jsonez.Option{
		jsonez.Indent(f.Indent),
		jsonez.QuoteKeys(f.QuoteKeys),
		jsonez.UseEqualSign(f.EqualSign),
		jsonez.AddRootObject(f.RootBraces),
		jsonez.FloatPrecision(f.FloatPrecision),
	}
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context, env *Env) error {
	for _, name := range f.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f.format(env, name); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fmt) format(env *Env, name string) error {
	if f.Write && name == stdinSource {
		return errors.New("cannot use -w with standard input")
	}

	root, src, err := env.parse(name, nil)
	if err != nil {
		return err
	}
	out, err := jsonez.ToText(root, f.options()...)
	if err != nil {
		return errors.Wrapf(err, "format %s", displayName(name))
	}

	changed := out != string(src)
	if f.Diff && changed {
		if err := writeDiff(env.Out, displayName(name), string(src), out); err != nil {
			return err
		}
	}
	if f.Write {
		if !changed {
			return nil
		}
		info, err := os.Stat(name)
		if err != nil {
			return errors.Wrapf(err, "stat %s", name)
		}
		if err := os.WriteFile(name, []byte(out), info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, "write %s", name)
		}
		_ = level.Info(env.Logger).Log("msg", "formatted", "file", name)
		return nil
	}
	if f.Diff {
		return nil
	}
	_, err = io.WriteString(env.Out, out)
	return err
}

// writeDiff writes a line diff of a and b: unchanged lines prefixed with a
// space, removed lines with '-' and added lines with '+'.
func writeDiff(w io.Writer, name, a, b string) error {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", name, name)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
