// Package report provides jsonez.Reporter implementations that turn parse
// errors into log lines or compiler-style diagnostics.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"

	"github.com/ZenToad/jsonez"
	jerrors "github.com/ZenToad/jsonez/errors"
)

// Logger returns a Reporter that logs each parse error at error level with
// the keys msg, line, column, near and err.
func Logger(logger log.Logger) jsonez.Reporter {
	return jsonez.ReporterFunc(func(err *jerrors.ParseError) {
		_ = level.Error(logger).Log(
			"msg", "parse failed",
			"line", err.Line,
			"column", err.Column,
			"near", err.Near,
			"err", err.Message,
		)
	})
}

// Console returns a Reporter that writes one line per error to w:
//
//	source:line:column: error: message
//
// The location and the word "error" are colored when w is a terminal.
func Console(w io.Writer, source string) jsonez.Reporter {
	c := &console{w: w, source: source, color: isTerminal(w)}
	return c
}

type console struct {
	w      io.Writer
	source string
	color  bool
}

func (c *console) Report(err *jerrors.ParseError) {
	loc := fmt.Sprintf("%s:%d:%d:", c.source, err.Line, err.Column)
	label := "error:"
	if c.color {
		bold := color.New(color.Bold)
		bold.EnableColor()
		red := color.New(color.FgRed, color.Bold)
		red.EnableColor()
		loc = bold.Sprint(loc)
		label = red.Sprint(label)
	}
	msg := err.Message
	if err.Near != "" {
		msg += fmt.Sprintf(" near %q", err.Near)
	}
	fmt.Fprintf(c.w, "%s %s %s\n", loc, label, msg)
}

// Multi returns a Reporter that passes each error to every non-nil
// reporter in order.
func Multi(reporters ...jsonez.Reporter) jsonez.Reporter {
	var rs []jsonez.Reporter
	for _, r := range reporters {
		if r != nil {
			rs = append(rs, r)
		}
	}
	return jsonez.ReporterFunc(func(err *jerrors.ParseError) {
		for _, r := range rs {
			r.Report(err)
		}
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
