package jsonez

import "github.com/ZenToad/jsonez/errors"

// Reporter receives the syntax error of a failed parse before Parse
// returns it. Package report provides Reporters that log or print
// diagnostics.
type Reporter interface {
	Report(err *errors.ParseError)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(err *errors.ParseError)

// Report calls f(err).
func (f ReporterFunc) Report(err *errors.ParseError) { f(err) }
