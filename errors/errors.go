// Package errors defines the syntax error reported by the jsonez parser.
package errors

import "fmt"

// ParseError describes the first syntax error found in a document. Parsing
// stops at the first error, so a failed parse yields exactly one ParseError.
type ParseError struct {
	Message string
	Line    int
	Column  int
	Offset  int    // byte offset of the offending token
	Near    string // source text starting at the offending token
}

func (e *ParseError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("jsonez: parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("jsonez: parse error at line %d, column %d: %s near %q", e.Line, e.Column, e.Message, e.Near)
}
