package jsonez

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/ZenToad/jsonez/internal/token"
)

// formatter writes a Node tree as jsonez text.
type formatter struct {
	buf    *bytes.Buffer
	indent string
	sep    string
	depth  int
	opts   *options
}

func newFormatter(buf *bytes.Buffer, opts *options) *formatter {
	f := &formatter{
		buf:    buf,
		indent: strings.Repeat(" ", opts.indent),
		sep:    ": ",
		opts:   opts,
	}
	if opts.equalSign {
		f.sep = " = "
	}
	return f
}

// format writes n as a document. An object is written as the document root,
// any other node as a bare value.
func (f *formatter) format(n *Node) error {
	if n.Kind() != KindObject {
		return f.writeValue(n)
	}
	if f.opts.rootObject {
		if err := f.writeObject(n); err != nil {
			return err
		}
		f.buf.WriteByte('\n')
		return nil
	}
	if err := f.writeMembers(n); err != nil {
		return err
	}
	if n.Len() > 0 {
		f.buf.WriteByte('\n')
	}
	return nil
}

func (f *formatter) writeIndent() {
	for i := 0; i < f.depth; i++ {
		f.buf.WriteString(f.indent)
	}
}

func (f *formatter) writeValue(n *Node) error {
	switch v := n.val.(type) {
	case nil, *object:
		return f.writeObject(n)
	case *array:
		return f.writeArray(v)
	case stringValue:
		writeQuoted(f.buf, string(v))
	case integerValue:
		f.buf.WriteString(strconv.FormatInt(int64(v), 10))
	case floatValue:
		s, err := formatFloat(float64(v), f.opts.floatPrec)
		if err != nil {
			return err
		}
		f.buf.WriteString(s)
	case boolValue:
		f.buf.WriteString(strconv.FormatBool(bool(v)))
	}
	return nil
}

func (f *formatter) writeObject(n *Node) error {
	if n.Len() == 0 {
		f.buf.WriteString("{}")
		return nil
	}
	f.buf.WriteString("{\n")
	f.depth++
	if err := f.writeMembers(n); err != nil {
		return err
	}
	f.depth--
	f.buf.WriteByte('\n')
	f.writeIndent()
	f.buf.WriteByte('}')
	return nil
}

func (f *formatter) writeMembers(n *Node) error {
	for i, m := range n.children() {
		if i > 0 {
			f.buf.WriteString(",\n")
		}
		f.writeIndent()
		f.writeKey(m.key)
		f.buf.WriteString(f.sep)
		if err := f.writeValue(m); err != nil {
			return err
		}
	}
	return nil
}

// writeArray writes the elements on a single line. Objects among them open
// at the current depth.
func (f *formatter) writeArray(a *array) error {
	f.buf.WriteByte('[')
	for i, e := range a.elements {
		if i > 0 {
			f.buf.WriteString(", ")
		}
		if err := f.writeValue(e); err != nil {
			return err
		}
	}
	f.buf.WriteByte(']')
	return nil
}

func (f *formatter) writeKey(key string) {
	if f.opts.quoteKeys || !token.IsRawKey(key) {
		writeQuoted(f.buf, key)
		return
	}
	f.buf.WriteString(key)
}

// writeQuoted writes s in double quotes. Quotes, backslashes and the
// control characters that have a short escape are escaped. Other control
// characters and DEL have no escape and are left out, as the lexer drops
// them inside strings. Every other byte is written as is.
func writeQuoted(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '"':
			esc = `\"`
		case '\\':
			esc = `\\`
		case '\b':
			esc = `\b`
		case '\f':
			esc = `\f`
		case '\n':
			esc = `\n`
		case '\r':
			esc = `\r`
		case '\t':
			esc = `\t`
		default:
			if s[i] >= ' ' && s[i] != 0x7f {
				continue
			}
		}
		buf.WriteString(s[start:i])
		buf.WriteString(esc)
		start = i + 1
	}
	buf.WriteString(s[start:])
	buf.WriteByte('"')
}

// formatFloat formats f so that it parses back as a float. With prec -1 it
// uses the shortest representation that round-trips, switching to
// exponent form for very small and very large magnitudes.
func formatFloat(f float64, prec int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", &UnsupportedValueError{Str: strconv.FormatFloat(f, 'g', -1, 64)}
	}

	var b []byte
	if prec >= 0 {
		b = strconv.AppendFloat(nil, f, 'f', prec, 64)
	} else {
		fmtc := byte('f')
		if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
			fmtc = 'e'
		}
		b = strconv.AppendFloat(nil, f, fmtc, -1, 64)
		if fmtc == 'e' {
			// clean up e-09 to e-9
			n := len(b)
			if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
				b[n-2] = b[n-1]
				b = b[:n-1]
			}
		}
	}
	if bytes.IndexAny(b, ".e") < 0 {
		b = append(b, ".0"...)
	}
	return string(b), nil
}
