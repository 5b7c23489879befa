package jsonez

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	jerrors "github.com/ZenToad/jsonez/errors"
	"github.com/ZenToad/jsonez/internal/lexer"
	"github.com/ZenToad/jsonez/internal/token"
)

// nearLen bounds the source excerpt attached to a ParseError.
const nearLen = 24

// Parse parses a jsonez document and returns its root object.
//
// A document is either a braced object or a list of members without the
// enclosing braces. Empty input, or input holding only whitespace and
// comments, yields an empty root. Parsing stops at the first syntax error,
// which is returned as a *errors.ParseError and passed to the Reporter set
// with WithReporter.
func Parse(data []byte, opts ...Option) (*Node, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return parse(data, o)
}

// ParseString is like Parse but takes its input as a string.
func ParseString(s string, opts ...Option) (*Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...Option) (*Node, error) {
	if r == nil {
		return nil, fmt.Errorf("jsonez: ParseReader(nil reader)")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}

func parse(data []byte, o *options) (*Node, error) {
	p := &parser{
		l:        lexer.New(data),
		input:    data,
		maxDepth: o.maxDepth,
	}
	p.next()

	root, perr := p.parseDocument()
	if perr != nil {
		if o.reporter != nil {
			o.reporter.Report(perr)
		}
		return nil, perr
	}
	return root, nil
}

// parser holds the state of a single parse. Every parse function is
// entered with p.cur at the first token of its construct and returns with
// p.cur at the token after it.
type parser struct {
	l     *lexer.Lexer
	input []byte
	cur   token.Token

	depth    int
	maxDepth int
}

func (p *parser) next() {
	p.cur = p.l.NextToken()
}

func (p *parser) parseDocument() (*Node, *jerrors.ParseError) {
	root := NewRoot()

	if p.cur.Type != token.LBRACE {
		if err := p.enter(); err != nil {
			return nil, err
		}
		if err := p.parseMembers(root, token.EOF); err != nil {
			return nil, err
		}
		return root, nil
	}

	if err := p.parseObject(root); err != nil {
		return nil, err
	}
	switch p.cur.Type {
	case token.EOF:
		return root, nil
	case token.ILLEGAL:
		return nil, p.illegal()
	}
	return nil, p.errorf(p.cur, "unexpected %s after document", token.Describe(p.cur.Type))
}

func (p *parser) parseObject(obj *Node) *jerrors.ParseError {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	p.next() // consume '{'
	return p.parseMembers(obj, token.RBRACE)
}

// parseMembers parses members into obj up to and including end. With end
// set to EOF it parses an unbraced document.
func (p *parser) parseMembers(obj *Node, end token.Type) *jerrors.ParseError {
	for {
		switch p.cur.Type {
		case end:
			if end != token.EOF {
				p.next()
			}
			return nil
		case token.EOF:
			return p.errorf(p.cur, "unterminated object, expected '}'")
		}

		if err := p.parseMember(obj); err != nil {
			return err
		}

		switch p.cur.Type {
		case token.COMMA:
			p.next()
		case end:
		case token.EOF:
			return p.errorf(p.cur, "unterminated object, expected '}'")
		case token.ILLEGAL:
			return p.illegal()
		case token.RBRACE, token.RBRACK:
			return p.errorf(p.cur, "unexpected %s", token.Describe(p.cur.Type))
		default:
			return p.errorf(p.cur, "missing ',' between members")
		}
	}
}

func (p *parser) parseMember(obj *Node) *jerrors.ParseError {
	key, err := p.parseKey()
	if err != nil {
		return err
	}

	switch p.cur.Type {
	case token.COLON, token.EQUAL:
		p.next()
	case token.ILLEGAL:
		return p.illegal()
	default:
		return p.errorf(p.cur, "missing ':' or '=' after key %q", key)
	}

	return p.parseValue(obj, key)
}

func (p *parser) parseKey() (string, *jerrors.ParseError) {
	tok := p.cur
	switch tok.Type {
	case token.STRING:
		p.next()
		return tok.Literal, nil
	case token.WORD:
		if !token.IsRawKey(tok.Literal) {
			return "", p.errorf(tok, "invalid unquoted key %q", tok.Literal)
		}
		p.next()
		return tok.Literal, nil
	case token.ILLEGAL:
		return "", p.illegal()
	}
	return "", p.errorf(tok, "expected key, got %s", token.Describe(tok.Type))
}

func (p *parser) parseValue(parent *Node, key string) *jerrors.ParseError {
	tok := p.cur
	switch tok.Type {
	case token.STRING:
		parent.add(key, stringValue(tok.Literal))
	case token.WORD:
		v, err := p.parseWord(tok)
		if err != nil {
			return err
		}
		parent.add(key, v)
	case token.LBRACE:
		return p.parseObject(parent.add(key, &object{}))
	case token.LBRACK:
		return p.parseArray(parent.add(key, &array{}))
	case token.ILLEGAL:
		return p.illegal()
	case token.EOF:
		return p.errorf(tok, "unexpected end of input, expected value")
	default:
		return p.errorf(tok, "unexpected %s, expected value", token.Describe(tok.Type))
	}
	p.next()
	return nil
}

// parseWord turns a bare word into a bool or a number. Numbers are tried
// as a base 10 integer first and as a float second; either parse has to
// consume the whole word.
func (p *parser) parseWord(tok token.Token) (value, *jerrors.ParseError) {
	lit := tok.Literal
	switch lit {
	case "true":
		return boolValue(true), nil
	case "false":
		return boolValue(false), nil
	}
	if !token.IsNumber(lit) {
		return nil, p.errorf(tok, "invalid value %q", lit)
	}

	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return integerValue(i), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	switch {
	case err == nil:
		return floatValue(f), nil
	case errors.Is(err, strconv.ErrRange):
		return nil, p.errorf(tok, "number out of range %q", lit)
	}
	return nil, p.errorf(tok, "invalid number %q", lit)
}

func (p *parser) parseArray(arr *Node) *jerrors.ParseError {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	p.next() // consume '['
	for {
		switch p.cur.Type {
		case token.RBRACK:
			p.next()
			return nil
		case token.EOF:
			return p.errorf(p.cur, "unterminated array, expected ']'")
		}

		if err := p.parseValue(arr, ""); err != nil {
			return err
		}

		switch p.cur.Type {
		case token.COMMA:
			p.next()
		case token.RBRACK:
		case token.EOF:
			return p.errorf(p.cur, "unterminated array, expected ']'")
		case token.ILLEGAL:
			return p.illegal()
		default:
			return p.errorf(p.cur, "missing ',' between array elements")
		}
	}
}

func (p *parser) enter() *jerrors.ParseError {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf(p.cur, "maximum nesting depth of %d exceeded", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// illegal converts the current ILLEGAL token into an error.
func (p *parser) illegal() *jerrors.ParseError {
	return p.errorf(p.cur, "%s", p.cur.Literal)
}

func (p *parser) errorf(tok token.Token, format string, args ...any) *jerrors.ParseError {
	return &jerrors.ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
		Offset:  tok.Offset,
		Near:    p.near(tok),
	}
}

// near returns the rest of the line starting at tok, truncated to nearLen
// bytes.
func (p *parser) near(tok token.Token) string {
	if tok.Type == token.EOF || tok.Offset >= len(p.input) {
		return ""
	}
	s := p.input[tok.Offset:]
	if i := bytes.IndexAny(s, "\r\n\x00"); i >= 0 {
		s = s[:i]
	}
	if len(s) > nearLen {
		s = s[:nearLen]
	}
	return string(s)
}
