package lexer

import (
	"bytes"
	"fmt"

	"github.com/ZenToad/jsonez/internal/token"
)

// Lexer transforms jsonez source into a stream of tokens. Whitespace and
// comments are consumed between tokens and never reach the parser.
type Lexer struct {
	input        []byte
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination, 0 at end of input
	line         int
	col          int
	buf          bytes.Buffer
}

// New creates a new Lexer. A NUL byte in input ends the input early.
func New(input []byte) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.col++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// here returns an empty token positioned at the current character.
func (l *Lexer) here() token.Token {
	return token.Token{Line: l.line, Column: l.col, Offset: l.position}
}

// NextToken returns the next token from the input. Lexical errors are
// returned as ILLEGAL tokens whose literal is the error message.
func (l *Lexer) NextToken() token.Token {
	if tok, ok := l.skipTrivia(); !ok {
		return tok
	}

	tok := l.here()
	switch l.ch {
	case '{', '}', '[', ']', ',', ':', '=':
		tok.Type = token.Type(l.ch)
		tok.Literal = string(l.ch)
	case '"':
		return l.readString(tok)
	case 0:
		tok.Type = token.EOF
		return tok
	default:
		if token.IsWordChar(l.ch) {
			tok.Type = token.WORD
			tok.Literal = l.readWord()
			return tok
		}
		tok.Type = token.ILLEGAL
		tok.Literal = fmt.Sprintf("unexpected character %q", rune(l.ch))
	}
	l.readChar()
	return tok
}

// skipTrivia consumes whitespace, line comments and block comments. It
// returns false together with an ILLEGAL token for a malformed comment.
func (l *Lexer) skipTrivia() (token.Token, bool) {
	for {
		switch {
		case l.ch >= 1 && l.ch <= ' ':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			start := l.here()
			for l.ch != '\n' {
				if l.ch == 0 {
					return illegal(start, "unterminated line comment"), false
				}
				l.readChar()
			}
			l.readChar()
		case l.ch == '/' && l.peekChar() == '*':
			start := l.here()
			l.readChar()
			l.readChar()
			for l.ch != '*' || l.peekChar() != '/' {
				if l.ch == 0 {
					return illegal(start, "unterminated block comment"), false
				}
				l.readChar()
			}
			l.readChar()
			l.readChar()
		default:
			return token.Token{}, true
		}
	}
}

func (l *Lexer) readWord() string {
	position := l.position
	for token.IsWordChar(l.ch) {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

// readString reads a quoted string starting at the opening quote. The
// literal of the returned token is the unescaped value. Raw control
// characters inside the quotes are dropped.
func (l *Lexer) readString(tok token.Token) token.Token {
	l.buf.Reset()
	for {
		l.readChar()
		switch {
		case l.ch == 0:
			return illegal(tok, "unterminated string")
		case l.ch == '"':
			l.readChar()
			tok.Type = token.STRING
			tok.Literal = l.buf.String()
			return tok
		case l.ch == '\\':
			at := l.here()
			l.readChar()
			if l.ch == 0 {
				return illegal(tok, "unterminated string")
			}
			c, ok := unescape(l.ch)
			if !ok {
				return illegal(at, fmt.Sprintf(`invalid escape sequence '\%c'`, l.ch))
			}
			l.buf.WriteByte(c)
		case l.ch < ' ' || l.ch == 0x7f:
		default:
			l.buf.WriteByte(l.ch)
		}
	}
}

func illegal(at token.Token, msg string) token.Token {
	at.Type = token.ILLEGAL
	at.Literal = msg
	return at
}

func unescape(ch byte) (byte, bool) {
	switch ch {
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case '/':
		return '/', true
	}
	return 0, false
}
