package lexer

import (
	"testing"

	"github.com/ZenToad/jsonez/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := `{
	  "key": "value", // a comment
	  number = 123,
	  float: -123.45e-2, /* block
	  comment */ flag: true,
	  list: [1, "two",],
	}`

	expectedTokens := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LBRACE, "{"},
		{token.STRING, "key"},
		{token.COLON, ":"},
		{token.STRING, "value"},
		{token.COMMA, ","},
		{token.WORD, "number"},
		{token.EQUAL, "="},
		{token.WORD, "123"},
		{token.COMMA, ","},
		{token.WORD, "float"},
		{token.COLON, ":"},
		{token.WORD, "-123.45e-2"},
		{token.COMMA, ","},
		{token.WORD, "flag"},
		{token.COLON, ":"},
		{token.WORD, "true"},
		{token.COMMA, ","},
		{token.WORD, "list"},
		{token.COLON, ":"},
		{token.LBRACK, "["},
		{token.WORD, "1"},
		{token.COMMA, ","},
		{token.STRING, "two"},
		{token.COMMA, ","},
		{token.RBRACK, "]"},
		{token.COMMA, ","},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New([]byte(input))
	for i, tt := range expectedTokens {
		tok := l.NextToken()
		require.Equal(t, tt.expectedType, tok.Type, "tests[%d] - tokentype wrong, literal %q", i, tok.Literal)
		require.Equal(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal wrong", i)
	}
}

func TestTokenPositions(t *testing.T) {
	l := New([]byte("{\n  a: 1\n}"))

	tok := l.NextToken()
	require.Equal(t, token.Token{Type: token.LBRACE, Literal: "{", Line: 1, Column: 1, Offset: 0}, tok)

	tok = l.NextToken()
	require.Equal(t, token.Token{Type: token.WORD, Literal: "a", Line: 2, Column: 3, Offset: 4}, tok)

	tok = l.NextToken()
	require.Equal(t, token.Token{Type: token.COLON, Literal: ":", Line: 2, Column: 4, Offset: 5}, tok)

	tok = l.NextToken()
	require.Equal(t, token.Token{Type: token.WORD, Literal: "1", Line: 2, Column: 6, Offset: 7}, tok)

	tok = l.NextToken()
	require.Equal(t, token.Token{Type: token.RBRACE, Literal: "}", Line: 3, Column: 1, Offset: 9}, tok)
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", `"hello world"`, "hello world"},
		{"empty", `""`, ""},
		{"escapes", `"a\"b\\c\/d\be\ff\ng\rh\ti"`, "a\"b\\c/d\be\ff\ng\rh\ti"},
		{"comment markers are literal", `"// not /* a comment */"`, "// not /* a comment */"},
		{"raw control characters are dropped", "\"a\tb\nc\x7fd\"", "abcd"},
		{"utf-8 passes through", `"héllo, 世界"`, "héllo, 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New([]byte(tt.input)).NextToken()
			require.Equal(t, token.STRING, tok.Type, "literal %q", tok.Literal)
			require.Equal(t, tt.expected, tok.Literal)
		})
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		line    int
		column  int
	}{
		{"unterminated string", `"abc`, "unterminated string", 1, 1},
		{"backslash at end", `"abc\`, "unterminated string", 1, 1},
		{"invalid escape", `"ab\x"`, `invalid escape sequence '\x'`, 1, 4},
		{"unicode escape", `"\u0041"`, `invalid escape sequence '\u'`, 1, 2},
		{"unterminated block comment", "a /* never closed", "unterminated block comment", 1, 3},
		{"unterminated line comment", "  // no newline", "unterminated line comment", 1, 3},
		{"unexpected character", "\n @", "unexpected character '@'", 2, 2},
		{"lone slash", "/ x", "unexpected character '/'", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New([]byte(tt.input))
			tok := l.NextToken()
			for tok.Type != token.ILLEGAL && tok.Type != token.EOF {
				tok = l.NextToken()
			}
			require.Equal(t, token.ILLEGAL, tok.Type)
			require.Equal(t, tt.message, tok.Literal)
			require.Equal(t, tt.line, tok.Line)
			require.Equal(t, tt.column, tok.Column)
		})
	}
}

func TestEndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", " \t\r\n "},
		{"comments only", "// one\n/* two */\n"},
		{"nul terminates", "\x00 garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New([]byte(tt.input)).NextToken()
			require.Equal(t, token.EOF, tok.Type)
		})
	}
}

func TestWords(t *testing.T) {
	l := New([]byte("abc_123 -1.5e+3 true 42abc a-b"))
	for _, want := range []string{"abc_123", "-1.5e+3", "true", "42abc", "a-b"} {
		tok := l.NextToken()
		require.Equal(t, token.WORD, tok.Type)
		require.Equal(t, want, tok.Literal)
	}
	require.Equal(t, token.EOF, l.NextToken().Type)
}
