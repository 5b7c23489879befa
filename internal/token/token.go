package token

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
	Offset  int // byte offset of the first character
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // Literal holds the error message
	EOF     Type = "EOF"     // End of input or NUL byte

	// Literals
	WORD   Type = "WORD"   // key, 42, -1.5e3, true
	STRING Type = "STRING" // "hello world", unescaped

	// Delimiters
	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COMMA  Type = ","
	COLON  Type = ":"
	EQUAL  Type = "="
)

// Describe returns a human readable name for t used in diagnostics.
func Describe(t Type) string {
	switch t {
	case EOF:
		return "end of input"
	case WORD:
		return "word"
	case STRING:
		return "string"
	case ILLEGAL:
		return "illegal token"
	}
	return "'" + string(t) + "'"
}

// IsKeyChar reports whether c may appear in an unquoted key.
func IsKeyChar(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || c == '_'
}

// IsNumberChar reports whether c may appear in a number.
func IsNumberChar(c byte) bool {
	return ('0' <= c && c <= '9') || c == 'e' || c == 'E' || c == '+' || c == '-' || c == '.'
}

// IsWordChar reports whether c belongs to a WORD token.
func IsWordChar(c byte) bool {
	return IsKeyChar(c) || IsNumberChar(c)
}

// IsRawKey reports whether s can be written as an unquoted key.
func IsRawKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsKeyChar(s[i]) {
			return false
		}
	}
	return true
}

// IsNumber reports whether every byte of s is a number character.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsNumberChar(s[i]) {
			return false
		}
	}
	return true
}
