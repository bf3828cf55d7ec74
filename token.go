package messageformat

import "fmt"

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// TokenText is a run of literal text emitted verbatim.
	TokenText TokenKind = iota
	// TokenOpenBrace is an opening delimiter "{".
	TokenOpenBrace
	// TokenCloseBrace is a closing delimiter "}".
	TokenCloseBrace
	// TokenComma separates the parts of an argument header.
	TokenComma
	// TokenHash is the "#" placeholder inside plural and selectordinal bodies.
	TokenHash
	// TokenIdent is an identifier: an argument name, format type, style,
	// case name, or offset clause.
	TokenIdent
	// TokenEOF marks the end of the input. It is always the last token.
	TokenEOF
)

// String returns a human-readable name for the token kind, used in parse
// error messages.
func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenOpenBrace:
		return "{"
	case TokenCloseBrace:
		return "}"
	case TokenComma:
		return ","
	case TokenHash:
		return "#"
	case TokenIdent:
		return "identifier"
	case TokenEOF:
		return "end of input"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is a single lexeme with its byte offset in the raw template.
// Tokens are immutable once emitted.
type Token struct {
	Text string
	Pos  int
	Kind TokenKind
}
