package messageformat

// lexer is a single left-to-right cursor over the raw template. It carries
// the current brace nesting depth and, per depth, whether the content at
// that depth is format syntax (an argument or case header) or literal text.
// Lexing never fails: malformed brace structure is left for the parser.
type lexer struct {
	input        string
	formatSyntax map[int]bool
	tokens       []Token
	pos          int
	depth        int
}

// lex tokenizes a raw template into an ordered token sequence terminated by
// a TokenEOF token.
func lex(input string) []Token {
	lx := &lexer{
		input:        input,
		formatSyntax: make(map[int]bool),
		tokens:       make([]Token, 0, 16),
	}

	for lx.pos < len(lx.input) {
		if lx.formatSyntax[lx.depth] {
			lx.scanSyntax()
		} else {
			lx.scanText()
		}
	}

	lx.emit(TokenEOF, "", lx.pos)

	return lx.tokens
}

func (lx *lexer) emit(kind TokenKind, text string, pos int) {
	lx.tokens = append(lx.tokens, Token{Kind: kind, Text: text, Pos: pos})
}

func (lx *lexer) lastKind() TokenKind {
	if len(lx.tokens) == 0 {
		return TokenEOF
	}
	return lx.tokens[len(lx.tokens)-1].Kind
}

// scanSyntax tokenizes format-syntax content: whitespace is skipped, commas
// separate header parts, braces adjust depth, and any other run of
// characters is an identifier.
func (lx *lexer) scanSyntax() {
	switch c := lx.input[lx.pos]; {
	case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		lx.pos++
	case c == '{':
		lx.openBrace()
	case c == '}':
		lx.closeBrace()
	case c == ',':
		lx.emit(TokenComma, ",", lx.pos)
		lx.pos++
	default:
		lx.scanIdent()
	}
}

func (lx *lexer) scanIdent() {
	start := lx.pos
loop:
	for lx.pos < len(lx.input) {
		switch lx.input[lx.pos] {
		case ' ', '\t', '\n', '\r', '{', '}', ',':
			break loop
		}
		lx.pos++
	}
	lx.emit(TokenIdent, lx.input[start:lx.pos], start)
}

// scanText scans literal content. An ICU quote escape ('{ or '}) consumes
// the quote and closes the current run with the bare delimiter appended.
// "#" is a placeholder token at any nested depth; at the top level it is
// plain text.
func (lx *lexer) scanText() {
	var buf []byte
	start := lx.pos

	for lx.pos < len(lx.input) {
		c := lx.input[lx.pos]

		if c == '\'' && lx.pos+1 < len(lx.input) && (lx.input[lx.pos+1] == '{' || lx.input[lx.pos+1] == '}') {
			buf = append(buf, lx.input[lx.pos+1])
			lx.emit(TokenText, string(buf), start)
			buf = buf[:0]
			lx.pos += 2
			start = lx.pos
			continue
		}

		if c == '{' || c == '}' || (c == '#' && lx.depth > 0) {
			break
		}

		buf = append(buf, c)
		lx.pos++
	}

	if len(buf) > 0 {
		lx.emit(TokenText, string(buf), start)
	}

	if lx.pos >= len(lx.input) {
		return
	}

	switch lx.input[lx.pos] {
	case '{':
		lx.openBrace()
	case '}':
		lx.closeBrace()
	default:
		lx.emit(TokenHash, "#", lx.pos)
		lx.pos++
	}
}

// openBrace enters a new nesting depth. The new depth carries format syntax
// unless the preceding token was an identifier at a format-syntax depth:
// that identifier is a case name, so this brace opens its literal body.
func (lx *lexer) openBrace() {
	caseBody := lx.formatSyntax[lx.depth] && lx.lastKind() == TokenIdent

	lx.emit(TokenOpenBrace, "{", lx.pos)
	lx.pos++
	lx.depth++
	lx.formatSyntax[lx.depth] = !caseBody
}

// closeBrace leaves the current depth. An unbalanced "}" at depth zero is
// still emitted; the parser reports it.
func (lx *lexer) closeBrace() {
	lx.emit(TokenCloseBrace, "}", lx.pos)
	lx.pos++

	if lx.depth > 0 {
		delete(lx.formatSyntax, lx.depth)
		lx.depth--
	}
}
