package messageformat

import (
	"fmt"
	"strconv"
	"strings"
)

// parser is a recursive-descent reader over the token stream. It enforces
// the maximum nesting depth; the maximum input length is checked before
// lexing so pathological inputs never reach the token stage.
type parser struct {
	tokens   []Token
	pos      int
	maxDepth int
}

func parse(input string, maxLength, maxDepth int) (Message, error) {
	if maxLength > 0 && len(input) > maxLength {
		return nil, fmt.Errorf("%w: %d characters (limit %d)", ErrTemplateTooLong, len(input), maxLength)
	}

	p := &parser{tokens: lex(input), maxDepth: maxDepth}

	msg, err := p.parseMessage(1, false)
	if err != nil {
		return nil, err
	}

	if tok := p.cur(); tok.Kind != TokenEOF {
		return nil, p.errExpected("end of input", tok)
	}

	return msg, nil
}

func (p *parser) cur() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	tok := p.cur()
	if tok.Kind != kind {
		return Token{}, p.errExpected(what, tok)
	}
	p.advance()
	return tok, nil
}

func (p *parser) errExpected(expected string, tok Token) error {
	found := tok.Kind.String()
	if tok.Kind == TokenIdent || tok.Kind == TokenText {
		found = strconv.Quote(tok.Text)
	}
	return &ParseError{Pos: tok.Pos, Expected: expected, Found: found}
}

// parseMessage reads literal and argument nodes until a token that belongs
// to the enclosing construct. inPlural controls whether "#" tokens become
// placeholder nodes or plain text.
func (p *parser) parseMessage(depth int, inPlural bool) (Message, error) {
	if depth > p.maxDepth {
		return nil, &ParseError{Err: ErrDepthExceeded, Pos: p.cur().Pos}
	}

	var msg Message
	for {
		switch tok := p.cur(); tok.Kind {
		case TokenText:
			p.advance()
			msg = append(msg, &LiteralNode{Text: tok.Text})
		case TokenHash:
			p.advance()
			if inPlural {
				msg = append(msg, &HashNode{})
			} else {
				msg = append(msg, &LiteralNode{Text: "#"})
			}
		case TokenOpenBrace:
			node, err := p.parseArgument(depth, inPlural)
			if err != nil {
				return nil, err
			}
			msg = append(msg, node)
		default:
			return msg, nil
		}
	}
}

func (p *parser) parseArgument(depth int, inPlural bool) (Node, error) {
	p.advance() // consume "{", verified by the caller

	nameTok, err := p.expect(TokenIdent, "argument name")
	if err != nil {
		return nil, err
	}

	switch tok := p.cur(); tok.Kind {
	case TokenCloseBrace:
		p.advance()
		return &ArgumentNode{Name: nameTok.Text}, nil
	case TokenComma:
		p.advance()
	default:
		return nil, p.errExpected("closing delimiter or comma", tok)
	}

	kindTok, err := p.expect(TokenIdent, "format type")
	if err != nil {
		return nil, err
	}

	switch kindTok.Text {
	case "plural":
		return p.parseCases(nameTok.Text, false, depth)
	case "selectordinal":
		return p.parseCases(nameTok.Text, true, depth)
	case "select":
		return p.parseSelect(nameTok.Text, depth, inPlural)
	default:
		return p.parseSimpleArgument(nameTok.Text, kindTok.Text)
	}
}

func (p *parser) parseSimpleArgument(name, kind string) (Node, error) {
	var style string
	if p.cur().Kind == TokenComma {
		p.advance()
		styleTok, err := p.expect(TokenIdent, "format style")
		if err != nil {
			return nil, err
		}
		style = styleTok.Text
	}

	if _, err := p.expect(TokenCloseBrace, "closing delimiter"); err != nil {
		return nil, err
	}

	return &ArgumentNode{Name: name, Kind: kind, Style: style}, nil
}

// parseCases reads the case list of a plural or selectordinal argument: an
// optional offset clause followed by one or more caseName{message} pairs.
func (p *parser) parseCases(name string, ordinal bool, depth int) (Node, error) {
	if _, err := p.expect(TokenComma, "comma before case list"); err != nil {
		return nil, err
	}

	node := &PluralNode{Name: name, Ordinal: ordinal}

	if tok := p.cur(); tok.Kind == TokenIdent && strings.HasPrefix(tok.Text, "offset:") {
		off, err := strconv.ParseFloat(strings.TrimPrefix(tok.Text, "offset:"), 64)
		if err != nil {
			return nil, p.errExpected("numeric offset", tok)
		}
		node.Offset = off
		p.advance()
	}

	for p.cur().Kind == TokenIdent {
		caseTok := p.advance()

		if _, err := p.expect(TokenOpenBrace, "opening delimiter after case name"); err != nil {
			return nil, err
		}
		body, err := p.parseMessage(depth+1, true)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenCloseBrace, "closing delimiter"); err != nil {
			return nil, err
		}

		node.Cases = append(node.Cases, PluralCase{Name: caseTok.Text, Body: body})
	}

	if len(node.Cases) == 0 {
		return nil, p.errExpected("at least one case", p.cur())
	}

	if _, err := p.expect(TokenCloseBrace, "closing delimiter"); err != nil {
		return nil, err
	}

	return node, nil
}

func (p *parser) parseSelect(name string, depth int, inPlural bool) (Node, error) {
	if _, err := p.expect(TokenComma, "comma before case list"); err != nil {
		return nil, err
	}

	node := &SelectNode{Name: name}

	for p.cur().Kind == TokenIdent {
		caseTok := p.advance()

		if _, err := p.expect(TokenOpenBrace, "opening delimiter after case name"); err != nil {
			return nil, err
		}
		// "#" inside a select body still refers to the nearest enclosing
		// plural, so the flag passes through unchanged.
		body, err := p.parseMessage(depth+1, inPlural)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenCloseBrace, "closing delimiter"); err != nil {
			return nil, err
		}

		node.Cases = append(node.Cases, SelectCase{Name: caseTok.Text, Body: body})
	}

	if len(node.Cases) == 0 {
		return nil, p.errExpected("at least one case", p.cur())
	}

	if _, err := p.expect(TokenCloseBrace, "closing delimiter"); err != nil {
		return nil, err
	}

	return node, nil
}
