package parser

import "github.com/boop-lang/boop/internal/token"

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	return !p.atEnd() && p.peek().Kind == k
}

// checkNext implements the two-token lookahead needed to disambiguate
// `fun IDENTIFIER` declarations from function expressions (spec.md §4.1).
func (p *Parser) checkNext(k token.Kind) bool {
	if p.atEnd() || p.pos+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.pos+1].Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAtCurrent(msg)
	panic(parseError{})
}

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) peek() token.Token { return p.tokens[p.pos] }

func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) errorAtCurrent(msg string) {
	p.errorAt(p.peek(), msg)
}

// errorAt records a diagnostic anchored to tok's line and lexeme. It does
// not panic, so parsing continues; callers that must abandon the current
// declaration (consume, primary) panic a parseError themselves, to be
// recovered at the nearest declaration() boundary (spec.md §4.1's
// panic-mode synchronization).
func (p *Parser) errorAt(tok token.Token, msg string) {
	where := tok.Lexeme
	if tok.Kind == token.EOF {
		where = "end"
	}
	p.rep.ErrorAt(tok.Line, where, msg)
}
