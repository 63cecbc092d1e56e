package parser

import (
	"github.com/boop-lang/boop/internal/ast"
	"github.com/boop-lang/boop/internal/token"
)

func (p *Parser) expression() ast.Expr {
	return p.comma()
}

// comma := assignment ("," assignment)*
// Only reached from statement/grouping context; arguments() below parses
// at assignment precedence directly so that commas inside a call are
// argument separators, not comma-expressions (spec.md §9).
func (p *Parser) comma() ast.Expr {
	expr := p.assignment()
	for p.match(token.Comma) {
		op := p.previous()
		right := p.assignment()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// assignment := (call ".")? IDENTIFIER "=" assignment | conditional
func (p *Parser) assignment() ast.Expr {
	expr := p.conditional()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assignment{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(equals, "Invalid assignment target.")
		}
	}

	return expr
}

// conditional := logic_or ("?" assignment ":" conditional)?
func (p *Parser) conditional() ast.Expr {
	expr := p.logicOr()
	if p.match(token.Question) {
		then := p.assignment()
		p.consume(token.Colon, "Expect ':' after then branch of conditional expression.")
		els := p.conditional()
		expr = &ast.Conditional{Cond: expr, Then: then, Else: els}
	}
	return expr
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.Or) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	if p.checkMissingLeftOperand(token.EqualEqual, token.BangEqual) {
		return p.errorProduction(p.comparison)
	}
	expr := p.comparison()
	for p.match(token.EqualEqual, token.BangEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	if p.checkMissingLeftOperand(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		return p.errorProduction(p.addition)
	}
	expr := p.addition()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.addition()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) addition() ast.Expr {
	if p.checkMissingLeftOperand(token.Plus) {
		return p.errorProduction(p.multiplication)
	}
	expr := p.multiplication()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.multiplication()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) multiplication() ast.Expr {
	if p.checkMissingLeftOperand(token.Star, token.Slash) {
		return p.errorProduction(p.unary)
	}
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// checkMissingLeftOperand reports whether the current token is one of a
// binary operator class appearing with nothing before it — i.e. we are
// at the very start of an expression and the next token is itself one of
// these infix operators. Minus is deliberately excluded from its own
// class check (unary `-` is the error production's sibling, so `-1` must
// not misfire as "missing left operand").
func (p *Parser) checkMissingLeftOperand(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

// errorProduction implements spec.md §4.1's error productions: a binary
// operator with no left operand is reported, then the right-hand
// subexpression is still consumed so parsing can continue.
func (p *Parser) errorProduction(next func() ast.Expr) ast.Expr {
	op := p.peek()
	p.errorAt(op, "Missing left hand operand.")
	p.advance()
	return next()
}

// unary := ("!" | "-" | "++" | "--") unary | postfix
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus, token.PlusPlus, token.MinusMinus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.postfix()
}

// postfix := call ("++" | "--")*
// Per spec.md §9's disposition of the ambiguity between postfix operators
// and member access, postfix is restricted to a bare Variable operand: a
// postfix operator following anything else is a parse error.
func (p *Parser) postfix() ast.Expr {
	expr := p.call()
	for p.match(token.PlusPlus, token.MinusMinus) {
		op := p.previous()
		if _, ok := expr.(*ast.Variable); !ok {
			p.errorAt(op, "Invalid postfix target; only a variable may be incremented or decremented.")
			continue
		}
		expr = &ast.Postfix{Left: expr, Op: op}
	}
	return expr
}

// call := primary ( "(" arguments? ")" | "." IDENTIFIER )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= MaxArgs {
				p.errorAtCurrent("Can't have more than 255 arguments.")
			}
			args = append(args, p.assignment())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary := "true" | "false" | "nil" | NUMBER | STRING
//          | "(" expression ")" | "this" | IDENT
//          | "fun" functionBody | "super" "." IDENT
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.True, token.False, token.Nil, token.Number, token.String):
		return &ast.Literal{Token: p.previous()}
	case p.match(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "Expect '.' after 'super'.")
		method := p.consume(token.Identifier, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.This):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	case p.match(token.Fun):
		return p.functionBody("function")
	default:
		p.errorAtCurrent("Expect expression.")
		panic(parseError{})
	}
}
