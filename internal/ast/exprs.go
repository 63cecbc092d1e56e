package ast

import (
	"fmt"
	"strings"

	"github.com/boop-lang/boop/internal/token"
)

func (*Binary) exprNode()      {}
func (*Logical) exprNode()     {}
func (*Unary) exprNode()       {}
func (*Postfix) exprNode()     {}
func (*Grouping) exprNode()    {}
func (*Literal) exprNode()     {}
func (*Conditional) exprNode() {}
func (*Variable) exprNode()    {}
func (*Assignment) exprNode()  {}
func (*Call) exprNode()        {}
func (*Function) exprNode()    {}
func (*Get) exprNode()         {}
func (*Set) exprNode()         {}
func (*This) exprNode()        {}
func (*Super) exprNode()       {}

// Binary is a two-operand expression, including the comma operator (which
// the grammar folds into this variant rather than a dedicated node: its
// semantics — evaluate left for effect, yield right — are exactly the
// generic binary shape, with Op.Kind == token.Comma).
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (b *Binary) String() string { return fmt.Sprintf("(%s %s %s)", b.Op.Lexeme, b.Left, b.Right) }

// Logical is `and`/`or`, kept distinct from Binary because it short-circuits.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (l *Logical) String() string { return fmt.Sprintf("(%s %s %s)", l.Op.Lexeme, l.Left, l.Right) }

// Unary is prefix `!`, `-`, `++`, `--`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (u *Unary) String() string { return fmt.Sprintf("(%s %s)", u.Op.Lexeme, u.Right) }

// Postfix is `++`/`--` applied after a variable reference.
type Postfix struct {
	Left Expr
	Op   token.Token
}

func (p *Postfix) String() string { return fmt.Sprintf("(%s %s)", p.Left, p.Op.Lexeme) }

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	Inner Expr
}

func (g *Grouping) String() string { return fmt.Sprintf("(group %s)", g.Inner) }

// Literal wraps the originating token; the evaluator interprets it by
// token kind (TRUE/FALSE/NIL/STRING/NUMBER) rather than this package
// pre-converting it to a runtime value, which would otherwise force this
// package to depend on the value package that itself depends on ast
// (function values hold a reference back to their ast.Function node).
type Literal struct {
	Token token.Token
}

func (l *Literal) String() string {
	switch l.Token.Kind {
	case token.String:
		return l.Token.Literal.Str
	case token.Number:
		return fmt.Sprintf("%v", l.Token.Literal.Number)
	default:
		return l.Token.Lexeme
	}
}

// Conditional is the ternary `cond ? then : else`.
type Conditional struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (c *Conditional) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Cond, c.Then, c.Else)
}

// Variable is an identifier reference.
type Variable struct {
	Name token.Token
}

func (v *Variable) String() string { return v.Name.Lexeme }

// Assignment is `name = value`.
type Assignment struct {
	Name  token.Token
	Value Expr
}

func (a *Assignment) String() string { return fmt.Sprintf("(%s = %s)", a.Name.Lexeme, a.Value) }

// Call is a function/class invocation.
type Call struct {
	Callee Expr
	Paren  token.Token // closing ')', kept for error line reporting
	Args   []Expr
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}

// Function is an anonymous function expression: `fun (params) { body }`.
// Named `fun` declarations and class methods are FunStmt nodes that wrap a
// Function carrying the declared name (see ast.FunStmt).
type Function struct {
	Name   string // empty for a true anonymous function literal
	Params []token.Token
	Body   []Stmt
}

func (f *Function) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Lexeme
	}
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("fun %s(%s)", name, strings.Join(params, ", "))
}

// Get is property access `object.name`.
type Get struct {
	Object Expr
	Name   token.Token
}

func (g *Get) String() string { return fmt.Sprintf("%s.%s", g.Object, g.Name.Lexeme) }

// Set is property assignment `object.name = value`.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (s *Set) String() string { return fmt.Sprintf("%s.%s = %s", s.Object, s.Name.Lexeme, s.Value) }

// This is the `this` keyword in a method body.
type This struct {
	Keyword token.Token
}

func (t *This) String() string { return "this" }

// Super is `super.method`.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (s *Super) String() string { return fmt.Sprintf("super.%s", s.Method.Lexeme) }
