package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boop-lang/boop/internal/ast"
	"github.com/boop-lang/boop/internal/token"
)

func ident(name string) token.Token { return token.Token{Kind: token.Identifier, Lexeme: name} }

func numberLit(n float64) *ast.Literal {
	return &ast.Literal{Token: token.Token{Kind: token.Number, Literal: &token.Literal{IsNumber: true, Number: n}}}
}

func TestBinaryStringUsesPrefixNotation(t *testing.T) {
	b := &ast.Binary{Left: numberLit(1), Op: token.Token{Kind: token.Plus, Lexeme: "+"}, Right: numberLit(2)}
	assert.Equal(t, "(+ 1 2)", b.String())
}

func TestConditionalString(t *testing.T) {
	c := &ast.Conditional{Cond: &ast.Variable{Name: ident("ok")}, Then: numberLit(1), Else: numberLit(2)}
	assert.Equal(t, "(ok ? 1 : 2)", c.String())
}

func TestCallString(t *testing.T) {
	call := &ast.Call{Callee: &ast.Variable{Name: ident("f")}, Args: []ast.Expr{numberLit(1), numberLit(2)}}
	assert.Equal(t, "f(1, 2)", call.String())
}

func TestClassStmtStringIncludesSuperclass(t *testing.T) {
	class := &ast.ClassStmt{
		Name:       ident("B"),
		Superclass: &ast.Variable{Name: ident("A")},
		Methods: []*ast.FunStmt{
			{Name: ident("speak"), Fn: &ast.Function{Name: "speak"}},
		},
	}
	assert.Contains(t, class.String(), "class B < A {")
}

func TestForStmtString(t *testing.T) {
	f := &ast.ForStmt{
		Init: &ast.VarStmt{Name: ident("i"), Init: numberLit(0)},
		Cond: &ast.Binary{Left: &ast.Variable{Name: ident("i")}, Op: token.Token{Kind: token.Less, Lexeme: "<"}, Right: numberLit(3)},
		Incr: &ast.Postfix{Left: &ast.Variable{Name: ident("i")}, Op: token.Token{Kind: token.PlusPlus, Lexeme: "++"}},
		Body: &ast.PrintStmt{Expr: &ast.Variable{Name: ident("i")}},
	}
	assert.Equal(t, "for (var i = 0;; (< i 3); (i ++)) print i;", f.String())
}
