package ast

import (
	"fmt"
	"strings"

	"github.com/boop-lang/boop/internal/token"
)

func (*ExprStmt) stmtNode()   {}
func (*PrintStmt) stmtNode()  {}
func (*Block) stmtNode()      {}
func (*VarStmt) stmtNode()    {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()    {}
func (*FunStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode() {}
func (*ClassStmt) stmtNode()  {}

// ExprStmt evaluates an expression for its side effect and discards the
// result.
type ExprStmt struct {
	Expr Expr
}

func (e *ExprStmt) String() string { return e.Expr.String() + ";" }

// PrintStmt writes the stringified value of Expr to stdout.
type PrintStmt struct {
	Expr Expr
}

func (p *PrintStmt) String() string { return "print " + p.Expr.String() + ";" }

// Block introduces a new lexical scope around a sequence of statements.
type Block struct {
	Stmts []Stmt
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Stmts {
		sb.WriteString("  " + s.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// VarStmt declares a variable, optionally with an initializer. A nil Init
// means the nil-placeholder semantics from spec.md §9 apply.
type VarStmt struct {
	Name token.Token
	Init Expr
}

func (v *VarStmt) String() string {
	if v.Init == nil {
		return fmt.Sprintf("var %s;", v.Name.Lexeme)
	}
	return fmt.Sprintf("var %s = %s;", v.Name.Lexeme, v.Init)
}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (i *IfStmt) String() string {
	s := fmt.Sprintf("if (%s) %s", i.Cond, i.Then)
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

// WhileStmt loops while Cond is truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (w *WhileStmt) String() string { return fmt.Sprintf("while (%s) %s", w.Cond, w.Body) }

// ForStmt is kept as its own node (rather than desugaring to While at
// parse time) so that tooling built on this AST — a pretty-printer, a
// linter, a coverage instrumenter — can still recover the original
// C-style loop shape; the evaluator runs it directly (interp.evalForStmt).
type ForStmt struct {
	Init Stmt // VarStmt, ExprStmt, or nil
	Cond Expr // nil means "true"
	Incr Expr // nil means no increment
	Body Stmt
}

func (f *ForStmt) String() string {
	initStr, condStr, incrStr := "", "", ""
	if f.Init != nil {
		initStr = f.Init.String()
	}
	if f.Cond != nil {
		condStr = f.Cond.String()
	}
	if f.Incr != nil {
		incrStr = f.Incr.String()
	}
	return fmt.Sprintf("for (%s; %s; %s) %s", initStr, condStr, incrStr, f.Body)
}

// FunStmt is a named function declaration: `fun name(params) { body }`.
type FunStmt struct {
	Name token.Token
	Fn   *Function
}

func (f *FunStmt) String() string { return f.Fn.String() + " " + blockOf(f.Fn.Body) }

func blockOf(stmts []Stmt) string {
	return (&Block{Stmts: stmts}).String()
}

// ReturnStmt surfaces an optional value up through eval_stmt results.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil means an implicit nil return
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value)
}

// ClassStmt declares a class, its optional superclass reference, and its
// methods (each a FunStmt).
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable // nil when there is no "< Base" clause
	Methods    []*FunStmt
}

func (c *ClassStmt) String() string {
	var sb strings.Builder
	sb.WriteString("class " + c.Name.Lexeme)
	if c.Superclass != nil {
		sb.WriteString(" < " + c.Superclass.Name.Lexeme)
	}
	sb.WriteString(" {\n")
	for _, m := range c.Methods {
		sb.WriteString("  " + m.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}
