// Package ast defines the closed sum-of-variants abstract syntax tree
// produced by the parser and consumed by the evaluator. Dispatch is by
// type switch in the evaluator rather than by a visitor: per the language
// design notes, a closed sum with pattern-matched dispatch is simpler to
// reason about than virtual dispatch and needs no separate visitor
// interface to keep in sync with the variant list.
package ast

import "github.com/boop-lang/boop/internal/token"

// Expr is any expression node. Each child expression is owned exclusively
// by its parent; the tree never shares or cycles.
type Expr interface {
	exprNode()
	String() string
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
	String() string
}

// Program is the ordered sequence of top-level statements the parser
// produces.
type Program struct {
	Stmts []Stmt
}
