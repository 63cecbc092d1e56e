package interp

import (
	"github.com/boop-lang/boop/internal/ast"
	"github.com/boop-lang/boop/internal/token"
	"github.com/boop-lang/boop/internal/value"
)

// evalStmt is the statement half of the two mutually recursive evaluation
// families (spec.md §4.3). A true second return value means a `return`
// surfaced from stmt (or from something stmt contains); callers propagate
// it upward rather than continuing the enclosing sequence.
func (it *Interpreter) evalStmt(stmt ast.Stmt) (value.Value, bool) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		it.evalExpr(s.Expr)
		return nil, false
	case *ast.PrintStmt:
		it.rep.Print(value.Stringify(it.evalExpr(s.Expr)))
		return nil, false
	case *ast.Block:
		return it.evalBlock(s.Stmts)
	case *ast.VarStmt:
		it.evalVarStmt(s)
		return nil, false
	case *ast.IfStmt:
		return it.evalIfStmt(s)
	case *ast.WhileStmt:
		return it.evalWhileStmt(s)
	case *ast.ForStmt:
		return it.evalForStmt(s)
	case *ast.FunStmt:
		it.evalFunStmt(s)
		return nil, false
	case *ast.ReturnStmt:
		if s.Value == nil {
			return value.Nil, true
		}
		return it.evalExpr(s.Value), true
	case *ast.ClassStmt:
		it.evalClassStmt(s)
		return nil, false
	default:
		rte(token.Token{}, "unreachable statement variant")
		return nil, false
	}
}

// evalStmts runs a sequence of statements in the current environment,
// stopping early and propagating the first `return` it encounters
// (spec.md §4.3's "eval_stmts").
func (it *Interpreter) evalStmts(stmts []ast.Stmt) (value.Value, bool) {
	for _, stmt := range stmts {
		if v, ok := it.evalStmt(stmt); ok {
			return v, true
		}
	}
	return nil, false
}

// evalBlock pushes a child scope, runs stmts, and always tears the scope
// back down via defer so an in-flight RuntimeError panic still restores
// the caller's environment.
func (it *Interpreter) evalBlock(stmts []ast.Stmt) (value.Value, bool) {
	outer := it.env.CurrentEnv()
	it.env.CreateNewEnv("block")
	defer it.env.DiscardEnvsTill(outer, "block")
	return it.evalStmts(stmts)
}

func (it *Interpreter) evalVarStmt(s *ast.VarStmt) {
	if s.Init == nil {
		it.env.DefineDeclaredOnly(s.Name.Lexeme)
		return
	}
	it.env.Define(s.Name.Lexeme, it.evalExpr(s.Init))
}

func (it *Interpreter) evalIfStmt(s *ast.IfStmt) (value.Value, bool) {
	if value.IsTruthy(it.evalExpr(s.Cond)) {
		return it.evalStmt(s.Then)
	}
	if s.Else != nil {
		return it.evalStmt(s.Else)
	}
	return nil, false
}

func (it *Interpreter) evalWhileStmt(s *ast.WhileStmt) (value.Value, bool) {
	for value.IsTruthy(it.evalExpr(s.Cond)) {
		if v, ok := it.evalStmt(s.Body); ok {
			return v, true
		}
	}
	return nil, false
}

// evalForStmt pushes one scope for the whole loop, runs the initializer
// once in it, then the condition/body/increment cycle, per spec.md §4.3's For
// semantics (the node is kept distinct from While so tooling can still
// recover the C-style loop shape; see ast.ForStmt).
func (it *Interpreter) evalForStmt(s *ast.ForStmt) (value.Value, bool) {
	outer := it.env.CurrentEnv()
	it.env.CreateNewEnv("for-init")
	defer it.env.DiscardEnvsTill(outer, "for-init")

	if s.Init != nil {
		it.evalStmt(s.Init)
	}
	for s.Cond == nil || value.IsTruthy(it.evalExpr(s.Cond)) {
		if v, ok := it.evalStmt(s.Body); ok {
			return v, true
		}
		if s.Incr != nil {
			it.evalExpr(s.Incr)
		}
	}
	return nil, false
}

// evalFunStmt constructs a Function value naming it, defines it in the
// current scope, then pushes a fresh scope so later same-scope
// definitions don't leak into the just-defined function's closure
// (spec.md §4.3's Function-statement row).
func (it *Interpreter) evalFunStmt(s *ast.FunStmt) {
	closure := it.env.CurrentEnv()
	fn := &value.Function{Decl: s.Fn, Name: s.Name.Lexeme, Closure: closure}
	it.env.Define(s.Name.Lexeme, fn)
	it.env.CreateNewEnv("fun-decl")
}

// evalClassStmt follows spec.md §4.3's Class-statement sequence exactly:
// pre-declare nil, resolve and verify the superclass, push a `super`
// scope if one exists, build method values in that scope, assign the
// class value, then push a post-definition scope.
func (it *Interpreter) evalClassStmt(s *ast.ClassStmt) {
	it.env.Define(s.Name.Lexeme, value.Nil)

	var super *value.Class
	if s.Superclass != nil {
		sv := it.env.Get(s.Superclass.Name)
		sc, ok := sv.(*value.Class)
		if !ok {
			rte(s.Superclass.Name, "Superclass must be a class.")
		}
		super = sc
	}

	methodScope := it.env.CurrentEnv()
	if super != nil {
		it.env.CreateNewEnv("super-binding")
		it.env.Define("super", super)
		methodScope = it.env.CurrentEnv()
	}

	methods := make(map[string]*value.Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &value.Function{
			Decl:          m.Fn,
			Name:          m.Name.Lexeme,
			Closure:       methodScope,
			IsMethod:      true,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &value.Class{Name: s.Name.Lexeme, Superclass: super, Methods: methods}
	it.env.Assign(s.Name, class)
	it.env.CreateNewEnv("class-decl")
}
