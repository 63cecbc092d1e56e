package interp

import (
	"fmt"

	"github.com/boop-lang/boop/internal/ast"
	"github.com/boop-lang/boop/internal/environment"
	"github.com/boop-lang/boop/internal/token"
	"github.com/boop-lang/boop/internal/value"
)

// evalCall implements spec.md §4.3's eight-step call protocol.
func (it *Interpreter) evalCall(e *ast.Call) value.Value {
	callee := it.evalExpr(e.Callee)

	// Arity is checked before any argument is evaluated; a class's arity is
	// checked against its init inside construct.
	switch fn := callee.(type) {
	case *value.Builtin:
		checkArity(e.Paren, fn.Arity(), len(e.Args))
	case *value.Function:
		checkArity(e.Paren, fn.Arity(), len(e.Args))
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = it.evalExpr(a)
	}

	switch fn := callee.(type) {
	case *value.Builtin:
		return fn.Call(args)
	case *value.Class:
		return it.construct(e.Paren, fn, args)
	case *value.Function:
		return it.callFunction(e.Paren, fn, args)
	default:
		rte(e.Paren, "Can only call functions and classes.")
		return value.Nil
	}
}

// construct builds a fresh Instance and, when the class chain declares
// init, invokes it bound to the new instance (spec.md §4.3 step 2); a
// class with no initializer only accepts a no-arg construction.
func (it *Interpreter) construct(paren token.Token, class *value.Class, args []value.Value) value.Value {
	inst := value.NewInstance(class)
	if init := class.FindMethod("init"); init != nil {
		it.callFunction(paren, init.Bind(inst), args)
	} else if len(args) != 0 {
		rte(paren, fmt.Sprintf("Expected 0 arguments but got %d.", len(args)))
	}
	return inst
}

// callFunction runs fn's body against args: arity check, a fresh call
// frame parented on fn's closure with parameters bound, execution via
// eval_stmts, the Initializer rule, then restoring the caller's
// environment on every exit path including an in-flight RuntimeError
// panic (spec.md §4.3 steps 4-8).
func (it *Interpreter) callFunction(paren token.Token, fn *value.Function, args []value.Value) value.Value {
	checkArity(paren, fn.Arity(), len(args))

	caller := it.env.CurrentEnv()
	defer it.env.SetCurrentEnv(caller)

	child, ok := fn.Closure.NewChild().(*environment.Environment)
	if !ok {
		rte(paren, "internal error: closure is not an *environment.Environment")
	}
	it.env.SetCurrentEnv(child)

	for i, p := range fn.Decl.Params {
		it.env.Define(p.Lexeme, args[i])
	}

	result, returned := it.evalStmts(fn.Decl.Body)

	if fn.IsInitializer {
		if returned {
			if _, isNil := result.(value.NilValue); !isNil {
				rte(paren, "Can't return a value from an initializer.")
			}
		}
		thisTok := token.Token{Kind: token.This, Lexeme: "this", Line: paren.Line}
		return child.Get(thisTok, false)
	}

	if !returned {
		return value.Nil
	}
	return result
}

// checkArity raises a runtime error with expected/got counts on mismatch
// (spec.md §4.3 step 4).
func checkArity(paren token.Token, want, got int) {
	if want != got {
		rte(paren, fmt.Sprintf("Expected %d arguments but got %d.", want, got))
	}
}
