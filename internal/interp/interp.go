// Package interp implements the tree-walking evaluator: EvalExpr and
// EvalStmt are the two mutually recursive families from spec.md §4.3,
// backed by an environment.Manager for variable semantics.
package interp

import (
	"time"

	"github.com/boop-lang/boop/internal/ast"
	"github.com/boop-lang/boop/internal/environment"
	"github.com/boop-lang/boop/internal/reporter"
	"github.com/boop-lang/boop/internal/value"
)

// Config tunes evaluator behavior per the Open Question dispositions in
// SPEC_FULL.md §5.
type Config struct {
	// MaxRuntimeErr bounds how many top-level statement failures the
	// interpreter tolerates before aborting the remaining program
	// (spec.md §4.3). Zero means use the spec default of 20.
	MaxRuntimeErr int
	// StrictUninitialized makes reading a `var x;` binding before any
	// assignment a runtime error instead of yielding nil.
	StrictUninitialized bool
	// TraceScopes enables environment push/pop diagnostics, ported from
	// the original BoopInterpreter's `caller` parameter on
	// create_new_env/discard_envs_till (SPEC_FULL.md §4).
	TraceScopes bool
}

const defaultMaxRuntimeErr = 20

// Interpreter walks the AST and produces runtime values, using an
// environment.Manager for scope semantics.
type Interpreter struct {
	env *environment.Manager
	rep *reporter.Reporter
	cfg Config
}

// New creates an Interpreter with a fresh global environment seeded with
// the built-ins from spec.md §4.4.
func New(rep *reporter.Reporter, cfg Config) *Interpreter {
	if cfg.MaxRuntimeErr <= 0 {
		cfg.MaxRuntimeErr = defaultMaxRuntimeErr
	}
	mgr := environment.NewManager(rep)
	mgr.SetTrace(cfg.TraceScopes)
	mgr.SetStrict(cfg.StrictUninitialized)
	it := &Interpreter{env: mgr, rep: rep, cfg: cfg}
	it.defineBuiltins()
	return it
}

// defineBuiltins installs clock() in the global environment (spec.md
// §4.4); additional built-ins are pluggable through the same Builtin
// variant.
func (it *Interpreter) defineBuiltins() {
	it.env.Define("clock", &value.Builtin{
		Name:   "clock",
		Params: 0,
		Call: func(args []value.Value) value.Value {
			return value.Number(float64(time.Now().UnixNano()) / float64(time.Millisecond))
		},
	})
}

// Run executes a full program: each top-level statement is evaluated
// under its own recover, so a runtime error in one statement does not
// prevent later independent top-level statements from still running,
// up to Config.MaxRuntimeErr failures (spec.md §4.3/§7).
func (it *Interpreter) Run(prog ast.Program) {
	errCount := 0
	for _, stmt := range prog.Stmts {
		if errCount >= it.cfg.MaxRuntimeErr {
			it.rep.Error(0, "too many runtime errors, aborting remaining program")
			return
		}
		returned, failed := it.runGuarded(stmt)
		if failed {
			errCount++
		}
		if returned {
			// spec.md §8 Boundaries: a `return` outside any function
			// surfaces to the top and ends execution.
			return
		}
	}
}

// RunExpression evaluates a single expression under the same recover
// boundary as a top-level statement, for the `evaluate` debug subcommand
// (SPEC_FULL.md §2.1). The bool return reports whether a RuntimeError was
// recovered, mirroring runGuarded's "failed" convention.
func (it *Interpreter) RunExpression(expr ast.Expr) (result value.Value, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(value.RuntimeError); ok {
				it.rep.ErrorAt(rerr.Token.Line, rerr.Token.Lexeme, rerr.Message)
				failed = true
				return
			}
			panic(r)
		}
	}()
	return it.evalExpr(expr), false
}

// runGuarded evaluates one top-level statement, recovering a
// value.RuntimeError panic into a reported diagnostic. failed reports
// whether an error was recovered; returned reports whether the statement
// was (or contained) a top-level `return`, which ends the program.
func (it *Interpreter) runGuarded(stmt ast.Stmt) (returned, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(value.RuntimeError); ok {
				it.rep.ErrorAt(rerr.Token.Line, rerr.Token.Lexeme, rerr.Message)
				failed = true
				return
			}
			panic(r)
		}
	}()
	_, returned = it.evalStmt(stmt)
	return returned, false
}
