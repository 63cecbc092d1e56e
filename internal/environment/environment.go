// Package environment implements the lexically nested scope tree:
// Environment is a single scope, Manager owns the "current
// scope" cursor and the push/pop/snapshot operations the evaluator needs
// for blocks, calls, and loops (spec.md §4.2).
package environment

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/boop-lang/boop/internal/token"
	"github.com/boop-lang/boop/internal/value"
)

// Environment is a mapping from variable name to value plus a pointer to
// its parent. The global environment has a nil parent.
type Environment struct {
	parent *Environment
	values map[string]value.Value
	// declaredOnly marks bindings created by `var x;` with no initializer
	// that have not yet been assigned; it backs the
	// Config.StrictUninitialized mode (SPEC_FULL.md §5) without
	// widening value.Value's otherwise-closed set with a sentinel.
	declaredOnly map[string]bool
}

// New creates a root (global) environment.
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewChild creates a scope nested inside e. It satisfies value.Scope so
// that value.Function/value.Builtin closures can create call frames
// without this package's concrete type leaking into the value package.
func (e *Environment) NewChild() value.Scope {
	return &Environment{parent: e, values: make(map[string]value.Value)}
}

// Define unconditionally inserts name into the current scope, shadowing
// any outer binding of the same name, and clears any declared-only mark.
// Define never fails.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
	if e.declaredOnly != nil {
		delete(e.declaredOnly, name)
	}
}

// DefineDeclaredOnly records a `var x;` declaration with no initializer:
// the binding holds value.Nil (spec.md's default nil-placeholder
// semantics) and is additionally marked as not yet assigned, for callers
// that opt into StrictUninitialized.
func (e *Environment) DefineDeclaredOnly(name string) {
	e.values[name] = value.Nil
	if e.declaredOnly == nil {
		e.declaredOnly = make(map[string]bool)
	}
	e.declaredOnly[name] = true
}

// Assign walks from e outward, overwriting the first scope that already
// defines name. It is non-creating: assigning to a name no scope has
// defined is a runtime error.
func (e *Environment) Assign(tok token.Token, v value.Value) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[tok.Lexeme]; ok {
			env.values[tok.Lexeme] = v
			if env.declaredOnly != nil {
				delete(env.declaredOnly, tok.Lexeme)
			}
			return
		}
	}
	panic(value.RuntimeError{Token: tok, Message: "Undefined variable '" + tok.Lexeme + "'."})
}

// Get walks from e outward and returns the first binding found. By
// default a defined-but-uninitialized `var` binding reads as value.Nil
// (spec.md §3/§9's nil-placeholder semantics); when strict is true,
// reading such a binding before its first assignment is a runtime error
// instead (Config.StrictUninitialized). Looking up a name no scope has
// ever defined is always a runtime error.
func (e *Environment) Get(tok token.Token, strict bool) value.Value {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[tok.Lexeme]; ok {
			if strict && env.declaredOnly != nil && env.declaredOnly[tok.Lexeme] {
				panic(value.RuntimeError{Token: tok, Message: "Variable '" + tok.Lexeme + "' used before assignment."})
			}
			return v
		}
	}
	panic(value.RuntimeError{Token: tok, Message: "Undefined variable '" + tok.Lexeme + "'."})
}

// IsGlobal reports whether e has no parent.
func (e *Environment) IsGlobal() bool { return e.parent == nil }

// Parent returns e's enclosing scope, or nil at the global scope.
func (e *Environment) Parent() *Environment { return e.parent }

// String renders the scope's own bindings (not its ancestors') in a
// deterministic order, as a debug dump of the scope; golang.org/x/exp
// maps.Keys plus a sort gives deterministic iteration over the otherwise
// unordered map without hand-rolling a key-collection loop.
func (e *Environment) String() string {
	keys := maps.Keys(e.values)
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + value.Stringify(e.values[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
