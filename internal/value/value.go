// Package value defines Boop's runtime value model: a tagged union over
// primitives, functions, classes, and instances, shared by the
// environment and the evaluator.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boop-lang/boop/internal/token"
)

// Value is any runtime Boop value. The concrete types below form the
// closed set: String, Number, Bool, Nil, *Function, *Builtin, *Class,
// *Instance.
type Value interface {
	valueNode()
}

// String is a Boop string value.
type String string

func (String) valueNode() {}

// Number is a Boop number value (always float64, per spec.md's data
// model).
type Number float64

func (Number) valueNode() {}

// Bool is a Boop boolean value.
type Bool bool

func (Bool) valueNode() {}

// NilValue is the singleton nil value.
type NilValue struct{}

func (NilValue) valueNode() {}

// Nil is the single instance of NilValue; nil carries no state so every
// nil comparison is trivially reflexive.
var Nil = NilValue{}

// Scope is the narrow interface the value package needs from a lexical
// scope so that Function and Builtin closures can reference one without
// this package importing internal/environment (which itself must import
// this package for the Value type it stores — this interface is what
// breaks that cycle). Lookup and assignment happen through the owning
// environment.Manager instead, which works in terms of the concrete
// *environment.Environment it hands out as a Scope's dynamic type.
type Scope interface {
	Define(name string, v Value)
	NewChild() Scope
}

// RuntimeError is panicked by scope lookups/assignments and by the
// evaluator on type errors, division by zero, arity mismatches, and the
// like. It is recovered at the top-level statement boundary
// (interp's runGuarded, or RunExpression for a single expression; spec.md
// §4.3/§7), never allowed to unwind past the top-level statement loop
// silently — return values are surfaced through ordinary Go return values,
// not this channel (spec.md §9, "Non-local exits").
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}

// IsTruthy implements spec.md §4.3: nil and false are falsy, everything
// else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case NilValue:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// Equal implements the structural/identity equality rules from spec.md
// §4.3: same-tag comparison per type; functions/classes by declared name;
// instances by identity; different tags are never equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *Function:
		y, ok := b.(*Function)
		return ok && x.Name == y.Name
	case *Builtin:
		y, ok := b.(*Builtin)
		return ok && x.Name == y.Name
	case *Class:
		y, ok := b.(*Class)
		return ok && x.Name == y.Name
	case *Instance:
		y, ok := b.(*Instance)
		return ok && x == y
	default:
		return false
	}
}

// Stringify renders a value the way the `print` statement does (spec.md
// §6): shortest decimal for numbers, `true`/`false`/`nil`, raw text for
// strings, `<fn NAME>` for functions, `<native fn NAME>` for builtins, the class name for
// classes, and `Instance of CLASSNAME` for instances.
func Stringify(v Value) string {
	switch t := v.(type) {
	case NilValue:
		return "nil"
	case Bool:
		if t {
			return "true"
		}
		return "false"
	case Number:
		return formatNumber(float64(t))
	case String:
		return string(t)
	case *Function:
		return fmt.Sprintf("<fn %s>", t.Name)
	case *Builtin:
		return fmt.Sprintf("<native fn %s>", t.Name)
	case *Class:
		return t.Name
	case *Instance:
		return fmt.Sprintf("Instance of %s", t.Class.Name)
	default:
		return "<unknown>"
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	return strings.TrimSuffix(s, ".")
}
