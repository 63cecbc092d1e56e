package value

import "github.com/boop-lang/boop/internal/ast"

// Function is a user-defined Boop function or method. It holds a
// reference to its declaring ast.Function node (the program AST outlives
// every derived runtime artifact, so a bare reference is safe without an
// ownership scheme of its own) plus the environment captured at
// definition time.
type Function struct {
	Decl          *ast.Function
	Name          string
	Closure       Scope
	IsMethod      bool
	IsInitializer bool
}

func (*Function) valueNode() {}

// Bind produces a new Function identical to f but whose closure is a
// fresh child of f's closure with `this` bound to instance. This is the
// only mechanism by which `this` becomes visible inside a method
// (spec.md §4.5); f itself is left unmodified.
func (f *Function) Bind(instance *Instance) *Function {
	env := f.Closure.NewChild()
	env.Define("this", instance)
	return &Function{
		Decl:          f.Decl,
		Name:          f.Name,
		Closure:       env,
		IsMethod:      f.IsMethod,
		IsInitializer: f.IsInitializer,
	}
}

// Arity is the function's declared parameter count.
func (f *Function) Arity() int { return len(f.Decl.Params) }

// Builtin is a native, fixed-arity callable such as clock().
type Builtin struct {
	Name    string
	Closure Scope
	Call    func(args []Value) Value
	Params  int
}

func (*Builtin) valueNode() {}

// Arity returns the builtin's declared parameter count.
func (b *Builtin) Arity() int { return b.Params }
