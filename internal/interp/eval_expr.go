package interp

import (
	"github.com/boop-lang/boop/internal/ast"
	"github.com/boop-lang/boop/internal/token"
	"github.com/boop-lang/boop/internal/value"
)

// evalExpr is the expression half of the two mutually recursive
// evaluation families (spec.md §4.3). Dispatch is a type switch over the
// closed ast.Expr sum rather than a visitor, per the language's design
// notes.
func (it *Interpreter) evalExpr(expr ast.Expr) value.Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return it.evalLiteral(e)
	case *ast.Grouping:
		return it.evalExpr(e.Inner)
	case *ast.Unary:
		return it.evalUnary(e)
	case *ast.Postfix:
		return it.evalPostfix(e)
	case *ast.Binary:
		return it.evalBinary(e)
	case *ast.Logical:
		return it.evalLogical(e)
	case *ast.Conditional:
		if value.IsTruthy(it.evalExpr(e.Cond)) {
			return it.evalExpr(e.Then)
		}
		return it.evalExpr(e.Else)
	case *ast.Variable:
		return it.env.Get(e.Name)
	case *ast.Assignment:
		v := it.evalExpr(e.Value)
		it.env.Assign(e.Name, v)
		return v
	case *ast.Call:
		return it.evalCall(e)
	case *ast.Function:
		return it.evalFunctionExpr(e)
	case *ast.Get:
		return it.evalGet(e)
	case *ast.Set:
		return it.evalSet(e)
	case *ast.This:
		return it.env.Get(e.Keyword)
	case *ast.Super:
		return it.evalSuper(e)
	default:
		rte(token.Token{}, "unreachable expression variant")
		return value.Nil
	}
}

func (it *Interpreter) evalLiteral(e *ast.Literal) value.Value {
	switch e.Token.Kind {
	case token.True:
		return value.Bool(true)
	case token.False:
		return value.Bool(false)
	case token.Nil:
		return value.Nil
	case token.String:
		return value.String(e.Token.Literal.Str)
	case token.Number:
		return value.Number(e.Token.Literal.Number)
	default:
		rte(e.Token, "unreachable literal kind")
		return value.Nil
	}
}

func (it *Interpreter) evalUnary(e *ast.Unary) value.Value {
	switch e.Op.Kind {
	case token.Bang:
		right := it.evalExpr(e.Right)
		return value.Bool(!value.IsTruthy(right))
	case token.Minus:
		n := asNumber(e.Op, it.evalExpr(e.Right))
		return value.Number(-n)
	case token.PlusPlus:
		n := asNumber(e.Op, it.evalExpr(e.Right))
		return value.Number(n + 1)
	case token.MinusMinus:
		n := asNumber(e.Op, it.evalExpr(e.Right))
		return value.Number(n - 1)
	default:
		rte(e.Op, "unreachable unary operator")
		return value.Nil
	}
}

// evalPostfix returns the pre-increment/decrement value and writes the
// updated value back through Assign (spec.md §4.3). The parser already
// restricts the operand to *ast.Variable; this is a defensive re-check in
// case a Postfix node is ever constructed another way.
func (it *Interpreter) evalPostfix(e *ast.Postfix) value.Value {
	v, ok := e.Left.(*ast.Variable)
	if !ok {
		rte(e.Op, "Invalid postfix target; only a variable may be incremented or decremented.")
	}
	old := asNumber(e.Op, it.env.Get(v.Name))
	var updated float64
	switch e.Op.Kind {
	case token.PlusPlus:
		updated = old + 1
	case token.MinusMinus:
		updated = old - 1
	default:
		rte(e.Op, "unreachable postfix operator")
	}
	it.env.Assign(v.Name, value.Number(updated))
	return value.Number(old)
}

func (it *Interpreter) evalBinary(e *ast.Binary) value.Value {
	left := it.evalExpr(e.Left)

	// The comma operator evaluates left purely for effect.
	if e.Op.Kind == token.Comma {
		return it.evalExpr(e.Right)
	}

	right := it.evalExpr(e.Right)

	switch e.Op.Kind {
	case token.Plus:
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs
			}
		}
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn
			}
		}
		// Mixed string/number concatenation, matching the teacher's
		// "numeric stringification" allowance in spec.md's Binary `+` row.
		if _, lok := left.(value.String); lok {
			return left.(value.String) + value.String(value.Stringify(right))
		}
		if _, rok := right.(value.String); rok {
			return value.String(value.Stringify(left)) + right.(value.String)
		}
		rte(e.Op, "Operands must be two numbers or two strings.")
	case token.Minus:
		l, r := asNumbers(e.Op, left, right)
		return value.Number(l - r)
	case token.Star:
		l, r := asNumbers(e.Op, left, right)
		return value.Number(l * r)
	case token.Slash:
		l, r := asNumbers(e.Op, left, right)
		if r == 0 {
			rte(e.Op, "Division by zero.")
		}
		return value.Number(l / r)
	case token.Greater:
		l, r := asNumbers(e.Op, left, right)
		return value.Bool(l > r)
	case token.GreaterEqual:
		l, r := asNumbers(e.Op, left, right)
		return value.Bool(l >= r)
	case token.Less:
		l, r := asNumbers(e.Op, left, right)
		return value.Bool(l < r)
	case token.LessEqual:
		l, r := asNumbers(e.Op, left, right)
		return value.Bool(l <= r)
	case token.EqualEqual:
		return value.Bool(value.Equal(left, right))
	case token.BangEqual:
		return value.Bool(!value.Equal(left, right))
	}
	rte(e.Op, "unreachable binary operator")
	return value.Nil
}

func (it *Interpreter) evalLogical(e *ast.Logical) value.Value {
	left := it.evalExpr(e.Left)
	if e.Op.Kind == token.Or {
		if value.IsTruthy(left) {
			return left
		}
		return it.evalExpr(e.Right)
	}
	// "and"
	if !value.IsTruthy(left) {
		return left
	}
	return it.evalExpr(e.Right)
}

// evalFunctionExpr captures the current environment as the closure, then
// pushes a fresh scope so later same-scope definitions are not visible
// to it (spec.md §4.3's Function row).
func (it *Interpreter) evalFunctionExpr(e *ast.Function) value.Value {
	closure := it.env.CurrentEnv()
	fn := &value.Function{Decl: e, Name: e.Name, Closure: closure}
	it.env.CreateNewEnv("fun-literal")
	return fn
}

func (it *Interpreter) evalGet(e *ast.Get) value.Value {
	obj := it.evalExpr(e.Object)
	inst, ok := obj.(*value.Instance)
	if !ok {
		rte(e.Name, "Only instances have properties.")
	}
	if v, ok := inst.GetField(e.Name.Lexeme); ok {
		return v
	}
	method := inst.Class.FindMethod(e.Name.Lexeme)
	if method == nil {
		rte(e.Name, "Undefined property '"+e.Name.Lexeme+"'.")
	}
	return method.Bind(inst)
}

func (it *Interpreter) evalSet(e *ast.Set) value.Value {
	obj := it.evalExpr(e.Object)
	inst, ok := obj.(*value.Instance)
	if !ok {
		rte(e.Name, "Only instances have fields.")
	}
	v := it.evalExpr(e.Value)
	inst.Set(e.Name.Lexeme, v)
	return v
}

func (it *Interpreter) evalSuper(e *ast.Super) value.Value {
	superVal := it.env.Get(e.Keyword)
	super, ok := superVal.(*value.Class)
	if !ok {
		rte(e.Keyword, "'super' did not resolve to a class.")
	}
	method := super.FindMethod(e.Method.Lexeme)
	if method == nil {
		rte(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	thisTok := token.Token{Kind: token.This, Lexeme: "this", Line: e.Keyword.Line}
	inst, ok := it.env.Get(thisTok).(*value.Instance)
	if !ok {
		rte(e.Keyword, "'this' did not resolve to an instance.")
	}
	return method.Bind(inst)
}
