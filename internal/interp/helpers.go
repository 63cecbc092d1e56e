package interp

import (
	"github.com/boop-lang/boop/internal/token"
	"github.com/boop-lang/boop/internal/value"
)

// rte panics a value.RuntimeError anchored at tok, to be recovered at the
// nearest guarded statement boundary (interp.go's runGuarded).
func rte(tok token.Token, msg string) {
	panic(value.RuntimeError{Token: tok, Message: msg})
}

func asNumber(tok token.Token, v value.Value) float64 {
	n, ok := v.(value.Number)
	if !ok {
		rte(tok, "Operand must be a number.")
	}
	return float64(n)
}

func asNumbers(tok token.Token, left, right value.Value) (float64, float64) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	if !lok || !rok {
		rte(tok, "Operands must be numbers.")
	}
	return float64(l), float64(r)
}
