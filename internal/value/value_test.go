package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boop-lang/boop/internal/value"
)

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"nil is falsy", value.Nil, false},
		{"false is falsy", value.Bool(false), false},
		{"true is truthy", value.Bool(true), true},
		{"zero is truthy", value.Number(0), true},
		{"empty string is truthy", value.String(""), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, value.IsTruthy(c.v))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, value.Equal(value.Nil, value.Nil))
	assert.True(t, value.Equal(value.Number(1), value.Number(1)))
	assert.False(t, value.Equal(value.Number(1), value.String("1")))
	assert.True(t, value.Equal(value.String("a"), value.String("a")))
	assert.False(t, value.Equal(value.Bool(true), value.Bool(false)))
}

func TestEqualInstanceIsByIdentity(t *testing.T) {
	class := &value.Class{Name: "A", Methods: map[string]*value.Function{}}
	a := value.NewInstance(class)
	b := value.NewInstance(class)
	assert.True(t, value.Equal(a, a))
	assert.False(t, value.Equal(a, b))
}

func TestStringifyFormatsNumbersWithoutTrailingZero(t *testing.T) {
	assert.Equal(t, "3", value.Stringify(value.Number(3)))
	assert.Equal(t, "3.5", value.Stringify(value.Number(3.5)))
	assert.Equal(t, "nil", value.Stringify(value.Nil))
	assert.Equal(t, "true", value.Stringify(value.Bool(true)))
	assert.Equal(t, "hi", value.Stringify(value.String("hi")))
}

func TestClassFindMethodWalksSuperclassChain(t *testing.T) {
	base := &value.Class{Name: "Base", Methods: map[string]*value.Function{
		"greet": {Name: "greet"},
	}}
	derived := &value.Class{Name: "Derived", Superclass: base, Methods: map[string]*value.Function{}}

	assert.NotNil(t, derived.FindMethod("greet"))
	assert.Nil(t, derived.FindMethod("missing"))
}

func TestInstanceGetFieldIgnoresMethods(t *testing.T) {
	class := &value.Class{Name: "A", Methods: map[string]*value.Function{"x": {Name: "x"}}}
	inst := value.NewInstance(class)
	inst.Set("field", value.Number(42))
	v, ok := inst.GetField("field")
	assert.True(t, ok)
	assert.Equal(t, value.Number(42), v)

	_, ok = inst.GetField("x")
	assert.False(t, ok)
}
