package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boop-lang/boop/internal/interp"
	"github.com/boop-lang/boop/internal/parser"
	"github.com/boop-lang/boop/internal/reporter"
	"github.com/boop-lang/boop/internal/scanner"
)

// runOK scans, parses, and runs src with the default Config, requiring a
// clean compile and returning stdout.
func runOK(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	toks := scanner.New([]byte(src), rep).Scan()
	prog := parser.New(toks, rep).Parse()
	require.False(t, rep.HasError(), "unexpected scan/parse errors: %v", rep.Records())
	interp.New(rep, interp.Config{}).Run(prog)
	return buf.String()
}

// runWithConfig is like runOK but lets the caller supply a Config, for
// cases exercising Config-gated behavior.
func runWithConfig(t *testing.T, cfg interp.Config, src string) (string, *reporter.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	rep := reporter.New(&buf)
	toks := scanner.New([]byte(src), rep).Scan()
	prog := parser.New(toks, rep).Parse()
	require.False(t, rep.HasError())
	interp.New(rep, cfg).Run(prog)
	rep.Flush()
	return buf.String(), rep
}

func TestArithmeticAndPrecedence(t *testing.T) {
	assert.Equal(t, "7\n", runOK(t, "print 1 + 2 * 3;"))
}

func TestStringConcatenationWithNumericStringification(t *testing.T) {
	assert.Equal(t, "a1\n", runOK(t, `print "a" + 1;`))
}

func TestTernaryAndComma(t *testing.T) {
	assert.Equal(t, "yes\n", runOK(t, `print true ? "yes" : "no";`))
	assert.Equal(t, "2\n", runOK(t, "print (1, 2);"))
}

func TestPostfixIncrement(t *testing.T) {
	assert.Equal(t, "1\n2\n", runOK(t, "var x = 1; print x++; print x;"))
}

func TestPrefixIncrementDoesNotWriteBack(t *testing.T) {
	assert.Equal(t, "2\n1\n", runOK(t, "var x = 1; print ++x; print x;"))
}

func TestWhileLoop(t *testing.T) {
	assert.Equal(t, "0\n1\n2\n", runOK(t, "var i = 0; while (i < 3) { print i; i = i + 1; }"))
}

func TestForLoop(t *testing.T) {
	assert.Equal(t, "0\n1\n2\n", runOK(t, "for (var i = 0; i < 3; i = i + 1) print i;"))
}

func TestRecursiveFunction(t *testing.T) {
	assert.Equal(t, "120\n", runOK(t, "fun f(n){ if (n<=1) return 1; return n*f(n-1);} print f(5);"))
}

func TestClosureCapturesByReference(t *testing.T) {
	src := "fun make(){ var x=0; fun inc(){ x = x+1; return x;} return inc;} var c = make(); print c(); print c();"
	assert.Equal(t, "1\n2\n", runOK(t, src))
}

func TestClassesAndMethods(t *testing.T) {
	assert.Equal(t, "hi\n", runOK(t, `class A { greet(){ print "hi"; } } A().greet();`))
}

func TestSingleInheritanceAndSuper(t *testing.T) {
	src := `class A{speak(){print "A";}} class B<A{speak(){super.speak(); print "B";}} B().speak();`
	assert.Equal(t, "A\nB\n", runOK(t, src))
}

func TestInitializerAlwaysReturnsInstance(t *testing.T) {
	src := `class Point { init(x) { this.x = x; } } var p = Point(3); print p.x;`
	assert.Equal(t, "3\n", runOK(t, src))
}

func TestClockBuiltinIsDefined(t *testing.T) {
	assert.NotPanics(t, func() { runOK(t, "print clock();") })
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	out, rep := runWithConfig(t, interp.Config{}, "print 1 / 0;")
	assert.True(t, rep.HasError())
	assert.Contains(t, out, "Division by zero")
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, rep := runWithConfig(t, interp.Config{}, "fun f(a, b) { return a + b; } f(1);")
	assert.True(t, rep.HasError())
}

func TestReadingUndefinedVariableIsRuntimeError(t *testing.T) {
	_, rep := runWithConfig(t, interp.Config{}, "print undefinedVar;")
	assert.True(t, rep.HasError())
}

func TestClassInheritingFromNonClassIsRuntimeError(t *testing.T) {
	_, rep := runWithConfig(t, interp.Config{}, "var NotAClass = 1; class B < NotAClass {}")
	assert.True(t, rep.HasError())
}

func TestStrictUninitializedRejectsReadBeforeAssignment(t *testing.T) {
	_, rep := runWithConfig(t, interp.Config{StrictUninitialized: true}, "var x; print x;")
	assert.True(t, rep.HasError())
}

func TestNilPlaceholderByDefault(t *testing.T) {
	assert.Equal(t, "nil\n", runOK(t, "var x; print x;"))
}

func TestTopLevelReturnEndsExecution(t *testing.T) {
	out := runOK(t, `print "before"; return; print "after";`)
	assert.Equal(t, "before\n", out)
}

func TestRuntimeErrorBudgetStopsAfterMax(t *testing.T) {
	var src bytes.Buffer
	for i := 0; i < 25; i++ {
		src.WriteString("print 1/0;\n")
	}
	_, rep := runWithConfig(t, interp.Config{MaxRuntimeErr: 3}, src.String())
	// 3 recovered errors plus the "too many runtime errors" diagnostic.
	assert.Len(t, rep.Records(), 4)
}
