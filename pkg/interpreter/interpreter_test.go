package interpreter

import (
	"bytes"
	"strings"
	"testing"
)

func runCapture(t *testing.T, source string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Output = &buf
	err := Run(source, opts)
	return buf.String(), err
}

func TestScenarioFactorial(t *testing.T) {
	out, err := runCapture(t, `
fn f(n) { if n <= 1 { return 1 } return n * f(n-1) }
print(f(5))
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "120" {
		t.Fatalf("got %q, want 120", out)
	}
}

func TestScenarioForRangeAndPrint(t *testing.T) {
	out, err := runCapture(t, `for i in 0..3 { print(i) }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestScenarioAliasedArrayMutation(t *testing.T) {
	out, err := runCapture(t, `
let a = [1,2,3]
let b = a
a[0] = 9
print(b)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "[9, 2, 3]" {
		t.Fatalf("got %q", out)
	}
}

func TestScenarioShortCircuitAnd(t *testing.T) {
	out, err := runCapture(t, `
fn boom() { return 1/0 }
if false and boom() { print("x") } else { print("ok") }
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "ok" {
		t.Fatalf("got %q", out)
	}
}

func TestScenarioNoLexicalCapture(t *testing.T) {
	_, err := runCapture(t, `
fn outer() {
  let x = 10
  fn inner() { return x }
  return inner()
}
outer()
`)
	if err == nil {
		t.Fatalf("expected a name error, got nil")
	}
	var nameErr *NameError
	if !asNameError(err, &nameErr) {
		t.Fatalf("expected NameError, got %v", err)
	}
}

func TestScenarioStringPlusNumberIsTypeError(t *testing.T) {
	_, err := runCapture(t, `print("n=" + 42)`)
	if err == nil {
		t.Fatalf("expected a type error, got nil")
	}
}

func TestDivisionByZeroFails(t *testing.T) {
	_, err := runCapture(t, `print(1 / 0)`)
	if err == nil {
		t.Fatalf("expected an arithmetic error, got nil")
	}
}

func TestModuloByZeroFails(t *testing.T) {
	_, err := runCapture(t, `print(1 % 0)`)
	if err == nil {
		t.Fatalf("expected an arithmetic error, got nil")
	}
}

func TestLenOfArrayAndString(t *testing.T) {
	out, err := runCapture(t, `
print(len([1,2,3]))
print(len("hello"))
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n5\n" {
		t.Fatalf("got %q", out)
	}
}

func TestArrayConcatLengthLaw(t *testing.T) {
	out, err := runCapture(t, `
let a = [1,2]
let b = [3,4,5]
let c = a + b
print(len(c))
print(c[0])
print(c[1])
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n1\n2\n" {
		t.Fatalf("got %q", out)
	}
}

func TestStringConcatLengthLaw(t *testing.T) {
	out, err := runCapture(t, `print(len("ab" + "cde"))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "5" {
		t.Fatalf("got %q", out)
	}
}

func TestNotNotIdentity(t *testing.T) {
	out, err := runCapture(t, `
print(not not true)
print(not not false)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\nfalse\n" {
		t.Fatalf("got %q", out)
	}
}

func TestForLoopRunsExactCountAndBindsLastValue(t *testing.T) {
	out, err := runCapture(t, `
let count = 0
for i in 2..5 { count = count + 1 }
print(count)
print(i)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n4\n" {
		t.Fatalf("got %q", out)
	}
}

func TestForLoopEmptyRangeRunsZeroTimes(t *testing.T) {
	out, err := runCapture(t, `
fn side() { print("ran") }
for i in 5..5 { side() }
print("done")
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "done\n" {
		t.Fatalf("expected the loop body to never run, got %q", out)
	}
}

func TestFunctionsAndArraysNeverEqual(t *testing.T) {
	out, err := runCapture(t, `
fn f() {}
let a = [1]
let b = [1]
print(f == f)
print(a == a)
print(a == b)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "false\nfalse\nfalse\n" {
		t.Fatalf("got %q", out)
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	_, err := runCapture(t, `if 1 { print("x") }`)
	if err == nil {
		t.Fatalf("expected a type error for a non-bool condition")
	}
}

func TestReturnOutsideFunctionIsControlFlowError(t *testing.T) {
	_, err := runCapture(t, `return 1`)
	if err == nil {
		t.Fatalf("expected a control-flow error")
	}
}

func TestArityMismatchFails(t *testing.T) {
	_, err := runCapture(t, `
fn f(a, b) { return a + b }
f(1)
`)
	if err == nil {
		t.Fatalf("expected an arity error")
	}
}

func TestOutOfRangeIndexFails(t *testing.T) {
	_, err := runCapture(t, `
let a = [1,2,3]
print(a[5])
`)
	if err == nil {
		t.Fatalf("expected an index error")
	}
}

func TestStringIndexingIsTypeError(t *testing.T) {
	_, err := runCapture(t, `print("abc"[0])`)
	if err == nil {
		t.Fatalf("expected string indexing to fail")
	}
}

func TestPrintFormatsIntegralNumberWithoutDecimalPoint(t *testing.T) {
	out, err := runCapture(t, `print(103)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "103" {
		t.Fatalf("got %q", out)
	}
}

func TestPrintFormatsFractionalNumberWithDecimalPoint(t *testing.T) {
	out, err := runCapture(t, `print(1.5)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "1.5" {
		t.Fatalf("got %q", out)
	}
}

// asNameError is a small helper so tests can assert on the concrete error
// kind through the %w-wrapping chain Run applies.
func asNameError(err error, target **NameError) bool {
	for err != nil {
		if ne, ok := err.(*NameError); ok {
			*target = ne
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
