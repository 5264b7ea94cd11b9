package interp

import (
	"bytes"
	"strings"
	"testing"
)

// eval parses src as a single statement list and runs it against a fresh
// Interpreter, returning the value of a trailing expression statement (or
// nil) plus anything written to գրէ.
func eval(t *testing.T, src string) (Value, string, error) {
	t.Helper()
	stmts, diags := ParseLine(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics for %q: %v", src, diags)
	}
	var out bytes.Buffer
	it := New(&out)
	v, err := it.EvalStatements(stmts)
	return v, out.String(), err
}

func TestEval_Arithmetic(t *testing.T) {
	cases := map[string]float64{
		"1 + 2":     3,
		"5 - 2":     3,
		"3 * 4":     12,
		"10 / 4":    2.5,
		"10 % 3":    1,
		"2 + 3 * 4": 14,
	}
	for src, want := range cases {
		v, _, err := eval(t, src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		n, ok := v.(NumberValue)
		if !ok || n.Value != want {
			t.Fatalf("%q: want %v, got %#v", src, want, v)
		}
	}
}

func TestEval_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, _, err := eval(t, "1 / 0")
	if err == nil {
		t.Fatalf("expected a runtime error for division by zero")
	}
}

func TestEval_StringConcatenationWithNonStringCoercesToDisplayForm(t *testing.T) {
	v, _, err := eval(t, `"Համարը՝ " + 5`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := v.(StringValue)
	if !ok || s.Value != "Համարը՝ 5" {
		t.Fatalf("want \"Համարը՝ 5\", got %#v", v)
	}
}

func TestEval_NumberPlusNumberStaysNumber(t *testing.T) {
	v, _, err := eval(t, "1 + 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(NumberValue); !ok {
		t.Fatalf("want a number, got %#v", v)
	}
}

func TestEval_EqualityAcrossTypesIsAlwaysFalse(t *testing.T) {
	v, _, err := eval(t, `1 == "1"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := v.(BooleanValue); !ok || b.Value {
		t.Fatalf("want false, got %#v", v)
	}
}

func TestEval_TruthinessTable(t *testing.T) {
	truthy := []string{"այո", "1", `"ա"`}
	falsy := []string{"ոչ", "0", `""`, "հեչ"}

	for _, src := range truthy {
		v, _, err := eval(t, src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if !v.Truthy() {
			t.Fatalf("%q: want truthy, got %#v", src, v)
		}
	}
	for _, src := range falsy {
		v, _, err := eval(t, src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if v.Truthy() {
			t.Fatalf("%q: want falsy, got %#v", src, v)
		}
	}
}

func TestEval_AndShortCircuitsWithoutEvaluatingRight(t *testing.T) {
	_, output, err := eval(t, `ոչ և գրէ("երբեք")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "" {
		t.Fatalf("want no output, RHS must not be evaluated, got %q", output)
	}
}

func TestEval_OrShortCircuitsWithoutEvaluatingRight(t *testing.T) {
	_, output, err := eval(t, `այո կամ գրէ("երբեք")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "" {
		t.Fatalf("want no output, RHS must not be evaluated, got %q", output)
	}
}

func TestEval_IfElseTakesTheRightBranch(t *testing.T) {
	_, output, err := eval(t, `եթե այո { գրէ("ապա") } հպ { գրէ("այլապես") }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(output) != "ապա" {
		t.Fatalf("want then branch output, got %q", output)
	}

	_, output, err = eval(t, `եթե ոչ { գրէ("ապա") } հպ { գրէ("այլապես") }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(output) != "այլապես" {
		t.Fatalf("want else branch output, got %q", output)
	}
}

func TestEval_WhileLoop(t *testing.T) {
	src := `ի = 0
մինչև ի < 3 {
	գրէ(ի)
	ի = ի + 1
}`
	_, output, err := eval(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0\n1\n2\n"
	if output != want {
		t.Fatalf("want %q, got %q", want, output)
	}
}

func TestEval_FunctionCallAndReturn(t *testing.T) {
	src := `գործ քառակուսի(ա) { տուր ա * ա }
գրէ(քառակուսի(4))`
	_, output, err := eval(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(output) != "16" {
		t.Fatalf("want 16, got %q", output)
	}
}

func TestEval_FunctionWithNoReturnYieldsNull(t *testing.T) {
	src := `գործ ոչինչ() { ա = 1 }
ծ = ոչինչ()
գրէ(ծ)`
	_, output, err := eval(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(output) != "հեչ" {
		t.Fatalf("want հեչ, got %q", output)
	}
}

func TestEval_ArityMismatchIsRuntimeError(t *testing.T) {
	src := `գործ ֆ(ա, բ) { տուր ա }
ֆ(1)`
	_, _, err := eval(t, src)
	if err == nil {
		t.Fatalf("expected an arity-mismatch runtime error")
	}
}

func TestEval_CallingNonFunctionIsRuntimeError(t *testing.T) {
	src := `ա = 5
ա()`
	_, _, err := eval(t, src)
	if err == nil {
		t.Fatalf("expected a runtime error calling a non-function")
	}
}

// TestEval_DynamicScopingSeesCallerBindings exercises the resolved Open
// Question: a user function's call frame is parented by the caller's
// current environment, so it can see the caller's locals even though they
// are not in scope where the function was declared.
func TestEval_DynamicScopingSeesCallerBindings(t *testing.T) {
	src := `գործ ասա() { տուր ծածուկ }
գործ փաթեթավորող() {
	ծածուկ = "գաղտնիք"
	տուր ասա()
}
գրէ(փաթեթավորող())`
	_, output, err := eval(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(output) != "գաղտնիք" {
		t.Fatalf("want գաղտնիք via dynamic scoping, got %q", output)
	}
}

// TestEval_AssignmentMutatesOuterBindingAcrossFunctionCall exercises the
// assignment-creates policy end to end: assigning inside a function body to
// a name already bound in the caller's frame mutates it in place.
func TestEval_AssignmentMutatesOuterBindingAcrossFunctionCall(t *testing.T) {
	src := `հաշվիչ = 0
գործ ավելացնել() { հաշվիչ = հաշվիչ + 1 }
ավելացնել()
ավելացնել()
գրէ(հաշվիչ)`
	_, output, err := eval(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(output) != "2" {
		t.Fatalf("want 2, got %q", output)
	}
}

func TestEval_BuiltinWriteJoinsArgsWithSpaces(t *testing.T) {
	_, output, err := eval(t, `գրէ("ա", 1, այո)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(output) != "ա 1 այո" {
		t.Fatalf("want \"ա 1 այո\", got %q", output)
	}
}

func TestEval_BuiltinNumberConvertsStringsAndBooleans(t *testing.T) {
	v, _, err := eval(t, `թիվ("42")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := v.(NumberValue); n.Value != 42 {
		t.Fatalf("want 42, got %v", n.Value)
	}

	v, _, err = eval(t, `թիվ(այո)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := v.(NumberValue); n.Value != 1 {
		t.Fatalf("want 1, got %v", n.Value)
	}
}

func TestEval_BuiltinNumberOnUnparseableStringYieldsZero(t *testing.T) {
	v, _, err := eval(t, `թիվ("ոչ թիվ")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := v.(NumberValue); n.Value != 0 {
		t.Fatalf("want 0, got %v", n.Value)
	}
}

func TestEval_BuiltinStringConvertsNumbersAndNull(t *testing.T) {
	v, _, err := eval(t, `բառ(5)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := v.(StringValue); s.Value != "5" {
		t.Fatalf("want \"5\", got %q", s.Value)
	}

	v, _, err = eval(t, `բառ(հեչ)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := v.(StringValue); s.Value != "" {
		t.Fatalf("want empty string, got %q", s.Value)
	}
}

func TestEval_ReturnOutsideFunctionIsRuntimeError(t *testing.T) {
	_, _, err := eval(t, `տուր 1`)
	if err == nil {
		t.Fatalf("expected a runtime error for տուր at top level")
	}
}

func TestEval_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, _, err := eval(t, `գրէ(բացակա)`)
	if err == nil {
		t.Fatalf("expected a runtime error for an undefined variable")
	}
}
