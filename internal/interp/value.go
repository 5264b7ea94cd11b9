package interp

import (
	"strconv"

	"github.com/soorj-lang/soorj/internal/ast"
)

// Value is the runtime representation of every Soorj value: a tagged union
// over five variants. Dispatch is always by Type(), never by a Go type
// switch on concrete structs outside this package — that keeps arithmetic
// and comparison logic centralized in interpreter.go.
type Value interface {
	// Type returns the value's tag: "null", "boolean", "number", "string",
	// or "function".
	Type() string
	// String is a debug rendering; it is deliberately distinct from Display, which is the host-visible form
	// the language spec defines for գրէ and string concatenation.
	String() string
	// Display returns the value's canonical string rendering, per the
	// language spec's "display form" (§4.3).
	Display() string
	// Truthy returns the value's boolean projection, per the language
	// spec's truthiness table (§4.3).
	Truthy() bool
}

// NullValue is the sole հեչ value.
type NullValue struct{}

func (NullValue) Type() string    { return "null" }
func (NullValue) String() string  { return "հեչ" }
func (NullValue) Display() string { return "հեչ" }
func (NullValue) Truthy() bool    { return false }

// Null is the shared հեչ instance; Value equality for null compares by type
// alone, so sharing one instance is an optimization, not a requirement.
var Null = NullValue{}

// BooleanValue is այո/ոչ.
type BooleanValue struct {
	Value bool
}

func (b BooleanValue) Type() string   { return "boolean" }
func (b BooleanValue) Truthy() bool   { return b.Value }
func (b BooleanValue) String() string { return b.Display() }
func (b BooleanValue) Display() string {
	if b.Value {
		return "այո"
	}
	return "ոչ"
}

// NativeBool is a convenience constructor used throughout the evaluator.
func NativeBool(v bool) Value { return BooleanValue{Value: v} }

// NumberValue is an IEEE-754 double.
type NumberValue struct {
	Value float64
}

func (n NumberValue) Type() string   { return "number" }
func (n NumberValue) Truthy() bool   { return n.Value != 0 }
func (n NumberValue) String() string { return n.Display() }
func (n NumberValue) Display() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringValue is a Unicode text value.
type StringValue struct {
	Value string
}

func (s StringValue) Type() string    { return "string" }
func (s StringValue) Truthy() bool    { return len(s.Value) > 0 }
func (s StringValue) String() string  { return "\"" + s.Value + "\"" }
func (s StringValue) Display() string { return s.Value }

// FunctionValue is a callable: either a user-defined function or a native
// built-in. A user-defined function has IsUser set with Parameters/Body; a
// built-in has Builtin set instead.
type FunctionValue struct {
	Name string

	// User-defined function fields (ast.FunctionDecl carries Name/Parameters/
	// Body already; they're copied here for a single self-contained
	// callable value).
	Parameters []string
	Body       ast.Block
	IsUser     bool

	// Builtin is set instead of Parameters/Body for native functions; it
	// receives already-evaluated arguments and returns a Value directly
	// (spec §4.3's call protocol step for built-ins).
	Builtin func(args []Value) (Value, error)
}

func (f *FunctionValue) Type() string    { return "function" }
func (f *FunctionValue) Truthy() bool    { return true }
func (f *FunctionValue) String() string  { return "<function " + f.Name + ">" }
func (f *FunctionValue) Display() string { return f.String() }

// valuesEqual implements structural equality without type coercion (spec
// §4.3): values of different tags are unequal. Number equality follows
// IEEE-754 double equality, under which -0 == 0.
func valuesEqual(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case NullValue:
		return true
	case BooleanValue:
		return av.Value == b.(BooleanValue).Value
	case NumberValue:
		return av.Value == b.(NumberValue).Value
	case StringValue:
		return av.Value == b.(StringValue).Value
	case *FunctionValue:
		return av == b.(*FunctionValue)
	default:
		return false
	}
}
