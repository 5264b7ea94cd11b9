package interp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// registerBuiltins preloads the root environment with Soorj's three
// built-in functions (spec §6). Built-ins receive an already-evaluated
// argument list and return a Value directly, without manipulating
// environments (spec §4.3).
func registerBuiltins(env *Environment, out io.Writer) {
	env.Define("գրէ", &FunctionValue{Name: "գրէ", Builtin: builtinWrite(out)})
	env.Define("թիվ", &FunctionValue{Name: "թիվ", Builtin: builtinNumber})
	env.Define("բառ", &FunctionValue{Name: "բառ", Builtin: builtinString})
}

// builtinWrite implements գրէ: writes the display form of each argument
// joined by single spaces, followed by a newline. Zero arguments writes
// just a newline.
func builtinWrite(out io.Writer) func([]Value) (Value, error) {
	return func(args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.Display()
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return Null, nil
	}
}

// builtinNumber implements թիվ: converts its single argument to a number.
// Unparseable strings convert to 0 rather than raising an error.
func builtinNumber(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("թիվ expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case NumberValue:
		return v, nil
	case StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return NumberValue{Value: 0}, nil
		}
		return NumberValue{Value: f}, nil
	case BooleanValue:
		if v.Value {
			return NumberValue{Value: 1}, nil
		}
		return NumberValue{Value: 0}, nil
	default:
		return NumberValue{Value: 0}, nil
	}
}

// builtinString implements բառ: converts its single argument to a string.
func builtinString(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("բառ expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case StringValue:
		return v, nil
	case NullValue:
		return StringValue{Value: ""}, nil
	default:
		return StringValue{Value: v.Display()}, nil
	}
}
