// Package interp implements the tree-walking evaluator: it executes an
// *ast.Program (or a standalone statement list, for the REPL) against an
// Environment chain, producing side effects through the built-ins and the
// configured output writer.
package interp

import (
	"fmt"
	"io"
	"math"

	"github.com/soorj-lang/soorj/internal/ast"
	"github.com/soorj-lang/soorj/internal/lexer"
)

// RuntimeError is raised for an undefined variable, an arity mismatch, a
// type mismatch in an operator, division by zero, a call of a non-function,
// or an unknown operator — the six runtime-error situations named in the
// language spec's §7. It carries the position where the error was detected.
type RuntimeError struct {
	Message string
	Pos     lexer.Position
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(pos lexer.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// returnSignal is the explicit "step result" the language spec's design
// notes call for (§9): rather than using a Go panic/recover as a stand-in
// for the source interpreter's exception-based unwind, every statement
// execution path threads an optional returnSignal up to the nearest
// enclosing function call frame, where callFunction consumes it.
type returnSignal struct {
	value Value
}

// Interpreter walks an AST against a persistent Environment. A single
// Interpreter is shared across every line of a REPL session; a fresh one is
// created per RunSource call for one-shot file execution. Neither entry
// point assumes it is the only Interpreter in the process (spec §9's
// "singleton state" note).
type Interpreter struct {
	env *Environment
	out io.Writer
}

// New creates an Interpreter with a fresh root environment preloaded with
// the three built-ins, writing գրէ output to out.
func New(out io.Writer) *Interpreter {
	env := NewEnvironment()
	registerBuiltins(env, out)
	return &Interpreter{env: env, out: out}
}

// Env exposes the interpreter's current environment, mostly so a driver can
// inspect bindings after running a script (e.g. for a future debugger).
func (i *Interpreter) Env() *Environment { return i.env }

// Eval executes every top-level statement of program in order against the
// interpreter's environment. A տուր reaching the top level is a malformed
// program (spec §5) and surfaces as a RuntimeError rather than silently
// terminating.
func (i *Interpreter) Eval(program *ast.Program) error {
	sig, err := i.execBlock(program.Statements)
	if err != nil {
		return err
	}
	if sig != nil {
		return newRuntimeError(program.Pos(), "տուր used outside of a function")
	}
	return nil
}

// EvalStatements executes stmts against the interpreter's persistent
// environment and returns the value of the final statement if it was an
// expression statement (used by the REPL to echo a single-expression
// line), or nil otherwise. A տուր reaching this level is likewise a
// RuntimeError.
func (i *Interpreter) EvalStatements(stmts []ast.Statement) (Value, error) {
	var last Value
	for _, stmt := range stmts {
		if es, ok := stmt.(*ast.ExpressionStmt); ok {
			v, err := i.evalExpr(es.Expression)
			if err != nil {
				return nil, err
			}
			last = v
			continue
		}

		last = nil
		sig, err := i.execStatement(stmt)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return nil, newRuntimeError(stmt.Pos(), "տուր used outside of a function")
		}
	}
	return last, nil
}

// execBlock runs stmts in order, stopping and propagating as soon as a
// return-signal is raised. Blocks do not open a new environment scope
// (spec §4.3): if/while bodies execute in the environment already current
// when the block starts.
func (i *Interpreter) execBlock(stmts []ast.Statement) (*returnSignal, error) {
	for _, stmt := range stmts {
		sig, err := i.execStatement(stmt)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

func (i *Interpreter) execStatement(stmt ast.Statement) (*returnSignal, error) {
	switch node := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evalExpr(node.Expression)
		return nil, err

	case *ast.IfStmt:
		cond, err := i.evalExpr(node.Condition)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return i.execBlock(node.Then)
		}
		if node.Else != nil {
			return i.execBlock(node.Else)
		}
		return nil, nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evalExpr(node.Condition)
			if err != nil {
				return nil, err
			}
			if !cond.Truthy() {
				return nil, nil
			}
			sig, err := i.execBlock(node.Body)
			if err != nil {
				return nil, err
			}
			if sig != nil {
				return sig, nil
			}
		}

	case *ast.ReturnStmt:
		if node.Value == nil {
			return &returnSignal{value: Null}, nil
		}
		v, err := i.evalExpr(node.Value)
		if err != nil {
			return nil, err
		}
		return &returnSignal{value: v}, nil

	case *ast.FunctionDecl:
		fn := &FunctionValue{
			Name:       node.Name,
			Parameters: node.Parameters,
			Body:       node.Body,
			IsUser:     true,
		}
		i.env.Define(node.Name, fn)
		return nil, nil

	default:
		return nil, newRuntimeError(stmt.Pos(), "unknown statement type")
	}
}

func (i *Interpreter) evalExpr(expr ast.Expression) (Value, error) {
	switch node := expr.(type) {
	case *ast.NumberLiteral:
		return NumberValue{Value: node.Value}, nil

	case *ast.StringLiteral:
		return StringValue{Value: node.Value}, nil

	case *ast.BooleanLiteral:
		return NativeBool(node.Value), nil

	case *ast.NullLiteral:
		return Null, nil

	case *ast.Identifier:
		v, ok := i.env.Get(node.Name)
		if !ok {
			return nil, newRuntimeError(node.Pos(), "undefined variable '%s'", node.Name)
		}
		return v, nil

	case *ast.AssignExpr:
		v, err := i.evalExpr(node.Value)
		if err != nil {
			return nil, err
		}
		i.env.Set(node.Target, v)
		return v, nil

	case *ast.UnaryExpr:
		return i.evalUnary(node)

	case *ast.BinaryExpr:
		return i.evalBinary(node)

	case *ast.CallExpr:
		return i.evalCall(node)

	default:
		return nil, newRuntimeError(expr.Pos(), "unknown expression type")
	}
}

func (i *Interpreter) evalUnary(node *ast.UnaryExpr) (Value, error) {
	operand, err := i.evalExpr(node.Operand)
	if err != nil {
		return nil, err
	}

	switch node.Operator {
	case "-":
		n, ok := operand.(NumberValue)
		if !ok {
			return nil, newRuntimeError(node.Pos(), "unary - requires a number, got %s", operand.Type())
		}
		return NumberValue{Value: -n.Value}, nil

	case "չի":
		return NativeBool(!operand.Truthy()), nil

	default:
		return nil, newRuntimeError(node.Pos(), "unknown unary operator '%s'", node.Operator)
	}
}

// evalBinary evaluates a binary expression. և and կամ short-circuit their
// right operand (spec §4.3) and so must evaluate Left before deciding
// whether Right runs at all; every other operator evaluates both sides
// eagerly.
func (i *Interpreter) evalBinary(node *ast.BinaryExpr) (Value, error) {
	if node.Operator == "և" || node.Operator == "կամ" {
		left, err := i.evalExpr(node.Left)
		if err != nil {
			return nil, err
		}
		if node.Operator == "և" && !left.Truthy() {
			return NativeBool(false), nil
		}
		if node.Operator == "կամ" && left.Truthy() {
			return NativeBool(true), nil
		}
		right, err := i.evalExpr(node.Right)
		if err != nil {
			return nil, err
		}
		return NativeBool(right.Truthy()), nil
	}

	left, err := i.evalExpr(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(node.Right)
	if err != nil {
		return nil, err
	}
	return applyBinaryOp(node.Pos(), node.Operator, left, right)
}

func applyBinaryOp(pos lexer.Position, op string, left, right Value) (Value, error) {
	switch op {
	case "+":
		ln, lok := left.(NumberValue)
		rn, rok := right.(NumberValue)
		if lok && rok {
			return NumberValue{Value: ln.Value + rn.Value}, nil
		}
		if left.Type() == "string" || right.Type() == "string" {
			return StringValue{Value: left.Display() + right.Display()}, nil
		}
		return nil, newRuntimeError(pos, "invalid operands for +: %s and %s", left.Type(), right.Type())

	case "-", "*", "/", "%":
		ln, lok := left.(NumberValue)
		rn, rok := right.(NumberValue)
		if !lok || !rok {
			return nil, newRuntimeError(pos, "invalid operands for %s: %s and %s", op, left.Type(), right.Type())
		}
		switch op {
		case "-":
			return NumberValue{Value: ln.Value - rn.Value}, nil
		case "*":
			return NumberValue{Value: ln.Value * rn.Value}, nil
		case "/":
			if rn.Value == 0 {
				return nil, newRuntimeError(pos, "division by zero")
			}
			return NumberValue{Value: ln.Value / rn.Value}, nil
		case "%":
			return NumberValue{Value: math.Mod(ln.Value, rn.Value)}, nil
		}

	case "==":
		return NativeBool(valuesEqual(left, right)), nil
	case "!=":
		return NativeBool(!valuesEqual(left, right)), nil

	case "<", "<=", ">", ">=":
		ln, lok := left.(NumberValue)
		rn, rok := right.(NumberValue)
		if !lok || !rok {
			return nil, newRuntimeError(pos, "invalid operands for %s: %s and %s", op, left.Type(), right.Type())
		}
		switch op {
		case "<":
			return NativeBool(ln.Value < rn.Value), nil
		case "<=":
			return NativeBool(ln.Value <= rn.Value), nil
		case ">":
			return NativeBool(ln.Value > rn.Value), nil
		case ">=":
			return NativeBool(ln.Value >= rn.Value), nil
		}
	}

	return nil, newRuntimeError(pos, "unknown binary operator '%s'", op)
}

// evalCall implements the call protocol (spec §4.3):
//  1. look up the callee, fail if it isn't a function
//  2. evaluate arguments left-to-right in the caller's environment
//  3. check arity
//  4. push a new environment (built-ins skip 4-7 and run directly)
//  5. bind parameters
//  6. execute the body, consuming any return-signal
//  7. pop the environment on every exit path
func (i *Interpreter) evalCall(node *ast.CallExpr) (Value, error) {
	callee, ok := i.env.Get(node.Callee)
	if !ok {
		return nil, newRuntimeError(node.Pos(), "undefined variable '%s'", node.Callee)
	}
	fn, ok := callee.(*FunctionValue)
	if !ok {
		return nil, newRuntimeError(node.Pos(), "'%s' is not a function", node.Callee)
	}

	args := make([]Value, len(node.Args))
	for idx, argExpr := range node.Args {
		v, err := i.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	return i.callFunction(node.Pos(), fn, args)
}

func (i *Interpreter) callFunction(pos lexer.Position, fn *FunctionValue, args []Value) (Value, error) {
	if fn.Builtin != nil {
		v, err := fn.Builtin(args)
		if err != nil {
			return nil, newRuntimeError(pos, "%s", err.Error())
		}
		return v, nil
	}

	if len(args) != len(fn.Parameters) {
		return nil, newRuntimeError(pos, "function %s expects %d argument(s), got %d",
			fn.Name, len(fn.Parameters), len(args))
	}

	// Step 4: the new frame's parent is the *caller's current* environment
	// (i.env right now), not fn's defining scope — the dynamic-scope choice
	// documented in Environment's constructor and the language spec's §9.
	callFrame := NewEnclosedEnvironment(i.env)
	for idx, param := range fn.Parameters {
		callFrame.Define(param, args[idx])
	}

	prevEnv := i.env
	i.env = callFrame
	defer func() { i.env = prevEnv }() // step 7: pop on every exit path

	sig, err := i.execBlock(fn.Body)
	if err != nil {
		return nil, err
	}
	if sig != nil {
		return sig.value, nil
	}
	return Null, nil
}
