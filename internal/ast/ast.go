// Package ast defines the Soorj abstract syntax tree: a small sum of
// expression and statement node types, one per production in the grammar.
package ast

import (
	"bytes"
	"strings"

	"github.com/soorj-lang/soorj/internal/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// String renders the node for debugging.
	String() string
	// Pos returns the node's source position for error reporting.
	Pos() lexer.Position
}

// Expression is a node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action without itself producing a
// value.
type Statement interface {
	Node
	statementNode()
}

// Block is an ordered sequence of statements, used for if/else/while/function
// bodies. Blocks do not introduce a new environment scope; the evaluator
// runs their statements in the enclosing environment (spec §4.3).
type Block []Statement

func (b Block) String() string {
	var out bytes.Buffer
	for _, stmt := range b {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Program is the root of a parsed source file: an ordered statement list.
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// ---- Expressions ----

// NumberLiteral is an IEEE-754 double literal.
type NumberLiteral struct {
	Token lexer.Token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *NumberLiteral) String() string       { return n.Token.Literal }

// StringLiteral is a Unicode text literal.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) expressionNode()     {}
func (s *StringLiteral) Pos() lexer.Position { return s.Token.Pos }
func (s *StringLiteral) String() string      { return "\"" + s.Value + "\"" }

// BooleanLiteral is the այո/ոչ literal.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()     {}
func (b *BooleanLiteral) Pos() lexer.Position { return b.Token.Pos }
func (b *BooleanLiteral) String() string      { return b.Token.Literal }

// NullLiteral is the հեչ literal.
type NullLiteral struct {
	Token lexer.Token
}

func (n *NullLiteral) expressionNode()     {}
func (n *NullLiteral) Pos() lexer.Position { return n.Token.Pos }
func (n *NullLiteral) String() string      { return n.Token.Literal }

// Identifier is a variable or function name reference.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) expressionNode()     {}
func (i *Identifier) Pos() lexer.Position { return i.Token.Pos }
func (i *Identifier) String() string      { return i.Name }

// BinaryExpr is a left `op` right expression.
type BinaryExpr struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpr) expressionNode()     {}
func (b *BinaryExpr) Pos() lexer.Position { return b.Token.Pos }
func (b *BinaryExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Operator + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// UnaryExpr is a prefix `op` operand expression.
type UnaryExpr struct {
	Token    lexer.Token // the operator token
	Operator string
	Operand  Expression
}

func (u *UnaryExpr) expressionNode()     {}
func (u *UnaryExpr) Pos() lexer.Position { return u.Token.Pos }
func (u *UnaryExpr) String() string {
	return "(" + u.Operator + u.Operand.String() + ")"
}

// AssignExpr assigns Value to the variable named Target.
type AssignExpr struct {
	Token  lexer.Token // the '=' token
	Target string
	Value  Expression
}

func (a *AssignExpr) expressionNode()     {}
func (a *AssignExpr) Pos() lexer.Position { return a.Token.Pos }
func (a *AssignExpr) String() string {
	return "(" + a.Target + " = " + a.Value.String() + ")"
}

// CallExpr invokes the function named Callee with Args.
type CallExpr struct {
	Token  lexer.Token // the '(' token
	Callee string
	Args   []Expression
}

func (c *CallExpr) expressionNode()     {}
func (c *CallExpr) Pos() lexer.Position { return c.Token.Pos }
func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Callee + "(" + strings.Join(args, ", ") + ")"
}

// ---- Statements ----

// ExpressionStmt wraps an expression evaluated for its side effects (and,
// at the top level of a REPL line, its value).
type ExpressionStmt struct {
	Token      lexer.Token
	Expression Expression
}

func (e *ExpressionStmt) statementNode()    {}
func (e *ExpressionStmt) Pos() lexer.Position { return e.Token.Pos }
func (e *ExpressionStmt) String() string      { return e.Expression.String() }

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Token     lexer.Token // the 'եթե' token
	Condition Expression
	Then      Block
	Else      Block // nil if there is no else branch
}

func (i *IfStmt) statementNode()      {}
func (i *IfStmt) Pos() lexer.Position { return i.Token.Pos }
func (i *IfStmt) String() string {
	var out bytes.Buffer
	out.WriteString("եթե " + i.Condition.String() + " { " + i.Then.String() + " }")
	if i.Else != nil {
		out.WriteString(" հպ { " + i.Else.String() + " }")
	}
	return out.String()
}

// WhileStmt repeats Body while Condition is truthy.
type WhileStmt struct {
	Token     lexer.Token // the 'մինչև' token
	Condition Expression
	Body      Block
}

func (w *WhileStmt) statementNode()      {}
func (w *WhileStmt) Pos() lexer.Position { return w.Token.Pos }
func (w *WhileStmt) String() string {
	return "մինչև " + w.Condition.String() + " { " + w.Body.String() + " }"
}

// ReturnStmt raises the return-signal, optionally carrying Value.
type ReturnStmt struct {
	Token lexer.Token // the 'տուր' token
	Value Expression  // nil if no expression follows
}

func (r *ReturnStmt) statementNode()      {}
func (r *ReturnStmt) Pos() lexer.Position { return r.Token.Pos }
func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "տուր"
	}
	return "տուր " + r.Value.String()
}

// FunctionDecl declares a user-defined function and binds it by Name in the
// current environment.
type FunctionDecl struct {
	Token      lexer.Token // the 'գործ' token
	Name       string
	Parameters []string
	Body       Block
}

func (f *FunctionDecl) statementNode()      {}
func (f *FunctionDecl) Pos() lexer.Position { return f.Token.Pos }
func (f *FunctionDecl) String() string {
	return "գործ " + f.Name + "(" + strings.Join(f.Parameters, ", ") + ") { " + f.Body.String() + " }"
}
