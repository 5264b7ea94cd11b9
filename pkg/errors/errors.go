// Package errors formats Soorj's three error kinds — lexical, syntax, and
// runtime — into single messages with source context and a caret pointing
// at the offending column, in the style of a compiler diagnostic.
package errors

import (
	"fmt"
	"strings"

	"github.com/soorj-lang/soorj/internal/lexer"
)

// Kind distinguishes which of the language spec's three error kinds (§7)
// produced a CompilerError.
type Kind string

const (
	Lexical Kind = "Lexical error"
	Syntax  Kind = "Syntax error"
	Runtime Kind = "Runtime error"
)

// CompilerError is a single diagnostic: a kind, a message, and the position
// it occurred at, with enough of the original source retained to render a
// caret under the offending column.
type CompilerError struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
	Source  string
}

// New creates a CompilerError.
func New(kind Kind, pos lexer.Position, message, source string) *CompilerError {
	return &CompilerError{Kind: kind, Message: message, Pos: pos, Source: source}
}

// Error implements the error interface with an uncolored single-line-plus-
// caret rendering.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error as "<Kind>: <message>" followed by the source
// line and a caret at Pos.Column, when position and source text are
// available. If color is true, the caret is wrapped in ANSI red.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s", e.Kind, e.Message))

	line := e.sourceLine(e.Pos.Line)
	if line != "" && e.Pos.Column > 0 {
		sb.WriteString(fmt.Sprintf(" (line %d, column %d)\n", e.Pos.Line, e.Pos.Column))
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	} else if e.Pos.Line > 0 {
		sb.WriteString(fmt.Sprintf(" (line %d)", e.Pos.Line))
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(line int) string {
	if line <= 0 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// FromLexErrors converts accumulated lexer errors into CompilerErrors.
func FromLexErrors(errs []lexer.LexError, source string) []*CompilerError {
	out := make([]*CompilerError, len(errs))
	for i, e := range errs {
		out[i] = New(Lexical, e.Pos, e.Message, source)
	}
	return out
}

// FromSyntaxError converts a single parser syntax error into a
// CompilerError. Parser errors only carry a line, not a column, so the
// rendering falls back to the line-only form.
func FromSyntaxError(message string, line int, source string) *CompilerError {
	return New(Syntax, lexer.Position{Line: line}, message, source)
}

// FromRuntimeError converts a runtime error into a CompilerError. The
// interpreter doesn't track byte offsets for every node, so runtime errors
// render with line and column but no caret unless Pos.Column is known.
func FromRuntimeError(message string, pos lexer.Position, source string) *CompilerError {
	return New(Runtime, pos, message, source)
}

// FormatErrors renders a batch of errors separated by blank lines.
func FormatErrors(errs []*CompilerError, color bool) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Format(color)
	}
	return strings.Join(parts, "\n\n")
}
