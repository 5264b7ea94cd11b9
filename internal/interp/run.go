package interp

import (
	"io"

	"github.com/soorj-lang/soorj/internal/ast"
	"github.com/soorj-lang/soorj/internal/lexer"
	"github.com/soorj-lang/soorj/internal/parser"
	apperrors "github.com/soorj-lang/soorj/pkg/errors"
)

// ProgramResult reports every diagnostic produced while tokenizing,
// parsing, and evaluating a program. Errors is empty on success.
type ProgramResult struct {
	Errors []*apperrors.CompilerError
}

// Ok reports whether the run produced no diagnostics.
func (r *ProgramResult) Ok() bool { return len(r.Errors) == 0 }

// RunSource is the first of the two entry points the language spec names
// (§1): "tokenize-parse-evaluate a source string against a fresh
// environment." It's used by the file driver, which needs no state beyond
// one script's execution.
func RunSource(src string, out io.Writer) *ProgramResult {
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()

	var diags []*apperrors.CompilerError
	for _, e := range l.Errors() {
		diags = append(diags, apperrors.New(apperrors.Lexical, e.Pos, e.Message, src))
	}
	for _, e := range p.Errors() {
		diags = append(diags, apperrors.FromSyntaxError(e.Message, e.Line, src))
	}
	if len(diags) > 0 {
		return &ProgramResult{Errors: diags}
	}

	it := New(out)
	if err := it.Eval(program); err != nil {
		diags = append(diags, runtimeDiagnostic(err, src))
	}
	return &ProgramResult{Errors: diags}
}

// ParseLine tokenizes and parses a single REPL line into a statement list
// plus any lexical/syntax diagnostics. The caller (the REPL driver) then
// runs the statements through its persistent Interpreter via
// EvalStatements — the second of the two entry points the language spec
// names (§1): "evaluate a statement list against a persistent
// environment."
func ParseLine(src string) (statements []ast.Statement, diags []*apperrors.CompilerError) {
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()

	for _, e := range l.Errors() {
		diags = append(diags, apperrors.New(apperrors.Lexical, e.Pos, e.Message, src))
	}
	for _, e := range p.Errors() {
		diags = append(diags, apperrors.FromSyntaxError(e.Message, e.Line, src))
	}

	return program.Statements, diags
}

func runtimeDiagnostic(err error, src string) *apperrors.CompilerError {
	if rerr, ok := err.(*RuntimeError); ok {
		return apperrors.FromRuntimeError(rerr.Message, rerr.Pos, src)
	}
	return apperrors.New(apperrors.Runtime, lexer.Position{}, err.Error(), src)
}
