// Package parser implements Soorj's recursive-descent parser with the
// standard precedence-climbing scheme for binary operators.
package parser

import (
	"fmt"
	"strconv"

	"github.com/soorj-lang/soorj/internal/ast"
	"github.com/soorj-lang/soorj/internal/lexer"
)

// parseFloat parses a scanner NUMBER lexeme as a float64. The scanner only
// ever produces digit runs with at most one '.', so this cannot fail on
// well-formed input; it's kept as a named wrapper for a clearer error site.
func parseFloat(lit string) (float64, error) {
	return strconv.ParseFloat(lit, 64)
}

// Precedence levels, lowest to highest, matching the grammar in the
// language spec's §4.2.
const (
	_ int = iota
	LOWEST
	ASSIGN
	OR
	AND
	EQUALITY
	COMPARISON
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:         OR,
	lexer.AND:        AND,
	lexer.EQ:         EQUALITY,
	lexer.NOT_EQ:     EQUALITY,
	lexer.LESS:       COMPARISON,
	lexer.LESS_EQ:    COMPARISON,
	lexer.GREATER:    COMPARISON,
	lexer.GREATER_EQ: COMPARISON,
	lexer.PLUS:       SUM,
	lexer.MINUS:      SUM,
	lexer.ASTERISK:   PRODUCT,
	lexer.SLASH:      PRODUCT,
	lexer.PERCENT:    PRODUCT,
	lexer.LPAREN:     CALL,
}

// SyntaxError is raised when the grammar cannot be satisfied. It carries the
// offending token's line, per the language spec's error-kind contract.
type SyntaxError struct {
	Message string
	Line    int
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// Parser consumes the token stream produced by a Lexer and builds a
// *ast.Program.
type Parser struct {
	l      *lexer.Lexer
	errors []*SyntaxError

	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []*SyntaxError {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Line:    p.curToken.Pos.Line,
	})
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expect advances past the current token if it has type t, recording a
// syntax error and returning false otherwise.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError("expected %s, got %s", t, p.curToken.Type)
	return false
}

func (p *Parser) skipNewlines() {
	for p.curTokenIs(lexer.NEWLINE) {
		p.nextToken()
	}
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram parses the entire token stream into a *ast.Program.
//
//	program := { newline } { statement { newline } }
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	p.skipNewlines()
	for !p.curTokenIs(lexer.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.skipNewlines()
	}
	return program
}

// parseStatement := if | while | return | function_decl | expr_stmt
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.FUNCTION:
		return p.parseFunctionDecl()
	default:
		return p.parseExpressionStmt()
	}
}

// parseBlock := { newline } { statement { newline } }, stopping at '}' or EOF.
func (p *Parser) parseBlock() ast.Block {
	var block ast.Block
	p.skipNewlines()
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block = append(block, stmt)
		}
		p.skipNewlines()
	}
	return block
}

// if := IF expression '{' block '}' [ ELSE '{' block '}' ]
func (p *Parser) parseIfStmt() ast.Statement {
	tok := p.curToken
	p.nextToken() // consume 'եթե'

	cond := p.parseExpression(LOWEST)
	p.skipNewlines()
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	thenBlock := p.parseBlock()
	if !p.expect(lexer.RBRACE) {
		return nil
	}

	stmt := &ast.IfStmt{Token: tok, Condition: cond, Then: thenBlock}

	if p.curTokenIs(lexer.ELSE) {
		p.nextToken()
		p.skipNewlines()
		if !p.expect(lexer.LBRACE) {
			return nil
		}
		stmt.Else = p.parseBlock()
		if !p.expect(lexer.RBRACE) {
			return nil
		}
	}

	return stmt
}

// while := WHILE expression '{' block '}'
func (p *Parser) parseWhileStmt() ast.Statement {
	tok := p.curToken
	p.nextToken() // consume 'մինչև'

	cond := p.parseExpression(LOWEST)
	p.skipNewlines()
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if !p.expect(lexer.RBRACE) {
		return nil
	}

	return &ast.WhileStmt{Token: tok, Condition: cond, Body: body}
}

// return := RETURN [ expression ]
func (p *Parser) parseReturnStmt() ast.Statement {
	tok := p.curToken
	p.nextToken() // consume 'տուր'

	stmt := &ast.ReturnStmt{Token: tok}
	if !p.curTokenIs(lexer.NEWLINE) && !p.curTokenIs(lexer.EOF) && !p.curTokenIs(lexer.RBRACE) {
		stmt.Value = p.parseExpression(LOWEST)
	}
	return stmt
}

// function_decl := FUNCTION IDENT '(' [ IDENT { ',' IDENT } ] ')' '{' block '}'
func (p *Parser) parseFunctionDecl() ast.Statement {
	tok := p.curToken
	p.nextToken() // consume 'գործ'

	if !p.curTokenIs(lexer.IDENT) {
		p.addError("expected function name, got %s", p.curToken.Type)
		return nil
	}
	name := p.curToken.Literal
	p.nextToken()

	if !p.expect(lexer.LPAREN) {
		return nil
	}
	var params []string
	if !p.curTokenIs(lexer.RPAREN) {
		if !p.curTokenIs(lexer.IDENT) {
			p.addError("expected parameter name, got %s", p.curToken.Type)
			return nil
		}
		params = append(params, p.curToken.Literal)
		p.nextToken()
		for p.curTokenIs(lexer.COMMA) {
			p.nextToken()
			if !p.curTokenIs(lexer.IDENT) {
				p.addError("expected parameter name, got %s", p.curToken.Type)
				return nil
			}
			params = append(params, p.curToken.Literal)
			p.nextToken()
		}
	}
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	p.skipNewlines()
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if !p.expect(lexer.RBRACE) {
		return nil
	}

	return &ast.FunctionDecl{Token: tok, Name: name, Parameters: params, Body: body}
}

func (p *Parser) parseExpressionStmt() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		// Recover from the erroring token so the next statement can still
		// be attempted instead of looping forever.
		p.nextToken()
		return nil
	}
	return &ast.ExpressionStmt{Token: tok, Expression: expr}
}

// parseExpression implements precedence climbing: parse a prefix
// expression, then repeatedly fold in infix operators whose precedence
// exceeds minPrec.
//
//	expression   := assignment
//	assignment   := logical_or [ '=' assignment ]        (right-associative)
//	logical_or   := logical_and { OR  logical_and }
//	logical_and  := equality    { AND equality }
//	equality     := comparison  { (== | !=) comparison }
//	comparison   := term        { (< | <= | > | >=) term }
//	term         := factor      { (+ | -) factor }
//	factor       := unary       { (* | / | %) unary }
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for {
		if p.curTokenIs(lexer.ASSIGN) && minPrec <= ASSIGN {
			ident, ok := left.(*ast.Identifier)
			if !ok {
				p.addError("invalid assignment target")
				return nil
			}
			tok := p.curToken
			p.nextToken()
			value := p.parseExpression(ASSIGN) // right-associative
			if value == nil {
				return nil
			}
			left = &ast.AssignExpr{Token: tok, Target: ident.Name, Value: value}
			continue
		}

		if p.curTokenIs(lexer.LPAREN) && minPrec < CALL {
			ident, ok := left.(*ast.Identifier)
			if !ok {
				p.addError("invalid function call")
				return nil
			}
			left = p.parseCall(ident)
			continue
		}

		prec, isInfix := precedences[p.curToken.Type]
		if !isInfix || prec <= minPrec {
			break
		}

		tok := p.curToken
		op := tok.Literal
		p.nextToken()
		right := p.parseExpression(prec)
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{Token: tok, Left: left, Operator: op, Right: right}
	}

	return left
}

// unary := (NOT | '-') unary | call
func (p *Parser) parsePrefix() ast.Expression {
	switch p.curToken.Type {
	case lexer.NOT, lexer.MINUS:
		tok := p.curToken
		op := tok.Literal
		p.nextToken()
		operand := p.parseExpression(PREFIX)
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{Token: tok, Operator: op, Operand: operand}
	default:
		return p.parsePrimary()
	}
}

// primary := TRUE | FALSE | NULL | NUMBER | STRING | IDENT | '(' expression ')'
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.curToken

	switch tok.Type {
	case lexer.TRUE:
		p.nextToken()
		return &ast.BooleanLiteral{Token: tok, Value: true}

	case lexer.FALSE:
		p.nextToken()
		return &ast.BooleanLiteral{Token: tok, Value: false}

	case lexer.NULL:
		p.nextToken()
		return &ast.NullLiteral{Token: tok}

	case lexer.NUMBER:
		p.nextToken()
		value, err := parseFloat(tok.Literal)
		if err != nil {
			p.addError("invalid number literal %q", tok.Literal)
			return nil
		}
		return &ast.NumberLiteral{Token: tok, Value: value}

	case lexer.STRING:
		p.nextToken()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}

	case lexer.IDENT:
		p.nextToken()
		return &ast.Identifier{Token: tok, Name: tok.Literal}

	case lexer.LPAREN:
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		if !p.expect(lexer.RPAREN) {
			return nil
		}
		return expr

	default:
		p.addError("unexpected token %s", tok.Type)
		return nil
	}
}

// call := primary '(' [ expression { ',' expression } ] ')'
//
// Only legal when the callee parsed by primary is an identifier; method
// chaining is not part of the grammar.
func (p *Parser) parseCall(callee *ast.Identifier) ast.Expression {
	tok := p.curToken // '('
	p.nextToken()

	var args []ast.Expression
	if !p.curTokenIs(lexer.RPAREN) {
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		for p.curTokenIs(lexer.COMMA) {
			p.nextToken()
			arg := p.parseExpression(LOWEST)
			if arg == nil {
				return nil
			}
			args = append(args, arg)
		}
	}
	if !p.expect(lexer.RPAREN) {
		return nil
	}

	return &ast.CallExpr{Token: tok, Callee: callee.Name, Args: args}
}
