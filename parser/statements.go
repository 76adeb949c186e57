package parser

import (
	"github.com/kirin-lang/kirin/ast"
	"github.com/kirin-lang/kirin/kerr"
	"github.com/kirin-lang/kirin/lexer"
)

// declaration is the top-level statement production: a let-declaration, a
// walrus short-form declaration, or a plain expression statement.
func (p *Parser) declaration() (ast.Statement, *kerr.KirinError) {
	if p.matchAny(lexer.Let) {
		return p.varDeclaration()
	}
	if p.check(lexer.Identifier) && p.peekNext().Type == lexer.ColonEqual {
		return p.walrusDeclaration()
	}
	return p.statement()
}

// varDeclaration parses `let name` or `let name = expr`.
func (p *Parser) varDeclaration() (ast.Statement, *kerr.KirinError) {
	nameTok, err := p.consume(lexer.Identifier, "expected variable name after 'let'")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expression
	if p.matchAny(lexer.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.NewLine, "expected newline after variable declaration"); err != nil {
		return nil, err
	}

	return ast.NewVariableDeclaration(nameTok.Lexeme, initializer, p.span(nameTok)), nil
}

// walrusDeclaration parses `name := expr`, the short form that always
// carries an initializer.
func (p *Parser) walrusDeclaration() (ast.Statement, *kerr.KirinError) {
	nameTok := p.advance() // identifier
	p.advance()            // ColonEqual

	initializer, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.NewLine, "expected newline after variable declaration"); err != nil {
		return nil, err
	}

	return ast.NewVariableDeclaration(nameTok.Lexeme, initializer, p.span(nameTok)), nil
}

func (p *Parser) statement() (ast.Statement, *kerr.KirinError) {
	return p.expressionStatement()
}

func (p *Parser) expressionStatement() (ast.Statement, *kerr.KirinError) {
	startTok := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.NewLine, "expected newline after expression"); err != nil {
		return nil, err
	}

	return ast.NewExpressionStatement(expr, p.span(startTok)), nil
}
