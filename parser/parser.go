// Package parser implements Kirin's recursive-descent expression and
// statement parser: tokens in, an AST out, with statement-level error
// recovery so a single bad line doesn't abort the whole pass.
package parser

import (
	"github.com/kirin-lang/kirin/ast"
	"github.com/kirin-lang/kirin/kerr"
	"github.com/kirin-lang/kirin/lexer"
)

// maxArguments bounds a call's argument list; the 9th argument reported is
// the one that trips the error (the length check fires when a call that
// already holds 8 arguments meets another one).
const maxArguments = 8

// Parser walks a flat token slice with one token of lookahead, the same
// shape as the teacher's two-token (current/peek) assembler front end.
type Parser struct {
	tokens   []lexer.Token
	filename string
	current  int
}

// New builds a parser over an already-scanned token stream.
func New(tokens []lexer.Token, filename string) *Parser {
	return &Parser{tokens: tokens, filename: filename}
}

// ParseAST tokenizes source and parses it into a statement list in one
// call. On any parse error(s), it returns one General error holding the
// accumulated list's text rather than a partial tree.
func ParseAST(source, filename string) ([]ast.Statement, *kerr.KirinError) {
	tokens, err := lexer.Scan(source)
	if err != nil {
		return nil, err
	}
	return New(tokens, filename).Parse()
}

// Parse runs the parser to completion, collecting every statement-level
// error via synchronize instead of stopping at the first one. If any errors
// were collected, it gathers them in a kerr.List and returns a single General
// error whose message is that list's text, instead of the partial statement
// slice.
func (p *Parser) Parse() ([]ast.Statement, *kerr.KirinError) {
	var statements []ast.Statement
	var errs kerr.List

	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			errs.Add(err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}

	if errs.HasErrors() {
		return nil, kerr.NewGeneral(errs.Error())
	}
	return statements, nil
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.Eof
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() lexer.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.Eof
	}
	return p.peek().Type == t
}

func (p *Parser) matchAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, *kerr.KirinError) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok lexer.Token, message string) *kerr.KirinError {
	return kerr.NewSpanned(kerr.Parse, tok.Span.Line, tok.Span.Column, message)
}

func (p *Parser) span(tok lexer.Token) ast.AstSpan {
	return ast.SpanFromToken(tok, p.filename)
}

// synchronize discards tokens until it reaches a point a new statement could
// plausibly start: right after a NewLine, or right before a token that only
// ever begins a statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.NewLine {
			return
		}
		switch p.peek().Type {
		case lexer.Class, lexer.Fn, lexer.Let, lexer.For, lexer.If, lexer.While, lexer.Return:
			return
		}
		p.advance()
	}
}
