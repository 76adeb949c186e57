package parser

import (
	"github.com/kirin-lang/kirin/ast"
	"github.com/kirin-lang/kirin/kerr"
	"github.com/kirin-lang/kirin/lexer"
)

func (p *Parser) expression() (ast.Expression, *kerr.KirinError) {
	return p.assignment()
}

// assignment accepts at most one trailing "= value": the left-hand side
// must already have parsed down to a bare Variable, otherwise the "=" is
// rejected as an invalid assignment target rather than silently becoming a
// comparison.
func (p *Parser) assignment() (ast.Expression, *kerr.KirinError) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.matchAny(lexer.Equal) {
		equalsTok := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		variable, ok := expr.(*ast.Variable)
		if !ok {
			return nil, p.errorAt(equalsTok, "invalid assignment target")
		}
		return ast.NewAssign(variable.Name, value, p.span(equalsTok)), nil
	}

	return expr, nil
}

// or, and, equality and comparison are each non-associative: a single "if"
// check, not a loop, so `a == b == c` never parses (matching the grammar's
// single right-hand operand rule for these four tiers).

func (p *Parser) or() (ast.Expression, *kerr.KirinError) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	if p.matchAny(lexer.Or) {
		opTok := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(expr, right, ast.Or, p.span(opTok)), nil
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expression, *kerr.KirinError) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.matchAny(lexer.And) {
		opTok := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(expr, right, ast.And, p.span(opTok)), nil
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expression, *kerr.KirinError) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	if p.matchAny(lexer.EqualEqual, lexer.NotEqual) {
		opTok := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(expr, right, equalityOp(opTok.Type), p.span(opTok)), nil
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expression, *kerr.KirinError) {
	expr, err := p.addition()
	if err != nil {
		return nil, err
	}
	if p.matchAny(lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual) {
		opTok := p.previous()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(expr, right, comparisonOp(opTok.Type), p.span(opTok)), nil
	}
	return expr, nil
}

// addition, multiplication and power are left-associative: a while loop, so
// `1 - 2 - 3` parses as `(1 - 2) - 3`.

func (p *Parser) addition() (ast.Expression, *kerr.KirinError) {
	expr, err := p.multiplication()
	if err != nil {
		return nil, err
	}
	for p.matchAny(lexer.Plus, lexer.Minus) {
		opTok := p.previous()
		right, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		op := ast.Add
		if opTok.Type == lexer.Minus {
			op = ast.Subtract
		}
		expr = ast.NewBinary(expr, right, op, p.span(opTok))
	}
	return expr, nil
}

func (p *Parser) multiplication() (ast.Expression, *kerr.KirinError) {
	expr, err := p.power()
	if err != nil {
		return nil, err
	}
	for p.matchAny(lexer.Star, lexer.Slash, lexer.Percent) {
		opTok := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, right, multiplicationOp(opTok.Type), p.span(opTok))
	}
	return expr, nil
}

func (p *Parser) power() (ast.Expression, *kerr.KirinError) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.matchAny(lexer.Caret) {
		opTok := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, right, ast.Power, p.span(opTok))
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, *kerr.KirinError) {
	if p.matchAny(lexer.Minus) {
		opTok := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(ast.Negate, right, p.span(opTok)), nil
	}
	return p.call()
}

// call wraps at most one optional "(args)" suffix: there is no loop here, so
// chained calls like f()() never parse as a single Call node.
func (p *Parser) call() (ast.Expression, *kerr.KirinError) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.matchAny(lexer.LeftParen) {
		return p.finishCall(expr)
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expression) (ast.Expression, *kerr.KirinError) {
	var args []ast.Expression
	if !p.check(lexer.RightParen) {
		for {
			if len(args) >= maxArguments {
				return nil, p.errorAt(p.peek(), "too many arguments")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.matchAny(lexer.Comma) {
				break
			}
		}
	}

	paren, err := p.consume(lexer.RightParen, "expected ')' after arguments")
	if err != nil {
		return nil, err
	}
	return ast.NewCall(callee, args, p.span(paren)), nil
}

func (p *Parser) primary() (ast.Expression, *kerr.KirinError) {
	switch {
	case p.matchAny(lexer.NewLine):
		// A blank line before an expression is skipped rather than treated
		// as the end of the statement.
		return p.primary()
	case p.matchAny(lexer.Identifier):
		tok := p.previous()
		return ast.NewVariable(tok.Lexeme, p.span(tok)), nil
	case p.matchAny(lexer.Number, lexer.String, lexer.True, lexer.False, lexer.None):
		tok := p.previous()
		value, err := ast.FromToken(tok)
		if err != nil {
			return nil, err
		}
		return ast.NewLiteral(value, p.span(tok)), nil
	case p.matchAny(lexer.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		closing, err := p.consume(lexer.RightParen, "expected ')' after expression")
		if err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr, p.span(closing)), nil
	default:
		return nil, p.errorAt(p.peek(), "expected expression but found "+p.peek().Type.String())
	}
}

func equalityOp(t lexer.TokenType) ast.BinaryOp {
	if t == lexer.EqualEqual {
		return ast.Equal
	}
	return ast.NotEqual
}

func comparisonOp(t lexer.TokenType) ast.BinaryOp {
	switch t {
	case lexer.Greater:
		return ast.Greater
	case lexer.GreaterEqual:
		return ast.GreaterEqual
	case lexer.Less:
		return ast.Less
	default:
		return ast.LessEqual
	}
}

func multiplicationOp(t lexer.TokenType) ast.BinaryOp {
	switch t {
	case lexer.Star:
		return ast.Multiply
	case lexer.Slash:
		return ast.Divide
	default:
		return ast.Modulus
	}
}
