package parser

import (
	"minilang/pkg/ast"
	"minilang/pkg/lexer"
)

// parseExpr is the entry point for the fixed precedence climb described
// in spec.md §4.2, lowest-binding first: or/and, equality, comparison,
// additive, multiplicative, unary, postfix call/index, primary.
func (p *Parser) parseExpr() (ast.Expression, error) {
	return p.parseLogic()
}

func (p *Parser) parseLogic() (ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.AND) || p.check(lexer.OR) {
		line := p.peek().Line
		op := ast.OpAnd
		if p.peek().Kind == lexer.OR {
			op = ast.OpOr
		}
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.EQ) || p.check(lexer.NEQ) {
		line := p.peek().Line
		op := ast.OpEq
		if p.peek().Kind == lexer.NEQ {
			op = ast.OpNeq
		}
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.peek().Kind {
		case lexer.LT:
			op = ast.OpLt
		case lexer.LTE:
			op = ast.OpLte
		case lexer.GT:
			op = ast.OpGt
		case lexer.GTE:
			op = ast.OpGte
		default:
			return left, nil
		}
		line := p.advance().Line
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, op, left, right)
	}
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		line := p.peek().Line
		op := ast.OpAdd
		if p.peek().Kind == lexer.MINUS {
			op = ast.OpSub
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, op, left, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.peek().Kind {
		case lexer.STAR:
			op = ast.OpMul
		case lexer.SLASH:
			op = ast.OpDiv
		case lexer.PERCENT:
			op = ast.OpMod
		default:
			return left, nil
		}
		line := p.advance().Line
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(line, op, left, right)
	}
}

// parseUnary is right-associative by construction: it recurses into
// itself before wrapping, so `- - x` parses as `-(-x)`.
func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.peek().Kind {
	case lexer.MINUS:
		line := p.advance().Line
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(line, ast.OpNeg, operand), nil
	case lexer.NOT:
		line := p.advance().Line
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(line, ast.OpNot, operand), nil
	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles chainable, left-associative call and index
// suffixes: `f(1)(2)[0]` parses as `Index(Call(Call(f,1),2),0)`.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case lexer.LPAREN:
			line := p.advance().Line
			var args []ast.Expression
			if !p.check(lexer.RPAREN) {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				for p.check(lexer.COMMA) {
					p.advance()
					arg, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
				}
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			expr = ast.NewCall(line, expr, args)
		case lexer.LBRACKET:
			line := p.advance().Line
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			expr = ast.NewIndex(line, expr, idx)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.NUMBER:
		p.advance()
		return ast.NewNumber(tok.Line, tok.Number), nil
	case lexer.STRING:
		p.advance()
		return ast.NewString(tok.Line, tok.Text), nil
	case lexer.TRUE:
		p.advance()
		return ast.NewBool(tok.Line, true), nil
	case lexer.FALSE:
		p.advance()
		return ast.NewBool(tok.Line, false), nil
	case lexer.IDENT:
		p.advance()
		return ast.NewIdent(tok.Line, tok.Text), nil
	case lexer.LBRACKET:
		return p.parseArrayLit()
	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errorf("unexpected token %s", tok.Kind)
	}
}

// parseArrayLit parses `[ e, e, … ]`; an empty array is permitted, a
// trailing comma is not (spec.md §4.2 "Primaries").
func (p *Parser) parseArrayLit() (ast.Expression, error) {
	line := p.advance().Line // consume '['
	var elems []ast.Expression
	if !p.check(lexer.RBRACKET) {
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		for p.check(lexer.COMMA) {
			p.advance()
			elem, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return ast.NewArrayLit(line, elems), nil
}
