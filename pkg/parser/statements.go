package parser

import (
	"minilang/pkg/ast"
	"minilang/pkg/lexer"
)

// parseStatement dispatches on the leading token, per spec.md §4.2
// "Statement dispatch".
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.peek().Kind {
	case lexer.LET:
		return p.parseLet()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.FN:
		return p.parseFn()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IDENT:
		return p.parseIdentStatement()
	default:
		line := p.peek().Line
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewExprStmt(line, expr), nil
	}
}

func (p *Parser) parseLet() (ast.Statement, error) {
	line := p.advance().Line // consume 'let'
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewLet(line, name.Text, expr), nil
}

// parseIdentStatement resolves the assignment/index-assignment/expression
// ambiguity with one token of lookahead past the identifier, per spec.md
// §4.2: `IDENT =` is an assignment, `IDENT [ … ] =` is an index
// assignment, anything else is an expression statement.
func (p *Parser) parseIdentStatement() (ast.Statement, error) {
	line := p.peek().Line
	name := p.peek().Text

	switch p.peekAt(1).Kind {
	case lexer.ASSIGN:
		p.advance() // ident
		p.advance() // '='
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewAssign(line, name, expr), nil

	case lexer.LBRACKET:
		saved := p.pos
		p.advance() // ident
		p.advance() // '['
		index, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.check(lexer.RBRACKET) && p.peekAt(1).Kind == lexer.ASSIGN {
			p.advance() // ']'
			p.advance() // '='
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return ast.NewIndexAssign(line, name, index, value), nil
		}
		// Not an index assignment after all — backtrack and reparse the
		// whole thing as a plain expression statement (e.g. `a[0] + 1`).
		p.pos = saved
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewExprStmt(line, expr), nil

	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewExprStmt(line, expr), nil
	}
}

func (p *Parser) parseIf() (ast.Statement, error) {
	line := p.advance().Line // consume 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var els *ast.Block
	if p.check(lexer.ELSE) {
		p.advance()
		els, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIf(line, cond, then, els), nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	line := p.advance().Line // consume 'while'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(line, cond, body), nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	line := p.advance().Line // consume 'for'
	v, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.DOTDOT); err != nil {
		return nil, err
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFor(line, v.Text, start, end, body), nil
}

func (p *Parser) parseFn() (ast.Statement, error) {
	line := p.advance().Line // consume 'fn'
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(lexer.RPAREN) {
		first, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, first.Text)
		for p.check(lexer.COMMA) {
			p.advance()
			param, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			params = append(params, param.Text)
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFn(line, name.Text, params, body), nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	line := p.advance().Line // consume 'return'
	if p.check(lexer.RBRACE) || p.check(lexer.EOF) {
		return ast.NewReturn(line, nil), nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(line, expr), nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.check(lexer.RBRACE) {
		if p.check(lexer.EOF) {
			return nil, p.errorf("unterminated block, expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Block{Statements: stmts}, nil
}
