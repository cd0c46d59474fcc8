// Package parser implements minilang's recursive-descent parser
// (spec.md §4.2): a fixed precedence climb for expressions over a flat
// statement dispatch, consuming the token sequence pkg/lexer produces.
package parser

import (
	"fmt"

	"minilang/pkg/ast"
	"minilang/pkg/lexer"
)

// Error is a parse-time diagnostic carrying the offending token's line
// (spec.md §7 "Parse error").
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parser consumes a token slice with a single cursor, as the original
// hand-written grammar does, generalized to minilang's AST shapes.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New constructs a Parser over tokens. tokens must end with an EOF token,
// as produced by lexer.Tokenize.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a complete program (spec.md §3 "a sequence of statements").
func Parse(tokens []lexer.Token) ([]ast.Statement, error) {
	return New(tokens).ParseProgram()
}

// ParseProgram parses statements until EOF.
func (p *Parser) ParseProgram() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for p.peek().Kind != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) peek() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind lexer.Kind) bool { return p.peek().Kind == kind }

func (p *Parser) expect(kind lexer.Kind) (lexer.Token, error) {
	if !p.check(kind) {
		return lexer.Token{}, p.errorf("expected %s, got %s", kind, p.peek().Kind)
	}
	return p.advance(), nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &Error{Line: p.peek().Line, Message: fmt.Sprintf(format, args...)}
}
