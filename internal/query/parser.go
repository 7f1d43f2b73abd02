package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses filter expressions into an AST
type Parser struct {
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
	}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// ParseFilter parses a --where expression into an Expression tree.
func ParseFilter(input string) (Expression, error) {
	// Validate expression length
	if err := ValidateFilter(input); err != nil {
		return nil, err
	}

	tokens := Tokenize(input)

	// Validate token count
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	parser := NewParser(tokens)
	expr, err := parser.parseOr()
	if err != nil {
		return nil, err
	}

	if tok := parser.current(); tok.Type != TokenEOF {
		return nil, fmt.Errorf("%w: unexpected %q after expression", ErrSyntax, tok.Value)
	}

	return expr, nil
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (Expression, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenOr,
			Right:    right,
		}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenAnd,
			Right:    right,
		}
	}

	return left, nil
}

// parseUnary parses an optional NOT prefix
func (p *Parser) parseUnary() (Expression, error) {
	if p.current().Type == TokenNot {
		p.advance()
		expr, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &NotExpr{Expr: expr}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a parenthesized group or a comparison
func (p *Parser) parsePrimary() (Expression, error) {
	if p.current().Type == TokenLeftParen {
		p.advance()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRightParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.advance()
		return expr, nil
	}
	return p.parseComparison()
}

// parseComparison parses: column op value
func (p *Parser) parseComparison() (Expression, error) {
	// Parse column name
	if p.current().Type != TokenIdent {
		return nil, fmt.Errorf("%w: expected column name, got %q", ErrSyntax, p.current().Value)
	}
	column := p.current().Value

	// Validate column name length
	if err := ValidateColumnName(column); err != nil {
		return nil, err
	}

	p.advance()

	// Parse operator
	operator := p.current().Type
	switch operator {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		p.advance()
	default:
		return nil, fmt.Errorf("%w: expected comparison operator after %q, got %q", ErrSyntax, column, p.current().Value)
	}

	// Parse value
	var value interface{}
	switch p.current().Type {
	case TokenString:
		value = p.current().Value
		p.advance()
	case TokenNumber:
		numStr := p.current().Value
		// Try to parse as int first, then float
		if intVal, err := strconv.ParseInt(numStr, 10, 64); err == nil {
			value = intVal
		} else if floatVal, err := strconv.ParseFloat(numStr, 64); err == nil {
			value = floatVal
		} else {
			return nil, fmt.Errorf("%w: invalid number %q", ErrSyntax, numStr)
		}
		p.advance()
	case TokenBool:
		value = strings.ToLower(p.current().Value) == "true"
		p.advance()
	default:
		return nil, fmt.Errorf("%w: expected value (string, number, or bool) after %q, got %q", ErrSyntax, column, p.current().Value)
	}

	return &ComparisonExpr{
		Column:   column,
		Operator: operator,
		Value:    value,
	}, nil
}
